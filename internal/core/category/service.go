// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package category

import (
	"context"
	"log/slog"

	"github.com/naildesignsart/naildesigns-art/internal/platform/apperr"
	"github.com/naildesignsart/naildesigns-art/internal/platform/validate"
	"github.com/naildesignsart/naildesigns-art/pkg/slug"
)

// Service orchestrates category reads and the slug-keyed write semantics.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListCategories returns every category. Backend failures surface as an
// empty slice; the public navigation renders without a taxonomy rather
// than erroring.
func (service *Service) ListCategories(ctx context.Context) []*Category {
	categories, err := service.repo.ListCategories(ctx)
	if err != nil {
		service.logger.Error("category_list_failed", slog.Any("error", err))
		return []*Category{}
	}
	if categories == nil {
		categories = []*Category{}
	}
	return categories
}

// GetCategory resolves one category by slug. When duplicates exist the
// first row wins.
func (service *Service) GetCategory(ctx context.Context, categorySlug string) (*Category, error) {
	matches, err := service.repo.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, apperr.NotFound("category not found")
	}
	return matches[0], nil
}

// SaveCategory upserts keyed on slug: an existing row with the same slug is
// edited in place, otherwise a new row is inserted. An absent slug is
// derived from the name.
func (service *Service) SaveCategory(ctx context.Context, category *Category) error {
	if category.Slug == "" {
		category.Slug = slug.From(category.Name)
	}

	if err := validateCategory(category); err != nil {
		return err
	}

	existing, err := service.repo.FindBySlug(ctx, category.Slug)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		category.ID = existing[0].ID
		if err := service.repo.UpdateByID(ctx, category); err != nil {
			return err
		}
		service.logger.Info("category_updated", slog.String("slug", category.Slug))
		return nil
	}

	if err := service.repo.Create(ctx, category); err != nil {
		return err
	}
	service.logger.Info("category_created", slog.String("slug", category.Slug))
	return nil
}

// DeleteCategory removes every row matching the slug. Duplicate rows are a
// legal state and get bulk-removed in one call. Designs referencing the
// slug are left untouched.
func (service *Service) DeleteCategory(ctx context.Context, categorySlug string) error {
	removed, err := service.repo.DeleteBySlug(ctx, categorySlug)
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperr.NotFound("category not found")
	}

	service.logger.Info("category_deleted",
		slog.String("slug", categorySlug),
		slog.Int64("rows_removed", removed),
	)
	return nil
}

func validateCategory(category *Category) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, category.Name).MaxLen(FieldName, category.Name, 100)
	validator.Slug(FieldSlug, category.Slug)
	return validator.Err()
}
