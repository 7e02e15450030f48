// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package design

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/naildesignsart/naildesigns-art/internal/platform/validate"
	"github.com/naildesignsart/naildesigns-art/pkg/slug"
	"github.com/naildesignsart/naildesigns-art/pkg/uuidv7"
)

// relatedFetchLimit and relatedMax bound the related-designs lookup: up to
// ten candidates from the same category, truncated to six after excluding
// the current design.
const (
	relatedFetchLimit = 10
	relatedMax        = 6
)

// Service orchestrates the business logic for the design catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Lookups

// ListDesigns retrieves designs for public and admin listings.
//
// Backend failures are logged and converted to an empty slice — callers
// never receive an error from a listing and must only check emptiness.
//
// When filter.Search is set, an additional in-memory pass filters the
// already-fetched page by case-insensitive substring match against title OR
// category. Search recall is therefore bounded by what limit fetched; this
// is not a full-collection search.
func (service *Service) ListDesigns(ctx context.Context, filter Filter, limit, offset int) []*Design {
	designs, err := service.repo.List(ctx, filter, limit, offset)
	if err != nil {
		service.logger.Error("design_list_failed", slog.Any("error", err))
		return []*Design{}
	}

	if filter.Search != "" {
		designs = searchPass(designs, filter.Search)
	}

	if designs == nil {
		designs = []*Design{}
	}
	return designs
}

// GetDesign fetches a single design by its public slug.
//
// Returns a not-found error when no design matches; never falls back to
// sample content.
func (service *Service) GetDesign(ctx context.Context, designSlug string) (*Design, error) {
	return service.repo.FindBySlug(ctx, designSlug)
}

// RelatedDesigns returns up to six published designs from the same category,
// excluding the current design. There is no relevance ranking beyond the
// category match and store-returned order.
func (service *Service) RelatedDesigns(ctx context.Context, currentSlug, categorySlug string) []*Design {
	candidates := service.ListDesigns(ctx, Filter{
		Category: categorySlug,
		Status:   StatusPublished,
	}, relatedFetchLimit, 0)

	related := make([]*Design, 0, relatedMax)
	for _, candidate := range candidates {
		if candidate.Slug == currentSlug {
			continue
		}
		related = append(related, candidate)
		if len(related) == relatedMax {
			break
		}
	}
	return related
}

// # Management

// CreateDesign validates and persists a new design.
//
// An absent id is minted as a time-based UUIDv7 token; an absent slug is
// derived from the title. An absent publishedAt defaults to now.
func (service *Service) CreateDesign(ctx context.Context, design *Design) error {
	applyDefaults(design)

	if design.ID == "" {
		design.ID = uuidv7.New()
	}
	if design.Slug == "" {
		design.Slug = slug.From(design.Title)
	}
	if design.PublishedAt.IsZero() {
		design.PublishedAt = time.Now().UTC()
	}

	if err := validateDesign(design); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, design); err != nil {
		return err
	}

	service.logger.Info("design_created",
		slog.String("design_id", design.ID),
		slog.String("slug", design.Slug),
	)
	return nil
}

// UpdateDesign overwrites the stored design identified by id with the given
// document in full. This is not a patch: callers must resend unmodified
// fields or they will be erased.
func (service *Service) UpdateDesign(ctx context.Context, id string, design *Design) error {
	design.ID = id
	applyDefaults(design)

	if design.Slug == "" {
		design.Slug = slug.From(design.Title)
	}

	if err := validateDesign(design); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, design); err != nil {
		return err
	}

	service.logger.Info("design_updated", slog.String("design_id", id))
	return nil
}

// DeleteDesign removes a design by id. There is no soft delete.
func (service *Service) DeleteDesign(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}
	service.logger.Info("design_deleted", slog.String("design_id", id))
	return nil
}

// # Helpers

// applyDefaults fills attribute enums the admin form leaves empty.
func applyDefaults(design *Design) {
	if design.Status == "" {
		design.Status = StatusDraft
	}
	if design.Length == "" {
		design.Length = LengthMedium
	}
	if design.Shape == "" {
		design.Shape = ShapeAlmond
	}
	if design.StyleType == "" {
		design.StyleType = StyleClassy
	}
}

// validateDesign enforces the business rules shared by create and update.
func validateDesign(design *Design) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, design.Title).MaxLen(FieldTitle, design.Title, 200)

	validator.OneOf(FieldStatus, string(design.Status),
		string(StatusDraft), string(StatusPublished))

	validator.OneOf(FieldLength, string(design.Length),
		string(LengthShort), string(LengthMedium), string(LengthLong))

	validator.OneOf(FieldShape, string(design.Shape),
		string(ShapeCoffin), string(ShapeAlmond), string(ShapeSquare),
		string(ShapeStiletto), string(ShapeOval))

	validator.OneOf(FieldStyleType, string(design.StyleType),
		string(StyleClassy), string(StyleBold), string(StyleBridal),
		string(StyleOffice), string(StyleCasual), string(StyleMinimal))

	// Image dimensions drive aspect-ratio reservation on the grid and must
	// be positive whenever a main image is set.
	if design.MainImage != "" {
		validator.Positive(FieldWidth, design.Width)
		validator.Positive(FieldHeight, design.Height)
	}

	return validator.Err()
}

// searchPass filters a fetched page by case-insensitive substring match
// against title OR category.
func searchPass(designs []*Design, search string) []*Design {
	needle := strings.ToLower(search)

	matched := make([]*Design, 0, len(designs))
	for _, d := range designs {
		if strings.Contains(strings.ToLower(d.Title), needle) ||
			strings.Contains(strings.ToLower(d.Category), needle) {
			matched = append(matched, d)
		}
	}
	return matched
}
