// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package category

import "context"

// Repository is the storage contract for categories.
type Repository interface {
	ListCategories(ctx context.Context) ([]*Category, error)

	// FindBySlug returns every row carrying the slug, in store order.
	FindBySlug(ctx context.Context, slug string) ([]*Category, error)

	Create(ctx context.Context, category *Category) error

	// UpdateByID rewrites a single row in place.
	UpdateByID(ctx context.Context, category *Category) error

	// DeleteBySlug removes ALL rows matching the slug and reports how many
	// went away.
	DeleteBySlug(ctx context.Context, slug string) (int64, error)
}
