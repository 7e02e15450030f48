// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package design

import "context"

// Repository defines the data access contract for the design domain.
//
// # Atomicity
//
// The logical design id is the storage primary key, so Update and Delete act
// directly on that key — there is no find-then-mutate round-trip and no
// secondary-index race. Concurrent writers still follow last-writer-wins;
// nothing serializes two updates to the same id.
type Repository interface {
	// List returns designs matching the filter, capped at limit.
	//
	// Ordering contract: with no category filter, results are ordered by
	// publishedAt descending. With a category filter the ordering clause is
	// dropped and results arrive in store order — the two are never combined.
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Design, error)

	// FindBySlug returns the design with the given slug, or a not-found
	// error. There is no fallback to sample content.
	FindBySlug(ctx context.Context, slug string) (*Design, error)

	// Create persists a new design.
	Create(ctx context.Context, design *Design) error

	// Update overwrites the stored document for design.ID in full. Callers
	// must send every field; untouched fields are not preserved.
	Update(ctx context.Context, design *Design) error

	// Delete removes the design with the given id.
	Delete(ctx context.Context, id string) error
}
