// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package design_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naildesignsart/naildesigns-art/internal/core/design"
	"github.com/naildesignsart/naildesigns-art/internal/platform/apperr"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	designs []*design.Design
	listErr error

	created *design.Design
	updated *design.Design
	deleted string
}

func (f *fakeRepository) List(_ context.Context, filter design.Filter, limit, offset int) ([]*design.Design, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	matched := make([]*design.Design, 0)
	for _, d := range f.designs {
		if filter.Category != "" && d.Category != filter.Category {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		matched = append(matched, d)
	}

	if offset >= len(matched) {
		return []*design.Design{}, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*design.Design, error) {
	for _, d := range f.designs {
		if d.Slug == slug {
			return d, nil
		}
	}
	return nil, apperr.NotFound("design not found")
}

func (f *fakeRepository) Create(_ context.Context, d *design.Design) error {
	f.created = d
	f.designs = append(f.designs, d)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, d *design.Design) error {
	f.updated = d
	for i, existing := range f.designs {
		if existing.ID == d.ID {
			f.designs[i] = d
		}
	}
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	f.deleted = id
	return nil
}

func newTestService(repo *fakeRepository) *design.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return design.NewService(repo, logger)
}

func published(id, title, slug, category string) *design.Design {
	return &design.Design{
		ID:       id,
		Title:    title,
		Slug:     slug,
		Category: category,
		Status:   design.StatusPublished,
	}
}

/*
TestService_ListDesigns_ErrorYieldsEmpty verifies that a backend failure
surfaces as an empty listing, never as an error.
*/
func TestService_ListDesigns_ErrorYieldsEmpty(t *testing.T) {
	repo := &fakeRepository{listErr: errors.New("connection refused")}
	service := newTestService(repo)

	designs := service.ListDesigns(context.Background(), design.Filter{}, 20, 0)

	assert.NotNil(t, designs)
	assert.Empty(t, designs)
}

/*
TestService_ListDesigns_SearchPass verifies the in-memory search filter:
case-insensitive substring match against title OR category, bounded by the
fetched page.
*/
func TestService_ListDesigns_SearchPass(t *testing.T) {
	repo := &fakeRepository{designs: []*design.Design{
		published("1", "Almond Dream", "almond-dream", "french"),
		published("2", "Coffin Chrome", "coffin-chrome", "chrome"),
		published("3", "Spring Pastels", "spring-pastels", "seasonal"),
	}}
	service := newTestService(repo)

	// 1. Title match, case-insensitive
	results := service.ListDesigns(context.Background(), design.Filter{Search: "almond"}, 20, 0)
	require.Len(t, results, 1)
	assert.Equal(t, "almond-dream", results[0].Slug)

	// 2. Category match
	results = service.ListDesigns(context.Background(), design.Filter{Search: "SEASONAL"}, 20, 0)
	require.Len(t, results, 1)
	assert.Equal(t, "spring-pastels", results[0].Slug)

	// 3. No match
	results = service.ListDesigns(context.Background(), design.Filter{Search: "glitter"}, 20, 0)
	assert.Empty(t, results)
}

/*
TestService_RelatedDesigns verifies the related lookup: same category,
current design excluded, at most six returned.
*/
func TestService_RelatedDesigns(t *testing.T) {
	repo := &fakeRepository{}
	for i := 0; i < 9; i++ {
		id := string(rune('a' + i))
		repo.designs = append(repo.designs, published(id, "Design "+id, "design-"+id, "french"))
	}
	repo.designs = append(repo.designs, published("x", "Other", "other", "chrome"))
	service := newTestService(repo)

	related := service.RelatedDesigns(context.Background(), "design-a", "french")

	// 1. Capped at six even though eight candidates remain
	require.Len(t, related, 6)

	// 2. The current design never appears
	for _, d := range related {
		assert.NotEqual(t, "design-a", d.Slug)
		assert.Equal(t, "french", d.Category)
	}
}

/*
TestService_CreateDesign_Defaults verifies that creation mints an id, derives
the slug from the title, stamps publishedAt and fills attribute defaults.
*/
func TestService_CreateDesign_Defaults(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	d := &design.Design{Title: "French Tip #1!"}
	err := service.CreateDesign(context.Background(), d)
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	// 1. Slug derived from the title
	assert.Equal(t, "french-tip-1", d.Slug)

	// 2. Identity and timestamps minted
	assert.NotEmpty(t, d.ID)
	assert.False(t, d.PublishedAt.IsZero())

	// 3. Attribute defaults applied
	assert.Equal(t, design.StatusDraft, d.Status)
	assert.Equal(t, design.LengthMedium, d.Length)
	assert.Equal(t, design.ShapeAlmond, d.Shape)
	assert.Equal(t, design.StyleClassy, d.StyleType)
}

/*
TestService_CreateDesign_Validation verifies the business rules rejected at
create time.
*/
func TestService_CreateDesign_Validation(t *testing.T) {
	service := newTestService(&fakeRepository{})

	testCases := []struct {
		name   string
		design *design.Design
	}{
		{
			name:   "missing title",
			design: &design.Design{},
		},
		{
			name: "invalid status",
			design: &design.Design{
				Title:  "Test",
				Status: design.Status("archived"),
			},
		},
		{
			name: "invalid shape",
			design: &design.Design{
				Title: "Test",
				Shape: design.NailShape("triangle"),
			},
		},
		{
			name: "main image without dimensions",
			design: &design.Design{
				Title:     "Test",
				MainImage: "https://cdn.example.com/a.webp",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.CreateDesign(context.Background(), tc.design)

			var appError *apperr.AppError
			require.ErrorAs(t, err, &appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

/*
TestService_UpdateDesign_Overwrite verifies that update is a full-document
overwrite keyed on the route id, not a patch.
*/
func TestService_UpdateDesign_Overwrite(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	d := &design.Design{
		Title:  "Chrome Finish",
		Status: design.StatusPublished,
	}
	err := service.UpdateDesign(context.Background(), "design-42", d)
	require.NoError(t, err)
	require.NotNil(t, repo.updated)

	// 1. Route id wins over whatever the payload carried
	assert.Equal(t, "design-42", repo.updated.ID)

	// 2. Slug rederived when absent
	assert.Equal(t, "chrome-finish", repo.updated.Slug)
}

/*
TestService_DesignLifecycle walks a design through its whole life: created as
a draft, fetched by its derived slug, published, and finally visible in the
public listing.
*/
func TestService_DesignLifecycle(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)
	ctx := context.Background()

	// 1. Create a draft; the slug is derived from the title
	draft := &design.Design{
		Title:     "Almond Dream",
		Category:  "french",
		MainImage: "https://cdn.example.com/almond-dream.webp",
		Width:     1200,
		Height:    1600,
	}
	require.NoError(t, service.CreateDesign(ctx, draft))
	assert.Equal(t, "almond-dream", draft.Slug)
	assert.Equal(t, design.StatusDraft, draft.Status)

	// 2. The draft is reachable by slug but absent from the public listing
	fetched, err := service.GetDesign(ctx, "almond-dream")
	require.NoError(t, err)
	assert.Equal(t, draft.ID, fetched.ID)

	listing := service.ListDesigns(ctx, design.Filter{Status: design.StatusPublished}, 20, 0)
	assert.Empty(t, listing)

	// 3. Publish via a full overwrite keyed on the stored id
	updated := *fetched
	updated.Status = design.StatusPublished
	require.NoError(t, service.UpdateDesign(ctx, fetched.ID, &updated))

	// 4. The published design now appears in the listing
	listing = service.ListDesigns(ctx, design.Filter{Status: design.StatusPublished}, 20, 0)
	require.Len(t, listing, 1)
	assert.Equal(t, "almond-dream", listing[0].Slug)
}

/*
TestService_DeleteDesign verifies the delete passthrough.
*/
func TestService_DeleteDesign(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	err := service.DeleteDesign(context.Background(), "design-7")
	require.NoError(t, err)
	assert.Equal(t, "design-7", repo.deleted)
}
