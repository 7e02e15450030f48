// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package feed_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naildesignsart/naildesigns-art/internal/ads"
	"github.com/naildesignsart/naildesigns-art/internal/core/design"
	"github.com/naildesignsart/naildesigns-art/internal/feed"
	"github.com/naildesignsart/naildesigns-art/internal/platform/apperr"
	"github.com/naildesignsart/naildesigns-art/internal/settings"
)

type fakeDesignRepo struct {
	designs []*design.Design
}

func (f *fakeDesignRepo) List(_ context.Context, filter design.Filter, limit, offset int) ([]*design.Design, error) {
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

func (f *fakeDesignRepo) FindBySlug(_ context.Context, slug string) (*design.Design, error) {
	return nil, apperr.NotFound("design not found")
}

func (f *fakeDesignRepo) Create(_ context.Context, _ *design.Design) error { return nil }
func (f *fakeDesignRepo) Update(_ context.Context, _ *design.Design) error { return nil }
func (f *fakeDesignRepo) Delete(_ context.Context, _ string) error         { return nil }

type fakeSettingsStore struct {
	documents map[string]json.RawMessage
}

func (f *fakeSettingsStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	value, ok := f.documents[key]
	if !ok {
		return nil, apperr.NotFound("setting not found")
	}
	return value, nil
}

func (f *fakeSettingsStore) Set(_ context.Context, key string, value json.RawMessage) error {
	if f.documents == nil {
		f.documents = make(map[string]json.RawMessage)
	}
	f.documents[key] = value
	return nil
}

func newTestFeed(repo *fakeDesignRepo, store *fakeSettingsStore) *feed.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	designs := design.NewService(repo, logger)
	settingsService := settings.NewService(store, logger)
	return feed.NewService(designs, settingsService, ads.NewResolver(false), logger)
}

func publishedDesigns(n int) []*design.Design {
	designs := make([]*design.Design, n)
	for i := range designs {
		designs[i] = &design.Design{
			ID:     fmt.Sprintf("id-%d", i),
			Title:  fmt.Sprintf("Design %d", i),
			Slug:   fmt.Sprintf("design-%d", i),
			Status: design.StatusPublished,
			Width:  800,
			Height: 1200,
		}
	}
	return designs
}

/*
TestFeed_Page_Interleaved verifies a rendered page mixes design entries
with ad markers per the default density and reports the design count.
*/
func TestFeed_Page_Interleaved(t *testing.T) {
	service := newTestFeed(
		&fakeDesignRepo{designs: publishedDesigns(20)},
		&fakeSettingsStore{},
	)

	entries, count := service.Page(context.Background(), "", 20, 0, 1280)

	// Default density: startAfter 4, interval 6 over 20 items → ads after
	// items 4, 10, 16.
	assert.Equal(t, 20, count)
	require.Len(t, entries, 23)

	adPositions := make([]int, 0)
	designsSeen := 0
	for _, entry := range entries {
		switch entry.Kind {
		case feed.EntryAd:
			adPositions = append(adPositions, designsSeen)
			assert.NotNil(t, entry.Placement)
			assert.NotEmpty(t, entry.AdID)
		case feed.EntryDesign:
			designsSeen++
			assert.NotNil(t, entry.Design)
		}
	}
	assert.Equal(t, []int{4, 10, 16}, adPositions)
}

/*
TestFeed_Page_AdsDisabled verifies a pure-content page when the global
toggle is off.
*/
func TestFeed_Page_AdsDisabled(t *testing.T) {
	store := &fakeSettingsStore{documents: map[string]json.RawMessage{
		"ads": json.RawMessage(`{"showAds":false}`),
	}}
	service := newTestFeed(&fakeDesignRepo{designs: publishedDesigns(20)}, store)

	entries, count := service.Page(context.Background(), "", 20, 0, 1280)

	assert.Equal(t, 20, count)
	require.Len(t, entries, 20)
	for _, entry := range entries {
		assert.Equal(t, feed.EntryDesign, entry.Kind)
	}
}

/*
TestFeed_Page_ViewportGatingDropsMarkers verifies that a viewport blocked
by the grid gating yields a marker-free page rather than blank ad slots.
*/
func TestFeed_Page_ViewportGatingDropsMarkers(t *testing.T) {
	store := &fakeSettingsStore{documents: map[string]json.RawMessage{
		"ads": json.RawMessage(`{"gridShowOnMobile":false}`),
	}}
	service := newTestFeed(&fakeDesignRepo{designs: publishedDesigns(20)}, store)

	entries, _ := service.Page(context.Background(), "", 20, 0, 375)

	require.Len(t, entries, 20)
	for _, entry := range entries {
		assert.Equal(t, feed.EntryDesign, entry.Kind)
	}
}

/*
TestFeed_Page_CategoryFilter verifies that the category pass-through only
feeds matching designs into the page.
*/
func TestFeed_Page_CategoryFilter(t *testing.T) {
	designs := publishedDesigns(6)
	for i := 0; i < 3; i++ {
		designs[i].Category = "french"
	}
	service := newTestFeed(&fakeDesignRepo{designs: designs}, &fakeSettingsStore{})

	entries, count := service.Page(context.Background(), "french", 20, 0, 1280)

	assert.Equal(t, 3, count)
	for _, entry := range entries {
		if entry.Kind == feed.EntryDesign {
			assert.Equal(t, "french", entry.Design.Category)
		}
	}
}
