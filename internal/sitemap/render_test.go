// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package sitemap_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naildesignsart/naildesigns-art/internal/core/category"
	"github.com/naildesignsart/naildesigns-art/internal/core/design"
	"github.com/naildesignsart/naildesigns-art/internal/sitemap"
)

var testTime = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func testDesigns() []*design.Design {
	return []*design.Design{
		{
			Title:       "Almond Dream",
			Slug:        "almond-dream",
			Status:      design.StatusPublished,
			MainImage:   "https://cdn.example.com/almond.webp",
			PublishedAt: time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC),
		},
		{
			Title:  "Unfinished Draft",
			Slug:   "unfinished-draft",
			Status: design.StatusDraft,
		},
		{
			Title:       "Cats & Dots <3",
			Slug:        "cats-dots",
			Status:      design.StatusPublished,
			MainImage:   "https://cdn.example.com/cats.webp",
			PublishedAt: time.Date(2026, 2, 10, 23, 45, 0, 0, time.UTC),
		},
	}
}

/*
TestRenderer_Sitemap verifies the urlset structure: home, categories, and
published designs at their priorities, with date-truncated lastmod.
*/
func TestRenderer_Sitemap(t *testing.T) {
	renderer := sitemap.NewRenderer("https://naildesigns.art/")
	categories := []*category.Category{
		{Name: "French", Slug: "french"},
		{Name: "No Slug Yet"},
	}

	xml := renderer.Sitemap(testDesigns(), categories, testTime)

	// 1. Declaration and namespace
	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)

	// 2. Home entry at priority 1.0 with today's date
	assert.Contains(t, xml, "<loc>https://naildesigns.art/</loc>")
	assert.Contains(t, xml, "<lastmod>2026-03-15</lastmod>")
	assert.Contains(t, xml, "<priority>1.0</priority>")

	// 3. Category entry; slug-less category skipped
	assert.Contains(t, xml, "<loc>https://naildesigns.art/category/french</loc>")
	assert.Contains(t, xml, "<priority>0.8</priority>")
	assert.Equal(t, 1, strings.Count(xml, "/category/"))

	// 4. Published design with date-only lastmod; draft skipped
	assert.Contains(t, xml, "<loc>https://naildesigns.art/nail-designs/almond-dream</loc>")
	assert.Contains(t, xml, "<lastmod>2026-01-02</lastmod>")
	assert.Contains(t, xml, "<priority>0.6</priority>")
	assert.NotContains(t, xml, "unfinished-draft")
}

/*
TestRenderer_ImageSitemap verifies the image-namespaced variant with
XML-escaped titles.
*/
func TestRenderer_ImageSitemap(t *testing.T) {
	renderer := sitemap.NewRenderer("https://naildesigns.art")

	xml := renderer.ImageSitemap(testDesigns())

	assert.Contains(t, xml, `xmlns:image="http://www.google.com/schemas/sitemap-image/1.1"`)
	assert.Contains(t, xml, "<image:loc>https://cdn.example.com/almond.webp</image:loc>")
	assert.Contains(t, xml, "<image:title>Almond Dream</image:title>")

	// Title escaping
	assert.Contains(t, xml, "<image:title>Cats &amp; Dots &lt;3</image:title>")
	assert.NotContains(t, xml, "unfinished-draft")
}

// # HTTP layer

type fakeDesignSource struct {
	designs []*design.Design
	err     error
}

func (f *fakeDesignSource) List(_ context.Context, _ design.Filter, _, _ int) ([]*design.Design, error) {
	return f.designs, f.err
}

type fakeCategorySource struct {
	categories []*category.Category
	err        error
}

func (f *fakeCategorySource) ListCategories(_ context.Context) ([]*category.Category, error) {
	return f.categories, f.err
}

func newTestHandler(designs *fakeDesignSource, categories *fakeCategorySource) *sitemap.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sitemap.NewHandler(designs, categories, sitemap.NewRenderer("https://naildesigns.art"), logger)
}

/*
TestHandler_Sitemap_Headers verifies the content type and edge-caching
headers on a successful render.
*/
func TestHandler_Sitemap_Headers(t *testing.T) {
	handler := newTestHandler(
		&fakeDesignSource{designs: testDesigns()},
		&fakeCategorySource{},
	)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/xml; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t,
		"public, max-age=0, s-maxage=600, stale-while-revalidate=86400",
		recorder.Header().Get("Cache-Control"),
	)
	assert.Contains(t, recorder.Body.String(), "almond-dream")
}

/*
TestHandler_Sitemap_FailureIs500 verifies that a backend failure produces a
plain-text 500 instead of an empty 200 that would deindex the site.
*/
func TestHandler_Sitemap_FailureIs500(t *testing.T) {
	handler := newTestHandler(
		&fakeDesignSource{err: errors.New("connection refused")},
		&fakeCategorySource{},
	)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	for _, path := range []string{"/sitemap.xml", "/image-sitemap.xml"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code, path)
		assert.Equal(t, "text/plain; charset=utf-8", recorder.Header().Get("Content-Type"), path)
	}
}
