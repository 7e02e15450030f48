// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package sitemap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/naildesignsart/naildesigns-art/internal/core/category"
	"github.com/naildesignsart/naildesigns-art/internal/core/design"
	"github.com/naildesignsart/naildesigns-art/internal/platform/respond"
)

// cacheControl lets the CDN edge serve for ten minutes and fall back to a
// day-old copy while revalidating.
const cacheControl = "public, max-age=0, s-maxage=600, stale-while-revalidate=86400"

// fetchLimit bounds the collection scan. Far above the catalogue's actual
// size; sitemaps are not paginated.
const fetchLimit = 5000

// DesignSource is the slice of the design store the sitemap needs.
type DesignSource interface {
	List(ctx context.Context, filter design.Filter, limit, offset int) ([]*design.Design, error)
}

// CategorySource is the slice of the category store the sitemap needs.
type CategorySource interface {
	ListCategories(ctx context.Context) ([]*category.Category, error)
}

// Handler serves the XML documents. Unlike the public JSON listings it
// does NOT degrade to empty output on a backend failure: an empty sitemap
// served with a 200 would deindex the site, so failures are 500s.
type Handler struct {
	designs    DesignSource
	categories CategorySource
	renderer   *Renderer
	logger     *slog.Logger
}

func NewHandler(designs DesignSource, categories CategorySource, renderer *Renderer, logger *slog.Logger) *Handler {
	return &Handler{
		designs:    designs,
		categories: categories,
		renderer:   renderer,
		logger:     logger,
	}
}

// RegisterRoutes mounts the crawl endpoints at the router root.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/sitemap.xml", handler.getSitemap)
	router.Get("/image-sitemap.xml", handler.getImageSitemap)
}

// RegisterAdminRoutes mounts the console endpoint returning both documents
// as strings for copy/paste.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.getBoth)
}

func (handler *Handler) getSitemap(writer http.ResponseWriter, request *http.Request) {
	xml, err := handler.renderSitemap(request.Context())
	if err != nil {
		handler.fail(writer, "sitemap error", err)
		return
	}
	writeXML(writer, xml)
}

func (handler *Handler) getImageSitemap(writer http.ResponseWriter, request *http.Request) {
	xml, err := handler.renderImageSitemap(request.Context())
	if err != nil {
		handler.fail(writer, "image sitemap error", err)
		return
	}
	writeXML(writer, xml)
}

func (handler *Handler) getBoth(writer http.ResponseWriter, request *http.Request) {
	sitemapXML, err := handler.renderSitemap(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	imageXML, err := handler.renderImageSitemap(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"sitemap":      sitemapXML,
		"imageSitemap": imageXML,
	})
}

func (handler *Handler) renderSitemap(ctx context.Context) (string, error) {
	designs, err := handler.designs.List(ctx, design.Filter{Status: design.StatusPublished}, fetchLimit, 0)
	if err != nil {
		return "", err
	}
	categories, err := handler.categories.ListCategories(ctx)
	if err != nil {
		return "", err
	}
	return handler.renderer.Sitemap(designs, categories, time.Now()), nil
}

func (handler *Handler) renderImageSitemap(ctx context.Context) (string, error) {
	designs, err := handler.designs.List(ctx, design.Filter{Status: design.StatusPublished}, fetchLimit, 0)
	if err != nil {
		return "", err
	}
	return handler.renderer.ImageSitemap(designs), nil
}

func (handler *Handler) fail(writer http.ResponseWriter, message string, err error) {
	handler.logger.Error("sitemap_render_failed", slog.Any("error", err))
	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	writer.WriteHeader(http.StatusInternalServerError)
	_, _ = writer.Write([]byte(message))
}

func writeXML(writer http.ResponseWriter, xml string) {
	writer.Header().Set("Content-Type", "application/xml; charset=utf-8")
	writer.Header().Set("Cache-Control", cacheControl)
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte(xml))
}
