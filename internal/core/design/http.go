// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package design

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naildesignsart/naildesigns-art/pkg/pagination"
	"github.com/naildesignsart/naildesigns-art/pkg/query"

	requestutil "github.com/naildesignsart/naildesigns-art/internal/platform/request"
	"github.com/naildesignsart/naildesigns-art/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only catalog routes. Listings are
// restricted to published designs regardless of query parameters.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listDesigns)
	router.Get("/{slug}", handler.getDesign)
	router.Get("/{slug}/related", handler.listRelatedDesigns)
}

// RegisterAdminRoutes mounts the authenticated write routes.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.adminListDesigns)
	router.Post("/", handler.createDesign)
	router.Put("/{id}", handler.updateDesign)
	router.Delete("/{id}", handler.deleteDesign)
}

func (handler *Handler) listDesigns(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := filterFromQuery(request)
	filter.Status = StatusPublished

	designs := handler.service.ListDesigns(request.Context(), filter, params.Limit, params.Offset())
	respond.Paginated(writer, designs, pagination.NewMeta(params.Page, params.Limit, len(designs)))
}

func (handler *Handler) getDesign(writer http.ResponseWriter, request *http.Request) {
	designSlug := chi.URLParam(request, "slug")

	design, err := handler.service.GetDesign(request.Context(), designSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, design)
}

func (handler *Handler) listRelatedDesigns(writer http.ResponseWriter, request *http.Request) {
	designSlug := chi.URLParam(request, "slug")
	categorySlug := request.URL.Query().Get("category")

	if categorySlug == "" {
		current, err := handler.service.GetDesign(request.Context(), designSlug)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		categorySlug = current.Category
	}

	related := handler.service.RelatedDesigns(request.Context(), designSlug, categorySlug)
	respond.OK(writer, related)
}

func (handler *Handler) adminListDesigns(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	// The console sees drafts too; an explicit status param still narrows.
	filter := filterFromQuery(request)
	filter.Status = Status(request.URL.Query().Get("status"))

	designs := handler.service.ListDesigns(request.Context(), filter, params.Limit, params.Offset())
	respond.Paginated(writer, designs, pagination.NewMeta(params.Page, params.Limit, len(designs)))
}

func (handler *Handler) createDesign(writer http.ResponseWriter, request *http.Request) {
	var payload Design
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateDesign(request.Context(), &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, &payload)
}

func (handler *Handler) updateDesign(writer http.ResponseWriter, request *http.Request) {
	designID := requestutil.Param(request, "id")

	var payload Design
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateDesign(request.Context(), designID, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, &payload)
}

func (handler *Handler) deleteDesign(writer http.ResponseWriter, request *http.Request) {
	designID := requestutil.Param(request, "id")

	if err := handler.service.DeleteDesign(request.Context(), designID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// filterFromQuery maps catalog query parameters onto a [Filter].
func filterFromQuery(request *http.Request) Filter {
	values := request.URL.Query()
	return Filter{
		Category:  values.Get("category"),
		Search:    values.Get("search"),
		Length:    NailLength(values.Get("length")),
		Shape:     NailShape(values.Get("shape")),
		StyleType: StyleType(values.Get("styleType")),
		Colors:    query.StringSlice(values.Get("colors")),
	}
}
