// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/naildesignsart/naildesigns-art/internal/platform/request"
	"github.com/naildesignsart/naildesigns-art/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Get("/{slug}", handler.getCategory)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Post("/", handler.saveCategory)
	router.Delete("/{slug}", handler.deleteCategory)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories := handler.service.ListCategories(request.Context())
	respond.OK(writer, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	categorySlug := chi.URLParam(request, "slug")

	category, err := handler.service.GetCategory(request.Context(), categorySlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) saveCategory(writer http.ResponseWriter, request *http.Request) {
	var payload Category
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SaveCategory(request.Context(), &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, &payload)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	categorySlug := chi.URLParam(request, "slug")

	if err := handler.service.DeleteCategory(request.Context(), categorySlug); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
