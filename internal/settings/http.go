// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package settings

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

// RegisterPublicRoutes mounts the read side. The frontend needs both
// documents to render the shell and decide ad placement.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/ads", handler.getAds)
	router.Get("/site", handler.getSite)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/ads", handler.getAds)
	router.Put("/ads", handler.saveAds)
	router.Get("/site", handler.getSite)
	router.Put("/site", handler.saveSite)
}

func (handler *Handler) getAds(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Ads(request.Context()))
}

func (handler *Handler) getSite(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Site(request.Context()))
}

func (handler *Handler) saveAds(writer http.ResponseWriter, request *http.Request) {
	var payload AdsSettings
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SaveAds(request.Context(), payload); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, payload)
}

func (handler *Handler) saveSite(writer http.ResponseWriter, request *http.Request) {
	var payload SiteSettings
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SaveSite(request.Context(), payload); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, payload)
}
