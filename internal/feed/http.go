// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package feed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naildesignsart/naildesigns-art/internal/platform/respond"
	"github.com/naildesignsart/naildesigns-art/pkg/convert"
	"github.com/naildesignsart/naildesigns-art/pkg/pagination"
)

// defaultViewportWidth is assumed when the client sends no width hint.
// Desktop is the safer default: grid ads gated to mobile-only stay off.
const defaultViewportWidth = 1280

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getFeed)
}

// getFeed serves one feed page. Each page boundary is computed statelessly
// per request; guarding against overlapping load-more requests for the
// same boundary is the infinite-scroll client's job.
func (handler *Handler) getFeed(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	query := request.URL.Query()

	viewportWidth := convert.ToIntD(query.Get("vw"), defaultViewportWidth)

	entries, designCount := handler.service.Page(
		request.Context(),
		query.Get("category"),
		params.Limit,
		params.Offset(),
		viewportWidth,
	)

	respond.Paginated(writer, entries, pagination.NewMeta(params.Page, params.Limit, designCount))
}
