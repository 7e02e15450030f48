// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/naildesignsart/naildesigns-art/internal/platform/request"
	"github.com/naildesignsart/naildesigns-art/internal/platform/respond"
)

// Handler implements the console authentication endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the authentication sub-router.
//
// # Endpoints
//   - POST /login  : Verifies credentials and returns a session token.
//   - POST /logout : Revokes the caller's session (requires auth).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	return router
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredAdmin(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
