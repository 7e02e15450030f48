// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naildesignsart/naildesigns-art/internal/platform/apperr"
	"github.com/naildesignsart/naildesigns-art/internal/platform/respond"
)

// maxUploadBytes caps a single image upload at 10 MiB.
const maxUploadBytes = 10 << 20

type Handler struct {
	uploader Uploader
}

func NewHandler(uploader Uploader) *Handler {
	return &Handler{uploader: uploader}
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/", handler.upload)
}

// upload accepts a multipart form with a single "file" part.
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxUploadBytes)

	if err := request.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart payload"))
		return
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing file field"))
		return
	}
	defer file.Close()

	result, err := handler.uploader.Upload(request.Context(), file, header.Filename)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}
