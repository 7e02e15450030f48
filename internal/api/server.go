// Copyright (c) 2026 NailDesigns.art. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and the cmd binaries are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/naildesignsart/naildesigns-art/internal/admin"
	"github.com/naildesignsart/naildesigns-art/internal/core/category"
	"github.com/naildesignsart/naildesigns-art/internal/core/design"
	"github.com/naildesignsart/naildesigns-art/internal/feed"
	"github.com/naildesignsart/naildesigns-art/internal/media"
	"github.com/naildesignsart/naildesigns-art/internal/platform/config"
	"github.com/naildesignsart/naildesigns-art/internal/platform/constants"
	"github.com/naildesignsart/naildesigns-art/internal/platform/middleware"
	"github.com/naildesignsart/naildesigns-art/internal/settings"
	"github.com/naildesignsart/naildesigns-art/internal/sitemap"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the console sign-in endpoints.
	Auth *admin.Handler

	// Design serves the public catalogue and the console CRUD.
	Design *design.Handler

	// Category serves the taxonomy.
	Category *category.Handler

	// Settings serves the ads and site configuration documents.
	Settings *settings.Handler

	// Feed serves the interleaved gallery feed.
	Feed *feed.Handler

	// Sitemap serves the crawl XML; also mounted standalone by cmd/sitemap.
	Sitemap *sitemap.Handler

	// Media handles console image uploads.
	Media *media.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Crawl Endpoints
	// Root-level XML for search engines; cmd/sitemap serves the same handler.
	h.Sitemap.RegisterRoutes(r)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		// Public read surface
		api.Route("/designs", h.Design.RegisterPublicRoutes)
		api.Route("/categories", h.Category.RegisterPublicRoutes)
		api.Route("/settings", h.Settings.RegisterPublicRoutes)
		api.Route("/feed", h.Feed.RegisterRoutes)

		// Console surface; everything below requires a live session.
		api.Route("/admin", func(adminRouter chi.Router) {
			adminRouter.Use(middleware.RequireAuth)

			adminRouter.Route("/designs", h.Design.RegisterAdminRoutes)
			adminRouter.Route("/categories", h.Category.RegisterAdminRoutes)
			adminRouter.Route("/settings", h.Settings.RegisterAdminRoutes)
			adminRouter.Route("/sitemaps", h.Sitemap.RegisterAdminRoutes)
			adminRouter.Route("/media", h.Media.RegisterAdminRoutes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
