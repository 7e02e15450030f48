// Copyright (c) 2026 NailDesigns.art. All rights reserved.

// Command sitemap serves only the two crawl XML endpoints. It deploys
// independently of the API server so search-engine traffic never competes
// with the console or the feed, and it needs nothing but PostgreSQL.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/naildesignsart/naildesigns-art/internal/core/category"
	"github.com/naildesignsart/naildesigns-art/internal/core/design"
	"github.com/naildesignsart/naildesigns-art/internal/platform/config"
	"github.com/naildesignsart/naildesigns-art/internal/platform/constants"
	"github.com/naildesignsart/naildesigns-art/internal/platform/middleware"
	pgstore "github.com/naildesignsart/naildesigns-art/internal/platform/postgres"
	"github.com/naildesignsart/naildesigns-art/internal/sitemap"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	log := rawLog.With(slog.String("app", "naildesigns-sitemap"))
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	_ = godotenv.Load()

	cfg, err := config.LoadSitemap()
	must(log, err, "load configuration")

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	// ── 4. Router ─────────────────────────────────────────────────────────
	// Deliberately thin: no auth, no rate limiting, no CORS. Crawlers hit
	// two read-only endpoints and the CDN absorbs the volume.
	renderer := sitemap.NewRenderer(cfg.PublicBaseURL)
	handler := sitemap.NewHandler(
		design.NewPostgresRepository(pool),
		category.NewPostgresRepository(pool),
		renderer,
		log,
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(log))
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.PanicRecovery(log))
	handler.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadTimeout:       constants.DefaultReadTimeout,
		WriteTimeout:      constants.DefaultWriteTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
	}

	// ── 5. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("sitemap server starting", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("server stopped cleanly")
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
