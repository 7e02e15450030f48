// Copyright (c) 2026 NailDesigns.art. All rights reserved.

// Command api is the entry point for the naildesigns.art HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (.env honored in dev).
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/joho/godotenv"

	"github.com/naildesignsart/naildesigns-art/internal/admin"
	"github.com/naildesignsart/naildesigns-art/internal/ads"
	"github.com/naildesignsart/naildesigns-art/internal/api"
	"github.com/naildesignsart/naildesigns-art/internal/core/category"
	"github.com/naildesignsart/naildesigns-art/internal/core/design"
	"github.com/naildesignsart/naildesigns-art/internal/feed"
	"github.com/naildesignsart/naildesigns-art/internal/media"
	"github.com/naildesignsart/naildesigns-art/internal/platform/config"
	"github.com/naildesignsart/naildesigns-art/internal/platform/constants"
	"github.com/naildesignsart/naildesigns-art/internal/platform/migration"
	pgstore "github.com/naildesignsart/naildesigns-art/internal/platform/postgres"
	redisstore "github.com/naildesignsart/naildesigns-art/internal/platform/redis"
	"github.com/naildesignsart/naildesigns-art/internal/platform/sec"
	"github.com/naildesignsart/naildesigns-art/internal/settings"
	"github.com/naildesignsart/naildesigns-art/internal/sitemap"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "naildesigns-api"))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// .env is a developer convenience; production injects real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "naildesigns-api"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	accountRepository := admin.NewPostgresRepository(pool)
	sessionRepository := admin.NewRedisSessionRepository(rdb)
	adminService := admin.NewService(accountRepository, sessionRepository, jwtSvc, log)
	adminHandler := admin.NewHandler(adminService)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		must(log, adminService.EnsureAccount(startupCtx, cfg.AdminEmail, cfg.AdminPassword), "bootstrap admin account")
	}

	designRepository := design.NewPostgresRepository(pool)
	designService := design.NewService(designRepository, log)
	designHandler := design.NewHandler(designService)

	categoryRepository := category.NewPostgresRepository(pool)
	categoryService := category.NewService(categoryRepository, log)
	categoryHandler := category.NewHandler(categoryService)

	settingsStore := settings.NewCachedStore(settings.NewPostgresStore(pool), rdb, log)
	settingsService := settings.NewService(settingsStore, log)
	settingsHandler := settings.NewHandler(settingsService)

	adResolver := ads.NewResolver(cfg.TrustRawMarkup)
	feedService := feed.NewService(designService, settingsService, adResolver, log)
	feedHandler := feed.NewHandler(feedService)

	sitemapRenderer := sitemap.NewRenderer(cfg.PublicBaseURL)
	sitemapHandler := sitemap.NewHandler(designRepository, categoryRepository, sitemapRenderer, log)

	var mediaHandler *media.Handler
	if cfg.CloudinaryURL != "" {
		uploader, err := media.NewCloudinaryUploader(cfg.CloudinaryURL, log)
		must(log, err, "initialize cloudinary")
		mediaHandler = media.NewHandler(uploader)
	} else {
		log.Warn("cloudinary_not_configured", slog.String("effect", "media uploads disabled"))
		mediaHandler = media.NewHandler(media.Disabled{})
	}

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      adminHandler,
		Design:    designHandler,
		Category:  categoryHandler,
		Settings:  settingsHandler,
		Feed:      feedHandler,
		Sitemap:   sitemapHandler,
		Media:     mediaHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, adminService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
