// Copyright (c) 2026 NailDesigns.art. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the naildesigns.art API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// PublicBaseURL is the canonical origin used in sitemap <loc> entries.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"https://naildesigns.art"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Cryptographic keys for admin session signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Image CDN (Cloudinary). A cloudinary:// URL carrying credentials.
	CloudinaryURL string `env:"CLOUDINARY_URL"`

	// TrustRawMarkup controls the ad trust boundary. When false (the default),
	// operator-supplied raw ad markup is sanitized before being served; when
	// true it passes through verbatim. Flip this only for deployments where
	// every admin account is fully trusted.
	TrustRawMarkup bool `env:"TRUST_RAW_AD_MARKUP" envDefault:"false"`

	// Bootstrap admin credentials. When both are set, startup ensures the
	// account exists so a fresh deployment has a way into the console.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// # Sitemap Binary

// SitemapConfig is the trimmed configuration for the standalone sitemap
// server, which needs PostgreSQL and nothing else.
type SitemapConfig struct {
	ServerPort    string `env:"SERVER_PORT"     envDefault:"8081"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"https://naildesigns.art"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
}

// LoadSitemap parses environment variables into a [SitemapConfig].
func LoadSitemap() (*SitemapConfig, error) {
	cfg := &SitemapConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// ExtraAllowedOrigins parses EXTRA_ORIGINS into exact origins additionally
// allowed by CORS in production.
func (c *Config) ExtraAllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}
	origins := strings.Split(c.ExtraOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
