// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package settings

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/naildesignsart/naildesigns-art/internal/platform/constants"
)

// CachedStore wraps a [Store] with a short-TTL Redis read-through cache.
//
// A cache backend failure is never fatal: reads fall through to the inner
// store and writes proceed with the stale entry dropped best-effort. The
// TTL bounds cross-instance staleness after a save on another node.
type CachedStore struct {
	inner  Store
	client *redis.Client
	logger *slog.Logger
}

func NewCachedStore(inner Store, client *redis.Client, logger *slog.Logger) *CachedStore {
	return &CachedStore{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

func (store *CachedStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	cacheKey := constants.RedisPrefixSettings + key

	cached, err := store.client.Get(ctx, cacheKey).Bytes()
	if err == nil {
		return json.RawMessage(cached), nil
	}
	if !errors.Is(err, redis.Nil) {
		store.logger.Warn("settings_cache_read_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	value, err := store.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := store.client.Set(ctx, cacheKey, []byte(value), constants.SettingsCacheTTL).Err(); err != nil {
		store.logger.Warn("settings_cache_fill_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
	return value, nil
}

func (store *CachedStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := store.inner.Set(ctx, key, value); err != nil {
		return err
	}

	// Invalidate rather than refill so a racing read cannot pin a stale
	// document past the write.
	cacheKey := constants.RedisPrefixSettings + key
	if err := store.client.Del(ctx, cacheKey).Err(); err != nil {
		store.logger.Warn("settings_cache_invalidate_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
	return nil
}
