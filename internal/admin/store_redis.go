// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/naildesignsart/naildesigns-art/internal/platform/apperr"
	"github.com/naildesignsart/naildesigns-art/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository on Redis. The value
// is the owning admin id; the TTL matches the access token lifetime so
// abandoned sessions clean themselves up.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func (repository *RedisSessionRepository) Create(ctx context.Context, sessionID, adminID string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + sessionID

	if err := repository.client.Set(ctx, key, adminID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisSessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	key := constants.RedisPrefixSession + sessionID

	adminID, err := repository.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.Unauthorized("Session is invalid or expired")
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}
	return adminID, nil
}

func (repository *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	key := constants.RedisPrefixSession + sessionID

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
