// Package cache implements the summary cache on Redis.
package cache

import (
	"context"
	"log/slog"
	"time"

	"freightprint/config"
	"freightprint/internal/domain/lifecycle"
	"freightprint/internal/domain/service"
	"freightprint/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type redisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// New creates a Redis-backed summary cache and ties the connection to
// the application lifecycle.
func New(params Params) (service.SummaryCache, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil, errors.New("redis config is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			params.Logger.Info("closing Redis client")

			return client.Close()
		},
	})

	return &redisCache{
		client: client,
		logger: params.Logger,
	}, nil
}

// Get returns the cached value for the key. Any Redis error is treated
// as a miss.
func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis get failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return "", false
	}

	return value, true
}

// Set stores the value under the key with the given TTL.
func (c *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cache key")
	}

	return nil
}

// Delete drops the key. Deleting a missing key is not an error.
func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cache key")
	}

	return nil
}
