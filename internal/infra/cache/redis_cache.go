// Package cache backs the public storefront reads with Redis. The cache is
// best-effort: a missing or unreachable Redis never fails a request.
package cache

import (
	"context"
	"log/slog"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the catalog cache, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type redisCache struct {
	client *redis.Client
}

// noopCache stands in when Redis is not configured; every read misses.
type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, error) {
	return nil, service.ErrCacheMiss
}

func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noopCache) Invalidate(context.Context, string) error { return nil }

// NewCatalogCache connects to Redis when configured, falling back to a
// no-op cache otherwise.
func NewCatalogCache(params Params) (service.CatalogCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, storefront caching disabled")

		return noopCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing redis client")

			return client.Close()
		},
	})

	return &redisCache{client: client}, nil
}

// Get returns the cached payload for key, or service.ErrCacheMiss.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read from redis")
	}

	return value, nil
}

// Set stores a payload under key with a TTL.
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write to redis")
	}

	return nil
}

// Invalidate drops every key under the given prefix.
func (c *redisCache) Invalidate(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.Wrap(err, "failed to delete redis key")
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan redis keys")
	}

	return nil
}
