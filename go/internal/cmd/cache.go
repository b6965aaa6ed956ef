package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/clubsite/go/internal/cache"
	"github.com/rs/zerolog/log"
)

// setupCache builds the response cache backend. The returned func releases
// it on shutdown.
func setupCache(ctx context.Context, cfg Config, clock clockwork.Clock) (cache.Store, func(), error) {
	switch cfg.CacheBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.RedisAddr, err)
		}
		log.Info().Str("backend", "redis").Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("response cache ready")
		return cache.NewRedisStore(client), func() { client.Close() }, nil

	default:
		store := cache.NewMemoryStore(clock)
		janitorCtx, cancel := context.WithCancel(ctx)
		go store.RunJanitor(janitorCtx, cfg.CacheTTL)
		log.Info().Str("backend", "memory").Dur("ttl", cfg.CacheTTL).Msg("response cache ready")
		return store, cancel, nil
	}
}
