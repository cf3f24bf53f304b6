package cache

import (
	"context"
	"log/slog"

	"mig-catalog/internal/resilience/retry"
)

// NewStore returns the best available cache backend. With an empty URL
// the in-memory store is used directly; otherwise Redis is attempted
// with a short retry and the in-memory store is the fallback so the API
// keeps serving when Redis is down.
func NewStore(ctx context.Context, redisURL string) Store {
	if redisURL == "" {
		slog.Info("cache: no redis url configured, using in-memory store")
		return NewMemoryStore()
	}

	var store *RedisStore
	err := retry.WithBackoff(ctx, retry.RedisConfig(), func() error {
		s, err := NewRedisStore(ctx, redisURL)
		if err != nil {
			return err
		}
		store = s
		return nil
	})
	if err != nil {
		slog.Warn("cache: redis unavailable, falling back to in-memory store",
			slog.Any("error", err))
		return NewMemoryStore()
	}

	slog.Info("cache: connected to redis")
	return store
}
