// Package cache provides the response cache for read-heavy catalog
// endpoints. Redis is the primary backend with an in-memory store as a
// degraded fallback when Redis is unreachable.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key does not exist in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// DefaultTTL is the expiry applied by callers that have no specific
// freshness requirement.
const DefaultTTL = time.Hour

// Store is the cache backend. Values are opaque byte slices; callers
// handle JSON encoding. Pattern deletes accept '*' wildcards.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
	Close() error
}
