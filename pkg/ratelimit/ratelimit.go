// Package ratelimit implements sliding window rate limiting with
// pluggable stores. A Redis-backed store is used when available so
// limits hold across instances; an in-memory store serves as the
// standalone fallback.
package ratelimit

import (
	"context"
	"time"
)

// Store tracks request timestamps per key within a sliding window.
type Store interface {
	// CountAndAdd removes timestamps older than the window start,
	// counts the remainder and, if the count is below limit, records
	// now as a new request. It returns the count before the add and
	// whether the request was admitted. The operation is atomic per
	// key.
	CountAndAdd(ctx context.Context, key string, windowStart, now time.Time, limit int) (count int, allowed bool, err error)

	// OldestTimestamp returns the oldest recorded timestamp for key,
	// or the zero time if none exist.
	OldestTimestamp(ctx context.Context, key string) (time.Time, error)

	// Cleanup drops keys with no timestamps newer than cutoff.
	Cleanup(ctx context.Context, cutoff time.Time) error

	Close() error
}

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock used in production.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Metrics receives limiter outcomes. Implementations must be safe for
// concurrent use.
type Metrics interface {
	RecordAllowed(rule string)
	RecordDenied(rule string)
	RecordStoreError(rule string)
}

// Limiter applies a sliding window limit over a Store.
type Limiter struct {
	store   Store
	clock   Clock
	metrics Metrics
	breaker *storeBreaker
	rules   *Rules
}

// NewLimiter builds a Limiter. A nil metrics is replaced with a noop
// implementation and a nil clock with SystemClock.
func NewLimiter(store Store, rules *Rules, clock Clock, metrics Metrics) *Limiter {
	if clock == nil {
		clock = SystemClock{}
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &Limiter{
		store:   store,
		clock:   clock,
		metrics: metrics,
		breaker: newStoreBreaker(clock),
		rules:   rules,
	}
}

// Allow checks key against the rule and records the request when
// admitted. Store failures fail open: traffic passes while the
// backend is unavailable.
func (l *Limiter) Allow(ctx context.Context, key string, rule Rule) Decision {
	now := l.clock.Now()
	if !l.breaker.allow(now) {
		l.metrics.RecordAllowed(rule.Name)
		return allowedDecision(rule, rule.Limit, now)
	}

	windowStart := now.Add(-rule.Window)
	count, allowed, err := l.store.CountAndAdd(ctx, key, windowStart, now, rule.Limit)
	if err != nil {
		l.breaker.recordFailure(now)
		l.metrics.RecordStoreError(rule.Name)
		l.metrics.RecordAllowed(rule.Name)
		return allowedDecision(rule, rule.Limit, now)
	}
	l.breaker.recordSuccess()

	if allowed {
		l.metrics.RecordAllowed(rule.Name)
		return allowedDecision(rule, rule.Limit-count-1, now)
	}

	l.metrics.RecordDenied(rule.Name)
	oldest, err := l.store.OldestTimestamp(ctx, key)
	resetAt := now.Add(rule.Window)
	if err == nil && !oldest.IsZero() {
		resetAt = oldest.Add(rule.Window)
	}
	return deniedDecision(rule, resetAt, now)
}

// Cleanup removes stale keys. Intended for a background ticker with
// the in-memory store; the Redis store expires keys on its own.
func (l *Limiter) Cleanup(ctx context.Context, maxWindow time.Duration) error {
	return l.store.Cleanup(ctx, l.clock.Now().Add(-maxWindow))
}

// RuleFor resolves the rule for a request path.
func (l *Limiter) RuleFor(path string) Rule {
	return l.rules.For(path)
}
