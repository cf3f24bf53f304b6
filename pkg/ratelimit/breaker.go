package ratelimit

import (
	"sync"
	"time"
)

const (
	breakerFailureThreshold = 5
	breakerOpenDuration     = 30 * time.Second
)

// storeBreaker stops hammering a failing store. While open, Allow
// returns false and the limiter admits traffic without consulting the
// store. Unlike a service breaker this one fails open on purpose:
// losing rate limiting briefly is better than rejecting all traffic.
type storeBreaker struct {
	mu        sync.Mutex
	failures  int
	openUntil time.Time
	clock     Clock
}

func newStoreBreaker(clock Clock) *storeBreaker {
	return &storeBreaker{clock: clock}
}

func (b *storeBreaker) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.After(b.openUntil)
}

func (b *storeBreaker) recordFailure(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.failures >= breakerFailureThreshold {
		b.openUntil = now.Add(breakerOpenDuration)
		b.failures = 0
	}
}

func (b *storeBreaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
}
