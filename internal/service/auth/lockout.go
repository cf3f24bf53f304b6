package auth

import (
	"log/slog"
	"sync"
	"time"
)

const (
	lockoutThreshold = 10
	lockoutDuration  = 15 * time.Minute
	lockoutReset     = time.Hour
)

// LockoutTracker counts failed logins per client address. After ten
// failures the address is locked for fifteen minutes; counters reset an
// hour after the first failure. State is in-process, so in a multi
// replica deployment each replica tracks independently. That still caps
// the aggregate guess rate per replica.
type LockoutTracker struct {
	mu      sync.Mutex
	entries map[string]*lockoutEntry

	now func() time.Time
}

type lockoutEntry struct {
	failures     int
	firstFailure time.Time
	lockedUntil  time.Time
}

// NewLockoutTracker creates an empty tracker.
func NewLockoutTracker() *LockoutTracker {
	return &LockoutTracker{
		entries: make(map[string]*lockoutEntry),
		now:     time.Now,
	}
}

// Allowed reports whether addr may attempt a login now.
func (t *LockoutTracker) Allowed(addr string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[addr]
	if !ok {
		return true
	}
	now := t.now()

	if now.Sub(entry.firstFailure) > lockoutReset {
		delete(t.entries, addr)
		return true
	}
	return now.After(entry.lockedUntil)
}

// RecordFailure registers a failed login from addr, locking the address
// when the threshold is reached.
func (t *LockoutTracker) RecordFailure(addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	entry, ok := t.entries[addr]
	if !ok || now.Sub(entry.firstFailure) > lockoutReset {
		entry = &lockoutEntry{firstFailure: now}
		t.entries[addr] = entry
	}

	entry.failures++
	if entry.failures >= lockoutThreshold {
		entry.lockedUntil = now.Add(lockoutDuration)
		slog.Warn("login lockout triggered",
			slog.String("addr", addr),
			slog.Int("failures", entry.failures),
			slog.Time("locked_until", entry.lockedUntil))
	}
}

// RecordSuccess clears the failure history for addr.
func (t *LockoutTracker) RecordSuccess(addr string) {
	t.mu.Lock()
	delete(t.entries, addr)
	t.mu.Unlock()
}

// Sweep drops entries whose reset window has passed. Called periodically
// so addresses that never return do not accumulate.
func (t *LockoutTracker) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	removed := 0
	for addr, entry := range t.entries {
		if now.Sub(entry.firstFailure) > lockoutReset {
			delete(t.entries, addr)
			removed++
		}
	}
	return removed
}
