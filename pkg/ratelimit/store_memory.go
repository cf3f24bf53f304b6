package ratelimit

import (
	"context"
	"sync"
	"time"
)

const defaultMaxKeys = 10000

// MemoryStore keeps timestamps per key in process memory. It bounds
// the key count with least-recently-used eviction so hostile clients
// cannot grow it without limit.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	maxKeys int
}

type memoryEntry struct {
	timestamps []time.Time
	lastAccess time.Time
}

// NewMemoryStore returns a MemoryStore holding at most maxKeys keys.
// maxKeys <= 0 selects the default of 10000.
func NewMemoryStore(maxKeys int) *MemoryStore {
	if maxKeys <= 0 {
		maxKeys = defaultMaxKeys
	}
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		maxKeys: maxKeys,
	}
}

func (s *MemoryStore) CountAndAdd(_ context.Context, key string, windowStart, now time.Time, limit int) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		if len(s.entries) >= s.maxKeys {
			s.evictOldestLocked()
		}
		e = &memoryEntry{timestamps: make([]time.Time, 0, 8)}
		s.entries[key] = e
	}
	e.lastAccess = now

	kept := e.timestamps[:0]
	for _, ts := range e.timestamps {
		if ts.After(windowStart) {
			kept = append(kept, ts)
		}
	}
	e.timestamps = kept

	count := len(e.timestamps)
	if count >= limit {
		return count, false, nil
	}
	e.timestamps = append(e.timestamps, now)
	return count, true, nil
}

func (s *MemoryStore) OldestTimestamp(_ context.Context, key string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || len(e.timestamps) == 0 {
		return time.Time{}, nil
	}
	oldest := e.timestamps[0]
	for _, ts := range e.timestamps[1:] {
		if ts.Before(oldest) {
			oldest = ts
		}
	}
	return oldest, nil
}

func (s *MemoryStore) Cleanup(_ context.Context, cutoff time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if e.lastAccess.Before(cutoff) {
			delete(s.entries, key)
		}
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// evictOldestLocked removes the least recently used entry. Callers
// hold s.mu.
func (s *MemoryStore) evictOldestLocked() {
	var oldestKey string
	var oldestAccess time.Time
	first := true
	for key, e := range s.entries {
		if first || e.lastAccess.Before(oldestAccess) {
			oldestKey = key
			oldestAccess = e.lastAccess
			first = false
		}
	}
	if oldestKey != "" {
		delete(s.entries, oldestKey)
	}
}

// Len reports the current key count. Used by tests and metrics.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
