package ratelimit

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestLimiterAllowWithinLimit(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(NewMemoryStore(0), DefaultRules(), clock, nil)
	rule := Rule{Name: "test", Limit: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		d := limiter.Allow(context.Background(), "ip:1.2.3.4", rule)
		assert.True(t, d.Allowed, "request %d should pass", i+1)
		assert.Equal(t, 2-i, d.Remaining)
	}

	d := limiter.Allow(context.Background(), "ip:1.2.3.4", rule)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, 3, d.Limit)
}

func TestLimiterWindowSlides(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(NewMemoryStore(0), DefaultRules(), clock, nil)
	rule := Rule{Name: "test", Limit: 2, Window: time.Minute}

	require.True(t, limiter.Allow(context.Background(), "k", rule).Allowed)
	require.True(t, limiter.Allow(context.Background(), "k", rule).Allowed)
	require.False(t, limiter.Allow(context.Background(), "k", rule).Allowed)

	clock.Advance(61 * time.Second)
	assert.True(t, limiter.Allow(context.Background(), "k", rule).Allowed)
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(NewMemoryStore(0), DefaultRules(), clock, nil)
	rule := Rule{Name: "test", Limit: 1, Window: time.Minute}

	require.True(t, limiter.Allow(context.Background(), "ip:a", rule).Allowed)
	require.False(t, limiter.Allow(context.Background(), "ip:a", rule).Allowed)
	assert.True(t, limiter.Allow(context.Background(), "ip:b", rule).Allowed)
}

func TestLimiterRetryAfter(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(NewMemoryStore(0), DefaultRules(), clock, nil)
	rule := Rule{Name: "test", Limit: 1, Window: time.Minute}

	require.True(t, limiter.Allow(context.Background(), "k", rule).Allowed)
	clock.Advance(20 * time.Second)

	d := limiter.Allow(context.Background(), "k", rule)
	require.False(t, d.Allowed)
	assert.Equal(t, 40, d.RetryAfterSeconds())
}

type failingStore struct{}

func (failingStore) CountAndAdd(context.Context, string, time.Time, time.Time, int) (int, bool, error) {
	return 0, false, errors.New("store down")
}
func (failingStore) OldestTimestamp(context.Context, string) (time.Time, error) {
	return time.Time{}, errors.New("store down")
}
func (failingStore) Cleanup(context.Context, time.Time) error { return nil }
func (failingStore) Close() error                             { return nil }

func TestLimiterFailsOpenOnStoreError(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(failingStore{}, DefaultRules(), clock, nil)
	rule := Rule{Name: "test", Limit: 1, Window: time.Minute}

	for i := 0; i < 20; i++ {
		d := limiter.Allow(context.Background(), "k", rule)
		assert.True(t, d.Allowed, "request %d must pass while the store is down", i+1)
	}
}

func TestMemoryStoreEviction(t *testing.T) {
	store := NewMemoryStore(3)
	clock := newFakeClock()
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		_, _, err := store.CountAndAdd(ctx, key, clock.Now().Add(-time.Minute), clock.Now(), 10)
		require.NoError(t, err)
		clock.Advance(time.Second)
	}
	require.Equal(t, 3, store.Len())

	_, _, err := store.CountAndAdd(ctx, "d", clock.Now().Add(-time.Minute), clock.Now(), 10)
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())

	// "a" was the least recently used entry.
	oldest, err := store.OldestTimestamp(ctx, "a")
	require.NoError(t, err)
	assert.True(t, oldest.IsZero())
}

func TestMemoryStoreCleanup(t *testing.T) {
	store := NewMemoryStore(0)
	clock := newFakeClock()
	ctx := context.Background()

	_, _, err := store.CountAndAdd(ctx, "stale", clock.Now().Add(-time.Minute), clock.Now(), 10)
	require.NoError(t, err)
	clock.Advance(10 * time.Minute)
	_, _, err = store.CountAndAdd(ctx, "fresh", clock.Now().Add(-time.Minute), clock.Now(), 10)
	require.NoError(t, err)

	require.NoError(t, store.Cleanup(ctx, clock.Now().Add(-5*time.Minute)))
	assert.Equal(t, 1, store.Len())
}

func TestRulesFor(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/auth/login", "login"},
		{"/api/v1/auth/register", "register"},
		{"/api/v1/items", "items"},
		{"/api/v1/items/42", "items"},
		{"/api/v1/orders/7/lines", "orders"},
		{"/api/v1/news", "news"},
		{"/api/v1/users/me", "users"},
		{"/health", "default"},
		{"/api/v1/unknown", "default"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.For(tt.path).Name)
		})
	}
}

func TestLoadRulesFromFile(t *testing.T) {
	path := t.TempDir() + "/rules.yaml"
	content := `
default:
  limit: 50
  window: 30s
endpoints:
  - name: search
    prefix: /api/v1/items
    limit: 500
    window: 1m
`
	require.NoError(t, writeFile(path, content))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, 50, rules.Default.Limit)
	assert.Equal(t, 30*time.Second, rules.Default.Window)
	require.Len(t, rules.Prefixes, 1)
	assert.Equal(t, "search", rules.For("/api/v1/items?q=x").Name)
	assert.Equal(t, "default", rules.For("/api/v1/orders").Name)
}

func TestLoadRulesRejectsBadWindow(t *testing.T) {
	path := t.TempDir() + "/rules.yaml"
	require.NoError(t, writeFile(path, "endpoints:\n  - prefix: /x\n    limit: 1\n    window: nope\n"))

	_, err := LoadRules(path)
	assert.Error(t, err)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
