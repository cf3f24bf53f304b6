package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	s := NewMemoryStore()
	defer func() { _ = s.Close() }()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`), time.Minute))
	val, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), val)

	// Returned slice is a copy; mutating it must not poison the cache.
	val[0] = 'X'
	val2, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), val2)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	defer func() { _ = s.Close() }()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "short", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := s.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStoreDeletePattern(t *testing.T) {
	s := NewMemoryStore()
	defer func() { _ = s.Close() }()
	ctx := context.Background()

	for _, key := range []string{"items:1", "items:2", "items:list:abc", "orders:1"} {
		require.NoError(t, s.Set(ctx, key, []byte("v"), 0))
	}

	require.NoError(t, s.DeletePattern(ctx, "items:*"))

	for _, key := range []string{"items:1", "items:2", "items:list:abc"} {
		_, err := s.Get(ctx, key)
		assert.ErrorIs(t, err, ErrCacheMiss, key)
	}
	_, err := s.Get(ctx, "orders:1")
	assert.NoError(t, err)
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		key     string
		want    bool
	}{
		{"items:*", "items:1", true},
		{"items:*", "items:list:abc", true},
		{"items:*", "orders:1", false},
		{"exact", "exact", true},
		{"exact", "exact2", false},
		{"*:list:*", "items:list:abc", true},
		{"*:list:*", "items:1", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchPattern(tt.pattern, tt.key),
			"%s vs %s", tt.pattern, tt.key)
	}
}
