package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockoutAfterThreshold(t *testing.T) {
	tracker := NewLockoutTracker()

	for i := 0; i < lockoutThreshold-1; i++ {
		tracker.RecordFailure("10.0.0.1")
		assert.True(t, tracker.Allowed("10.0.0.1"), "attempt %d", i)
	}

	tracker.RecordFailure("10.0.0.1")
	assert.False(t, tracker.Allowed("10.0.0.1"))

	// Other addresses are unaffected.
	assert.True(t, tracker.Allowed("10.0.0.2"))
}

func TestLockoutExpires(t *testing.T) {
	tracker := NewLockoutTracker()
	now := time.Now()
	tracker.now = func() time.Time { return now }

	for i := 0; i < lockoutThreshold; i++ {
		tracker.RecordFailure("10.0.0.1")
	}
	assert.False(t, tracker.Allowed("10.0.0.1"))

	now = now.Add(lockoutDuration + time.Second)
	assert.True(t, tracker.Allowed("10.0.0.1"))
}

func TestLockoutCounterResets(t *testing.T) {
	tracker := NewLockoutTracker()
	now := time.Now()
	tracker.now = func() time.Time { return now }

	for i := 0; i < lockoutThreshold-1; i++ {
		tracker.RecordFailure("10.0.0.1")
	}

	// An hour later the slate is clean; one more failure must not lock.
	now = now.Add(lockoutReset + time.Second)
	tracker.RecordFailure("10.0.0.1")
	assert.True(t, tracker.Allowed("10.0.0.1"))
}

func TestSuccessClearsFailures(t *testing.T) {
	tracker := NewLockoutTracker()

	for i := 0; i < lockoutThreshold-1; i++ {
		tracker.RecordFailure("10.0.0.1")
	}
	tracker.RecordSuccess("10.0.0.1")

	for i := 0; i < lockoutThreshold-1; i++ {
		tracker.RecordFailure("10.0.0.1")
	}
	assert.True(t, tracker.Allowed("10.0.0.1"))
}

func TestSweep(t *testing.T) {
	tracker := NewLockoutTracker()
	now := time.Now()
	tracker.now = func() time.Time { return now }

	tracker.RecordFailure("10.0.0.1")
	tracker.RecordFailure("10.0.0.2")

	now = now.Add(lockoutReset + time.Second)
	assert.Equal(t, 2, tracker.Sweep())
}

func TestHasherVerify(t *testing.T) {
	h := NewHasherWithCost(4)

	hash, err := h.Hash("Str0ng!Pass")
	assert.NoError(t, err)
	assert.True(t, h.Verify(hash, "Str0ng!Pass"))
	assert.False(t, h.Verify(hash, "wrong"))
}
