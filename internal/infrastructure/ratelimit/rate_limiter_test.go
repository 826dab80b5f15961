package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowConsumesTokens(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 5; i++ {
		allowed, _ := rl.Allow("alice", "create_order")
		assert.True(t, allowed)
	}

	allowed, wait := rl.Allow("alice", "create_order")
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))

	// Other users and actions keep their own buckets.
	allowed, _ = rl.Allow("bob", "create_order")
	assert.True(t, allowed)
	allowed, _ = rl.Allow("alice", "send_message")
	assert.True(t, allowed)
}

func TestCleanupRemovesStaleBuckets(t *testing.T) {
	rl := NewRateLimiter()

	rl.Allow("alice", "send_message")
	rl.Allow("bob", "send_message")

	rl.buckets["alice:send_message"].lastRefill = time.Now().Add(-2 * time.Hour)

	rl.Cleanup()

	assert.NotContains(t, rl.buckets, "alice:send_message")
	assert.Contains(t, rl.buckets, "bob:send_message")
}

func TestCleanupConcurrentWithAllow(t *testing.T) {
	rl := NewRateLimiter()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rl.Allow("alice", "send_message")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			rl.Cleanup()
		}
	}()
	wg.Wait()
}
