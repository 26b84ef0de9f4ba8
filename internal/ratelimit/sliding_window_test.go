package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindow_AllowsUpToCapacity(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowWithClock(10, time.Minute, func() time.Time { return now })

	for i := 0; i < 10; i++ {
		require.NoError(t, limiter.Allow(), "call %d should be admitted", i+1)
	}

	// 11th call within the same window must fail fast
	assert.ErrorIs(t, limiter.Allow(), ErrLimitExceeded)
	assert.Equal(t, 10, limiter.InFlight())
}

func TestSlidingWindow_RecoversAfterWindowElapses(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowWithClock(10, time.Minute, func() time.Time { return now })

	for i := 0; i < 10; i++ {
		require.NoError(t, limiter.Allow())
	}
	assert.ErrorIs(t, limiter.Allow(), ErrLimitExceeded)

	// Once the window has fully elapsed, calls are admitted again
	now = now.Add(61 * time.Second)
	assert.NoError(t, limiter.Allow())
	assert.Equal(t, 1, limiter.InFlight())
}

func TestSlidingWindow_PartialSlide(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowWithClock(2, time.Minute, func() time.Time { return now })

	require.NoError(t, limiter.Allow())

	now = now.Add(30 * time.Second)
	require.NoError(t, limiter.Allow())
	assert.ErrorIs(t, limiter.Allow(), ErrLimitExceeded)

	// First stamp slides out after 60s; second is still inside
	now = now.Add(31 * time.Second)
	assert.NoError(t, limiter.Allow())
	assert.ErrorIs(t, limiter.Allow(), ErrLimitExceeded)
}

func TestSlidingWindow_RejectedCallDoesNotConsume(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowWithClock(1, time.Minute, func() time.Time { return now })

	require.NoError(t, limiter.Allow())
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, limiter.Allow(), ErrLimitExceeded)
	}
	assert.Equal(t, 1, limiter.InFlight())
}

func TestSlidingWindow_ConcurrentAccess(t *testing.T) {
	limiter := NewSlidingWindow(50, time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := limiter.Allow(); err == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, admitted)
	assert.Equal(t, 50, limiter.InFlight())
}
