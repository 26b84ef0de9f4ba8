package ratelimit

import (
	"errors"
	"sync"
	"time"
)

// ErrLimitExceeded is returned when a call would exceed the window capacity.
// Callers are expected to retry after the window clears rather than queue.
var ErrLimitExceeded = errors.New("rate limit exceeded")

// SlidingWindow admits at most capacity calls per rolling window. It is an
// admission gate, not a scheduler: an over-limit call fails immediately.
// Safe for concurrent use. The owning process injects one instance wherever
// a guarded path needs it; there is no package-level state.
type SlidingWindow struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	stamps   []time.Time
	now      func() time.Time
}

// NewSlidingWindow creates a limiter admitting capacity calls per window.
func NewSlidingWindow(capacity int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		capacity: capacity,
		window:   window,
		now:      time.Now,
	}
}

// NewSlidingWindowWithClock is NewSlidingWindow with an injectable clock,
// for tests.
func NewSlidingWindowWithClock(capacity int, window time.Duration, now func() time.Time) *SlidingWindow {
	return &SlidingWindow{
		capacity: capacity,
		window:   window,
		now:      now,
	}
}

// Allow records one call if the window has room, otherwise returns
// ErrLimitExceeded without recording anything.
func (l *SlidingWindow) Allow() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	// Drop timestamps that have slid out of the window
	kept := l.stamps[:0]
	for _, ts := range l.stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	l.stamps = kept

	if len(l.stamps) >= l.capacity {
		return ErrLimitExceeded
	}

	l.stamps = append(l.stamps, now)
	return nil
}

// InFlight returns how many calls currently count against the window.
func (l *SlidingWindow) InFlight() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	n := 0
	for _, ts := range l.stamps {
		if ts.After(cutoff) {
			n++
		}
	}
	return n
}
