// Package ratelimit implements fixed-window request counters for the tiered rate limiter.
package ratelimit

import (
	"context"
	"time"
)

// CounterStore increments fixed-window counters.
type CounterStore interface {
	// Increment adds one hit to key and returns the hit count in the current window.
	// The first hit of a key opens a window of the given length. Increment-and-read is atomic.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}
