package entity

import "time"

// RateLimitEntry is the per-identifier counter of a fixed window.
type RateLimitEntry struct {
	Identifier string    // Hashed client identifier, never a raw IP.
	Count      int       // Requests accepted in the current window.
	ResetTime  time.Time // End of the current window.
}

// RateLimitResult is the outcome of a single rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

// RetryAfter returns the wait until the window resets, rounded up to whole seconds.
func (r RateLimitResult) RetryAfter(now time.Time) int {
	wait := r.ResetTime.Sub(now)
	if wait <= 0 {
		return 0
	}

	seconds := int(wait / time.Second)
	if wait%time.Second != 0 {
		seconds++
	}

	return seconds
}
