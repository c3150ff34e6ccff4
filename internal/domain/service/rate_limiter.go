package service

import (
	"context"
	"time"

	"portfolio/internal/domain/entity"
)

// RateLimitStore keeps fixed-window counters. Implementations must make Take
// atomic per key.
type RateLimitStore interface {
	// Take records a request for key. A missing or expired entry opens the
	// window [now, now+window) with count 1. A live entry is incremented
	// unless it already reached limit, in which case allowed is false and
	// the entry is left untouched.
	Take(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (entry entity.RateLimitEntry, allowed bool, err error)
}

// RateLimiter answers whether an identifier may proceed.
type RateLimiter interface {
	Check(ctx context.Context, identifier string, maxRequests int, window time.Duration) (entity.RateLimitResult, error)
}
