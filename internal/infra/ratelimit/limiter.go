// Package ratelimit implements fixed-window request limiting over a pluggable store.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// limiter turns store counters into allow/deny decisions.
type limiter struct {
	store service.RateLimitStore
	now   func() time.Time
}

// NewLimiter builds a limiter over store using the wall clock.
func NewLimiter(store service.RateLimitStore) service.RateLimiter {
	return &limiter{store: store, now: time.Now}
}

// Check records one request for identifier. Remaining is maxRequests minus the
// count after this request, or 0 when the request is rejected.
func (l *limiter) Check(ctx context.Context, identifier string, maxRequests int, window time.Duration) (entity.RateLimitResult, error) {
	if maxRequests <= 0 || window <= 0 {
		return entity.RateLimitResult{}, errors.Errorf("invalid rate limit %d per %s", maxRequests, window)
	}

	entry, allowed, err := l.store.Take(ctx, identifier, maxRequests, window, l.now())
	if err != nil {
		return entity.RateLimitResult{}, err
	}

	if !allowed {
		return entity.RateLimitResult{Allowed: false, Remaining: 0, ResetTime: entry.ResetTime}, nil
	}

	return entity.RateLimitResult{
		Allowed:   true,
		Remaining: maxRequests - entry.Count,
		ResetTime: entry.ResetTime,
	}, nil
}

// StoreParams defines the dependencies of the store selection.
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Redis  *goredis.Client `optional:"true"`
	Logger *slog.Logger
}

// NewStore returns the store named by rateLimit.store. The redis store needs
// a configured client; without one the memory store is used and a warning is
// logged, since limits then apply per instance.
func NewStore(params StoreParams) service.RateLimitStore {
	cfg := params.Config.RateLimit

	if cfg.Store == config.RateLimitStoreRedis {
		if params.Redis != nil {
			return NewRedisStore(params.Redis, "portfolio:ratelimit:")
		}
		params.Logger.Warn("rate limit store is redis but redis is not configured, falling back to memory")
	}

	store := NewMemoryStore(cfg.CleanupInterval)
	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			store.Reset()

			return nil
		},
	})

	return store
}
