package ratelimit

import (
	"context"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// takeScript opens, increments or rejects a window in one round trip.
// Returns {allowed, count, ttl_ms}.
var takeScript = goredis.NewScript(`
local count = tonumber(redis.call("GET", KEYS[1]) or "0")
local ttl = redis.call("PTTL", KEYS[1])
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

if count == 0 or ttl <= 0 then
	redis.call("SET", KEYS[1], 1, "PX", window)
	return {1, 1, window}
end

if count >= limit then
	return {0, count, ttl}
end

count = redis.call("INCR", KEYS[1])
return {1, count, ttl}
`)

// RedisStore shares counters between instances. Window expiry is delegated
// to key TTLs, so no cleanup is needed.
type RedisStore struct {
	client *goredis.Client
	prefix string
}

// NewRedisStore namespaces every key with prefix.
func NewRedisStore(client *goredis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Take(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (entity.RateLimitEntry, bool, error) {
	windowMillis := window.Milliseconds()
	if windowMillis <= 0 {
		windowMillis = 1
	}

	values, err := takeScript.Run(ctx, s.client, []string{s.prefix + key}, limit, windowMillis).Int64Slice()
	if err != nil {
		return entity.RateLimitEntry{}, false, errors.Wrap(err, "rate limit script failed")
	}
	if len(values) != 3 {
		return entity.RateLimitEntry{}, false, errors.Errorf("rate limit script returned %d values", len(values))
	}

	entry := entity.RateLimitEntry{
		Identifier: key,
		Count:      int(values[1]),
		ResetTime:  now.Add(time.Duration(values[2]) * time.Millisecond),
	}

	return entry, values[0] == 1, nil
}
