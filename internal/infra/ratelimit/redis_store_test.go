package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	return server, client
}

func TestRedisStore_FixedWindow(t *testing.T) {
	ctx := context.Background()
	server, client := newMiniredis(t)
	store := NewRedisStore(client, "test:")
	now := time.Now()

	for i := 1; i <= 2; i++ {
		entry, allowed, err := store.Take(ctx, "client", 2, time.Minute, now)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, i, entry.Count)
	}

	entry, allowed, err := store.Take(ctx, "client", 2, time.Minute, now)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 2, entry.Count)
	assert.WithinDuration(t, now.Add(time.Minute), entry.ResetTime, time.Second)
	assert.True(t, server.Exists("test:client"))

	server.FastForward(time.Minute)

	entry, allowed, err = store.Take(ctx, "client", 2, time.Minute, now)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, entry.Count)
}

func TestRedisStore_ServerDown(t *testing.T) {
	server, client := newMiniredis(t)
	server.Close()

	_, _, err := NewRedisStore(client, "test:").Take(context.Background(), "client", 2, time.Minute, time.Now())
	assert.Error(t, err)
}
