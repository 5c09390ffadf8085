//go:build integration

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/banjoutils/banjo/pkg/cache"
	"github.com/banjoutils/banjo/pkg/redis"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, url)
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.FlushDB(ctx).Err()
		_ = client.Close()
	})

	return client
}

func TestRedis_SetGet(t *testing.T) {
	client := newTestRedisClient(t)

	type user struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	c := cache.NewRedis[user](client, nil, cache.WithPrefix("it-users"))

	ctx := context.Background()
	want := user{Name: "ada", Age: 36}
	require.NoError(t, c.Set(ctx, "u1", want, time.Minute))

	got, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRedis_GetMissing(t *testing.T) {
	client := newTestRedisClient(t)
	c := cache.NewRedis[string](client, nil, cache.WithPrefix("it-missing"))

	_, err := c.Get(context.Background(), "nope")
	require.ErrorIs(t, err, cache.ErrNotFound)
}

func TestRedis_TTL(t *testing.T) {
	client := newTestRedisClient(t)
	c := cache.NewRedis[string](client, nil, cache.WithPrefix("it-ttl"))

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "short", "v", 100*time.Millisecond))

	time.Sleep(200 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	require.ErrorIs(t, err, cache.ErrNotFound)
}

func TestRedis_DeleteHas(t *testing.T) {
	client := newTestRedisClient(t)
	c := cache.NewRedis[int](client, nil, cache.WithPrefix("it-del"))

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))

	has, err := c.Has(ctx, "k")
	require.NoError(t, err)
	require.True(t, has)

	require.NoError(t, c.Delete(ctx, "k"))
	// Deleting again is not an error.
	require.NoError(t, c.Delete(ctx, "k"))

	has, err = c.Has(ctx, "k")
	require.NoError(t, err)
	require.False(t, has)
}

func TestRedis_ClearByPrefix(t *testing.T) {
	client := newTestRedisClient(t)

	ctx := context.Background()
	mine := cache.NewRedis[string](client, nil, cache.WithPrefix("it-mine"))
	other := cache.NewRedis[string](client, nil, cache.WithPrefix("it-other"))

	require.NoError(t, mine.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, other.Set(ctx, "b", "2", time.Minute))

	require.NoError(t, mine.Clear(ctx))

	has, err := mine.Has(ctx, "a")
	require.NoError(t, err)
	require.False(t, has)

	has, err = other.Has(ctx, "b")
	require.NoError(t, err)
	require.True(t, has, "clear must not cross prefixes")
}

func TestRedisBackend_Snapshot(t *testing.T) {
	client := newTestRedisClient(t)
	backend := cache.NewRedisBackend(client)

	ctx := context.Background()

	first := cache.NewMemory[string](
		cache.WithSnapshot(backend),
		cache.WithSnapshotKey("it-snapshot"),
	)
	require.NoError(t, first.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, first.Close())

	second := cache.NewMemory[string](
		cache.WithSnapshot(backend),
		cache.WithSnapshotKey("it-snapshot"),
	)
	defer second.Close()

	val, err := second.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", val)
}
