package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

var sfGroup singleflight.Group

type getOrSetResult[V any] struct {
	val V
	ttl time.Duration
}

// GetOrSet retrieves a value from the cache, or calls fn to compute it on
// a miss. Concurrent misses for the same key are collapsed with
// singleflight so fn runs only once.
//
// fn returns the value, a TTL for caching, and an error. On error nothing
// is cached and the error is returned; on success the value is cached
// best-effort.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, fn func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := sfGroup.Do(key, func() (any, error) {
		val, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return getOrSetResult[V]{val: val, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	r := v.(getOrSetResult[V])

	_ = c.Set(ctx, key, r.val, r.ttl)

	return r.val, nil
}
