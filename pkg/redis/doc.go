// Package redis wraps [github.com/redis/go-redis/v9] with connection
// helpers used by the cache package: URL-based setup with pooling and
// startup retries, a health probe, and a shutdown hook.
//
// # Usage
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//	    redis.WithPoolSize(20),
//	    redis.WithRetry(5, 3*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
// Both redis:// and rediss:// (TLS) URL schemes are supported. [MustOpen]
// exits the process on failure, for programs where Redis is required at
// startup.
//
// # Health and Shutdown
//
// [Healthcheck] returns a func(context.Context) error probe for health
// endpoints; [Shutdown] returns a hook of the same shape that closes the
// client.
//
// # Errors
//
// Sentinel errors ([ErrEmptyConnectionURL], [ErrFailedToParseURL],
// [ErrConnectionFailed], [ErrHealthcheckFailed]) are joined with the
// underlying cause via errors.Join, so errors.Is works on both.
package redis
