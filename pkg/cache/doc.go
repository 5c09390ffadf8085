// Package cache provides a generic key-value cache with per-entry TTL,
// an in-memory implementation with optional snapshot persistence, and a
// Redis implementation behind the same interface.
//
// # Interface
//
// [Cache] is generic over value type V:
//
//   - Get(ctx, key) (V, error) — retrieve a value
//   - Set(ctx, key, value, ttl) error — store a value with TTL
//   - Delete(ctx, key) error — remove a key (absence is not an error)
//   - Has(ctx, key) (bool, error) — check existence
//   - Clear(ctx) error — remove all entries
//   - Close() error — release resources
//
// TTL semantics for Set:
//   - Positive duration: entry expires after this duration
//   - Zero: use the cache's configured default TTL (1 hour by default)
//   - Negative: entry never expires
//
// An expired entry is logically absent. It is evicted lazily when a read
// touches it, and eagerly by the optional background sweep.
//
// # In-Memory Cache
//
// [NewMemory] creates a map-backed cache:
//
//	c := cache.NewMemory[string](
//	    cache.WithDefaultTTL(5 * time.Minute),
//	    cache.WithSweepInterval(30 * time.Second),
//	)
//	defer c.Close()
//
//	c.Set(ctx, "greeting", "hello", 0) // uses default TTL
//	val, err := c.Get(ctx, "greeting")
//
// The sweep is disabled unless WithSweepInterval is given; it can be
// cancelled independently of the cache with StopSweep, and SweepActive
// reports whether it is still running.
//
// # Snapshot Persistence
//
// The in-memory cache can mirror its full entry list to a string
// key-value [Backend] after every mutating operation, and hydrate from it
// at construction:
//
//	backend, _ := cache.NewFileBackend(dir)
//	c := cache.NewMemory[Session](
//	    cache.WithSnapshot(backend),
//	    cache.WithSnapshotKey("sessions"),
//	)
//
// Snapshots are a JSON array of {key, data, expires_at} objects with
// epoch-millisecond expiry (zero = never expires). The backend is
// best-effort: write failures never affect in-memory behavior, and a
// malformed snapshot at construction silently yields an empty store.
// Backends are provided for memory, files, and Redis; any string KV store
// implementing [Backend] works.
//
// Per-write mirror control is available via SetPersist when some entries
// should stay in memory only.
//
// # Redis Cache
//
// [NewRedis] implements the same interface on a Redis server, which then
// owns TTL enforcement:
//
//	client := redis.MustOpen(ctx, os.Getenv("REDIS_URL"))
//	c := cache.NewRedis[User](client, nil, cache.WithPrefix("users"))
//
// Pass a custom [Marshaler] as the second argument to change the
// serialization format; nil means JSON.
//
// # Cache Stampede Prevention
//
// The standalone [GetOrSet] collapses concurrent misses for one key into
// a single computation via singleflight:
//
//	val, err := cache.GetOrSet(ctx, c, "user:123", func(ctx context.Context) (User, time.Duration, error) {
//	    user, err := repo.FindUser(ctx, "123")
//	    return user, 5 * time.Minute, err
//	})
//
// # Error Handling
//
// Sentinel errors, checked with errors.Is:
//
//   - [ErrNotFound] — key does not exist or has expired
//   - [ErrClosed] — operation on a closed cache
//   - [ErrMarshal] / [ErrUnmarshal] — value serialization failed
package cache
