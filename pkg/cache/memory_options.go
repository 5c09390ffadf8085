package cache

import "time"

// MemoryOption configures the in-memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	backend       Backend
	snapshotKey   string
	defaultTTL    time.Duration
	sweepInterval time.Duration
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		defaultTTL:    time.Hour,
		sweepInterval: 0, // 0 = no background sweep
		snapshotKey:   DefaultSnapshotKey,
	}
}

// WithDefaultTTL sets the expiration applied when Set is called with a
// zero TTL. A non-positive duration means entries never expire by default.
// Default: 1 hour.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.defaultTTL = d
	}
}

// WithSweepInterval enables a background goroutine that removes expired
// entries every d. Non-positive disables the sweep; expired entries are
// then evicted only lazily on access.
// Default: disabled.
func WithSweepInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.sweepInterval = d
	}
}

// WithSnapshot enables mirroring the full entry list to b after every
// mutating operation, and hydrating from b at construction.
// Default: no mirroring.
func WithSnapshot(b Backend) MemoryOption {
	return func(o *memoryOptions) {
		o.backend = b
	}
}

// WithSnapshotKey sets the backend key the snapshot is stored under.
// Useful when several caches share one backend.
// Default: DefaultSnapshotKey ("banjo-cache").
func WithSnapshotKey(key string) MemoryOption {
	return func(o *memoryOptions) {
		o.snapshotKey = key
	}
}
