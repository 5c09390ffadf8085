package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// entry holds a cached value with its expiration time.
type entry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
}

// isExpired reports whether the entry has passed its expiration time.
func (e *entry[V]) isExpired() bool {
	if e.expiresAt.IsZero() {
		return false
	}
	return time.Now().After(e.expiresAt)
}

// snapshotEntry is the wire form of one entry in a persisted snapshot.
// ExpiresAt is epoch milliseconds; zero means the entry never expires.
type snapshotEntry struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	ExpiresAt int64           `json:"expires_at"`
}

// Memory is an in-memory cache with TTL-based expiration, an optional
// background sweep, and optional snapshot mirroring to a [Backend].
//
// When a backend is configured, the full entry list is serialized and
// written to the backend after every mutating operation, including lazy
// evictions triggered by reads. At construction the store hydrates from
// the backend's snapshot; malformed data silently yields an empty store.
//
// All store access, including the sweep, is serialized behind one mutex,
// so the read-evict-write sequences are atomic.
type Memory[V any] struct {
	items map[string]*entry[V]
	opts  *memoryOptions
	codec Marshaler[V]

	mu          sync.Mutex
	sweepDone   chan struct{}
	sweepActive bool
	closed      bool
}

// NewMemory creates a new in-memory cache.
//
// Example:
//
//	c := cache.NewMemory[string](
//	    cache.WithDefaultTTL(5 * time.Minute),
//	    cache.WithSweepInterval(30 * time.Second),
//	    cache.WithSnapshot(backend),
//	)
//	defer c.Close()
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory[V]{
		items: make(map[string]*entry[V]),
		opts:  o,
		codec: jsonMarshaler[V]{},
	}

	if o.backend != nil {
		m.hydrate()
	}

	if o.sweepInterval > 0 {
		m.sweepDone = make(chan struct{})
		m.sweepActive = true
		go m.sweeper()
	}

	return m
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist or has expired.
// An expired entry is evicted before returning, and the snapshot is
// updated when mirroring is enabled.
func (m *Memory[V]) Get(ctx context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V

	e, ok := m.items[key]
	if !ok {
		return zero, ErrNotFound
	}

	if e.isExpired() {
		delete(m.items, key)
		m.mirror(ctx)
		return zero, ErrNotFound
	}

	return e.value, nil
}

// Set stores a value with the given TTL, overwriting any previous entry.
// TTL semantics: positive = expires after the duration, zero = use the
// default TTL, negative = never expires. A non-positive default TTL means
// entries never expire unless a per-call TTL is given.
func (m *Memory[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	return m.set(ctx, key, value, ttl, m.opts.backend != nil)
}

// SetPersist is Set with an explicit mirror decision for this one write,
// overriding the cache-wide snapshot setting. Persisting without a
// configured backend degrades to a plain in-memory write.
func (m *Memory[V]) SetPersist(ctx context.Context, key string, value V, ttl time.Duration, persist bool) error {
	return m.set(ctx, key, value, ttl, persist && m.opts.backend != nil)
}

func (m *Memory[V]) set(ctx context.Context, key string, value V, ttl time.Duration, mirror bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.opts.defaultTTL
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	// ttl <= 0: expiresAt stays zero (never expires)

	m.items[key] = &entry[V]{value: value, expiresAt: expiresAt}

	if mirror {
		m.mirror(ctx)
	}

	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (m *Memory[V]) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if _, ok := m.items[key]; ok {
		delete(m.items, key)
		m.mirror(ctx)
	}

	return nil
}

// Has checks whether a key exists and has not expired, with the same
// lazy-eviction behavior as Get.
func (m *Memory[V]) Has(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		return false, nil
	}

	if e.isExpired() {
		delete(m.items, key)
		m.mirror(ctx)
		return false, nil
	}

	return true, nil
}

// Clear removes all entries. When mirroring is enabled an empty snapshot
// is written. Idempotent.
func (m *Memory[V]) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.items = make(map[string]*entry[V])
	m.mirror(ctx)

	return nil
}

// StopSweep cancels the background sweep goroutine. Idempotent; a cache
// created without a sweep interval has nothing to stop.
func (m *Memory[V]) StopSweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopSweepLocked()
}

// SweepActive reports whether a background sweep was started at
// construction and has not been stopped.
func (m *Memory[V]) SweepActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweepActive
}

// Close stops the background sweep and marks the cache as closed.
// Idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	m.stopSweepLocked()

	return nil
}

// stopSweepLocked stops the sweep goroutine. Caller must hold the mutex.
func (m *Memory[V]) stopSweepLocked() {
	if !m.sweepActive {
		return
	}
	m.sweepActive = false
	close(m.sweepDone)
}

// sweeper periodically removes expired entries.
func (m *Memory[V]) sweeper() {
	ticker := time.NewTicker(m.opts.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.sweepDone:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

// deleteExpired removes all expired entries and updates the snapshot when
// anything was removed.
func (m *Memory[V]) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := false
	for key, e := range m.items {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(m.items, key)
			removed = true
		}
	}

	if removed {
		m.mirror(context.Background())
	}
}

// mirror writes the full entry list to the backend. Best-effort: encoding
// or backend failures leave the in-memory store untouched and are not
// surfaced. Caller must hold the mutex.
func (m *Memory[V]) mirror(ctx context.Context) {
	if m.opts.backend == nil {
		return
	}

	snapshot := make([]snapshotEntry, 0, len(m.items))
	for key, e := range m.items {
		data, err := m.codec.Marshal(e.value)
		if err != nil {
			continue
		}

		var expiresAt int64
		if !e.expiresAt.IsZero() {
			expiresAt = e.expiresAt.UnixMilli()
		}

		snapshot = append(snapshot, snapshotEntry{
			Key:       key,
			Data:      data,
			ExpiresAt: expiresAt,
		})
	}

	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return
	}

	_ = m.opts.backend.Set(ctx, m.opts.snapshotKey, string(encoded))
}

// hydrate loads the store from the backend's snapshot. Absent or malformed
// snapshots yield an empty store; already-expired entries are dropped.
func (m *Memory[V]) hydrate() {
	raw, err := m.opts.backend.Get(context.Background(), m.opts.snapshotKey)
	if err != nil {
		return
	}

	var snapshot []snapshotEntry
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return
	}

	now := time.Now()
	for _, se := range snapshot {
		var expiresAt time.Time
		if se.ExpiresAt != 0 {
			expiresAt = time.UnixMilli(se.ExpiresAt)
			if now.After(expiresAt) {
				continue
			}
		}

		value, err := m.codec.Unmarshal(se.Data)
		if err != nil {
			// Wrong value shape invalidates the whole snapshot.
			m.items = make(map[string]*entry[V])
			return
		}

		m.items[se.Key] = &entry[V]{value: value, expiresAt: expiresAt}
	}
}

var _ Cache[any] = (*Memory[any])(nil)
