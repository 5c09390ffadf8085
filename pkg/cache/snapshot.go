package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"
)

// DefaultSnapshotKey is the backend key snapshots are written under when
// WithSnapshotKey is not provided.
const DefaultSnapshotKey = "banjo-cache"

// Backend is the external string key-value store a Memory cache mirrors
// its snapshot to. Implementations must return ErrNotFound from Get when
// the key is absent.
//
// The cache treats the backend as best-effort: write failures never affect
// in-memory behavior, and a malformed or missing snapshot at construction
// yields an empty store instead of an error.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryBackend is an in-process Backend, useful for tests and as a stand-in
// when no durable store is available.
type MemoryBackend struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewMemoryBackend creates an empty in-process backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (b *MemoryBackend) Get(_ context.Context, key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (b *MemoryBackend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = value
	return nil
}

// FileBackend stores each backend key as a file under a directory.
type FileBackend struct {
	dir string
	mu  sync.Mutex
}

// NewFileBackend creates a file-based backend rooted at dir.
// The directory is created if it does not exist.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) Get(_ context.Context, key string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(data), nil
}

// Set writes via a temp file and rename so readers never observe a
// partially written snapshot.
func (b *FileBackend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	path := b.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// RedisBackend mirrors snapshots to a Redis string key.
// The client should be obtained from pkg/redis.Open or pkg/redis.MustOpen.
type RedisBackend struct {
	client redis.UniversalClient
}

// NewRedisBackend creates a Redis-backed snapshot store.
func NewRedisBackend(client redis.UniversalClient) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Get(ctx context.Context, key string) (string, error) {
	v, err := b.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (b *RedisBackend) Set(ctx context.Context, key, value string) error {
	return b.client.Set(ctx, key, value, 0).Err()
}

var (
	_ Backend = (*MemoryBackend)(nil)
	_ Backend = (*FileBackend)(nil)
	_ Backend = (*RedisBackend)(nil)
)
