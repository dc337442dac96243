// Package cache is a TTL cache for externally fetched JSON payloads. Reads
// never surface fetch failures: a miss plus a failed fetch degrades to the
// stale value if one exists, else to the caller's default.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists cached payloads together with the time they were stored.
// Entries are kept past their TTL so stale reads can serve as a fallback.
type Store interface {
	Get(ctx context.Context, key string) (value string, storedAt time.Time, ok bool)
	Set(ctx context.Context, key, value string, storedAt time.Time) error
}

// Cache wraps a Store with fetch-or-fallback semantics.
type Cache struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// New returns a Cache over the given store.
func New(store Store, logger *slog.Logger) *Cache {
	return &Cache{store: store, logger: logger, now: time.Now}
}

// GetOrFetch returns the cached value for key when it is younger than ttl.
// Otherwise it runs fetch; on success the result is cached and returned, and
// on failure the stale cached value (any age) or def is returned. The error
// is logged, never propagated.
func (c *Cache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) (string, error), def string) string {
	value, storedAt, ok := c.store.Get(ctx, key)
	if ok && c.now().Sub(storedAt) < ttl {
		return value
	}

	fetched, err := fetch(ctx)
	if err != nil {
		c.logger.Warn("cache fetch failed, degrading", "key", key, "stale", ok, "err", err)
		if ok {
			return value
		}
		return def
	}
	if err := c.store.Set(ctx, key, fetched, c.now()); err != nil {
		c.logger.Warn("cache store failed", "key", key, "err", err)
	}
	return fetched
}

// memoryEntry is one in-process cache slot.
type memoryEntry struct {
	value    string
	storedAt time.Time
}

// MemoryStore is the in-process Store used when no Redis address is
// configured, and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, time.Time, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	return e.value, e.storedAt, ok
}

func (m *MemoryStore) Set(_ context.Context, key, value string, storedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: value, storedAt: storedAt}
	return nil
}

// redisEnvelope wraps a payload with its stored-at timestamp so stale entries
// remain readable after their TTL.
type redisEnvelope struct {
	Value    string `json:"v"`
	StoredAt int64  `json:"at"` // unix seconds
}

// RedisStore is a Redis-backed Store. Entries carry no Redis expiry; the
// Cache decides freshness so stale values stay available as fallbacks.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore returns a Store over the given Redis address.
func NewRedisStore(addr, prefix string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
	}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, time.Time, bool) {
	raw, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		return "", time.Time{}, false
	}
	var env redisEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return "", time.Time{}, false
	}
	return env.Value, time.Unix(env.StoredAt, 0), true
}

func (r *RedisStore) Set(ctx context.Context, key, value string, storedAt time.Time) error {
	raw, err := json.Marshal(redisEnvelope{Value: value, StoredAt: storedAt.Unix()})
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.prefix+key, raw, 0).Err()
}
