// Package cache provides an optional result cache for the calculation API.
// Caching is safe because the engine is idempotent: identical terms always
// produce an identical result.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/calcsuite/loan-engine/pkg/loan"
	"github.com/redis/go-redis/v9"
)

// Cache stores serialized calculation results keyed by a canonical hash of
// the input terms.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Key derives the cache key for a set of terms from the SHA-256 of their
// canonical JSON encoding.
func Key(terms loan.Terms) (string, error) {
	data, err := json.Marshal(terms)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "loan-engine:result:" + hex.EncodeToString(sum[:]), nil
}

// Memory is an in-process Cache. Safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Redis is a redis-backed Cache.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a cache backed by the redis instance at addr.
func NewRedis(addr string) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{client: rdb}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}
