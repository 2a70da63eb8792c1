package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the read-acceleration capability used by the services. The cache
// is strictly best-effort: implementations must degrade to a miss or no-op on
// any failure and must never propagate errors to callers.
type Store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Get(ctx context.Context, key string, dest any) bool
	Delete(ctx context.Context, key string)
	Clear(ctx context.Context)
}

// ProductKey builds the cache key for a single-product read.
func ProductKey(id string) string {
	return "product:" + id
}

// RedisStore backs Store with a Redis client, JSON-serializing values.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Store over an already-connected client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Set serializes value and stores it with the given expiry. Failures are
// logged and dropped.
func (s *RedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache: marshal %s: %v", key, err)
		return
	}
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
}

// Get deserializes the entry into dest, reporting whether it was a hit. Any
// error, including a corrupt entry, counts as a miss.
func (s *RedisStore) Get(ctx context.Context, key string, dest any) bool {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("cache: unmarshal %s: %v", key, err)
		return false
	}
	return true
}

// Delete removes one key.
func (s *RedisStore) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		log.Printf("cache: delete %s: %v", key, err)
	}
}

// Clear flushes the whole store, not just application keys.
func (s *RedisStore) Clear(ctx context.Context) {
	if err := s.client.FlushAll(ctx).Err(); err != nil {
		log.Printf("cache: clear: %v", err)
	}
}
