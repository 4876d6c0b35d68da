package api

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDeduper stores processed idempotency keys in Redis so all instances
// can avoid persisting the same create request twice.
type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDeduper creates a deduper using the provided Redis client and TTL.
func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: ttl}
}

func (r *RedisDeduper) key(ownerID, key string) string {
	return fmt.Sprintf("%s:%s", ownerID, key)
}

// Add records the key if it does not already exist. It returns true when the
// key was newly added.
func (r *RedisDeduper) Add(ctx context.Context, ownerID, key string) (bool, error) {
	return r.client.SetNX(ctx, r.key(ownerID, key), 1, r.ttl).Result()
}

// Remove deletes a previously recorded key. It is used when the insert fails
// so the caller may retry the request.
func (r *RedisDeduper) Remove(ctx context.Context, ownerID, key string) error {
	return r.client.Del(ctx, r.key(ownerID, key)).Err()
}
