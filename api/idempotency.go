package api

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupeKeyPrefix = "deck"

// RedisDeduper stores processed payload digests in Redis so all instances
// can avoid rendering the same report twice within the TTL window.
type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDeduper creates a deduper using the provided Redis client and TTL.
func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: ttl}
}

func (r *RedisDeduper) key(userID, digest string) string {
	return fmt.Sprintf("%s:%s:%s", userID, dedupeKeyPrefix, digest)
}

// Add records the digest if it does not already exist. It returns true when
// the digest was newly added.
func (r *RedisDeduper) Add(ctx context.Context, userID, digest string) (bool, error) {
	return r.client.SetNX(ctx, r.key(userID, digest), 1, r.ttl).Result()
}

// Remove deletes a previously recorded digest. It is used when generation or
// delivery fails so the caller may retry the same payload.
func (r *RedisDeduper) Remove(ctx context.Context, userID, digest string) error {
	return r.client.Del(ctx, r.key(userID, digest)).Err()
}
