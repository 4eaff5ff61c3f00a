package mbms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache implements ResultCache on top of Redis. A nil client disables
// caching without failing: every Get is a miss and every Set is a no-op, so
// the service keeps working when Redis is down.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a result cache backed by the given Redis client.
func NewRedisCache(client *redis.Client) ResultCache {
	return &redisCache{
		client: client,
		prefix: "layout:model:cache:",
	}
}

// Set stores a result under key with a TTL.
func (c *redisCache) Set(ctx context.Context, key string, result *ModelResult, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// Get returns the cached result, or (nil, nil) on a cache miss.
func (c *redisCache) Get(ctx context.Context, key string) (*ModelResult, error) {
	if c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var result ModelResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// Invalidate removes one cached result.
func (c *redisCache) Invalidate(ctx context.Context, key string) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}

	return nil
}

// Clear removes every cached result under this cache's prefix.
func (c *redisCache) Clear(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	return nil
}
