// Package cache provides a Redis-backed cache for pathfinding results.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/beka-birhanu/labyrinth-api/maze/pathfind"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// result key string format: prefix, maze ID, algorithm
	resultKeyFmt = "%s:result:%s:%s"
	// per maze invalidation scan pattern
	resultScanFmt = "%s:result:%s:*"
	// compute lock suffix
	lockSuffix = ":solve_lock"

	defaultPrefix = "labyrinth"
)

// RedisResultCache stores solved pathfinding results in Redis with a
// TTL, and serializes compute-on-miss per maze/algorithm pair with a
// distributed lock so concurrent solvers do the work once.
type RedisResultCache struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisResultCache initializes a RedisResultCache with the provided Redis client and TTL.
func NewRedisResultCache(client *redis.Client, ttlSeconds int) (i.ResultCache, error) {
	cache := &RedisResultCache{
		client: client,
		prefix: defaultPrefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// GetOrCompute returns the cached result for the maze/algorithm pair,
// or computes it under a per-pair lock and caches the outcome.
func (c *RedisResultCache) GetOrCompute(ctx context.Context, mazeID uuid.UUID, algorithm string, compute func() (*pathfind.Result, error)) (*pathfind.Result, error) {
	key := c.resultKey(mazeID, algorithm)

	if result, ok := c.get(ctx, key); ok {
		return result, nil
	}

	mutex := c.locker.NewMutex(key + lockSuffix)
	if err := mutex.Lock(); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	// Another instance may have filled the key while we waited.
	if result, ok := c.get(ctx, key); ok {
		return result, nil
	}

	result, err := compute()
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(result); err == nil {
		_ = c.client.Set(ctx, key, raw, c.ttl).Err()
	}
	return result, nil
}

// Invalidate drops every cached result for the maze.
func (c *RedisResultCache) Invalidate(ctx context.Context, mazeID uuid.UUID) error {
	pattern := fmt.Sprintf(resultScanFmt, c.prefix, mazeID)

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (c *RedisResultCache) get(ctx context.Context, key string) (*pathfind.Result, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var result pathfind.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (c *RedisResultCache) resultKey(mazeID uuid.UUID, algorithm string) string {
	return fmt.Sprintf(resultKeyFmt, c.prefix, mazeID, algorithm)
}
