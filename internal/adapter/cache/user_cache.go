package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "users-api/internal/domain/user"
)

// ListCache defines the interface for caching the full user list.
type ListCache interface {
	// Get retrieves the cached user list. Returns nil on a miss.
	Get(ctx context.Context) ([]domain.User, error)

	// Set stores the user list with the configured TTL.
	Set(ctx context.Context, users []domain.User) error

	// Invalidate drops the cached list. Called after every mutation.
	Invalidate(ctx context.Context) error
}

// listKey is the single Redis key holding the serialized user list.
const listKey = "users:all"

// RedisListCache implements ListCache using Redis as the backing store.
type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisListCache creates a new Redis-backed user list cache.
func NewRedisListCache(client *redis.Client, ttl time.Duration, log *zap.Logger) ListCache {
	return &RedisListCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Get retrieves the user list from Redis cache.
func (c *RedisListCache) Get(ctx context.Context) ([]domain.User, error) {
	data, err := c.client.Get(ctx, listKey).Bytes()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("user list cache miss")
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get user list from cache", zap.Error(err))
		return nil, err
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		c.log.Error("failed to unmarshal cached user list", zap.Error(err))
		return nil, err
	}

	c.log.Debug("user list cache hit", zap.Int("count", len(users)))
	return users, nil
}

// Set stores the user list in Redis cache with TTL.
func (c *RedisListCache) Set(ctx context.Context, users []domain.User) error {
	if users == nil {
		users = []domain.User{}
	}

	data, err := json.Marshal(users)
	if err != nil {
		c.log.Error("failed to marshal user list for cache", zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, listKey, data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set user list cache", zap.Error(err))
		return err
	}

	c.log.Debug("cached user list", zap.Int("count", len(users)), zap.Duration("ttl", c.ttl))
	return nil
}

// Invalidate drops the cached user list.
func (c *RedisListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listKey).Err(); err != nil {
		c.log.Error("failed to invalidate user list cache", zap.Error(err))
		return err
	}

	c.log.Debug("invalidated user list cache")
	return nil
}
