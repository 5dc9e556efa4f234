package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "users-api/internal/domain/user"
)

func setupTestCache(t *testing.T) (ListCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisListCache(client, time.Minute, zaptest.NewLogger(t)), mr
}

func TestRedisListCache_GetMiss(t *testing.T) {
	c, _ := setupTestCache(t)

	users, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, users, "a miss is nil, not an error")
}

func TestRedisListCache_SetAndGet(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	stored := []domain.User{
		{ID: 1, Name: "Ann", Email: "ann@x.com"},
		{ID: 2, Name: "Bob", Email: "bob@x.com"},
	}
	require.NoError(t, c.Set(ctx, stored))

	users, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, users)
}

func TestRedisListCache_EmptyListIsAHit(t *testing.T) {
	// An empty table is a valid cached value and must not look like a miss
	c, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, nil))

	users, err := c.Get(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestRedisListCache_Invalidate(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, []domain.User{{ID: 1, Name: "Ann", Email: "ann@x.com"}}))
	require.NoError(t, c.Invalidate(ctx))

	users, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, users)
}

func TestRedisListCache_TTLExpiry(t *testing.T) {
	c, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, []domain.User{{ID: 1, Name: "Ann", Email: "ann@x.com"}}))

	mr.FastForward(2 * time.Minute)

	users, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, users)
}

func TestRedisListCache_GetError(t *testing.T) {
	c, mr := setupTestCache(t)

	mr.Close()

	_, err := c.Get(context.Background())
	assert.Error(t, err)
}
