package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRepository_Expiry(t *testing.T) {
	cache := NewMemoryCacheRepository()
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	v, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	now = now.Add(50 * time.Second)
	ok, err := cache.Expire(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(50 * time.Second)
	_, err = cache.Get(ctx, "k")
	assert.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	ok, err = cache.Expire(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheRepository_Del(t *testing.T) {
	cache := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "1", 0))
	require.NoError(t, cache.Set(ctx, "b", "2", 0))
	require.NoError(t, cache.Del(ctx, "a", "b"))

	_, err := cache.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
