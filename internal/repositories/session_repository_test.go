package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contract-studio/internal/entities"
	apperrors "contract-studio/pkg/errors"
)

// stubCache - кеш в памяти, запоминает последний TTL по ключу.
type stubCache struct {
	data map[string]string
	ttl  map[string]time.Duration
}

func newStubCache() *stubCache {
	return &stubCache{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (c *stubCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	c.ttl[key] = expiration
	return nil
}

func (c *stubCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (c *stubCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *stubCache) Expire(_ context.Context, key string, expiration time.Duration) (bool, error) {
	if _, ok := c.data[key]; !ok {
		return false, nil
	}
	c.ttl[key] = expiration
	return true, nil
}

func TestSessionRepository_SaveAndFind(t *testing.T) {
	cache := newStubCache()
	repo := NewSessionRepository(cache, 2*time.Hour, zap.NewNop())
	ctx := context.Background()

	session := &entities.ContractSession{
		ID:            "abc",
		Record:        entities.NewRecord(),
		LastAutoTotal: "190050",
		CreatedBy:     5,
		CreatedAt:     time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	session.Record.CustomerFIO = "Петрова Анна"
	require.NoError(t, repo.Save(ctx, session))
	assert.Equal(t, 2*time.Hour, cache.ttl["contract:session:abc"])

	cache.ttl["contract:session:abc"] = time.Minute
	found, err := repo.FindByID(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, session.Record, found.Record)
	assert.Equal(t, "190050", found.LastAutoTotal)
	assert.Equal(t, uint64(5), found.CreatedBy)
	assert.True(t, session.CreatedAt.Equal(found.CreatedAt))

	// чтение продлевает TTL
	assert.Equal(t, 2*time.Hour, cache.ttl["contract:session:abc"])
}

func TestSessionRepository_NotFound(t *testing.T) {
	repo := NewSessionRepository(newStubCache(), time.Hour, zap.NewNop())

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSessionRepository_Corrupted(t *testing.T) {
	cache := newStubCache()
	repo := NewSessionRepository(cache, time.Hour, zap.NewNop())
	ctx := context.Background()

	cache.data["contract:session:broken"] = "{не json"
	_, err := repo.FindByID(ctx, "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrSessionNotFound)

	cache.data["contract:session:enum"] = `{"id":"enum","record":{"object_type":"villa"}}`
	_, err = repo.FindByID(ctx, "enum")
	assert.Error(t, err)
}

func TestSessionRepository_Delete(t *testing.T) {
	cache := newStubCache()
	repo := NewSessionRepository(cache, time.Hour, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entities.ContractSession{ID: "abc"}))
	require.NoError(t, repo.Delete(ctx, "abc"))

	_, err := repo.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}
