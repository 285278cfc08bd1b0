package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryItem struct {
	value     string
	expiresAt time.Time
}

func (i memoryItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}

// MemoryCacheRepository - кеш в памяти процесса для запуска без Redis и для тестов.
// Истёкшие ключи удаляются при обращении.
type MemoryCacheRepository struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{items: make(map[string]memoryItem), now: time.Now}
}

func (r *MemoryCacheRepository) deadline(expiration time.Duration) time.Time {
	if expiration <= 0 {
		return time.Time{}
	}
	return r.now().Add(expiration)
}

func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprint(v)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = memoryItem{value: s, expiresAt: r.deadline(expiration)}
	return nil
}

func (r *MemoryCacheRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[key]
	if !ok {
		return "", ErrCacheMiss
	}
	if item.expired(r.now()) {
		delete(r.items, key)
		return "", ErrCacheMiss
	}
	return item.value, nil
}

func (r *MemoryCacheRepository) Del(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.items, k)
	}
	return nil
}

func (r *MemoryCacheRepository) Expire(_ context.Context, key string, expiration time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[key]
	if !ok || item.expired(r.now()) {
		delete(r.items, key)
		return false, nil
	}
	item.expiresAt = r.deadline(expiration)
	r.items[key] = item
	return true, nil
}
