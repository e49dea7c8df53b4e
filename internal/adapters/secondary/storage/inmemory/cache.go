package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/cache"
)

type entry struct {
	value     string
	expiresAt time.Time // нулевое значение: без TTL
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Cache in-memory реализация cache.Cache, используется когда Redis выключен.
// Истёкшие ключи удаляются при чтении и через Cleanup, который вызывает джоба cache-sweeper.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	now   func() time.Time
}

var (
	_ cache.Cache   = (*Cache)(nil)
	_ cache.Sweeper = (*Cache)(nil)
)

func NewCache() cache.Cache {
	return newCache(time.Now)
}

func newCache(now func() time.Time) *Cache {
	return &Cache{
		items: make(map[string]entry),
		now:   now,
	}
}

func (c *Cache) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("key %s: %w", key, domain.ErrCacheMiss)
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		// ключ могли перезаписать между RUnlock и Lock
		if cur, ok := c.items[key]; ok && cur.expired(c.now()) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return "", fmt.Errorf("key %s: %w", key, domain.ErrCacheMiss)
	}
	return e.value, nil
}

func (c *Cache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.items[key] = e
	c.mu.Unlock()
	return nil
}

func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.Get(ctx, key)
	return err == nil, nil
}

func (c *Cache) Ping(context.Context) error {
	return nil
}

// Cleanup удаляет истёкшие ключи, возвращает количество удалённых
func (c *Cache) Cleanup() int {
	now := c.now()
	removed := 0

	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.items {
		if e.expired(now) {
			delete(c.items, k)
			removed++
		}
	}
	return removed
}

func (c *Cache) Close() error {
	c.mu.Lock()
	c.items = make(map[string]entry)
	c.mu.Unlock()
	return nil
}
