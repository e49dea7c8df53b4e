package cache

import (
	"context"
	"time"
)

// Cache интерфейс для работы с кэшем.
// Get возвращает domain.ErrCacheMiss, если ключа нет или он истёк.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

// Sweeper кэш, которому нужна периодическая очистка истёкших ключей
type Sweeper interface {
	Cleanup() int
}
