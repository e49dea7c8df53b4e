package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/cache"
)

const (
	cacheSweeperName     = "cache-sweeper"
	cacheSweeperInterval = 10 * time.Minute
)

// CacheSweeper чистит истёкшие ключи in-memory кэша
type CacheSweeper struct {
	cache    cache.Sweeper
	log      *slog.Logger
	interval time.Duration
}

func NewCacheSweeper(c cache.Sweeper, log *slog.Logger) *CacheSweeper {
	return &CacheSweeper{
		cache:    c,
		log:      log,
		interval: cacheSweeperInterval,
	}
}

func (j *CacheSweeper) Name() string {
	return cacheSweeperName
}

func (j *CacheSweeper) NextRun(now time.Time) time.Time {
	return now.Add(j.interval)
}

func (j *CacheSweeper) Run(context.Context) error {
	if removed := j.cache.Cleanup(); removed > 0 {
		j.log.Debug("expired cache entries removed", "count", removed)
	}
	return nil
}
