package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	_, err := c.Get(ctx, "astro:natal:missing")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss))

	require.NoError(t, c.Set(ctx, "astro:natal:1", `{"sun":{}}`, time.Hour))
	val, err := c.Get(ctx, "astro:natal:1")
	require.NoError(t, err)
	assert.Equal(t, `{"sun":{}}`, val)
	assert.Equal(t, time.Hour, mr.TTL("astro:natal:1"))

	exists, err := c.Exists(ctx, "astro:natal:1")
	require.NoError(t, err)
	assert.True(t, exists)

	mr.FastForward(2 * time.Hour)
	_, err = c.Get(ctx, "astro:natal:1")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss))

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	require.NoError(t, c.Delete(ctx, "k"))
	exists, err = c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestConfig_NewConnection(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := Config{Host: mr.Host(), Port: mr.Port()}
	rdb, err := cfg.NewConnection(context.Background())
	require.NoError(t, err)
	defer rdb.Close()

	mr.Close()
	cfg = Config{Host: "127.0.0.1", Port: "1", DialTimeout: 1}
	_, err = cfg.NewConnection(context.Background())
	assert.Error(t, err)
}
