package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/storage/inmemory"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// remoteCache кэш без локального состояния, как Redis
type remoteCache struct {
	cache.Cache
}

func testApp(jobsEnabled bool) *App {
	return &App{
		Name: "vero_cosmos_test",
		Cfg:  &Config{Jobs: JobsConfig{Enabled: jobsEnabled}},
		Log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestInitJobScheduler(t *testing.T) {
	tests := []struct {
		name        string
		jobsEnabled bool
		cache       cache.Cache
		want        []string
	}{
		{"in-memory cache gets a sweeper", true, inmemory.NewCache(), []string{"positions-updater", "cache-sweeper"}},
		{"sweeper runs with jobs disabled", false, inmemory.NewCache(), []string{"cache-sweeper"}},
		{"redis needs no sweeper", true, remoteCache{}, []string{"positions-updater"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduler := testApp(tt.jobsEnabled).initJobScheduler(nil, nil, tt.cache)
			require.NotNil(t, scheduler)
			assert.Equal(t, tt.want, scheduler.JobNames())
		})
	}
}

func TestInitJobScheduler_NothingToRun(t *testing.T) {
	assert.Nil(t, testApp(false).initJobScheduler(nil, nil, remoteCache{}))
}
