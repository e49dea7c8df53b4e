package healthcheckController

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	healthy   = pingerFunc(func(context.Context) error { return nil })
	unhealthy = pingerFunc(func(context.Context) error { return errors.New("down") })
)

func serve(c *HealthCheckController, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c.RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Equal(t, http.StatusOK, serve(New(unhealthy, nil, log), "/health").Code)

	tests := []struct {
		name   string
		db     Pinger
		cache  Pinger
		status int
		body   string
	}{
		{"all up", healthy, healthy, http.StatusOK, "ready"},
		{"no cache configured", healthy, nil, http.StatusOK, "ready"},
		{"db down", unhealthy, healthy, http.StatusServiceUnavailable, "database unavailable"},
		{"cache down", healthy, unhealthy, http.StatusServiceUnavailable, "cache unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(New(tt.db, tt.cache, log), "/ready")
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}
