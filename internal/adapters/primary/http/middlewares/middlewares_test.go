package middlewares

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doRequest(r http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_PerClient(t *testing.T) {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	limiter := newIPLimiter(RateLimitConfig{RPS: 1, Burst: 2, IdleTTL: time.Minute}, func() time.Time { return now })

	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	r.Use(rateLimit(limiter))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1001").Code)

	w := doRequest(r, "10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	// другой клиент со своим bucket
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.2:1000").Code)

	// через секунду появляется один токен
	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1003").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "10.0.0.1:1004").Code)
}

func TestRateLimit_ForgetsIdleClients(t *testing.T) {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	limiter := newIPLimiter(RateLimitConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute}, func() time.Time { return now })

	assert.True(t, limiter.allow("a"))
	assert.True(t, limiter.allow("b"))
	assert.Len(t, limiter.visitors, 2)

	now = now.Add(2 * time.Minute)
	assert.True(t, limiter.allow("a"))
	assert.Len(t, limiter.visitors, 1)
}

func TestRecoveryLogger(t *testing.T) {
	r := gin.New()
	r.Use(RecoveryLogger(discardLogger()))
	r.GET("/ping", func(c *gin.Context) { panic("boom") })

	w := doRequest(r, "10.0.0.1:1000")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error interno")
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(discardLogger()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusTeapot, "tea") })

	w := doRequest(r, "10.0.0.1:1000")
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "tea", w.Body.String())
}
