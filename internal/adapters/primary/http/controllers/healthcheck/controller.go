package healthcheckController

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger зависимость, готовность которой проверяет /ready
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCheckController struct {
	db    Pinger
	cache Pinger
	log   *slog.Logger
}

const readyTimeout = 2 * time.Second

// New cache может быть nil, если Redis выключен
func New(db Pinger, cache Pinger, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		db:    db,
		cache: cache,
		log:   log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "vero-cosmos",
	})
}

// ready проверка готовности (БД и кэш)
func (c *HealthCheckController) ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readyTimeout)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		c.log.Error("Database not ready", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database unavailable",
		})
		return
	}

	if c.cache != nil {
		if err := c.cache.Ping(pingCtx); err != nil {
			c.log.Error("Cache not ready", "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  "cache unavailable",
			})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
