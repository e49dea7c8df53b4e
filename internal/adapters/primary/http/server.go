package server

import (
	"net"
	"net/http"
	"time"

	"log/slog"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/http/middlewares"
	"github.com/gin-gonic/gin"
)

type Config struct {
	Host                    string                      `envconfig:"HOST"`
	Port                    string                      `envconfig:"PORT" default:"8080"`
	WriteTimeout            time.Duration               `envconfig:"WRITE_TIMEOUT" default:"60s"`
	ReadTimeout             time.Duration               `envconfig:"READ_TIMEOUT" default:"3s"`
	ReadHeaderTimeout       time.Duration               `envconfig:"READ_HEADER_TIMEOUT" default:"3s"`
	IdleTimeout             time.Duration               `envconfig:"IDLE_TIMEOUT" default:"15s"`
	EnableLoggingMiddleware bool                        `envconfig:"ENABLE_LOGGING_MIDDLEWARE" default:"false"`
	TrustedProxies          []string                    `envconfig:"TRUSTED_PROXIES"`
	RateLimit               middlewares.RateLimitConfig `envconfig:"RATE_LIMIT"`
}

type Controller interface {
	RegisterRoutes(router *gin.Engine)
}

// NewRouter gin engine с middleware и маршрутами контроллеров
func NewRouter(
	cfg *Config,
	logger *slog.Logger,
	controllers ...Controller,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Warn("invalid trusted proxies, client ip taken from remote addr", "error", err)
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(middlewares.RecoveryLogger(logger))
	if cfg.EnableLoggingMiddleware {
		router.Use(middlewares.RequestLogger(logger))
	}
	if cfg.RateLimit.Enabled {
		router.Use(middlewares.RateLimit(cfg.RateLimit))
	}

	// Регистрируем маршруты всех контроллеров
	for _, controller := range controllers {
		controller.RegisterRoutes(router)
	}

	return router
}

func NewHTTPServer(
	cfg *Config,
	logger *slog.Logger,
	controllers ...Controller,
) *http.Server {
	server := &http.Server{
		Handler:           NewRouter(cfg, logger, controllers...),
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return server
}
