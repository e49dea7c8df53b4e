package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Encoding string `envconfig:"ENCODING" default:"console"` // console | json
	Level    string `envconfig:"LEVEL" default:"info"`
	// AddSource добавляет file:line, в проде обычно выключено
	AddSource bool `envconfig:"ADD_SOURCE" default:"false"`
}

// Validate проверяет encoding и level до создания логгера
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Encoding) {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("invalid logger config: encoding %s is not supported", c.Encoding)
	}
}

// New логгер приложения с атрибутом app. Некорректный конфиг приводит к панике.
func New(app string, cfg *Config) *slog.Logger {
	return newLogger(app, cfg, os.Stdout, os.Stderr)
}

func newLogger(app string, cfg *Config, jsonOut, consoleOut io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &Config{}
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		panic(err)
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Encoding) {
	case "json":
		handler = slog.NewJSONHandler(jsonOut, opts)
	case "", "console":
		handler = slog.NewTextHandler(consoleOut, opts)
	default:
		panic(fmt.Errorf("invalid logger config: encoding %s is not supported", cfg.Encoding))
	}

	return slog.New(handler).With("app", app)
}

// ParseLevel парсит строковый уровень, пустая строка означает info
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid logger config: level %s is not supported", level)
	}
}

// SetDefault устанавливает логгер по умолчанию
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
