package app

import (
	"fmt"

	server "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/http"
	alerterAdapter "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/kafka"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/storage/s3"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/pkg/logger"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/services/natal"
	astroUsecase "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/usecases/astro"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres *pg.Config                `envconfig:"POSTGRES"`
	Redis    *redisAdapter.Config      `envconfig:"REDIS"`
	S3       *s3Adapter.Config         `envconfig:"S3"`
	Log      *logger.Config            `envconfig:"LOG"`
	Server   *server.Config            `envconfig:"APISERVER"`
	Astro    *astroUsecase.Config      `envconfig:"ASTRO"`
	Kafka    kafkaAdapter.KafkaConfigs `envconfig:"KAFKA"`
	Alerter  *alerterAdapter.Config    `envconfig:"ALERTER"`
	Jobs     JobsConfig                `envconfig:"JOBS"`
}

// JobsConfig фоновые задачи
type JobsConfig struct {
	Enabled bool `envconfig:"ENABLED" default:"true"`
	// WarmPositions посчитать небо при старте, не дожидаясь 05:00
	WarmPositions bool `envconfig:"WARM_POSITIONS" default:"true"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	// Загружаем Kafka конфигурацию вручную
	if err := cfg.Kafka.Load(envPrefix); err != nil {
		return nil, fmt.Errorf("failed to load kafka config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ошибки, из-за которых нет смысла стартовать
func (c *Config) Validate() error {
	if c.Log != nil {
		if err := c.Log.Validate(); err != nil {
			return err
		}
	}
	if c.Postgres == nil || c.Postgres.Database == "" {
		return fmt.Errorf("postgres database is required")
	}
	if c.Astro != nil {
		if _, err := natal.NewDegreeSource(c.Astro.ChartDegreeMode); err != nil {
			return fmt.Errorf("invalid astro config: %w", err)
		}
		if c.Astro.FreeComparisonsLimit < 0 {
			return fmt.Errorf("invalid astro config: free comparisons limit %d", c.Astro.FreeComparisonsLimit)
		}
	}
	if c.Alerter != nil && c.Alerter.Enabled && (c.Alerter.BotToken == "" || c.Alerter.ChatID == 0) {
		return fmt.Errorf("alerter is enabled but bot token or chat id is missing")
	}
	return nil
}
