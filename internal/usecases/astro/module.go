package astro

import (
	"log/slog"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/cache"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/kafka"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/repository"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/storage"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/usecase"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/services/natal"
)

// Config параметры бизнес-логики
type Config struct {
	FreeComparisonsLimit int           `envconfig:"FREE_COMPARISONS_LIMIT" default:"3"`
	ChartDegreeMode      string        `envconfig:"CHART_DEGREE_MODE" default:"seeded"`
	ChartCacheTTL        time.Duration `envconfig:"CHART_CACHE_TTL" default:"24h"`
	PositionsCacheTTL    time.Duration `envconfig:"POSITIONS_CACHE_TTL" default:"25h"`
	ExportURLTTL         time.Duration `envconfig:"EXPORT_URL_TTL" default:"15m"`
	// ReferenceLocationID место для "неба сейчас"
	ReferenceLocationID string `envconfig:"REFERENCE_LOCATION" default:"madrid"`
}

// Deps зависимости сервиса. Cache, Storage и Events опциональны:
// их ошибки логируются и не ломают запрос.
type Deps struct {
	UserRepo        repository.IUserRepo
	PreferencesRepo repository.IPreferencesRepo
	HistoryRepo     repository.IChartHistoryRepo
	Calculator      *natal.Calculator
	Cache           cache.Cache
	Storage         storage.IS3Client
	Events          kafka.IChartEventProducer
}

// Service бизнес-логика натальных карт и профиля
type Service struct {
	UserRepo        repository.IUserRepo
	PreferencesRepo repository.IPreferencesRepo
	HistoryRepo     repository.IChartHistoryRepo
	Calculator      *natal.Calculator
	Cache           cache.Cache
	Storage         storage.IS3Client
	Events          kafka.IChartEventProducer
	Config          Config
	Log             *slog.Logger

	now func() time.Time
}

var _ usecase.IAstroService = (*Service)(nil)

// New создаёт сервис бизнес-логики
func New(deps Deps, cfg Config, log *slog.Logger) *Service {
	calc := deps.Calculator
	if calc == nil {
		calc = natal.NewCalculator(nil)
	}
	if cfg.ReferenceLocationID == "" {
		cfg.ReferenceLocationID = "madrid"
	}

	return &Service{
		UserRepo:        deps.UserRepo,
		PreferencesRepo: deps.PreferencesRepo,
		HistoryRepo:     deps.HistoryRepo,
		Calculator:      calc,
		Cache:           deps.Cache,
		Storage:         deps.Storage,
		Events:          deps.Events,
		Config:          cfg,
		Log:             log,
		now:             time.Now,
	}
}

// business логирует ожидаемую ошибку и помечает её как уже обработанную
func (s *Service) business(err error, msg string, args ...any) error {
	s.Log.Warn(msg, append(args, "error", err)...)
	return domain.WrapBusinessError(err)
}
