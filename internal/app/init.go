package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	server "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/http"
	chartsController "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/http/controllers/charts"
	healthcheckController "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/http/controllers/healthcheck"
	locationsController "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/http/controllers/locations"
	usersController "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/http/controllers/users"
	kafkaConsumerAdapter "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/kafka"
	kafkaHandlers "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/primary/kafka/handlers"
	alerterAdapter "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/kafka"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/storage/inmemory"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/storage/s3"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/cache"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/kafka"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/repository"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/service"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/storage"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/usecase"
	chartHistoryRepo "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/repository/chart_history"
	preferencesRepo "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/repository/preferences"
	userRepo "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/repository/user"
	alerterService "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/services/alerter"
	jobScheduler "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/services/jobs"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/services/natal"
	astroUsecase "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/usecases/astro"
)

type Dependencies struct {
	DB             *pg.DB
	HTTPServer     *http.Server
	Cache          cache.Cache
	Astro          *astroUsecase.Service
	KafkaProducers map[string]*kafkaAdapter.Producer
	KafkaConsumers map[string]*kafkaConsumerAdapter.Consumer
	JobScheduler   *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	repos := a.initRepositories(db)
	external := a.initExternalServices(ctx)

	kafkaProducers := a.initKafkaProducers()

	astroService, err := a.initUseCases(repos, external, kafkaProducers)
	if err != nil {
		return nil, fmt.Errorf("failed to init use cases: %w", err)
	}

	kafkaConsumers := a.initKafkaConsumers(astroService)
	httpServer := a.initHTTP(db, external.Cache, astroService)
	scheduler := a.initJobScheduler(external.Alerter, astroService, external.Cache)

	return &Dependencies{
		DB:             db,
		HTTPServer:     httpServer,
		Cache:          external.Cache,
		Astro:          astroService,
		KafkaProducers: kafkaProducers,
		KafkaConsumers: kafkaConsumers,
		JobScheduler:   scheduler,
	}, nil
}

func (a *App) initPostgres(ctx context.Context) (*pg.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(ctx, db, a.Log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return pg.NewDB(db), nil
}

// repositories содержит инициализированные репозитории
type repositories struct {
	User        repository.IUserRepo
	Preferences repository.IPreferencesRepo
	History     repository.IChartHistoryRepo
}

// initRepositories инициализирует репозитории для работы с БД
func (a *App) initRepositories(db *pg.DB) *repositories {
	return &repositories{
		User:        userRepo.New(db, a.Log),
		Preferences: preferencesRepo.New(db, a.Log),
		History:     chartHistoryRepo.New(db, a.Log),
	}
}

// externalServices содержит внешние сервисы, все кроме кэша опциональные
type externalServices struct {
	Alerter service.IAlerterService
	Cache   cache.Cache
	Storage storage.IS3Client
}

// initExternalServices инициализирует Alerter, Cache и S3
func (a *App) initExternalServices(ctx context.Context) *externalServices {
	services := &externalServices{}

	services.Alerter = alerterService.New(alerterAdapter.NewClient(a.Cfg.Alerter, a.Log), a.Log)

	// Redis Cache, без него in-memory
	if a.Cfg.Redis != nil && a.Cfg.Redis.Enabled {
		redisClient, err := a.Cfg.Redis.NewConnection(ctx)
		if err != nil {
			a.Log.Warn("failed to init redis cache, falling back to in-memory cache", "error", err)
		} else {
			services.Cache = redisAdapter.NewClient(redisClient)
			a.Log.Info("redis cache connected successfully")
		}
	}
	if services.Cache == nil {
		services.Cache = inmemory.NewCache()
	}

	// S3 архив карт
	if a.Cfg.S3 != nil && a.Cfg.S3.Enabled {
		minioClient, err := a.Cfg.S3.NewClient(ctx)
		if err != nil {
			a.Log.Warn("failed to init s3 storage, chart archive disabled", "error", err)
		} else {
			services.Storage = s3Adapter.NewClient(minioClient, a.Cfg.S3.Bucket, a.Log)
			a.Log.Info("s3 storage connected successfully", "bucket", a.Cfg.S3.Bucket)
		}
	}

	return services
}

// initKafkaProducers producer для каждого подключения с topic и без consumer group
func (a *App) initKafkaProducers() map[string]*kafkaAdapter.Producer {
	producers := make(map[string]*kafkaAdapter.Producer)

	for _, kafkaCfg := range a.Cfg.Kafka.List {
		if kafkaCfg.Config.Topic == "" || kafkaCfg.Config.ConsumerGroup != "" {
			continue
		}
		prod, err := kafkaAdapter.NewProducer(kafkaCfg.Config, a.Name, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka producer", "error", err, "name", kafkaCfg.Name)
			continue
		}
		producers[kafkaCfg.Name] = prod
	}

	return producers
}

// initKafkaConsumers consumer для каждого подключения с consumer group
func (a *App) initKafkaConsumers(astroService *astroUsecase.Service) map[string]*kafkaConsumerAdapter.Consumer {
	consumers := make(map[string]*kafkaConsumerAdapter.Consumer)

	for _, kafkaCfg := range a.Cfg.Kafka.List {
		if kafkaCfg.Config.ConsumerGroup == "" {
			continue
		}
		if kafkaCfg.Name != kafkaAdapter.ChartRequestsName {
			a.Log.Warn("no handler for kafka topic, skipping consumer", "name", kafkaCfg.Name)
			continue
		}

		handler := kafkaHandlers.NewChartRequestHandler(astroService, a.Log)
		consumer, err := kafkaConsumerAdapter.NewConsumer(kafkaCfg.Config, handler, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka consumer", "error", err, "name", kafkaCfg.Name)
			continue
		}
		consumers[kafkaCfg.Name] = consumer
	}

	return consumers
}

// initUseCases инициализирует UseCases приложения
func (a *App) initUseCases(
	repos *repositories,
	external *externalServices,
	kafkaProducers map[string]*kafkaAdapter.Producer,
) (*astroUsecase.Service, error) {
	cfg := astroUsecase.Config{
		FreeComparisonsLimit: 3,
		ChartCacheTTL:        24 * time.Hour,
		PositionsCacheTTL:    25 * time.Hour,
		ExportURLTTL:         15 * time.Minute,
		ReferenceLocationID:  "madrid",
	}
	if a.Cfg.Astro != nil {
		cfg = *a.Cfg.Astro
	}

	degrees, err := natal.NewDegreeSource(cfg.ChartDegreeMode)
	if err != nil {
		return nil, err
	}
	a.Log.Info("natal calculator configured", "degree_mode", cfg.ChartDegreeMode)

	deps := astroUsecase.Deps{
		UserRepo:        repos.User,
		PreferencesRepo: repos.Preferences,
		HistoryRepo:     repos.History,
		Calculator:      natal.NewCalculator(degrees),
		Cache:           external.Cache,
		Storage:         external.Storage,
	}
	// без typed nil: producer попадает в интерфейс только если создан
	var events kafka.IChartEventProducer
	if prod, ok := kafkaProducers[kafkaAdapter.ChartEventsName]; ok {
		events = prod
	}
	deps.Events = events

	return astroUsecase.New(deps, cfg, a.Log), nil
}

// initHTTP инициализирует HTTP сервер с контроллерами
func (a *App) initHTTP(db *pg.DB, cacheClient cache.Cache, astroService *astroUsecase.Service) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, cacheClient, a.Log),
		locationsController.New(a.Log),
		chartsController.New(astroService, a.Log),
		usersController.New(astroService, a.Log),
	}

	cfg := a.Cfg.Server
	if cfg == nil {
		cfg = &server.Config{Port: "8080"}
	}
	return server.NewHTTPServer(cfg, a.Log, controllers...)
}

// initJobScheduler инициализирует планировщик, nil если регистрировать нечего.
// Очистка in-memory кэша работает и при выключенных джобах.
func (a *App) initJobScheduler(alerter service.IAlerterService, astroService usecase.IAstroService, cacheClient cache.Cache) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, alerter)

	if a.Cfg.Jobs.Enabled {
		scheduler.Register(jobScheduler.NewPositionsUpdater(astroService, a.Log))
	} else {
		a.Log.Info("scheduled jobs disabled")
	}

	if sweeper, ok := cacheClient.(cache.Sweeper); ok {
		scheduler.Register(jobScheduler.NewCacheSweeper(sweeper, a.Log))
	}

	if len(scheduler.JobNames()) == 0 {
		return nil
	}
	return scheduler
}
