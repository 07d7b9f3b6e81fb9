package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	platformhealthhttp "github.com/shestoi/GoGrocery/platform/health/http"
	platformlogging "github.com/shestoi/GoGrocery/platform/logging"
	platformobservability "github.com/shestoi/GoGrocery/platform/observability"
	platformshutdown "github.com/shestoi/GoGrocery/platform/shutdown"
	"github.com/shestoi/GoGrocery/services/analytics/internal/config"
	eventkafka "github.com/shestoi/GoGrocery/services/analytics/internal/event/kafka"
	"github.com/shestoi/GoGrocery/services/analytics/internal/repository/postgres"
	"github.com/shestoi/GoGrocery/services/analytics/internal/service"
)

// App содержит все зависимости для запуска и корректного shutdown Analytics Service
type App struct {
	logger      *zap.Logger
	consumer    *eventkafka.OrderCompletedConsumer
	consumerCtx context.Context
	httpServer  *http.Server
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build создаёт и настраивает все зависимости Analytics Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "analytics",
		Env:         string(cfg.AppEnv),
		Level:       os.Getenv("LOG_LEVEL"),
		Format:      os.Getenv("LOG_FORMAT"),
	})
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("op", op))
	logger.Info("Building Analytics service",
		zap.Strings("kafka_brokers", cfg.Kafka.Brokers),
		zap.String("telemetry_topic", cfg.Kafka.TelemetryTopic))

	// OpenTelemetry: traces + metrics (noop если OTEL_ENABLED=false)
	otelShutdown, err := platformobservability.Init(context.Background(), platformobservability.Config{
		Enabled:               cfg.OTelEnabled,
		OTLPEndpoint:          cfg.OTelEndpoint,
		SamplingRatio:         cfg.OTelSamplingRatio,
		ServiceName:           "analytics",
		DeploymentEnvironment: string(cfg.AppEnv),
	})
	if err != nil {
		return nil, err
	}

	// Подключаемся к PostgreSQL
	logger.Info("Connecting to PostgreSQL")
	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	// Проверяем подключение к PostgreSQL
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("PostgreSQL connection established")

	// Применяем миграции
	logger.Info("Applying database migrations")
	db, err := goose.OpenDBWithDriver("pgx", cfg.PostgresDSN)
	if err != nil {
		pool.Close()
		return nil, err
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		pool.Close()
		return nil, err
	}
	migrationsDir := filepath.Join(wd, "migrations")

	if err := goose.Up(db, migrationsDir); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("Database migrations applied successfully")

	// Метрика обработанных событий; при отключённом OTEL — noop
	var eventMetrics service.EventMetricsRecorder
	if cfg.OTelEnabled {
		eventMetrics = newEventMetricsRecorder()
	}

	eventRepo := postgres.NewRepository(pool)
	analyticsService := service.NewAnalyticsService(logger, eventRepo, eventMetrics)

	consumer := eventkafka.NewOrderCompletedConsumer(
		logger,
		cfg.Kafka.Brokers,
		cfg.GroupID,
		cfg.Kafka.TelemetryTopic,
		analyticsService,
	)

	// Readiness: consumer готов, пока жив connection pool
	readiness := func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return pool.Ping(ctx) == nil
	}

	// У consumer-а нет своего API, health отдаётся маленьким HTTP сервером
	healthRouter := chi.NewRouter()
	healthRouter.Get("/health", platformhealthhttp.Handler(readiness))
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: healthRouter,
	}

	// Создаём shutdown manager
	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)

	// Контекст consumer-а отменяется первым, reader и pool закрываются после
	consumerCtx, consumerCancel := context.WithCancel(context.Background())

	// Регистрируем shutdown функции в обратном порядке выполнения:
	// otel останавливается последним, health endpoint гасится первым
	shutdownMgr.Add("otel", otelShutdown)
	shutdownMgr.Add("postgres_pool", platformshutdown.ClosePool(pool))
	shutdownMgr.Add("kafka_consumer", func(ctx context.Context) error {
		return consumer.Close()
	})
	shutdownMgr.Add("consumer_context", func(ctx context.Context) error {
		consumerCancel()
		return nil
	})
	shutdownMgr.Add("http-server", platformshutdown.ShutdownHTTPServer(httpServer))

	return &App{
		logger:      logger,
		consumer:    consumer,
		consumerCtx: consumerCtx,
		httpServer:  httpServer,
		shutdownMgr: shutdownMgr,
	}, nil
}

// Run запускает сервис и блокируется до получения сигнала shutdown
func (a *App) Run() error {
	defer platformlogging.Sync(a.logger)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.consumer.Start(a.consumerCtx); err != nil {
			a.logger.Error("consumer error", zap.Error(err))
		}
	}()

	go func() {
		a.logger.Info("Starting health HTTP server", zap.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("health HTTP server error", zap.Error(err))
		}
	}()

	// Ожидаем сигнал и выполняем shutdown
	a.shutdownMgr.Wait()

	a.wg.Wait()
	a.logger.Info("Analytics service stopped")
	return nil
}

// eventMetricsRecorder считает обработанные события телеметрии в OTLP counter.
type eventMetricsRecorder struct {
	counter metric.Int64Counter
}

func newEventMetricsRecorder() *eventMetricsRecorder {
	meter := otel.Meter("analytics")
	counter, _ := meter.Int64Counter("telemetry_events_total", metric.WithDescription("Processed order telemetry events"))
	return &eventMetricsRecorder{counter: counter}
}

func (r *eventMetricsRecorder) RecordEventProcessed(status string) {
	if r.counter == nil {
		return
	}
	r.counter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("status", status)))
}
