package app

import (
	"context"
	"errors"
	"net/http"
	"os"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	groceryv1 "github.com/shestoi/GoGrocery/api/grocery/v1"
	platformlogging "github.com/shestoi/GoGrocery/platform/logging"
	platformobservability "github.com/shestoi/GoGrocery/platform/observability"
	platformshutdown "github.com/shestoi/GoGrocery/platform/shutdown"
	httpapi "github.com/shestoi/GoGrocery/services/ordering/internal/api/http"
	grpcclient "github.com/shestoi/GoGrocery/services/ordering/internal/client/grpc"
	"github.com/shestoi/GoGrocery/services/ordering/internal/config"
	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
	"github.com/shestoi/GoGrocery/services/ordering/internal/event"
	eventkafka "github.com/shestoi/GoGrocery/services/ordering/internal/event/kafka"
	"github.com/shestoi/GoGrocery/services/ordering/internal/service"
)

// App содержит все зависимости для запуска и корректного shutdown Ordering Service
type App struct {
	logger      *zap.Logger
	httpServer  *http.Server
	publisher   *event.AsyncPublisher
	shutdownMgr *platformshutdown.Manager
}

// Build создаёт и настраивает все зависимости Ordering Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "ordering",
		Env:         string(cfg.AppEnv),
		Level:       os.Getenv("LOG_LEVEL"),
		Format:      os.Getenv("LOG_FORMAT"),
	})
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("op", op))
	logger.Info("Building Ordering service", zap.String("http_addr", cfg.HTTPAddr))

	// OpenTelemetry: traces + metrics (noop если OTEL_ENABLED=false)
	otelShutdown, err := platformobservability.Init(context.Background(), platformobservability.Config{
		Enabled:               cfg.OTelEnabled,
		OTLPEndpoint:          cfg.OTelEndpoint,
		SamplingRatio:         cfg.OTelSamplingRatio,
		ServiceName:           "ordering",
		DeploymentEnvironment: string(cfg.AppEnv),
	})
	if err != nil {
		return nil, err
	}

	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)
	// otel останавливается последним, чтобы успели записаться spans/metrics
	shutdownMgr.Add("otel", otelShutdown)

	// Trace context инжектится во все исходящие RPC
	clientInterceptor := platformobservability.GRPCUnaryClientInterceptor("ordering")

	// Подключаемся к backend-ам пяти отделов
	aisles := make(map[domain.Category]service.AisleClient, len(cfg.AisleGRPCAddrs))
	for _, cat := range domain.Categories() {
		addr := cfg.AisleGRPCAddrs[cat]
		logger.Info("Connecting to aisle service",
			zap.String("aisle", string(cat)),
			zap.String("addr", addr))
		conn, err := grpc.NewClient(addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithChainUnaryInterceptor(clientInterceptor))
		if err != nil {
			return nil, err
		}
		shutdownMgr.Add("aisle-conn-"+string(cat), platformshutdown.CloseConn(conn))
		aisles[cat] = grpcclient.NewAisleClientAdapter(groceryv1.NewAisleServiceClient(conn))
	}

	// Подключаемся к Pricing сервису
	logger.Info("Connecting to Pricing service", zap.String("addr", cfg.PricingGRPCAddr))
	pricingConn, err := grpc.NewClient(cfg.PricingGRPCAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(clientInterceptor))
	if err != nil {
		return nil, err
	}
	shutdownMgr.Add("pricing-conn", platformshutdown.CloseConn(pricingConn))
	pricingClient := grpcclient.NewPricingClientAdapter(groceryv1.NewPricingServiceClient(pricingConn))

	// Телеметрия: Kafka sink за неблокирующей очередью
	sink := eventkafka.NewTelemetrySink(logger, cfg.Kafka.Brokers, cfg.Kafka.TelemetryTopic)
	shutdownMgr.Add("kafka-sink", func(ctx context.Context) error {
		return sink.Close()
	})
	publisher := event.NewAsyncPublisher(logger, sink, cfg.TelemetryQueueSize)
	shutdownMgr.Add("telemetry-publisher", publisher.Close)

	// Создаём service слой с зависимостями
	orderService := service.NewOrderService(
		logger,
		aisles,
		pricingClient,
		publisher,
		cfg.AisleTimeout,
		cfg.PricingTimeout,
	)

	// Создаём HTTP handler и роутер
	handler := httpapi.NewHandler(logger, orderService)
	router := httpapi.NewRouter(handler, nil, logger)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}
	// HTTP сервер останавливается раньше остальных зависимостей:
	// shutdown функции выполняются в порядке, обратном регистрации,
	// поэтому новые Publish не случатся после закрытия очереди
	shutdownMgr.Add("http-server", platformshutdown.ShutdownHTTPServer(httpServer))

	return &App{
		logger:      logger,
		httpServer:  httpServer,
		publisher:   publisher,
		shutdownMgr: shutdownMgr,
	}, nil
}

// Run запускает сервис и блокируется до graceful shutdown
func (a *App) Run() error {
	// Доставка телеметрии живёт в отдельной горутине вне критического пути
	go a.publisher.Run()

	go func() {
		a.logger.Info("Starting HTTP server", zap.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	a.shutdownMgr.Wait()
	return nil
}
