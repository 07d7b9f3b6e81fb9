package app

import (
	"context"
	"net"
	"os"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	groceryv1 "github.com/shestoi/GoGrocery/api/grocery/v1"
	platformhealth "github.com/shestoi/GoGrocery/platform/health/grpc"
	platformlogging "github.com/shestoi/GoGrocery/platform/logging"
	platformobservability "github.com/shestoi/GoGrocery/platform/observability"
	platformshutdown "github.com/shestoi/GoGrocery/platform/shutdown"
	grpcapi "github.com/shestoi/GoGrocery/services/aisle/internal/api/grpc"
	"github.com/shestoi/GoGrocery/services/aisle/internal/config"
	"github.com/shestoi/GoGrocery/services/aisle/internal/repository/memory"
	"github.com/shestoi/GoGrocery/services/aisle/internal/service"
)

// App содержит все зависимости для запуска и корректного shutdown Aisle Service
type App struct {
	logger      *zap.Logger
	grpcServer  *grpc.Server
	grpcAddr    string
	health      *platformhealth.Health
	shutdownMgr *platformshutdown.Manager
}

// Build создаёт и настраивает все зависимости Aisle Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "aisle-" + cfg.Aisle,
		Env:         string(cfg.AppEnv),
		Level:       os.Getenv("LOG_LEVEL"),
		Format:      os.Getenv("LOG_FORMAT"),
	})
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("op", op))
	logger.Info("Building Aisle service",
		zap.String("aisle", cfg.Aisle),
		zap.String("grpc_addr", cfg.GRPCAddr),
		zap.Int32("initial_stock", cfg.InitialStock))

	// OpenTelemetry: traces + metrics (noop если OTEL_ENABLED=false)
	otelShutdown, err := platformobservability.Init(context.Background(), platformobservability.Config{
		Enabled:               cfg.OTelEnabled,
		OTLPEndpoint:          cfg.OTelEndpoint,
		SamplingRatio:         cfg.OTelSamplingRatio,
		ServiceName:           "aisle-" + cfg.Aisle,
		DeploymentEnvironment: string(cfg.AppEnv),
	})
	if err != nil {
		return nil, err
	}

	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)
	// otel останавливается последним, чтобы успели записаться spans/metrics
	shutdownMgr.Add("otel", otelShutdown)

	// Склад в памяти, полки заполняются ассортиментом отдела
	stockRepo := memory.NewRepository(cfg.InitialStock, service.AisleItems(cfg.Aisle))

	aisleService := service.NewAisleService(logger, stockRepo, cfg.Aisle, cfg.WorkDelayPerItem)
	handler := grpcapi.NewHandler(aisleService, cfg.Aisle)

	// gRPC сервер с tracing interceptor
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(platformobservability.GRPCUnaryServerInterceptor("aisle-" + cfg.Aisle)),
	)
	groceryv1.RegisterAisleServiceServer(grpcServer, handler)

	// Health check: зависимостей у отдела нет, поэтому сразу SERVING
	health := platformhealth.New(grpc_health_v1.HealthCheckResponse_SERVING)
	health.Register(grpcServer)

	shutdownMgr.Add("grpc-server", platformshutdown.ShutdownGRPCServer(grpcServer))
	shutdownMgr.Add("health-readiness", platformshutdown.SetHealthNotServing(health))

	return &App{
		logger:      logger,
		grpcServer:  grpcServer,
		grpcAddr:    cfg.GRPCAddr,
		health:      health,
		shutdownMgr: shutdownMgr,
	}, nil
}

// Run запускает сервис и блокируется до graceful shutdown
func (a *App) Run() error {
	listener, err := net.Listen("tcp", a.grpcAddr)
	if err != nil {
		return err
	}

	go func() {
		a.logger.Info("Starting gRPC server", zap.String("addr", a.grpcAddr))
		if err := a.grpcServer.Serve(listener); err != nil {
			a.logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	a.shutdownMgr.Wait()
	return nil
}
