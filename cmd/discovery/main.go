package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rdwiputra/jasaku/internal/pkg/config"
	"github.com/rdwiputra/jasaku/internal/pkg/database"
	"github.com/rdwiputra/jasaku/internal/pkg/health"
	"github.com/rdwiputra/jasaku/internal/pkg/logger"
	"github.com/rdwiputra/jasaku/internal/pkg/middleware"
	"github.com/rdwiputra/jasaku/internal/pkg/notify"
	nsqpkg "github.com/rdwiputra/jasaku/internal/pkg/nsq"
	"github.com/rdwiputra/jasaku/internal/pkg/server"
	wspkg "github.com/rdwiputra/jasaku/internal/pkg/websocket"
	"github.com/rdwiputra/jasaku/services/discovery"
	discoveryGateway "github.com/rdwiputra/jasaku/services/discovery/gateway"
	discoveryHandler "github.com/rdwiputra/jasaku/services/discovery/handler"
	discoveryRepository "github.com/rdwiputra/jasaku/services/discovery/repository"
	discoveryUsecase "github.com/rdwiputra/jasaku/services/discovery/usecase"
	locationGateway "github.com/rdwiputra/jasaku/services/location/gateway"
	locationHandler "github.com/rdwiputra/jasaku/services/location/handler"
	locationRepository "github.com/rdwiputra/jasaku/services/location/repository"
	locationUsecase "github.com/rdwiputra/jasaku/services/location/usecase"
)

func main() {
	appName := "discovery-service"
	configPath := config.GetEnv("CONFIG_PATH", ".env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdownManager := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error { return postgresClient.Close() })

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error { return redisClient.Close() })

	// Initialize NSQ producer; optional in single-node deployments
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdownManager.Register(func(context.Context) error {
			producer.Stop()
			return nil
		})
	}

	// WebSocket manager carries transient user notices
	wsManager := wspkg.NewManager()
	notifier := notify.NewWebSocketNotifier(wsManager)

	// Initialize repositories
	providerRepo := discoveryRepository.NewProviderRepo(postgresClient.GetDB(), redisClient, producer)
	positionRepo := locationRepository.NewPositionRepo(redisClient)

	// Initialize location subsystem
	geolocator := locationGateway.NewDeviceGateway(
		configs.Device.BridgeURL,
		time.Duration(configs.Device.TimeoutSec)*time.Second,
	)
	locationStore := locationUsecase.NewLocationStore(geolocator, positionRepo, notifier, nil)
	binding := locationUsecase.NewBinding(locationStore)
	defer binding.Close()

	// Select the provider backend
	var backend discovery.ProviderBackend = providerRepo
	if configs.Backend.Mode == "http" {
		backend = discoveryGateway.NewProviderGW(
			configs.Backend.ServiceURL,
			time.Duration(configs.Backend.TimeoutSec)*time.Second,
			configs.APIKey,
		)
	}

	// Initialize discovery pipeline
	pipeline := discoveryUsecase.NewPipeline(
		backend,
		binding,
		notifier,
		configs.Discovery,
		configs.Discovery.OwnerUserID,
		nil,
	)

	// Periodic sweep keeps the detail cache from accumulating dead entries
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := pipeline.Cache().SweepExpired(); n > 0 {
					logger.Info("swept expired cache entries", logger.Int("count", n))
				}
			case <-sweepDone:
				return
			}
		}
	}()
	shutdownManager.Register(func(context.Context) error {
		close(sweepDone)
		return nil
	})

	// Initialize handlers
	discHandler := discoveryHandler.NewHandler(pipeline, providerRepo, providerRepo, wsManager)
	locHandler := locationHandler.NewHandler(locationStore, positionRepo)

	if configs.NSQ.Address != "" {
		if err := discHandler.StartNSQConsumers(configs.NSQ.Address, configs.NSQ.ConsumerChannel); err != nil {
			zapLogger.Fatal("Failed to start NSQ consumers", logger.Err(err))
		}
		shutdownManager.Register(func(context.Context) error {
			discHandler.Stop()
			return nil
		})
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	discHandler.RegisterRoutes(e, configs.APIKey)
	locHandler.RegisterRoutes(e)

	// Start server and block until a shutdown signal arrives
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Error during shutdown", logger.Err(err))
	}
}
