package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/antarin-app/antarin/internal/pkg/config"
	"github.com/antarin-app/antarin/internal/pkg/database"
	"github.com/antarin-app/antarin/internal/pkg/health"
	"github.com/antarin-app/antarin/internal/pkg/logger"
	"github.com/antarin-app/antarin/internal/pkg/middleware"
	natspkg "github.com/antarin-app/antarin/internal/pkg/nats"
	nrpkg "github.com/antarin-app/antarin/internal/pkg/newrelic"
	"github.com/antarin-app/antarin/internal/pkg/storage"
	driversGateway "github.com/antarin-app/antarin/services/drivers/gateway"
	driversHandler "github.com/antarin-app/antarin/services/drivers/handler"
	driversRepository "github.com/antarin-app/antarin/services/drivers/repository"
	driversUsecase "github.com/antarin-app/antarin/services/drivers/usecase"
	remindersGateway "github.com/antarin-app/antarin/services/reminders/gateway"
	remindersHandler "github.com/antarin-app/antarin/services/reminders/handler"
	remindersRepository "github.com/antarin-app/antarin/services/reminders/repository"
	remindersUsecase "github.com/antarin-app/antarin/services/reminders/usecase"
	tripsGateway "github.com/antarin-app/antarin/services/trips/gateway"
	tripsHandler "github.com/antarin-app/antarin/services/trips/handler"
	tripsRepository "github.com/antarin-app/antarin/services/trips/repository"
	tripsUsecase "github.com/antarin-app/antarin/services/trips/usecase"
	usersHandler "github.com/antarin-app/antarin/services/users/handler"
	usersRepository "github.com/antarin-app/antarin/services/users/repository"
	usersUsecase "github.com/antarin-app/antarin/services/users/usecase"
)

func main() {
	appName := "antarin-api"
	configPath := config.GetEnv("CONFIG_PATH", "config/api.env")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize file storage
	fileStore, err := storage.NewClient(context.Background(), configs.AWS)
	if err != nil {
		zapLogger.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	// Repositories
	tripRepo := tripsRepository.NewTripRepository(configs, postgresClient.GetDB())
	driverRepo := driversRepository.NewDriverRepository(configs, postgresClient.GetDB())
	locationRepo := driversRepository.NewLocationRepository(redisClient)
	reminderRepo := remindersRepository.NewReminderRepository(configs, postgresClient.GetDB())
	userRepo := usersRepository.NewUserRepository(configs, postgresClient.GetDB())

	// Gateways
	tripGW := tripsGateway.NewTripGW(natsClient)
	driverGW := driversGateway.NewDriverGW(natsClient)
	reminderGW := remindersGateway.NewReminderGW(natsClient)

	// Use cases
	tripUC := tripsUsecase.NewTripUC(configs, tripRepo, tripGW)
	driverUC := driversUsecase.NewDriverUC(configs, driverRepo, locationRepo, driverGW)
	reminderUC := remindersUsecase.NewReminderUC(configs, reminderRepo, reminderGW)
	userUC := usersUsecase.NewUserUC(configs, userRepo, fileStore)

	// Handlers
	tripHandler := tripsHandler.NewTripHandler(configs, tripUC)
	driverHandler := driversHandler.NewDriverHandler(configs, driverUC)
	reminderHandler := remindersHandler.NewReminderHandler(configs, reminderUC)
	userHandler := usersHandler.NewUserHandler(configs, userUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))

	// Register health endpoints
	healthSvc := health.NewHealthService(zapLogger)
	healthSvc.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthSvc.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthSvc.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthSvc)

	// Register service routes
	apiKey := middleware.NewAPIKeyMiddleware(&configs.APIKey)
	tripHandler.RegisterRoutes(e)
	driverHandler.RegisterRoutes(e)
	reminderHandler.RegisterRoutes(e, apiKey)
	userHandler.RegisterRoutes(e, apiKey)

	// Start server
	go func() {
		zapLogger.Info("Starting server",
			zap.String("app", appName),
			zap.Int("port", configs.Server.Port),
		)
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
			zapLogger.Info("Server stopped", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to shutdown server gracefully", zap.Error(err))
	}
	zapLogger.Info("Server shutdown complete", zap.String("app", appName))
}
