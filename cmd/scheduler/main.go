package main

import (
	"context"
	"fmt"
	"log"
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
	"github.com/antarin-app/antarin/services/reminders"
	"github.com/antarin-app/antarin/services/reminders/gateway"
	"github.com/antarin-app/antarin/services/reminders/handler"
	"github.com/antarin-app/antarin/services/reminders/repository"
	"github.com/antarin-app/antarin/services/reminders/usecase"
)

func main() {
	appName := "antarin-scheduler"
	configPath := config.GetEnv("CONFIG_PATH", "config/scheduler.env")
	configs := config.InitConfig(configPath)

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

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	reminderRepo := repository.NewReminderRepository(configs, postgresClient.GetDB())
	reminderGW := gateway.NewReminderGW(natsClient)
	reminderUC := usecase.NewReminderUC(configs, reminderRepo, reminderGW)
	reminderHandler := handler.NewReminderHandler(configs, reminderUC)

	// Small HTTP surface for health probes and manual sweep triggers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthSvc := health.NewHealthService(zapLogger)
	healthSvc.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthSvc.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthSvc)

	apiKey := middleware.NewAPIKeyMiddleware(&configs.APIKey)
	reminderHandler.RegisterRoutes(e, apiKey)

	go func() {
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
			zapLogger.Info("Server stopped", zap.Error(err))
		}
	}()

	interval := time.Duration(configs.Reminder.IntervalMin) * time.Minute
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("Reminder sweep scheduled", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run one sweep immediately so a restart does not delay due reminders
	runSweep(ctx, reminderUC, zapLogger)

loop:
	for {
		select {
		case <-ticker.C:
			runSweep(ctx, reminderUC, zapLogger)
		case <-ctx.Done():
			break loop
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shutdown server gracefully", zap.Error(err))
	}
	zapLogger.Info("Scheduler shutdown complete", zap.String("app", appName))
}

func runSweep(ctx context.Context, reminderUC reminders.ReminderUC, zapLogger *logger.ZapLogger) {
	result, err := reminderUC.CheckUpcomingTrips(ctx)
	if err != nil {
		zapLogger.Error("Reminder sweep failed", zap.Error(err))
		return
	}

	zapLogger.Info("Reminder sweep completed",
		zap.Int("processed", result.Processed),
		zap.Int("notifications_sent", result.NotificationsSent),
	)
}
