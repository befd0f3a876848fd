package main

import (
	"fmt"
	"log"

	"github.com/campushq/hostelfees/internal/pkg/config"
	"github.com/campushq/hostelfees/internal/pkg/database"
	"github.com/campushq/hostelfees/internal/pkg/health"
	"github.com/campushq/hostelfees/internal/pkg/logger"
	"github.com/campushq/hostelfees/internal/pkg/middleware"
	natspkg "github.com/campushq/hostelfees/internal/pkg/nats"
	"github.com/campushq/hostelfees/services/fees/gateway"
	"github.com/campushq/hostelfees/services/fees/handler"
	httpHandler "github.com/campushq/hostelfees/services/fees/handler/http"
	"github.com/campushq/hostelfees/services/fees/repository"
	"github.com/campushq/hostelfees/services/fees/scheduler"
	"github.com/campushq/hostelfees/services/fees/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	appName := "fees-service"
	configPath := "config/fees.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
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

	// Initialize repository
	feeRepo := repository.NewFeeRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize Gateway
	feeGW := gateway.NewFeeGW(natsClient, configs.Services.AttendanceServiceURL)

	// Initialize UseCase
	feeUC := usecase.NewFeeUC(feeRepo, feeGW, configs)

	// Start the overdue-penalty scheduler
	penaltyScheduler := scheduler.NewPenaltyScheduler(feeUC, feeRepo, configs)
	if err := penaltyScheduler.Start(); err != nil {
		zapLogger.Fatal("Failed to start penalty scheduler", zap.Error(err))
	}
	defer penaltyScheduler.Stop()

	// Handlers for HTTP
	feeHandler := httpHandler.NewFeeHandler(feeUC)
	Handler := handler.NewHandler(feeHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
