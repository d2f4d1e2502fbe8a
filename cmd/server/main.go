// Package main is the entry point for the Wellness Sessions API
package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/arvyah/wellnessapi/internal/api"
	"github.com/arvyah/wellnessapi/internal/api/middleware"
	"github.com/arvyah/wellnessapi/internal/config"
	"github.com/arvyah/wellnessapi/internal/repository"
	"github.com/arvyah/wellnessapi/internal/service"
	"github.com/arvyah/wellnessapi/pkg/utils/zaplogger"
)

func main() {
	// Load configuration
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to Postgres
	db, err := repository.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	// Connect Redis
	redisClient, err := repository.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Init logger with the database tee
	if err := zaplogger.InitLogger(db); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zaplogger.Sync()
	zaplogger.SetLogLevel(cfg.ServerLogLevel)

	zaplogger.Info(config.SingleLine)
	zaplogger.Info(cfg.APIName + " - " + cfg.APIVersion + " initialized")
	zaplogger.Info("Postgres initialized")
	zaplogger.Info("Redis initialized")
	zaplogger.Info(config.SingleLine)

	// Wire repositories and services
	tokens := service.NewTokenManager(cfg.JWTSecret)
	authService := service.NewAuthService(repository.NewUserRepository(db), tokens)
	sessionService := service.NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewPublishedCache(redisClient),
	)

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupLoggerMiddleware(e)

	// Setup routes
	api.SetupRoutes(e, cfg, authService, sessionService, tokens)

	// Setup and start cron jobs
	cronService := service.NewCronService(cfg, sessionService)
	cronService.Start()

	// Start the server
	startServer(e, cfg)
}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	port := cfg.ServerPort
	if port == "" {
		port = "5000"
	}
	zaplogger.Info("SERVER STARTED ON PORT " + port)
	e.Logger.Fatal(e.Start(":" + port))
}
