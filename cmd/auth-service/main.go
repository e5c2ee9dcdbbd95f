package main

import (
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/kvstore"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/server"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/services"
)

const serviceName = "auth-service"

func main() {
	logging.Setup(serviceName)

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	flushSentry := server.InitSentry()
	defer flushSentry()

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.MigrateAuth(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	redisClient, err := kvstore.Connect(cfg)
	if err != nil {
		slog.Error("redis connection failed", "error", err)
		os.Exit(1)
	}

	// ERROR+ logs also land in the system_logs table.
	pgLogHandler := logging.NewPGHandler(database.DB, serviceName)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.Default().Handler(),
		pgLogHandler,
	)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	tokenService := services.NewTokenService(cfg)
	registry := services.NewRedisTokenRegistry(redisClient, cfg.JWTRefreshExpiry)
	authService := services.NewAuthService(database.DB, tokenService, registry)

	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(serviceName, redisClient)

	app := server.New()
	routes.SetupAuth(app, cfg, authHandler, healthHandler)

	server.Run(app, cfg.AuthPort, func() {
		close(cleanupDone)
		pgLogHandler.Stop()
		if err := redisClient.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
		if err := database.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	})
}
