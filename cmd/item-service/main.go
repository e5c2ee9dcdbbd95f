package main

import (
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/server"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/services"
)

const serviceName = "item-service"

func main() {
	logging.Setup(serviceName)

	cfg := config.Load()

	flushSentry := server.InitSentry()
	defer flushSentry()

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.MigrateCatalog(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	pgLogHandler := logging.NewPGHandler(database.DB, serviceName)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.Default().Handler(),
		pgLogHandler,
	)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	itemService := services.NewItemService(database.DB)
	itemHandler := handlers.NewItemHandler(itemService)
	healthHandler := handlers.NewHealthHandler(serviceName, nil)

	app := server.New()
	routes.SetupItem(app, itemHandler, healthHandler)

	server.Run(app, cfg.ItemPort, func() {
		close(cleanupDone)
		pgLogHandler.Stop()
		if err := database.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	})
}
