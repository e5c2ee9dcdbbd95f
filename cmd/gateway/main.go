package main

import (
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/gateway"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/response"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/server"
	"github.com/gofiber/fiber/v2"
)

const serviceName = "gateway"

func main() {
	logging.Setup(serviceName)

	cfg := config.Load()

	flushSentry := server.InitSentry()
	defer flushSentry()

	app := server.New()
	app.Use(middleware.CORS(cfg))

	app.Get("/health", func(c *fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "API Gateway is running", fiber.Map{
			"service": serviceName,
		})
	})

	gateway.Mount(app, "auth", gateway.Upstream{Name: "Auth", Target: cfg.AuthServiceURL})
	gateway.Mount(app, "categories", gateway.Upstream{Name: "Category", Target: cfg.CategoryServiceURL})
	gateway.Mount(app, "items", gateway.Upstream{Name: "Item", Target: cfg.ItemServiceURL})

	server.Run(app, cfg.GatewayPort, nil)
}
