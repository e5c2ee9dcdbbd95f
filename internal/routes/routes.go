// Package routes holds the explicit method+path tables for each service.
package routes

import (
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAuth(app *fiber.App, cfg *config.Config, auth *handlers.AuthHandler, health *handlers.HealthHandler) {
	app.Get("/health", health.Check)

	g := app.Group("/auth")
	g.Post("/register", auth.Register)
	g.Post("/login", auth.Login)
	g.Post("/refresh", auth.Refresh)
	g.Get("/profile", middleware.JWTProtected(cfg), auth.Profile)
	g.Post("/logout", middleware.JWTProtected(cfg), auth.Logout)
}

func SetupCategory(app *fiber.App, category *handlers.CategoryHandler, health *handlers.HealthHandler) {
	app.Get("/health", health.Check)

	g := app.Group("/categories")
	g.Post("/", category.Create)
	g.Get("/", category.FindAll)
	g.Get("/slug/:slug", category.FindBySlug)
	g.Get("/:id", category.FindOne)
	g.Patch("/:id", category.Update)
	g.Delete("/:id", category.Remove)
}

func SetupItem(app *fiber.App, item *handlers.ItemHandler, health *handlers.HealthHandler) {
	app.Get("/health", health.Check)

	g := app.Group("/items")
	g.Post("/", item.Create)
	g.Get("/", item.FindAll)
	g.Get("/slug/:slug", item.FindBySlug)
	g.Get("/category/:categoryId", item.FindByCategory)
	g.Get("/:id", item.FindOne)
	g.Patch("/:id", item.Update)
	g.Delete("/:id", item.Remove)
}
