// Package server provides the Fiber bootstrap shared by all four binaries.
package server

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/response"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// New builds a Fiber app with the shared middleware stack.
func New() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	if sentryInitialized {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	return app
}

var sentryInitialized bool

// InitSentry enables error tracking when SENTRY_DSN is set. The returned
// function flushes pending events and is safe to defer unconditionally.
func InitSentry() func() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return func() {}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		EnableTracing:    true,
		TracesSampleRate: 0.2,
		Environment:      os.Getenv("APP_ENV"),
	})
	if err != nil {
		slog.Error("sentry init failed", "error", err)
		return func() {}
	}

	sentryInitialized = true
	return func() { sentry.Flush(2 * time.Second) }
}

// Run starts the app and blocks until SIGINT/SIGTERM, then shuts down
// gracefully and calls cleanup.
func Run(app *fiber.App, port string, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", port)
		if err := app.Listen(":" + port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if cleanup != nil {
		cleanup()
	}

	slog.Info("server stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		switch e.Code {
		case fiber.StatusNotFound:
			return response.Fail(c, apperr.NotFound("Route not found"))
		case fiber.StatusMethodNotAllowed:
			return response.Fail(c, apperr.Validation("Method not allowed", nil))
		}
	}

	slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return response.Fail(c, apperr.Internal("Internal server error", err))
}
