package handlers

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	service string
	redis   *redis.Client
}

// NewHealthHandler reports the service's dependency status; pass a nil redis
// client for services that do not use one.
func NewHealthHandler(service string, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{service: service, redis: redisClient}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := fiber.Map{
		"service": h.service,
		"db":      "ok",
	}

	if err := database.Ping(); err != nil {
		status["db"] = "unhealthy: " + err.Error()
	}

	if h.redis != nil {
		status["redis"] = "ok"
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.redis.Ping(ctx).Err(); err != nil {
			status["redis"] = "unhealthy: " + err.Error()
		}
	}

	return response.Success(c, fiber.StatusOK, h.service+" is running", status)
}
