// Package kvstore provides the Redis client used for refresh-token bookkeeping.
package kvstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

// Connect opens a Redis client and verifies the connection with a short ping.
func Connect(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.Info("redis connected", "addr", cfg.RedisAddr)
	return client, nil
}
