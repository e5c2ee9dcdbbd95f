package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshTokenKeyPrefix = "refresh_token:"

// TokenRegistry records the single live refresh token per user. Storing a new
// token supersedes the prior value; concurrent logins race and the last write
// wins, which is accepted behavior.
type TokenRegistry interface {
	Store(ctx context.Context, userID uuid.UUID, token string) error
	Validate(ctx context.Context, userID uuid.UUID, token string) (bool, error)
	Invalidate(ctx context.Context, userID uuid.UUID) error
	InvalidateAll(ctx context.Context, userID uuid.UUID) error
}

// RedisTokenRegistry keeps refresh tokens under refresh_token:<userId> with a
// fixed TTL.
type RedisTokenRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenRegistry(client *redis.Client, ttl time.Duration) *RedisTokenRegistry {
	return &RedisTokenRegistry{client: client, ttl: ttl}
}

func key(userID uuid.UUID) string {
	return refreshTokenKeyPrefix + userID.String()
}

func (r *RedisTokenRegistry) Store(ctx context.Context, userID uuid.UUID, token string) error {
	return r.client.Set(ctx, key(userID), token, r.ttl).Err()
}

// Validate reports whether the stored token for userID equals token exactly.
// No record means false, not an error.
func (r *RedisTokenRegistry) Validate(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	stored, err := r.client.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == token, nil
}

func (r *RedisTokenRegistry) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return r.client.Del(ctx, key(userID)).Err()
}

// InvalidateAll sweeps every refresh-token key for the user. With the one
// record per user scheme this degenerates to deleting that record, but the
// pattern scan keeps stray keys from surviving a key-scheme change.
func (r *RedisTokenRegistry) InvalidateAll(ctx context.Context, userID uuid.UUID) error {
	iter := r.client.Scan(ctx, 0, key(userID)+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
