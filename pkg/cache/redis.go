// Package cache holds the shared Redis client.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/cartinhas/config"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = redis.Nil

// RDB is the shared client. Nil until Connect succeeds; helpers are
// nil-safe so code paths work without Redis in tests.
var RDB *redis.Client

// Connect dials Redis using REDIS_ADDR and REDIS_PASSWORD.
func Connect(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis connect: %w", err)
	}

	RDB = client
	return nil
}

// Close releases the shared client.
func Close() error {
	if RDB == nil {
		return nil
	}
	err := RDB.Close()
	RDB = nil
	return err
}

// Get reads a string value. Returns ErrNotFound for missing keys.
func Get(ctx context.Context, key string) (string, error) {
	if RDB == nil {
		return "", ErrNotFound
	}
	return RDB.Get(ctx, key).Result()
}

// Set stores a value with a TTL. ttl <= 0 means no expiry.
func Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}
	return RDB.Set(ctx, key, value, ttl).Err()
}

// Forget removes a key.
func Forget(ctx context.Context, key string) error {
	if RDB == nil {
		return nil
	}
	return RDB.Del(ctx, key).Err()
}

// Has reports whether a key exists.
func Has(ctx context.Context, key string) bool {
	if RDB == nil {
		return false
	}
	n, err := RDB.Exists(ctx, key).Result()
	return err == nil && n > 0
}
