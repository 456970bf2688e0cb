// Package cache manages the Redis client used for rate limiting.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis connects to Redis at the given address. The client is
// optional: on connection failure the app continues without rate
// limiting rather than refusing to start.
func InitRedis(addr string, logger *slog.Logger) {
	c := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, continuing without rate limiting", slog.String("error", err.Error()))
		client = nil
		return
	}

	client = c
	logger.Info("Redis connected successfully")
}

// GetClient returns the shared Redis client, or nil if Redis is unavailable.
func GetClient() *redis.Client {
	return client
}

// Close closes the shared Redis client if one was established.
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
