// Package redis dials the cache backend.
package redis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient opens a client for the given address and pings it once, so a
// misconfigured cache surfaces at startup instead of on the first request.
func NewRedisClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Warn("redis ping failed", "addr", addr, "error", err)
		return nil, fmt.Errorf("dial redis at %s: %w", addr, err)
	}

	slog.Info("redis ready", "addr", addr)
	return rdb, nil
}
