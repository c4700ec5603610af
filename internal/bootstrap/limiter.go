package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/SlotMaster_Go/internal/clock"
	"github.com/osse101/SlotMaster_Go/internal/config"
	"github.com/osse101/SlotMaster_Go/internal/ratelimit"
)

// NewLimiter picks the Redis limiter when REDIS_ADDR is set and the in-memory one otherwise.
// The returned closer releases the Redis client and is nil for the in-memory limiter.
func NewLimiter(ctx context.Context, cfg *config.Config, clk clock.Clock) (ratelimit.Limiter, io.Closer) {
	if cfg.RedisAddr == "" {
		slog.Info(LogMsgLimiterMemory, "limit", cfg.RateLimitRequests, "window", cfg.RateLimitWindow)
		return ratelimit.NewMemoryLimiter(clk, cfg.RateLimitRequests, cfg.RateLimitWindow, ratelimit.DefaultMaxKeys), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, RedisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn(LogMsgRedisUnreachable, "addr", cfg.RedisAddr, "error", err)
	}

	slog.Info(LogMsgLimiterRedis, "addr", cfg.RedisAddr, "limit", cfg.RateLimitRequests, "window", cfg.RateLimitWindow)
	return ratelimit.NewRedisLimiter(client, clk, cfg.RateLimitRequests, cfg.RateLimitWindow), client
}
