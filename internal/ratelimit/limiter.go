package ratelimit

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/SlotMaster_Go/internal/clock"
	"github.com/osse101/SlotMaster_Go/internal/logger"
)

// Limiter counts requests per key in fixed windows
type Limiter interface {
	// Allow records one request for key and reports whether it is within the limit
	Allow(ctx context.Context, key string) (bool, error)
}

// windowStart returns the unix second the window containing now began at
func windowStart(now time.Time, window time.Duration) int64 {
	w := int64(window / time.Second)
	if w <= 0 {
		w = 1
	}
	sec := now.Unix()
	return sec - sec%w
}

// RedisLimiter shares counters across server instances through Redis
type RedisLimiter struct {
	client redis.Cmdable
	clock  clock.Clock
	limit  int64
	window time.Duration
}

// NewRedisLimiter creates a limiter allowing limit requests per window for every key
func NewRedisLimiter(client redis.Cmdable, clk clock.Clock, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, clock: clk, limit: int64(limit), window: window}
}

// Allow fails open: when Redis cannot be reached the request is allowed and the error returned
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := KeyPrefix + key + ":" + strconv.FormatInt(windowStart(l.clock.Now(), l.window), 10)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, bucket)
	pipe.Expire(ctx, bucket, l.window+expiryGrace)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRedisFailOpen, "error", err)
		return true, err
	}
	return count.Val() <= l.limit, nil
}

type counter struct {
	window int64
	count  int64
}

// MemoryLimiter keeps per-process counters in an expiring LRU
type MemoryLimiter struct {
	mu       sync.Mutex
	counters *expirable.LRU[string, *counter]
	clock    clock.Clock
	limit    int64
	window   time.Duration
}

// NewMemoryLimiter creates an in-process limiter tracking at most maxKeys clients
func NewMemoryLimiter(clk clock.Clock, limit int, window time.Duration, maxKeys int) *MemoryLimiter {
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}
	return &MemoryLimiter{
		counters: expirable.NewLRU[string, *counter](maxKeys, nil, window),
		clock:    clk,
		limit:    int64(limit),
		window:   window,
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	current := windowStart(l.clock.Now(), l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.counters.Get(key)
	if !ok || c.window != current {
		c = &counter{window: current}
		l.counters.Add(key, c)
	}
	c.count++
	return c.count <= l.limit, nil
}

// Len reports how many clients are being tracked
func (l *MemoryLimiter) Len() int {
	return l.counters.Len()
}
