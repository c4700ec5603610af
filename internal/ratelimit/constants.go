package ratelimit

import "time"

// Defaults
const (
	// KeyPrefix namespaces limiter counters in Redis
	KeyPrefix = "slotmaster:ratelimit:"

	// DefaultMaxKeys bounds the in-memory limiter's tracked clients
	DefaultMaxKeys = 10_000

	// expiryGrace keeps a Redis window alive a little past its end
	expiryGrace = time.Second
)

// Log Messages
const (
	LogMsgRedisFailOpen = "Rate limiter store unavailable, allowing request"
)
