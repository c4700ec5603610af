package config

import "time"

// Store drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultSQLitePath  = "slotmaster.db"
	DefaultTimezone    = "UTC"

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultTargetLocations = 3
	DefaultMaxLines        = 5

	DefaultRateLimitRequests = 600
	DefaultRateLimitWindow   = time.Minute

	DefaultRetentionInterval = time.Hour

	MaxPort = 65535
)
