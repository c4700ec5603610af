package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// ServiceName is attached to every log record
	ServiceName = "slotmaster"

	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSlotMaster  = "Starting SlotMaster"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Store and Limiter
// =============================================================================

const (
	// RedisPingTimeout bounds the startup probe of the limiter backend
	RedisPingTimeout = 3 * time.Second

	// Worker pool sizing for background maintenance
	MaintenanceWorkers   = 1
	MaintenanceQueueSize = 4
)

const (
	LogMsgStoreOpened        = "Store opened"
	LogMsgLimiterRedis       = "Rate limiter backed by Redis"
	LogMsgLimiterMemory      = "Rate limiter kept in memory"
	LogMsgRedisUnreachable   = "Redis unreachable at startup, limiter will fail open until it recovers"
	LogMsgRetentionScheduled = "History retention scheduled"
	LogMsgRetentionDisabled  = "History retention disabled"

	ErrMsgUnknownStoreDriver = "unknown store driver"
	ErrMsgFailedOpenStore    = "failed to open store"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingMaintenance  = "Stopping background maintenance..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgLimiterCloseFailed   = "Rate limiter backend close failed"
)
