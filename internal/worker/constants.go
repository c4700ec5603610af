package worker

import "time"

// Pool defaults
const (
	// DefaultJobTimeout bounds one job execution
	DefaultJobTimeout = 30 * time.Second
)

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
	LogMsgWorkerQueueFull    = "Worker queue full, dropping job"
)

// Log messages for history retention
const (
	LogMsgRetentionCompleted = "History retention completed"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
