package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameDailyResultUpserts      = "daily_result_upserts_total"
	MetricNameDailyResultStaleWrites  = "daily_result_stale_writes_total"
	MetricNameDailyResultUpsertRetry  = "daily_result_upsert_retries_total"
	MetricNameSnapshotsSaved          = "game_state_snapshots_saved_total"
	MetricNameIdentityEvents          = "identity_events_total"
	MetricNameRateLimitRejections     = "rate_limit_rejections_total"
	MetricNameRetentionRecordsDeleted = "retention_records_deleted_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextDailyResultUpserts      = "Daily result upserts by outcome"
	HelpTextDailyResultStaleWrites  = "Daily result writes whose counter was below the stored value"
	HelpTextDailyResultUpsertRetry  = "Daily result upserts retried after losing an insert race"
	HelpTextSnapshotsSaved          = "Game state snapshots saved"
	HelpTextIdentityEvents          = "Registration and login outcomes"
	HelpTextRateLimitRejections     = "Requests rejected by the rate limiter"
	HelpTextRetentionRecordsDeleted = "Daily results removed by the retention job"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelAction = "action"
	LabelField  = "field"
	LabelEvent  = "event"
)

// Label values
const (
	FieldSpinsCount = "spins_count"
	FieldBiggestWin = "biggest_win"

	EventRegistered      = "registered"
	EventRegisterDenied  = "register_duplicate"
	EventLoggedIn        = "logged_in"
	EventLoginFailed     = "login_failed"
	EventGuestCreated    = "guest_created"
	EventSharedIDCreated = "shared_id_created"

	// PathUnmatched labels requests that matched no route, keeping label cardinality bounded
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
