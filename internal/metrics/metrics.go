package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	DailyResultUpserts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDailyResultUpserts,
			Help: HelpTextDailyResultUpserts,
		},
		[]string{LabelAction},
	)

	DailyResultStaleWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDailyResultStaleWrites,
			Help: HelpTextDailyResultStaleWrites,
		},
		[]string{LabelField},
	)

	DailyResultUpsertRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyResultUpsertRetry,
			Help: HelpTextDailyResultUpsertRetry,
		},
	)

	SnapshotsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsSaved,
			Help: HelpTextSnapshotsSaved,
		},
	)

	IdentityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIdentityEvents,
			Help: HelpTextIdentityEvents,
		},
		[]string{LabelEvent},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitRejections,
			Help: HelpTextRateLimitRejections,
		},
	)

	RetentionRecordsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRetentionRecordsDeleted,
			Help: HelpTextRetentionRecordsDeleted,
		},
	)
)
