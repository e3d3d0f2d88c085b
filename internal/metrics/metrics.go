package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission Metrics
var (
	// SubmissionsTotal tracks mood submissions by result
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_submissions_total",
			Help: "Total mood submissions by result (accepted/duplicate/invalid/error)",
		},
		[]string{"result"},
	)

	// SubmissionDuration tracks submit processing latency
	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mood_submission_duration_seconds",
			Help:    "Mood submission processing duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5},
		},
	)

	// GuardReleaseFailures tracks failed guard releases after storage faults
	GuardReleaseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mood_guard_release_failures_total",
			Help: "Failed submission guard releases after a storage fault (user's day slot stays burned until TTL)",
		},
	)
)

// Aggregation Metrics
var (
	// OverallQueriesTotal tracks overall-mood queries by result
	OverallQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_overall_queries_total",
			Help: "Total overall-mood queries by result (ok/empty/error)",
		},
		[]string{"result"},
	)

	// OverallQueryDuration tracks aggregation query latency
	OverallQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mood_overall_query_duration_seconds",
			Help:    "Overall-mood aggregation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
)

// Identity Metrics
var (
	// IdentityTokensMinted tracks new anonymous user ids issued
	IdentityTokensMinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "identity_tokens_minted_total",
			Help: "Total new anonymous user identity tokens minted",
		},
	)
)

// Database Metrics
var (
	// DBQueryDuration tracks database query duration by query name
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// DBErrorsTotal tracks database errors by query name
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total database errors by query",
		},
		[]string{"query"},
	)
)

// Build Information Metrics
var (
	// BuildInfo is a gauge that always returns 1, with build metadata as labels
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "Build information with version, commit, build_time, and go_version labels (value is always 1)",
		},
		[]string{"version", "commit", "build_time", "go_version"},
	)
)

// HTTP Request Metrics
// Note: http_errors_total{type} is provided by the internal/errors package
