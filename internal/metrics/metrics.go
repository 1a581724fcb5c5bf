// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package metrics

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// Catalog Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tunematch_catalog_items",
			Help: "Number of items in the loaded catalog",
		},
	)

	CatalogDisplays = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tunematch_catalog_display_labels",
			Help: "Number of distinct display labels in the resolver index",
		},
	)

	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tunematch_catalog_load_duration_seconds",
			Help:    "Duration of catalog loads in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"format"},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunematch_catalog_load_errors_total",
			Help: "Total number of failed catalog loads",
		},
		[]string{"format"},
	)

	// Resolver Metrics
	ResolveRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunematch_resolve_requests_total",
			Help: "Total number of resolve calls",
		},
		[]string{"outcome"},
	)

	ResolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tunematch_resolve_duration_seconds",
			Help:    "Duration of resolve calls in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	ResolveResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tunematch_resolve_results",
			Help:    "Number of candidates returned per resolve call",
			Buckets: []float64{0, 1, 2, 5, 10, 20},
		},
	)

	ResolveCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tunematch_resolve_cache_hits_total",
			Help: "Total number of resolver cache hits",
		},
	)

	ResolveCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tunematch_resolve_cache_misses_total",
			Help: "Total number of resolver cache misses",
		},
	)

	// Ranker Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunematch_recommend_requests_total",
			Help: "Total number of recommend calls",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tunematch_recommend_duration_seconds",
			Help:    "Duration of recommend calls in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendUnknownSeeds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tunematch_recommend_unknown_seeds_total",
			Help: "Total number of seed ids dropped because they are not in the catalog",
		},
	)

	// Tool Dispatch Metrics
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunematch_tool_calls_total",
			Help: "Total number of tool calls dispatched",
		},
		[]string{"tool", "outcome"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// SourceFormat returns the label used for a catalog source path.
func SourceFormat(source string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(source)), ".")
	switch ext {
	case "csv", "parquet", "duckdb":
		return ext
	case "db":
		return "duckdb"
	default:
		return "other"
	}
}

// RecordCatalogLoad records a catalog load attempt.
func RecordCatalogLoad(source string, items int, duration time.Duration, err error) {
	format := SourceFormat(source)
	CatalogLoadDuration.WithLabelValues(format).Observe(duration.Seconds())
	if err != nil {
		CatalogLoadErrors.WithLabelValues(format).Inc()
		return
	}
	CatalogItems.Set(float64(items))
}

// RecordResolve records a resolve call.
func RecordResolve(outcome string, results int, duration time.Duration) {
	ResolveRequestsTotal.WithLabelValues(outcome).Inc()
	ResolveDuration.Observe(duration.Seconds())
	if outcome == OutcomeOK || outcome == OutcomeEmpty {
		ResolveResults.Observe(float64(results))
	}
}

// RecordResolveCache records a resolver cache lookup.
func RecordResolveCache(hit bool) {
	if hit {
		ResolveCacheHits.Inc()
	} else {
		ResolveCacheMisses.Inc()
	}
}

// RecordRecommend records a recommend call.
func RecordRecommend(outcome string, unknownSeeds int, duration time.Duration) {
	RecommendRequestsTotal.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
	if unknownSeeds > 0 {
		RecommendUnknownSeeds.Add(float64(unknownSeeds))
	}
}

// RecordToolCall records a dispatched tool call.
func RecordToolCall(tool, outcome string) {
	ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// Outcome classifies a call result for the outcome label. isValidation
// reports whether err is an argument rejection.
func Outcome(results int, err error, isValidation func(error) bool) string {
	switch {
	case err == nil && results == 0:
		return OutcomeEmpty
	case err == nil:
		return OutcomeOK
	case isValidation != nil && isValidation(err):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
