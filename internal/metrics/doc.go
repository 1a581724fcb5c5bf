// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package metrics provides Prometheus metrics collection and export.

All collectors are registered with the default registry through promauto at
package initialization and are exposed by the API at /metrics.

# Available Metrics

Catalog:
  - tunematch_catalog_items: items in the loaded catalog (gauge)
  - tunematch_catalog_display_labels: distinct resolver labels (gauge)
  - tunematch_catalog_load_duration_seconds: load time (histogram), label format
  - tunematch_catalog_load_errors_total: failed loads (counter), label format

Resolver:
  - tunematch_resolve_requests_total: calls by outcome (ok, empty, invalid, error)
  - tunematch_resolve_duration_seconds: call latency (histogram)
  - tunematch_resolve_results: candidates per call (histogram)
  - tunematch_resolve_cache_hits_total / tunematch_resolve_cache_misses_total

Ranker:
  - tunematch_recommend_requests_total: calls by outcome
  - tunematch_recommend_duration_seconds: call latency (histogram)
  - tunematch_recommend_unknown_seeds_total: seed ids not in the catalog

Tools:
  - tunematch_tool_calls_total: labels tool, outcome

HTTP:
  - api_requests_total: labels method, endpoint, status_code
  - api_request_duration_seconds: labels method, endpoint
  - api_active_requests: in-flight requests (gauge)
  - api_rate_limit_hits_total: label endpoint

System:
  - app_info: labels version, go_version
  - app_uptime_seconds

# Usage

	start := time.Now()
	matches, err := engine.Resolve(ctx, req)
	metrics.RecordResolve(metrics.Outcome(len(matches), err, isValidation), len(matches), time.Since(start))

The Record* helpers are safe for concurrent use.
*/
package metrics
