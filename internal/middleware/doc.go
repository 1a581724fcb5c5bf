// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package middleware provides HTTP middleware shared by the API router.

All middleware use the chi signature func(http.Handler) http.Handler.

  - RequestID: reads or generates X-Request-ID and stores it in the context
    for logging.Ctx
  - Metrics: Prometheus request counters and latency, labelled by chi route
    pattern so path parameters do not create new series
  - AccessLog: one debug line per request with status and duration

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Metrics)
*/
package middleware
