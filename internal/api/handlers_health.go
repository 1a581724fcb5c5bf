// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"net/http"
	"time"
)

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 200 once a non-empty catalog is loaded and 503
// otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.engine.Stats()
	if stats.Items == 0 {
		respondError(w, r, start, http.StatusServiceUnavailable, &APIError{
			Code:    ErrCodeNotReady,
			Message: "catalog is empty",
		}, nil)
		return
	}

	respondSuccess(w, r, start, map[string]any{
		"ready":  true,
		"items":  stats.Items,
		"source": stats.Source,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}
