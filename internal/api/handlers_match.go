// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tunematch/internal/recommend"
	"github.com/tomtom215/tunematch/internal/tools"
)

// Resolve matches free text against the catalog.
//
// Request: {"query": "night drive", "limit": 5, "score_cutoff": 70}
// Response data: {"matches": [{"display", "track_id", "score"}]}
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req recommend.ResolveRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, start, err)
		return
	}

	matches, err := h.engine.Resolve(r.Context(), req)
	if err != nil {
		h.fail(w, r, start, err)
		return
	}
	respondSuccess(w, r, start, tools.SearchOutput{Matches: matches})
}

// Recommend ranks the catalog against a set of seed track ids.
//
// Request: {"track_ids": ["id1", "id2"], "top_n": 10}
// Response data: {"recommendations": [{"track_id", "name", "artist", "similarity"}]}
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req recommend.RecommendRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, start, err)
		return
	}

	results, err := h.engine.Recommend(r.Context(), req)
	if err != nil {
		h.fail(w, r, start, err)
		return
	}
	respondSuccess(w, r, start, tools.RecommendOutput{Recommendations: results})
}

// Track returns one catalog item.
func (h *Handler) Track(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	item, ok := h.engine.Track(id)
	if !ok {
		respondError(w, r, start, http.StatusNotFound, &APIError{
			Code:    ErrCodeNotFound,
			Message: "track not found",
			Details: map[string]any{"track_id": id},
		}, nil)
		return
	}
	respondSuccess(w, r, start, item)
}

// Catalog returns catalog size, fitted feature statistics and counters.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), h.engine.Stats())
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, start time.Time, err error) {
	status, apiErr := classifyError(err)
	respondError(w, r, start, status, apiErr, err)
}
