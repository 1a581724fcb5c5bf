// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"errors"
)

// ErrValidation is returned when request arguments fall outside their ranges.
// The wrapped *validation.RequestValidationError carries per-field details.
var ErrValidation = errors.New("invalid arguments")

// IsValidation reports whether err is an argument rejection.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// ResolveRequest asks for catalog tracks matching free text.
type ResolveRequest struct {
	// Query is the free-text description, e.g. "song a by x".
	Query string `json:"query" validate:"max=1000"`

	// Limit caps the number of matches. Zero selects the configured default.
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=20"`

	// ScoreCutoff is the minimum score (0-100). Nil selects the configured default.
	ScoreCutoff *int `json:"score_cutoff,omitempty" validate:"omitempty,min=0,max=100"`
}

// RecommendRequest asks for tracks similar to a set of seeds.
type RecommendRequest struct {
	// TrackIDs are the seed track ids. Unknown ids are ignored.
	TrackIDs []string `json:"track_ids"`

	// TopN caps the number of recommendations. Zero selects the configured default.
	TopN int `json:"top_n,omitempty" validate:"omitempty,min=1,max=50"`
}

// Result is one recommended track.
type Result struct {
	TrackID    string  `json:"track_id"`
	Name       string  `json:"name"`
	Artist     string  `json:"artist"`
	Similarity float64 `json:"similarity"`
}

// FeatureStats describes the fitted standardization of one feature.
type FeatureStats struct {
	Name string  `json:"name"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Stats summarizes the loaded catalog and engine activity.
type Stats struct {
	Source      string         `json:"source"`
	Items       int            `json:"items"`
	Displays    int            `json:"displays"`
	Features    []FeatureStats `json:"features"`
	Resolves    int64          `json:"resolves"`
	Recommends  int64          `json:"recommends"`
	CacheHits   int64          `json:"cache_hits"`
	CacheMisses int64          `json:"cache_misses"`
}
