// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package tools

import (
	"github.com/tomtom215/tunematch/internal/recommend"
)

// Definition is a function-tool declaration in chat-completion format.
type Definition struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function describes one callable tool.
type Function struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  Schema `json:"parameters"`
}

// Schema is the JSON Schema subset used for tool parameters.
type Schema struct {
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Properties  map[string]Schema `json:"properties,omitempty"`
	Items       *Schema           `json:"items,omitempty"`
	Required    []string          `json:"required,omitempty"`
	Default     *int              `json:"default,omitempty"`
	Minimum     *int              `json:"minimum,omitempty"`
	Maximum     *int              `json:"maximum,omitempty"`
}

func bound(v int) *int { return &v }

// Definitions returns the declarations of every operation. Defaults are taken
// from cfg so the assistant sees the values the engine will apply.
//
//nolint:gocritic // hugeParam: Config passed by value, read-only
func Definitions(cfg recommend.Config) []Definition {
	defs := make([]Definition, 0, 2)
	for _, op := range Operations() {
		defs = append(defs, Definition{Type: "function", Function: function(op, &cfg)})
	}
	return defs
}

func function(op Operation, cfg *recommend.Config) Function {
	switch op {
	case OpSearchTracks:
		return Function{
			Name:        op.String(),
			Description: "Fuzzy search the song catalog to resolve user-provided song text to track IDs.",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Schema{
					"query": {
						Type:        "string",
						Description: "The user-provided song(s) and optional artists.",
					},
					"limit": {
						Type:    "integer",
						Default: bound(cfg.Match.DefaultLimit),
						Minimum: bound(recommend.MinLimit),
						Maximum: bound(recommend.MaxLimit),
					},
					"score_cutoff": {
						Type:    "integer",
						Default: bound(cfg.Match.DefaultScoreCutoff),
						Minimum: bound(recommend.MinScoreCutoff),
						Maximum: bound(recommend.MaxScoreCutoff),
					},
				},
				Required: []string{"query"},
			},
		}
	case OpRecommendSongs:
		return Function{
			Name:        op.String(),
			Description: "Recommend similar tracks given resolved seed track IDs.",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Schema{
					"track_ids": {
						Type:        "array",
						Items:       &Schema{Type: "string"},
						Description: "Resolved track IDs to seed the recommender.",
					},
					"top_n": {
						Type:    "integer",
						Default: bound(cfg.Rank.DefaultTopN),
						Minimum: bound(recommend.MinTopN),
						Maximum: bound(recommend.MaxTopN),
					},
				},
				Required: []string{"track_ids"},
			},
		}
	default:
		return Function{}
	}
}
