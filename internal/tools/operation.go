// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package tools

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTool is returned for a tool name outside the two operations.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidArguments is returned when call arguments are not a JSON object
	// of the expected shape.
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

// Operation is one of the tools the dispatcher can execute.
type Operation int

const (
	// OpSearchTracks resolves free text to track ids.
	OpSearchTracks Operation = iota + 1
	// OpRecommendSongs recommends tracks similar to seed ids.
	OpRecommendSongs
)

// Tool names as advertised to the assistant.
const (
	NameSearchTracks   = "search_tracks"
	NameRecommendSongs = "recommend_songs"
)

// String returns the tool name.
func (o Operation) String() string {
	switch o {
	case OpSearchTracks:
		return NameSearchTracks
	case OpRecommendSongs:
		return NameRecommendSongs
	default:
		return "unknown"
	}
}

// Operations returns every operation in definition order.
func Operations() []Operation {
	return []Operation{OpSearchTracks, OpRecommendSongs}
}

// ParseOperation maps a tool name to its operation.
func ParseOperation(name string) (Operation, error) {
	switch name {
	case NameSearchTracks:
		return OpSearchTracks, nil
	case NameRecommendSongs:
		return OpRecommendSongs, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
}
