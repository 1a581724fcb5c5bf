// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tunematch/internal/fuzzy"
	"github.com/tomtom215/tunematch/internal/metrics"
	"github.com/tomtom215/tunematch/internal/recommend"
)

// Engine is the subset of recommend.Engine the dispatcher needs.
type Engine interface {
	Resolve(ctx context.Context, req recommend.ResolveRequest) ([]fuzzy.Candidate, error)
	Recommend(ctx context.Context, req recommend.RecommendRequest) ([]recommend.Result, error)
}

// Call is one tool invocation requested by the assistant.
type Call struct {
	// ID is echoed in the result. Generated when empty.
	ID string `json:"id,omitempty"`

	// Name is the tool name.
	Name string `json:"name"`

	// Arguments is a JSON object, or a JSON string holding one.
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Result is the outcome of one call.
type Result struct {
	CallID string `json:"call_id"`
	Name   string `json:"name"`
	Output any    `json:"output"`
}

// SearchOutput is the output of search_tracks.
type SearchOutput struct {
	Matches []fuzzy.Candidate `json:"matches"`
}

// RecommendOutput is the output of recommend_songs.
type RecommendOutput struct {
	Recommendations []recommend.Result `json:"recommendations"`
}

// ErrorOutput replaces the output of a failed call in DispatchAll.
type ErrorOutput struct {
	Error string `json:"error"`
}

// Content returns the output encoded as the JSON text of a tool message.
func (r *Result) Content() (string, error) {
	b, err := json.Marshal(r.Output)
	if err != nil {
		return "", fmt.Errorf("encode %s output: %w", r.Name, err)
	}
	return string(b), nil
}

// Dispatcher executes tool calls against an engine. It is safe for
// concurrent use.
type Dispatcher struct {
	engine Engine
	logger zerolog.Logger
}

// NewDispatcher creates a dispatcher for engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewDispatcher(engine Engine, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		engine: engine,
		logger: logger.With().Str("component", "tools").Logger(),
	}
}

// Dispatch executes one call. Errors wrap ErrUnknownTool, ErrInvalidArguments
// or recommend.ErrValidation.
//
//nolint:gocritic // hugeParam: Call passed by value for immutability
func (d *Dispatcher) Dispatch(ctx context.Context, call Call) (Result, error) {
	if call.ID == "" {
		call.ID = "call_" + uuid.New().String()
	}

	op, err := ParseOperation(call.Name)
	if err != nil {
		metrics.RecordToolCall("unknown", metrics.OutcomeInvalid)
		d.logger.Warn().Str("call_id", call.ID).Str("tool", call.Name).Msg("unknown tool")
		return Result{}, err
	}

	var (
		output any
		n      int
	)
	switch op {
	case OpSearchTracks:
		var req recommend.ResolveRequest
		if err = decodeArguments(call.Arguments, &req); err == nil {
			var matches []fuzzy.Candidate
			matches, err = d.engine.Resolve(ctx, req)
			output, n = SearchOutput{Matches: matches}, len(matches)
		}
	case OpRecommendSongs:
		var req recommend.RecommendRequest
		if err = decodeArguments(call.Arguments, &req); err == nil {
			var recs []recommend.Result
			recs, err = d.engine.Recommend(ctx, req)
			output, n = RecommendOutput{Recommendations: recs}, len(recs)
		}
	}

	metrics.RecordToolCall(op.String(), metrics.Outcome(n, err, isRejection))
	if err != nil {
		d.logger.Debug().Err(err).Str("call_id", call.ID).Str("tool", op.String()).Msg("tool call failed")
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	d.logger.Debug().Str("call_id", call.ID).Str("tool", op.String()).Int("results", n).Msg("tool call complete")
	return Result{CallID: call.ID, Name: op.String(), Output: output}, nil
}

// DispatchAll executes calls in order. A failed call does not stop the batch;
// its output is an ErrorOutput naming the failure.
func (d *Dispatcher) DispatchAll(ctx context.Context, calls []Call) []Result {
	results := make([]Result, 0, len(calls))
	for i := range calls {
		call := calls[i]
		if call.ID == "" {
			call.ID = "call_" + uuid.New().String()
		}
		res, err := d.Dispatch(ctx, call)
		if err != nil {
			res = Result{CallID: call.ID, Name: call.Name, Output: ErrorOutput{Error: err.Error()}}
		}
		results = append(results, res)
	}
	return results
}

// IsClientError reports whether err was caused by the call itself rather
// than by the engine.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownTool) || isRejection(err)
}

func isRejection(err error) bool {
	return errors.Is(err, ErrInvalidArguments) || recommend.IsValidation(err)
}

// decodeArguments accepts an object, a string holding an object, null or
// nothing. Unknown fields are ignored.
func decodeArguments(raw json.RawMessage, v any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		}
		raw = bytes.TrimSpace([]byte(s))
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] != '{' {
		return fmt.Errorf("%w: arguments must be a JSON object", ErrInvalidArguments)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	return nil
}
