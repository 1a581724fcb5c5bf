// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package tools exposes the engine to a function-calling assistant.
//
// There are exactly two tools:
//
//   - search_tracks resolves free text to catalog track ids
//   - recommend_songs ranks tracks similar to resolved seed ids
//
// Tool names are parsed into the closed Operation enum and dispatched by a
// switch; there is no handler registry. Definitions returns the JSON schemas
// advertised to the assistant, and Dispatcher.Dispatch executes one call:
//
//	d := tools.NewDispatcher(engine, logger)
//	res, err := d.Dispatch(ctx, tools.Call{
//	    Name:      "search_tracks",
//	    Arguments: json.RawMessage(`{"query":"blinding lights the weeknd"}`),
//	})
//
// Arguments may be given as a JSON object or as a JSON string containing an
// object, which is how chat-completion APIs deliver them.
package tools
