// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tunematch/internal/tools"
)

// ToolDefinitions returns the function-tool schemas an assistant can call.
func (h *Handler) ToolDefinitions(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), map[string]any{"tools": h.definitions})
}

// ToolCall executes one tool call.
//
// Request: {"id": "call_1", "name": "search_tracks", "arguments": {"query": "..."}}
// Response data: {"call_id", "name", "output", "content"}
func (h *Handler) ToolCall(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var call tools.Call
	if err := decodeBody(w, r, &call); err != nil {
		h.fail(w, r, start, err)
		return
	}

	result, err := h.dispatcher.Dispatch(r.Context(), call)
	if err != nil {
		h.fail(w, r, start, err)
		return
	}

	content, err := result.Content()
	if err != nil {
		h.fail(w, r, start, err)
		return
	}
	respondSuccess(w, r, start, toolCallResponse{Result: result, Content: content})
}

// toolCallResponse adds the encoded output, ready to send back to the
// assistant as the tool message.
type toolCallResponse struct {
	tools.Result
	Content string `json:"content"`
}
