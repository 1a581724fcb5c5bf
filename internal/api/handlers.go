// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/fuzzy"
	"github.com/tomtom215/tunematch/internal/recommend"
	"github.com/tomtom215/tunematch/internal/tools"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Engine is the part of recommend.Engine the handlers use.
type Engine interface {
	Resolve(ctx context.Context, req recommend.ResolveRequest) ([]fuzzy.Candidate, error)
	Recommend(ctx context.Context, req recommend.RecommendRequest) ([]recommend.Result, error)
	Track(id string) (catalog.Item, bool)
	Stats() recommend.Stats
	Config() recommend.Config
}

// Handler serves the API endpoints.
type Handler struct {
	engine      Engine
	dispatcher  *tools.Dispatcher
	definitions []tools.Definition
	startTime   time.Time
}

// NewHandler creates a handler over engine. Tool calls go through dispatcher.
func NewHandler(engine Engine, dispatcher *tools.Dispatcher) *Handler {
	return &Handler{
		engine:      engine,
		dispatcher:  dispatcher,
		definitions: tools.Definitions(engine.Config()),
		startTime:   time.Now(),
	}
}

// decodeBody decodes a JSON body into v. Unknown fields are ignored.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: empty body", errInvalidJSON)
		}
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}
