// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/tunematch/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *chiMiddleware
}

// NewRouter creates a router. A nil config uses DefaultMiddlewareConfig.
func NewRouter(handler *Handler, config *MiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: newChiMiddleware(config),
	}
}

// Setup returns the HTTP handler with all routes registered.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(router.chiMiddleware.cors)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.Metrics)
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Post("/resolve", router.handler.Resolve)
		r.Post("/recommend", router.handler.Recommend)
		r.Get("/tools", router.handler.ToolDefinitions)
		r.Post("/tools/call", router.handler.ToolCall)
		r.Get("/tracks/{id}", router.handler.Track)
		r.Get("/catalog", router.handler.Catalog)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, time.Now(), http.StatusNotFound, &APIError{
		Code:    ErrCodeNotFound,
		Message: "route not found",
	}, nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, time.Now(), http.StatusMethodNotAllowed, &APIError{
		Code:    "METHOD_NOT_ALLOWED",
		Message: "method not allowed",
	}, nil)
}
