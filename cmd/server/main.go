// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package main is the entry point for the Tunematch server.
//
// Startup order:
//
//  1. Configuration (koanf: defaults, config.yaml, environment)
//  2. Logging
//  3. Catalog load from CSV, Parquet or DuckDB; a missing or malformed
//     catalog is fatal
//  4. Engine: feature model, fuzzy index and ranker
//  5. HTTP router
//  6. Supervisor tree with the HTTP server and cache maintenance
//
// SIGINT and SIGTERM cancel the tree, which shuts the HTTP server down
// gracefully.
//
//	CATALOG_PATH=spotify_songs.csv HTTP_PORT=8080 ./server
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/tunematch/internal/api"
	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/config"
	"github.com/tomtom215/tunematch/internal/logging"
	"github.com/tomtom215/tunematch/internal/metrics"
	"github.com/tomtom215/tunematch/internal/recommend"
	"github.com/tomtom215/tunematch/internal/supervisor"
	"github.com/tomtom215/tunematch/internal/supervisor/services"
	"github.com/tomtom215/tunematch/internal/tools"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.LogConfig())

	logging.Info().
		Str("version", version).
		Str("catalog", cfg.Catalog.Path).
		Msg("Starting Tunematch")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}

	engine, err := recommend.NewEngine(cat, cfg.EngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create engine")
	}

	dispatcher := tools.NewDispatcher(engine, logging.WithComponent("tools"))
	router := api.NewRouter(api.NewHandler(engine, dispatcher), &api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin; set CORS_ORIGINS in production")
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	if cfg.Matching.CacheSize > 0 {
		tree.AddEngineService(services.NewCacheMaintenanceService(engine, cfg.Matching.CacheTTL, logging.WithComponent("supervisor")))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	logging.Info().Msg("Tunematch stopped")
}

// loadCatalog loads and times the configured catalog.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	start := time.Now()
	cat, err := catalog.Load(ctx, cfg.Catalog.Path, cfg.CatalogSchema())

	items := 0
	if cat != nil {
		items = cat.Len()
	}
	metrics.RecordCatalogLoad(cfg.Catalog.Path, items, time.Since(start), err)
	if errors.Is(err, catalog.ErrDuplicateID) {
		return nil, fmt.Errorf("%w (set CATALOG_DUPLICATES=first to keep the first row per id)", err)
	}
	if err != nil {
		return nil, err
	}

	logging.Info().
		Int("items", cat.Len()).
		Str("format", metrics.SourceFormat(cfg.Catalog.Path)).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")
	return cat, nil
}
