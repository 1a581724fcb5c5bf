// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tunematch/internal/cache"
	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/features"
	"github.com/tomtom215/tunematch/internal/fuzzy"
	"github.com/tomtom215/tunematch/internal/logging"
	"github.com/tomtom215/tunematch/internal/metrics"
	"github.com/tomtom215/tunematch/internal/validation"
)

// Engine serves resolve and recommend calls over one loaded catalog.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	cat    *catalog.Catalog
	model  *features.Model
	index  *fuzzy.Index
	ranker *Ranker

	// nil when caching is disabled
	cache *cache.LRU[[]fuzzy.Candidate]

	resolveCount   atomic.Int64
	recommendCount atomic.Int64
}

// NewEngine fits the feature model, builds the resolver index and the ranker
// for cat.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("nil catalog")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start := time.Now()
	model := features.Fit(cat)

	e := &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		cat:    cat,
		model:  model,
		index:  fuzzy.BuildIndex(cat),
		ranker: NewRanker(cat, model),
	}
	if cfg.Match.CacheSize > 0 {
		e.cache = cache.NewLRU[[]fuzzy.Candidate](cfg.Match.CacheSize, cfg.Match.CacheTTL)
	}

	metrics.CatalogItems.Set(float64(cat.Len()))
	metrics.CatalogDisplays.Set(float64(e.index.Len()))

	e.logger.Info().
		Str("source", cat.Source()).
		Int("items", cat.Len()).
		Int("displays", e.index.Len()).
		Bool("cache_enabled", e.cache != nil).
		Dur("build_time", time.Since(start)).
		Msg("engine ready")

	return e, nil
}

// Resolve returns catalog tracks whose display text best matches req.Query,
// highest score first. An empty query yields an empty result.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Resolve(ctx context.Context, req ResolveRequest) ([]fuzzy.Candidate, error) {
	start := time.Now()
	e.resolveCount.Add(1)

	out, err := e.resolve(ctx, req)
	metrics.RecordResolve(metrics.Outcome(len(out), err, IsValidation), len(out), time.Since(start))
	return out, err
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) resolve(ctx context.Context, req ResolveRequest) ([]fuzzy.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, verr)
	}

	limit := req.Limit
	if limit == 0 {
		limit = e.config.Match.DefaultLimit
	}
	cutoff := e.config.Match.DefaultScoreCutoff
	if req.ScoreCutoff != nil {
		cutoff = *req.ScoreCutoff
	}

	logger := e.requestLogger(ctx)

	normalized := fuzzy.Normalize(req.Query)
	if normalized == "" {
		logger.Debug().Msg("empty query")
		return []fuzzy.Candidate{}, nil
	}

	key := resolveCacheKey(normalized, limit, cutoff)
	if cached, ok := e.cachedMatches(key); ok {
		logger.Debug().Str("query", normalized).Int("matches", len(cached)).Msg("resolve cache hit")
		return cached, nil
	}

	out := e.index.Search(req.Query, limit, cutoff)
	e.storeMatches(key, out)

	logger.Debug().
		Str("query", normalized).
		Int("limit", limit).
		Int("score_cutoff", cutoff).
		Int("matches", len(out)).
		Msg("resolve complete")

	return out, nil
}

// Recommend returns up to req.TopN non-seed tracks most similar to the seeds.
// When no seed id is in the catalog the result is empty.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req RecommendRequest) ([]Result, error) {
	start := time.Now()
	e.recommendCount.Add(1)

	out, unknown, err := e.recommend(ctx, req)
	metrics.RecordRecommend(metrics.Outcome(len(out), err, IsValidation), unknown, time.Since(start))
	return out, err
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) recommend(ctx context.Context, req RecommendRequest) ([]Result, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrValidation, verr)
	}

	topN := req.TopN
	if topN == 0 {
		topN = e.config.Rank.DefaultTopN
	}

	seeds, unknown := e.ranker.ResolveSeeds(req.TrackIDs)
	out := e.ranker.RankSeeds(seeds, topN)

	logger := e.requestLogger(ctx)
	logger.Debug().
		Int("seeds", len(seeds)).
		Int("unknown_seeds", unknown).
		Int("top_n", topN).
		Int("returned", len(out)).
		Msg("recommend complete")

	return out, unknown, nil
}

// Track returns the catalog item with the given id.
func (e *Engine) Track(id string) (catalog.Item, bool) {
	return e.cat.Lookup(id)
}

// Stats returns catalog and activity counters.
func (e *Engine) Stats() Stats {
	mean, std := e.model.Mean(), e.model.Std()
	feats := make([]FeatureStats, catalog.Dims)
	for d := range feats {
		feats[d] = FeatureStats{
			Name: catalog.Feature(d).String(),
			Mean: mean[d],
			Std:  std[d],
		}
	}
	stats := Stats{
		Source:     e.cat.Source(),
		Items:      e.cat.Len(),
		Displays:   e.index.Len(),
		Features:   feats,
		Resolves:   e.resolveCount.Load(),
		Recommends: e.recommendCount.Load(),
	}
	if e.cache != nil {
		cs := e.cache.Stats()
		stats.CacheHits = cs.Hits
		stats.CacheMisses = cs.Misses
	}
	return stats
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// PurgeExpired drops expired resolver cache entries and returns how many were
// removed.
func (e *Engine) PurgeExpired() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}

// requestLogger adds the request id carried by ctx to the engine logger.
func (e *Engine) requestLogger(ctx context.Context) zerolog.Logger {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return e.logger.With().Str("request_id", id).Logger()
	}
	return e.logger
}

func resolveCacheKey(normalized string, limit, cutoff int) string {
	return strconv.Itoa(limit) + ":" + strconv.Itoa(cutoff) + ":" + normalized
}

// cachedMatches returns a copy of a memoized result.
func (e *Engine) cachedMatches(key string) ([]fuzzy.Candidate, bool) {
	if e.cache == nil {
		return nil, false
	}
	v, ok := e.cache.Get(key)
	metrics.RecordResolveCache(ok)
	if !ok {
		return nil, false
	}
	out := make([]fuzzy.Candidate, len(v))
	copy(out, v)
	return out, true
}

func (e *Engine) storeMatches(key string, matches []fuzzy.Candidate) {
	if e.cache == nil {
		return
	}
	stored := make([]fuzzy.Candidate, len(matches))
	copy(stored, matches)
	e.cache.Add(key, stored)
}
