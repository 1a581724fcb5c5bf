// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package recommend ranks catalog tracks by audio-feature similarity to a set
// of seed tracks and exposes the two call-style operations used by the API,
// the tool dispatcher and the CLI.
//
// # Ranking
//
// Every catalog row is standardized with a features.Model fitted on the whole
// catalog. The taste vector is the mean of the standardized seed rows, and each
// non-seed track is scored by cosine similarity against it:
//
//	sim(t, x) = (t . x) / (|t| |x|)    (0 when either norm is zero)
//
// Results are ordered by similarity, highest first, with ties broken by
// catalog position. Unknown seed ids are dropped; when no seed resolves the
// result is empty.
//
// # Engine
//
// Engine owns the shared Catalog, Model, fuzzy Index and Ranker. All of them
// are read-only after construction, so the engine is safe for concurrent use.
// Arguments are validated with go-playground/validator and rejected, never
// clamped:
//
//	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), logger)
//	matches, err := engine.Resolve(ctx, recommend.ResolveRequest{Query: "song a by x"})
//	recs, err := engine.Recommend(ctx, recommend.RecommendRequest{TrackIDs: []string{"a"}})
//
// Resolver results are memoized in a TTL-bounded LRU keyed by the normalized
// query, limit and cutoff.
package recommend
