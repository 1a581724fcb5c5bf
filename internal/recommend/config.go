// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"fmt"
	"time"
)

// Argument bounds shared by validation tags, tool definitions and config checks.
const (
	MinLimit       = 1
	MaxLimit       = 20
	MinScoreCutoff = 0
	MaxScoreCutoff = 100
	MinTopN        = 1
	MaxTopN        = 50
	MaxQueryLength = 1000
)

// Config contains all configuration for the engine.
type Config struct {
	// Match contains resolver defaults and caching parameters.
	Match MatchConfig `json:"match"`

	// Rank contains ranker defaults.
	Rank RankConfig `json:"rank"`
}

// MatchConfig configures the fuzzy resolver.
type MatchConfig struct {
	// DefaultLimit is used when a request leaves limit unset.
	DefaultLimit int `json:"default_limit"`

	// DefaultScoreCutoff is used when a request leaves score_cutoff unset.
	DefaultScoreCutoff int `json:"default_score_cutoff"`

	// CacheSize is the maximum number of memoized resolver results.
	// Zero disables the cache.
	CacheSize int `json:"cache_size"`

	// CacheTTL is how long a memoized result stays valid.
	CacheTTL time.Duration `json:"cache_ttl"`
}

// RankConfig configures the similarity ranker.
type RankConfig struct {
	// DefaultTopN is used when a request leaves top_n unset.
	DefaultTopN int `json:"default_top_n"`
}

// DefaultConfig returns the defaults advertised by the tool definitions.
func DefaultConfig() *Config {
	return &Config{
		Match: MatchConfig{
			DefaultLimit:       5,
			DefaultScoreCutoff: 70,
			CacheSize:          1024,
			CacheTTL:           10 * time.Minute,
		},
		Rank: RankConfig{
			DefaultTopN: 10,
		},
	}
}

// Validate checks that every default lies inside its argument range.
func (c *Config) Validate() error {
	if c.Match.DefaultLimit < MinLimit || c.Match.DefaultLimit > MaxLimit {
		return fmt.Errorf("match.default_limit must be between %d and %d, got %d",
			MinLimit, MaxLimit, c.Match.DefaultLimit)
	}
	if c.Match.DefaultScoreCutoff < MinScoreCutoff || c.Match.DefaultScoreCutoff > MaxScoreCutoff {
		return fmt.Errorf("match.default_score_cutoff must be between %d and %d, got %d",
			MinScoreCutoff, MaxScoreCutoff, c.Match.DefaultScoreCutoff)
	}
	if c.Match.CacheSize < 0 {
		return fmt.Errorf("match.cache_size must be non-negative, got %d", c.Match.CacheSize)
	}
	if c.Match.CacheSize > 0 && c.Match.CacheTTL <= 0 {
		return fmt.Errorf("match.cache_ttl must be positive when the cache is enabled, got %s", c.Match.CacheTTL)
	}
	if c.Rank.DefaultTopN < MinTopN || c.Rank.DefaultTopN > MaxTopN {
		return fmt.Errorf("rank.default_top_n must be between %d and %d, got %d",
			MinTopN, MaxTopN, c.Rank.DefaultTopN)
	}
	return nil
}
