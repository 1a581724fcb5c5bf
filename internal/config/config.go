// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package config

import (
	"time"

	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/logging"
	"github.com/tomtom215/tunematch/internal/recommend"
)

// Config holds all service configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Matching  MatchingConfig  `koanf:"matching"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig locates the song catalog and names its columns.
type CatalogConfig struct {
	Path         string `koanf:"path"`
	Table        string `koanf:"table"` // DuckDB database files only
	IDColumn     string `koanf:"id_column"`
	NameColumn   string `koanf:"name_column"`
	ArtistColumn string `koanf:"artist_column"`
	Duplicates   string `koanf:"duplicates"` // reject or first
}

// MatchingConfig holds fuzzy resolver defaults.
type MatchingConfig struct {
	DefaultLimit       int           `koanf:"default_limit"`
	DefaultScoreCutoff int           `koanf:"default_score_cutoff"`
	CacheSize          int           `koanf:"cache_size"`
	CacheTTL           time.Duration `koanf:"cache_ttl"`
}

// RecommendConfig holds ranker defaults.
type RecommendConfig struct {
	DefaultTopN int `koanf:"default_top_n"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CatalogSchema returns the loader schema for the configured columns.
func (c *Config) CatalogSchema() catalog.Schema {
	return catalog.Schema{
		IDColumn:     c.Catalog.IDColumn,
		NameColumn:   c.Catalog.NameColumn,
		ArtistColumn: c.Catalog.ArtistColumn,
		Table:        c.Catalog.Table,
		Duplicates:   catalog.DuplicatePolicy(c.Catalog.Duplicates),
	}
}

// EngineConfig returns the engine configuration.
func (c *Config) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Match: recommend.MatchConfig{
			DefaultLimit:       c.Matching.DefaultLimit,
			DefaultScoreCutoff: c.Matching.DefaultScoreCutoff,
			CacheSize:          c.Matching.CacheSize,
			CacheTTL:           c.Matching.CacheTTL,
		},
		Rank: recommend.RankConfig{
			DefaultTopN: c.Recommend.DefaultTopN,
		},
	}
}

// LogConfig returns the logger configuration.
func (c *Config) LogConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}
