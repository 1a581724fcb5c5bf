// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Match.DefaultLimit != 5 {
		t.Errorf("DefaultLimit = %d, want 5", cfg.Match.DefaultLimit)
	}
	if cfg.Match.DefaultScoreCutoff != 70 {
		t.Errorf("DefaultScoreCutoff = %d, want 70", cfg.Match.DefaultScoreCutoff)
	}
	if cfg.Rank.DefaultTopN != 10 {
		t.Errorf("DefaultTopN = %d, want 10", cfg.Rank.DefaultTopN)
	}
	if cfg.Match.CacheSize != 1024 || cfg.Match.CacheTTL != 10*time.Minute {
		t.Errorf("cache = %d/%s, want 1024/10m", cfg.Match.CacheSize, cfg.Match.CacheTTL)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"limit zero", func(c *Config) { c.Match.DefaultLimit = 0 }, "default_limit"},
		{"limit above max", func(c *Config) { c.Match.DefaultLimit = MaxLimit + 1 }, "default_limit"},
		{"cutoff negative", func(c *Config) { c.Match.DefaultScoreCutoff = -1 }, "default_score_cutoff"},
		{"cutoff above max", func(c *Config) { c.Match.DefaultScoreCutoff = 101 }, "default_score_cutoff"},
		{"negative cache size", func(c *Config) { c.Match.CacheSize = -1 }, "cache_size"},
		{"cache without ttl", func(c *Config) { c.Match.CacheTTL = 0 }, "cache_ttl"},
		{"top_n zero", func(c *Config) { c.Rank.DefaultTopN = 0 }, "default_top_n"},
		{"top_n above max", func(c *Config) { c.Rank.DefaultTopN = MaxTopN + 1 }, "default_top_n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidate_DisabledCacheIgnoresTTL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Match.CacheSize = 0
	cfg.Match.CacheTTL = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
