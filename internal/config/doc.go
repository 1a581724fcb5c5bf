// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package config loads service configuration with Koanf v2.

# Configuration Sources

Sources are layered, later ones overriding earlier ones:

 1. Built-in defaults (structs provider)
 2. Optional YAML file: CONFIG_PATH, else config.yaml, config.yml or
    /etc/tunematch/config.yaml
 3. Environment variables (explicit mapping; unmapped variables are ignored)

# Environment Variables

Catalog:
  - CATALOG_PATH: CSV, Parquet or DuckDB file (default: spotify_songs.csv)
  - CATALOG_TABLE: table read from DuckDB files (default: songs)
  - CATALOG_ID_COLUMN, CATALOG_NAME_COLUMN, CATALOG_ARTIST_COLUMN:
    column names (default: track_id, track_name, track_artist)
  - CATALOG_DUPLICATES: reject or first (default: reject). Datasets with
    repeated track ids, such as the public spotify_songs.csv, fail to load
    under reject; set first to keep the first row for each id.

Matching:
  - MATCH_DEFAULT_LIMIT: matches per query when unset (default: 5)
  - MATCH_DEFAULT_SCORE_CUTOFF: minimum score when unset (default: 70)
  - MATCH_CACHE_SIZE: memoized queries, 0 disables (default: 1024)
  - MATCH_CACHE_TTL: memoized query lifetime (default: 10m)

Recommend:
  - RECOMMEND_DEFAULT_TOP_N: recommendations when unset (default: 10)

Server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8080)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS (default: 100), RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)

Logging:
  - LOG_LEVEL (default: info), LOG_FORMAT (default: json), LOG_CALLER
    (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("configuration")
	}
	logging.Init(cfg.LogConfig())
	cat, err := catalog.Load(ctx, cfg.Catalog.Path, cfg.CatalogSchema())
*/
package config
