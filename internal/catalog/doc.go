// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package catalog loads and validates the fixed song catalog.
//
// A catalog is read once at startup from a tabular source and is never
// mutated afterwards, so a *Catalog may be shared by any number of
// goroutines without locking.
//
// # Sources
//
//   - .csv: read with encoding/csv, header row required
//   - .parquet: read through DuckDB's read_parquet
//   - .duckdb / .db: a table inside a DuckDB database file (Schema.Table)
//
// # Required Columns
//
// The id, name and artist columns (names configurable through Schema) plus
// the six audio feature columns:
//
//	danceability, energy, tempo, valence, acousticness, loudness
//
// Columns beyond these are ignored. Row order is preserved as catalog order.
//
// # Errors
//
//   - ErrNotFound: the source does not exist
//   - ErrSchema: required columns are absent (*SchemaError) or a row breaks
//     an item invariant (*RowError)
//   - ErrUnsupportedSource: the file extension has no reader
package catalog
