// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a catalog from source, choosing the reader by file extension:
//
//   - .csv                 encoding/csv with a header row
//   - .parquet             DuckDB read_parquet
//   - .duckdb, .db         DuckDB table named by schema.Table
//
// A missing source returns an error wrapping ErrNotFound. Missing columns
// and bad rows return errors wrapping ErrSchema.
//
//nolint:gocritic // hugeParam: Schema passed by value for immutability
func Load(ctx context.Context, source string, schema Schema) (*Catalog, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNotFound)
	}
	info, err := os.Stat(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, source)
		}
		return nil, fmt.Errorf("stat catalog %s: %w", source, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedSource, source)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".csv":
		return LoadCSV(source, schema)
	case ".parquet":
		return LoadParquet(ctx, source, schema)
	case ".duckdb", ".db":
		return LoadDuckDB(ctx, source, schema)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
	}
}
