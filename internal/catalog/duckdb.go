// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // DuckDB driver
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadParquet reads a catalog from a Parquet file using an in-memory DuckDB
// connection.
//
//nolint:gocritic // hugeParam: Schema passed by value for immutability
func LoadParquet(ctx context.Context, path string, schema Schema) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat catalog %s: %w", path, err)
	}

	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf("SELECT * FROM read_parquet('%s')", escapeLiteral(path))
	return queryCatalog(ctx, db, path, query, schema)
}

// LoadDuckDB reads a catalog from the schema's table in a DuckDB database
// file. The database is opened read-only.
//
//nolint:gocritic // hugeParam: Schema passed by value for immutability
func LoadDuckDB(ctx context.Context, path string, schema Schema) (*Catalog, error) {
	schema = schema.withDefaults()

	if !tableNamePattern.MatchString(schema.Table) {
		return nil, fmt.Errorf("%w: invalid table name %q", ErrSchema, schema.Table)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat catalog %s: %w", path, err)
	}

	db, err := sql.Open("duckdb", path+"?access_mode=read_only")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf(`SELECT * FROM "%s"`, schema.Table)
	return queryCatalog(ctx, db, path, query, schema)
}

//nolint:gocritic // hugeParam: Schema passed by value for immutability
func queryCatalog(ctx context.Context, db *sql.DB, name, query string, schema Schema) (*Catalog, error) {
	schema = schema.withDefaults()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog %s: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns of %s: %w", name, err)
	}
	idx, err := schema.resolve(name, cols)
	if err != nil {
		return nil, err
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	var items []Item
	row := 0
	for rows.Next() {
		row++
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s row %d: %w", name, row, err)
		}

		item := Item{
			ID:     strings.TrimSpace(toString(values[idx.id])),
			Name:   strings.TrimSpace(toString(values[idx.name])),
			Artist: strings.TrimSpace(toString(values[idx.artist])),
		}
		for d, col := range idx.features {
			v, ok := toFloat(values[col])
			if !ok {
				return nil, &RowError{
					Source: name,
					Row:    row,
					Column: featureColumns[d],
					Reason: fmt.Sprintf("not a number: %v", values[col]),
				}
			}
			item.Features[d] = v
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", name, err)
	}

	return build(name, items, schema.Duplicates)
}

func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// toFloat converts a scanned DuckDB value to float64. NULL is not a number.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		return f, err == nil
	case interface{ Float64() float64 }:
		// duckdb.Decimal
		f := x.Float64()
		return f, !math.IsNaN(f)
	default:
		return 0, false
	}
}
