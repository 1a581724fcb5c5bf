// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a catalog from a CSV file with a header row.
//
//nolint:gocritic // hugeParam: Schema passed by value for immutability
func LoadCSV(path string, schema Schema) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from operator configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return ReadCSV(f, path, schema)
}

// ReadCSV reads a catalog from CSV data. name identifies the source in errors.
//
//nolint:gocritic // hugeParam: Schema passed by value for immutability
func ReadCSV(r io.Reader, name string, schema Schema) (*Catalog, error) {
	schema = schema.withDefaults()

	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		// No header at all: every required column is missing.
		_, err = schema.resolve(name, nil)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read header: %w", ErrSchema, name, err)
	}

	idx, err := schema.resolve(name, header)
	if err != nil {
		return nil, err
	}
	width := idx.width()

	var items []Item
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSchema, name, err)
		}
		if len(record) < width {
			return nil, &RowError{
				Source: name,
				Row:    row,
				Column: "*",
				Reason: fmt.Sprintf("expected at least %d fields, got %d", width, len(record)),
			}
		}

		item := Item{
			ID:     strings.TrimSpace(record[idx.id]),
			Name:   strings.TrimSpace(record[idx.name]),
			Artist: strings.TrimSpace(record[idx.artist]),
		}
		for d, col := range idx.features {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
			if err != nil {
				return nil, &RowError{
					Source: name,
					Row:    row,
					Column: featureColumns[d],
					Reason: fmt.Sprintf("not a number: %q", record[col]),
				}
			}
			item.Features[d] = v
		}
		items = append(items, item)
	}

	return build(name, items, schema.Duplicates)
}
