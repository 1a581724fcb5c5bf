// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"strings"
)

// Schema maps source columns onto catalog fields.
type Schema struct {
	// IDColumn holds the unique track identifier.
	// Default: track_id
	IDColumn string

	// NameColumn holds the track title.
	// Default: track_name
	NameColumn string

	// ArtistColumn holds the artist name.
	// Default: track_artist
	ArtistColumn string

	// Table is the table read from DuckDB database files.
	// Ignored for CSV and Parquet sources.
	// Default: songs
	Table string

	// Duplicates selects the repeated-id policy.
	// Default: reject
	Duplicates DuplicatePolicy
}

// DefaultSchema returns the column layout of the Spotify songs dataset.
func DefaultSchema() Schema {
	return Schema{
		IDColumn:     "track_id",
		NameColumn:   "track_name",
		ArtistColumn: "track_artist",
		Table:        "songs",
		Duplicates:   DuplicatesReject,
	}
}

// withDefaults fills empty fields from DefaultSchema.
//
//nolint:gocritic // hugeParam: value receiver returns a modified copy
func (s Schema) withDefaults() Schema {
	d := DefaultSchema()
	if s.IDColumn == "" {
		s.IDColumn = d.IDColumn
	}
	if s.NameColumn == "" {
		s.NameColumn = d.NameColumn
	}
	if s.ArtistColumn == "" {
		s.ArtistColumn = d.ArtistColumn
	}
	if s.Table == "" {
		s.Table = d.Table
	}
	if s.Duplicates == "" {
		s.Duplicates = d.Duplicates
	}
	return s
}

// columnIndex holds the positions of the required columns in a source row.
type columnIndex struct {
	id       int
	name     int
	artist   int
	features [Dims]int
}

// resolve locates every required column in header.
// Header names are compared after trimming whitespace and a UTF-8 BOM.
//
//nolint:gocritic // hugeParam: Schema is small and read-only here
func (s Schema) resolve(source string, header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	var (
		idx     columnIndex
		missing []string
	)

	find := func(name string) int {
		i, ok := pos[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	idx.id = find(s.IDColumn)
	idx.name = find(s.NameColumn)
	idx.artist = find(s.ArtistColumn)
	for d := range featureColumns {
		idx.features[d] = find(featureColumns[d])
	}

	if len(missing) > 0 {
		return columnIndex{}, &SchemaError{Source: source, Missing: missing}
	}
	return idx, nil
}

// width returns the minimum row length that contains every required column.
func (idx *columnIndex) width() int {
	w := idx.id
	for _, i := range []int{idx.name, idx.artist} {
		if i > w {
			w = i
		}
	}
	for _, i := range idx.features {
		if i > w {
			w = i
		}
	}
	return w + 1
}
