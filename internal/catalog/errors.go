// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when the catalog source does not exist.
	ErrNotFound = errors.New("catalog source not found")

	// ErrSchema is returned when the source is missing required columns
	// or a row violates an item invariant.
	ErrSchema = errors.New("catalog schema violation")

	// ErrUnsupportedSource is returned for source types with no reader.
	ErrUnsupportedSource = errors.New("unsupported catalog source")

	// ErrDuplicateID is returned under DuplicatesReject when an id repeats.
	// It is always reported together with ErrSchema.
	ErrDuplicateID = errors.New("duplicate track id")
)

// SchemaError reports required columns absent from a source.
type SchemaError struct {
	Source  string
	Missing []string
}

// Error implements error.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog %s: missing required columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

// Unwrap makes errors.Is(err, ErrSchema) true.
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// RowError reports a data row that breaks an item invariant.
type RowError struct {
	Source string
	Row    int // 1-based data row, header excluded
	Column string
	Reason string
	// Kind optionally narrows the violation, e.g. ErrDuplicateID.
	Kind error
}

// Error implements error.
func (e *RowError) Error() string {
	return fmt.Sprintf("catalog %s: row %d: column %s: %s", e.Source, e.Row, e.Column, e.Reason)
}

// Unwrap makes errors.Is(err, ErrSchema) true, and errors.Is(err, e.Kind)
// when Kind is set.
func (e *RowError) Unwrap() []error {
	if e.Kind != nil {
		return []error{ErrSchema, e.Kind}
	}
	return []error{ErrSchema}
}
