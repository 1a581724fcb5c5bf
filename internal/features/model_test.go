// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package features

import (
	"math"
	"testing"

	"github.com/tomtom215/tunematch/internal/catalog"
)

func sampleRows() []catalog.Vector {
	return []catalog.Vector{
		{0.8, 0.7, 120, 0.6, 0.1, -5},
		{0.79, 0.69, 121, 0.59, 0.11, -5.1},
		{0.1, 0.2, 60, 0.1, 0.9, -20},
		{0.5, 0.5, 95, 0.4, 0.5, -9.5},
	}
}

func TestFitRows_MeanAndUnitVariance(t *testing.T) {
	rows := sampleRows()
	m := FitRows(rows)
	if m.Count() != len(rows) {
		t.Fatalf("Count() = %d, want %d", m.Count(), len(rows))
	}

	z := m.Transform(rows)
	for d := 0; d < catalog.Dims; d++ {
		var sum, sumSq float64
		for _, r := range z {
			sum += r[d]
			sumSq += r[d] * r[d]
		}
		mean := sum / float64(len(z))
		variance := sumSq/float64(len(z)) - mean*mean
		if math.Abs(mean) > 1e-9 {
			t.Errorf("dim %d: standardized mean = %g, want 0", d, mean)
		}
		if math.Abs(variance-1) > 1e-9 {
			t.Errorf("dim %d: standardized variance = %g, want 1", d, variance)
		}
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	rows := sampleRows()
	m := FitRows(rows)
	back := m.Inverse(m.Transform(rows))
	for i := range rows {
		for d := range rows[i] {
			if diff := math.Abs(back[i][d] - rows[i][d]); diff > 1e-9*math.Max(1, math.Abs(rows[i][d])) {
				t.Errorf("row %d dim %d: round trip %g, want %g", i, d, back[i][d], rows[i][d])
			}
		}
	}
}

func TestFitRows_ZeroVariance(t *testing.T) {
	rows := []catalog.Vector{
		{0.5, 0.1, 120, 0.3, 0.2, -7},
		{0.5, 0.9, 120, 0.6, 0.4, -7},
		{0.5, 0.4, 120, 0.9, 0.8, -7},
	}
	m := FitRows(rows)

	for _, r := range m.Transform(rows) {
		for d, x := range r {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				t.Fatalf("dim %d: got non-finite %g", d, x)
			}
		}
		for _, d := range []catalog.Feature{catalog.Danceability, catalog.Tempo, catalog.Loudness} {
			if r[d] != 0 {
				t.Errorf("%s: constant column standardized to %g, want 0", d, r[d])
			}
		}
	}
	if m.Scale()[catalog.Tempo] != 1 {
		t.Errorf("zero-variance scale = %g, want 1", m.Scale()[catalog.Tempo])
	}

	back := m.Inverse(m.Transform(rows))
	for i := range rows {
		if back[i][catalog.Tempo] != 120 {
			t.Errorf("row %d: round trip tempo = %g, want 120", i, back[i][catalog.Tempo])
		}
	}
}

func TestFitRows_ZeroVarianceInexactMean(t *testing.T) {
	// 0.1, 0.7 and -7.3 have no exact binary form, so their computed
	// means differ from the column values by rounding.
	rows := []catalog.Vector{
		{0.1, 0.7, 118, 0.3, 0.2, -7.3},
		{0.1, 0.7, 121, 0.6, 0.4, -7.3},
		{0.1, 0.7, 124, 0.9, 0.8, -7.3},
		{0.1, 0.7, 99, 0.2, 0.1, -7.3},
	}
	m := FitRows(rows)
	constant := []catalog.Feature{catalog.Danceability, catalog.Energy, catalog.Loudness}

	for i, r := range m.Transform(rows) {
		for _, d := range constant {
			if r[d] != 0 {
				t.Errorf("row %d %s: standardized to %g, want exactly 0", i, d, r[d])
			}
		}
		if r[catalog.Tempo] == 0 {
			t.Errorf("row %d: varying tempo standardized to 0", i)
		}
	}

	back := m.Inverse(m.Transform(rows))
	for i := range rows {
		for _, d := range constant {
			if back[i][d] != m.Mean()[d] {
				t.Errorf("row %d %s: inverse = %g, want mean %g", i, d, back[i][d], m.Mean()[d])
			}
			if math.Abs(back[i][d]-rows[i][d]) > 1e-12 {
				t.Errorf("row %d %s: inverse = %g, want about %g", i, d, back[i][d], rows[i][d])
			}
		}
	}
}

func TestFitRows_SingleRowAndEmpty(t *testing.T) {
	one := FitRows([]catalog.Vector{{1, 2, 3, 4, 5, 6}})
	if got := one.TransformRow(catalog.Vector{1, 2, 3, 4, 5, 6}); got != (catalog.Vector{}) {
		t.Errorf("single row standardized to %v, want zeros", got)
	}

	empty := FitRows(nil)
	v := catalog.Vector{1, 2, 3, 4, 5, 6}
	if got := empty.TransformRow(v); got != v {
		t.Errorf("empty model TransformRow = %v, want identity", got)
	}
}

func TestTransform_Deterministic(t *testing.T) {
	rows := sampleRows()
	a := FitRows(rows).Transform(rows)
	b := FitRows(rows).Transform(rows)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("row %d differs between fits: %v vs %v", i, a[i], b[i])
		}
	}
	if rows[0] != sampleRows()[0] {
		t.Error("Transform modified its input")
	}
}

func TestFit_Catalog(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Name: "A", Features: catalog.Vector{0, 0, 100, 0, 0, -10}},
		{ID: "b", Name: "B", Features: catalog.Vector{1, 1, 140, 1, 1, -2}},
	}
	cat, err := catalog.New(items, catalog.DuplicatesReject)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	m := Fit(cat)
	if m.Mean()[catalog.Tempo] != 120 {
		t.Errorf("tempo mean = %g, want 120", m.Mean()[catalog.Tempo])
	}
	if m.Std()[catalog.Tempo] != 20 {
		t.Errorf("tempo std = %g, want 20", m.Std()[catalog.Tempo])
	}
}
