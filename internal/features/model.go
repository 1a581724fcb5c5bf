// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package features

import (
	"math"

	"github.com/tomtom215/tunematch/internal/catalog"
)

// zeroVarianceTolerance is the relative threshold under which a standard
// deviation is treated as zero.
const zeroVarianceTolerance = 10 * 2.220446049250313e-16

// Model holds per-dimension standardization statistics.
type Model struct {
	mean  catalog.Vector
	std   catalog.Vector
	scale catalog.Vector
	// constant marks zero-variance dimensions, which standardize to 0.
	constant [catalog.Dims]bool
	n        int
}

// Fit computes standardization statistics over every item in cat.
func Fit(cat *catalog.Catalog) *Model {
	return FitRows(cat.FeatureRows())
}

// FitRows computes standardization statistics over rows.
// An empty input yields an identity model (mean 0, scale 1).
func FitRows(rows []catalog.Vector) *Model {
	m := &Model{n: len(rows)}
	for d := 0; d < catalog.Dims; d++ {
		m.scale[d] = 1
	}
	if len(rows) == 0 {
		return m
	}

	n := float64(len(rows))
	for _, r := range rows {
		for d, x := range r {
			m.mean[d] += x
		}
	}
	for d := range m.mean {
		m.mean[d] /= n
	}

	// Second pass over deviations avoids the cancellation of sum-of-squares.
	var ss catalog.Vector
	for _, r := range rows {
		for d, x := range r {
			dev := x - m.mean[d]
			ss[d] += dev * dev
		}
	}
	for d := range ss {
		m.std[d] = math.Sqrt(ss[d] / n)
		if m.std[d] >= zeroVarianceTolerance*math.Max(1, math.Abs(m.mean[d])) {
			m.scale[d] = m.std[d]
		} else {
			m.constant[d] = true
		}
	}

	return m
}

// TransformRow returns the standardized form of v. Zero-variance
// dimensions are always 0.
func (m *Model) TransformRow(v catalog.Vector) catalog.Vector {
	var out catalog.Vector
	for d, x := range v {
		if m.constant[d] {
			continue
		}
		out[d] = (x - m.mean[d]) / m.scale[d]
	}
	return out
}

// Transform standardizes every row. The input is not modified.
func (m *Model) Transform(rows []catalog.Vector) []catalog.Vector {
	out := make([]catalog.Vector, len(rows))
	for i, r := range rows {
		out[i] = m.TransformRow(r)
	}
	return out
}

// InverseRow maps a standardized vector back to raw feature space.
// Zero-variance dimensions map to the mean.
func (m *Model) InverseRow(v catalog.Vector) catalog.Vector {
	var out catalog.Vector
	for d, x := range v {
		if m.constant[d] {
			out[d] = m.mean[d]
			continue
		}
		out[d] = x*m.scale[d] + m.mean[d]
	}
	return out
}

// Inverse maps standardized rows back to raw feature space.
func (m *Model) Inverse(rows []catalog.Vector) []catalog.Vector {
	out := make([]catalog.Vector, len(rows))
	for i, r := range rows {
		out[i] = m.InverseRow(r)
	}
	return out
}

// Mean returns the per-dimension mean.
func (m *Model) Mean() catalog.Vector { return m.mean }

// Std returns the per-dimension population standard deviation.
func (m *Model) Std() catalog.Vector { return m.std }

// Scale returns the per-dimension divisor applied by Transform.
func (m *Model) Scale() catalog.Vector { return m.scale }

// Count returns the number of rows the model was fit on.
func (m *Model) Count() int { return m.n }
