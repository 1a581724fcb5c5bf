// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package features standardizes catalog feature vectors.
//
// A Model is fit once over the whole catalog and records the population
// mean and standard deviation of each dimension. Transform maps a raw vector
// to zero mean and unit variance so that tempo (BPM) and loudness (dB) do
// not dominate the 0-1 features in distance computations.
//
// Dimensions whose standard deviation is effectively zero use a scale of 1:
// every catalog row maps to 0 in that dimension and no NaN is produced.
//
// A fitted Model is immutable and safe for concurrent use.
package features
