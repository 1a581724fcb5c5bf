// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package fuzzy resolves free-text song mentions to catalog entries.
//
// # Index
//
// BuildIndex derives one display label per item ("{name} - {artist}", or
// "{name}" without an artist) in catalog order. Identical labels collapse to
// a single entry that resolves to the first item carrying it.
//
// # Scoring
//
// WRatio scores two strings on 0-100 by combining several heuristics after
// normalization (compatibility decomposition, accent stripping, lower-case,
// punctuation folded to spaces):
//
//   - Ratio: normalized indel similarity of the full strings
//   - PartialRatio: best Ratio of the shorter string against any window of
//     the longer one
//   - TokenSortRatio / TokenSetRatio: Ratio over sorted words and over the
//     word intersection and differences
//
// Strings of similar length are scored with Ratio and the token ratios;
// strings of very different length additionally use the partial ratios,
// scaled down the larger the length gap.
//
// # Search
//
// Index.Search returns at most limit candidates whose integer score is at
// least the cutoff, best first, ties in index order. A query that
// normalizes to nothing matches nothing.
//
// An Index is immutable after construction and safe for concurrent use.
package fuzzy
