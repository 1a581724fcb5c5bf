// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package fuzzy

import (
	"github.com/tomtom215/tunematch/internal/cache"
	"github.com/tomtom215/tunematch/internal/catalog"
)

// Candidate is one resolver match.
type Candidate struct {
	Display string `json:"display"`
	TrackID string `json:"track_id"`
	Score   int    `json:"score"`
}

type entry struct {
	display string
	trackID string
	text    prepared
}

// Index maps display labels to catalog ids and scores queries against them.
type Index struct {
	entries   []entry
	byDisplay map[string]int
}

// BuildIndex derives the display index from cat in catalog order.
// When several items share a display label, the first one wins.
func BuildIndex(cat *catalog.Catalog) *Index {
	ix := &Index{
		entries:   make([]entry, 0, cat.Len()),
		byDisplay: make(map[string]int, cat.Len()),
	}
	for i := 0; i < cat.Len(); i++ {
		item := cat.At(i)
		display := item.Display()
		if _, dup := ix.byDisplay[display]; dup {
			continue
		}
		ix.byDisplay[display] = len(ix.entries)
		ix.entries = append(ix.entries, entry{
			display: display,
			trackID: item.ID,
			text:    prepare(display),
		})
	}
	return ix
}

// Len returns the number of distinct display labels.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Lookup returns the track id a display label resolves to.
func (ix *Index) Lookup(display string) (string, bool) {
	i, ok := ix.byDisplay[display]
	if !ok {
		return "", false
	}
	return ix.entries[i].trackID, true
}

type hit struct {
	pos   int
	score int
}

// rankBelow orders hits by score, then by earlier index position.
func rankBelow(a, b hit) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.pos > b.pos
}

// Search returns up to limit candidates scoring at least cutoff against
// query, highest score first and ties in index order. The result is never
// nil.
func (ix *Index) Search(query string, limit, cutoff int) []Candidate {
	q := prepare(query)
	if q.empty() || limit <= 0 || len(ix.entries) == 0 {
		return []Candidate{}
	}

	top := cache.NewTopK(limit, rankBelow)
	for i := range ix.entries {
		s := toScore(wratio(&q, &ix.entries[i].text))
		if s < cutoff {
			continue
		}
		top.Offer(hit{pos: i, score: s})
	}

	hits := top.Sorted()
	out := make([]Candidate, len(hits))
	for i, h := range hits {
		e := &ix.entries[h.pos]
		out[i] = Candidate{Display: e.display, TrackID: e.trackID, Score: h.score}
	}
	return out
}
