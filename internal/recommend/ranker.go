// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"math"

	"github.com/tomtom215/tunematch/internal/cache"
	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/features"
)

// Ranker scores catalog tracks against a taste vector built from seed tracks.
// It holds the standardized catalog and is read-only after construction.
type Ranker struct {
	cat   *catalog.Catalog
	rows  []catalog.Vector
	norms []float64
}

// NewRanker standardizes every catalog row with model.
func NewRanker(cat *catalog.Catalog, model *features.Model) *Ranker {
	rows := model.Transform(cat.FeatureRows())
	norms := make([]float64, len(rows))
	for i := range rows {
		norms[i] = norm(&rows[i])
	}
	return &Ranker{cat: cat, rows: rows, norms: norms}
}

// scored is a candidate during selection.
type scored struct {
	pos int
	sim float64
}

// rankBelow orders candidates by similarity, then by earlier catalog position.
func rankBelow(a, b scored) bool {
	if a.sim != b.sim {
		return a.sim < b.sim
	}
	return a.pos > b.pos
}

// Recommend returns up to topN non-seed tracks most similar to the seeds.
// Unknown ids are ignored. The result is never nil.
func (r *Ranker) Recommend(seedIDs []string, topN int) []Result {
	seeds, _ := r.ResolveSeeds(seedIDs)
	return r.RankSeeds(seeds, topN)
}

// ResolveSeeds maps seed ids to distinct catalog positions in first-seen
// order and counts the ids that are not in the catalog.
func (r *Ranker) ResolveSeeds(seedIDs []string) (positions []int, unknown int) {
	seen := make(map[int]struct{}, len(seedIDs))
	for _, id := range seedIDs {
		i, ok := r.cat.IndexOf(id)
		if !ok {
			unknown++
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		positions = append(positions, i)
	}
	return positions, unknown
}

// RankSeeds ranks every track outside seeds against the mean of the seed rows.
func (r *Ranker) RankSeeds(seeds []int, topN int) []Result {
	if len(seeds) == 0 || topN <= 0 {
		return []Result{}
	}

	taste := r.taste(seeds)
	tasteNorm := norm(&taste)

	exclude := make(map[int]struct{}, len(seeds))
	for _, i := range seeds {
		exclude[i] = struct{}{}
	}

	top := cache.NewTopK(topN, rankBelow)
	for i := range r.rows {
		if _, skip := exclude[i]; skip {
			continue
		}
		top.Offer(scored{pos: i, sim: cosine(&taste, tasteNorm, &r.rows[i], r.norms[i])})
	}

	hits := top.Sorted()
	out := make([]Result, len(hits))
	for i, h := range hits {
		item := r.cat.At(h.pos)
		out[i] = Result{
			TrackID:    item.ID,
			Name:       item.Name,
			Artist:     item.Artist,
			Similarity: h.sim,
		}
	}
	return out
}

// taste is the component-wise mean of the standardized seed rows.
func (r *Ranker) taste(seeds []int) catalog.Vector {
	var t catalog.Vector
	for _, i := range seeds {
		for d := range t {
			t[d] += r.rows[i][d]
		}
	}
	n := float64(len(seeds))
	for d := range t {
		t[d] /= n
	}
	return t
}

func norm(v *catalog.Vector) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// cosine is defined as 0 when either vector has zero norm and is clamped to
// [-1, 1] against rounding.
func cosine(a *catalog.Vector, na float64, b *catalog.Vector, nb float64) float64 {
	if na == 0 || nb == 0 {
		return 0
	}
	var dot float64
	for d := range a {
		dot += a[d] * b[d]
	}
	s := dot / (na * nb)
	switch {
	case s > 1:
		return 1
	case s < -1:
		return -1
	}
	return s
}
