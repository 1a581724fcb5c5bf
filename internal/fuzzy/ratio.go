// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package fuzzy

import (
	"math"
	"math/bits"
	"strings"
)

const (
	// tokenScale down-weights token-based ratios against the plain ratio.
	tokenScale = 0.95

	// Length ratios at which partial matching kicks in and is scaled further.
	partialLengthRatio   = 1.5
	longPartialLenRatio  = 8.0
	partialScale         = 0.9
	longPartialScaleDown = 0.6
)

// WRatio returns the weighted similarity of a and b on 0-100.
func WRatio(a, b string) int {
	pa, pb := prepare(a), prepare(b)
	return toScore(wratio(&pa, &pb))
}

// Ratio returns the normalized indel similarity of the normalized strings.
func Ratio(a, b string) float64 {
	return ratio([]rune(Normalize(a)), []rune(Normalize(b)))
}

// PartialRatio returns the best Ratio between the shorter normalized string
// and any same-length window of the longer one.
func PartialRatio(a, b string) float64 {
	return partialRatio([]rune(Normalize(a)), []rune(Normalize(b)))
}

// TokenSortRatio returns the Ratio of the strings with their words sorted.
func TokenSortRatio(a, b string) float64 {
	pa, pb := prepare(a), prepare(b)
	return tokenSortRatio(&pa, &pb)
}

// TokenSetRatio compares the shared words against each side's remainder.
func TokenSetRatio(a, b string) float64 {
	pa, pb := prepare(a), prepare(b)
	return tokenSetRatio(&pa, &pb)
}

func toScore(x float64) int {
	s := int(math.Round(x))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func wratio(a, b *prepared) float64 {
	if a.empty() || b.empty() {
		return 0
	}

	la, lb := float64(len(a.text)), float64(len(b.text))
	lenRatio := math.Max(la, lb) / math.Min(la, lb)

	best := ratio(a.text, b.text)
	if lenRatio < partialLengthRatio {
		tok := math.Max(tokenSetRatio(a, b), tokenSortRatio(a, b))
		return math.Max(best, tok*tokenScale)
	}

	scale := partialScale
	if lenRatio >= longPartialLenRatio {
		scale = longPartialScaleDown
	}

	best = math.Max(best, partialRatio(a.text, b.text)*scale)
	return math.Max(best, partialTokenRatio(a, b)*tokenScale*scale)
}

// ratio is 100 * 2*LCS / (len(a)+len(b)).
func ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	return 100 * float64(2*lcsLength(a, b)) / float64(total)
}

func tokenSortRatio(a, b *prepared) float64 {
	if a.empty() || b.empty() {
		return 0
	}
	return ratio(a.sorted, b.sorted)
}

func tokenSetRatio(a, b *prepared) float64 {
	if len(a.set) == 0 || len(b.set) == 0 {
		return 0
	}

	sect, diffAB, diffBA := splitSets(a.set, b.set)
	if len(sect) > 0 && (len(diffAB) == 0 || len(diffBA) == 0) {
		return 100
	}

	sectStr := strings.Join(sect, " ")
	combAB := []rune(strings.TrimSpace(sectStr + " " + strings.Join(diffAB, " ")))
	combBA := []rune(strings.TrimSpace(sectStr + " " + strings.Join(diffBA, " ")))

	best := ratio(combAB, combBA)
	if len(sect) > 0 {
		s := []rune(sectStr)
		best = math.Max(best, ratio(s, combAB))
		best = math.Max(best, ratio(s, combBA))
	}
	return best
}

// partialTokenRatio is 100 when the strings share a word, otherwise the
// partial ratio of the sorted words (and of the unique words when either
// side repeats one).
func partialTokenRatio(a, b *prepared) float64 {
	if len(a.set) == 0 || len(b.set) == 0 {
		return 0
	}

	sect, diffAB, diffBA := splitSets(a.set, b.set)
	if len(sect) > 0 {
		return 100
	}

	best := partialRatio(a.sorted, b.sorted)
	if len(a.tokens) == len(diffAB) && len(b.tokens) == len(diffBA) {
		return best
	}
	return math.Max(best, partialRatio(
		[]rune(strings.Join(diffAB, " ")),
		[]rune(strings.Join(diffBA, " ")),
	))
}

// splitSets merges two sorted unique word lists.
func splitSets(a, b []string) (sect, onlyA, onlyB []string) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			sect = append(sect, a[i])
			i++
			j++
		case a[i] < b[j]:
			onlyA = append(onlyA, a[i])
			i++
		default:
			onlyB = append(onlyB, b[j])
			j++
		}
	}
	onlyA = append(onlyA, a[i:]...)
	onlyB = append(onlyB, b[j:]...)
	return sect, onlyA, onlyB
}

func partialRatio(a, b []rune) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	best := partialWindows(a, b)
	if best < 100 && len(a) == len(b) {
		best = math.Max(best, partialWindows(b, a))
	}
	return best
}

// partialWindows scores short against every window of long that could
// improve the alignment: prefixes shorter than short, full-length windows,
// and suffixes. Windows whose boundary character does not occur in short are
// skipped since they cannot beat a neighbouring window.
func partialWindows(short, long []rune) float64 {
	ls, ll := len(short), len(long)

	var (
		contains func(r rune) bool
		score    func(w []rune) float64
	)
	if ls <= 64 {
		p := newPattern(short)
		contains = p.contains
		score = func(w []rune) float64 {
			return 100 * float64(2*p.lcs(w)) / float64(ls+len(w))
		}
	} else {
		set := make(map[rune]struct{}, ls)
		for _, r := range short {
			set[r] = struct{}{}
		}
		contains = func(r rune) bool {
			_, ok := set[r]
			return ok
		}
		score = func(w []rune) float64 {
			return ratio(short, w)
		}
	}

	best := 0.0
	try := func(w []rune) bool {
		if r := score(w); r > best {
			best = r
		}
		return best == 100
	}

	for i := 1; i < ls; i++ {
		if contains(long[i-1]) && try(long[:i]) {
			return best
		}
	}
	for i := 0; i <= ll-ls; i++ {
		if contains(long[i+ls-1]) && try(long[i:i+ls]) {
			return best
		}
	}
	for i := ll - ls + 1; i < ll; i++ {
		if contains(long[i]) && try(long[i:]) {
			return best
		}
	}
	return best
}

// lcsLength returns the length of the longest common subsequence.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) <= 64 {
		return newPattern(a).lcs(b)
	}
	return lcsDP(a, b)
}

// pattern holds per-rune position bitmasks of a string of at most 64 runes
// for the bit-parallel LCS of Hyyrö.
type pattern struct {
	n     int
	ascii [128]uint64
	other map[rune]uint64
}

func newPattern(s []rune) *pattern {
	p := &pattern{n: len(s)}
	for i, r := range s {
		bit := uint64(1) << uint(i)
		if r >= 0 && r < 128 {
			p.ascii[r] |= bit
			continue
		}
		if p.other == nil {
			p.other = make(map[rune]uint64)
		}
		p.other[r] |= bit
	}
	return p
}

func (p *pattern) mask(r rune) uint64 {
	if r >= 0 && r < 128 {
		return p.ascii[r]
	}
	return p.other[r]
}

func (p *pattern) contains(r rune) bool {
	return p.mask(r) != 0
}

func (p *pattern) lcs(t []rune) int {
	v := ^uint64(0)
	for _, r := range t {
		u := v & p.mask(r)
		v = (v + u) | (v - u)
	}
	used := ^uint64(0)
	if p.n < 64 {
		used = (uint64(1) << uint(p.n)) - 1
	}
	return bits.OnesCount64(^v & used)
}

// lcsDP is the quadratic fallback for strings longer than 64 runes.
func lcsDP(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
