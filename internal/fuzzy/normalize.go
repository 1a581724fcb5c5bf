// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package fuzzy

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s for matching: NFKD decomposition with combining marks
// removed, lower-cased, every run of non-alphanumeric characters replaced by
// a single space, and trimmed.
//
//	Normalize("Beyoncé - Halo (Remix)") == "beyonce halo remix"
func Normalize(s string) string {
	// transform.Chain is stateful; build one per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

// prepared is a normalized string with its token views precomputed.
type prepared struct {
	text   []rune   // normalized text
	tokens []string // words in order, duplicates kept
	sorted []rune   // words sorted and joined by single spaces
	set    []string // sorted unique words
}

func prepare(s string) prepared {
	n := Normalize(s)
	tokens := strings.Fields(n)

	sortedTokens := make([]string, len(tokens))
	copy(sortedTokens, tokens)
	sort.Strings(sortedTokens)

	set := make([]string, 0, len(sortedTokens))
	for i, tok := range sortedTokens {
		if i == 0 || tok != sortedTokens[i-1] {
			set = append(set, tok)
		}
	}

	return prepared{
		text:   []rune(n),
		tokens: tokens,
		sorted: []rune(strings.Join(sortedTokens, " ")),
		set:    set,
	}
}

func (p *prepared) empty() bool {
	return len(p.text) == 0
}
