// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package fuzzy

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Song A - X", "song a x"},
		{"Beyoncé - Halo (Remix)", "beyonce halo remix"},
		{"  Hello,   WORLD!! ", "hello world"},
		{"ﬁre", "fire"},
		{"AC/DC", "ac dc"},
		{"Motörhead", "motorhead"},
		{"2Pac - Changes", "2pac changes"},
		{"", ""},
		{"!!! ---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	p := prepare("b a b c")
	if strings.Join(p.tokens, ",") != "b,a,b,c" {
		t.Errorf("tokens = %v", p.tokens)
	}
	if string(p.sorted) != "a b b c" {
		t.Errorf("sorted = %q", string(p.sorted))
	}
	if strings.Join(p.set, ",") != "a,b,c" {
		t.Errorf("set = %v", p.set)
	}

	if e := prepare(" ; "); !e.empty() || len(e.set) != 0 {
		t.Errorf("punctuation-only input not empty: %+v", e)
	}
}
