// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package fuzzy

import (
	"reflect"
	"sync"
	"testing"

	"github.com/tomtom215/tunematch/internal/catalog"
)

func newCatalog(t *testing.T, items ...catalog.Item) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(items, catalog.DuplicatesReject)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func scenarioCatalog(t *testing.T) *catalog.Catalog {
	return newCatalog(t,
		catalog.Item{ID: "a", Name: "Song A", Artist: "X", Features: catalog.Vector{0.5, 0.5, 120, 0.5, 0.5, -5}},
		catalog.Item{ID: "b", Name: "Song B", Artist: "Y", Features: catalog.Vector{0.9, 0.9, 140, 0.9, 0.1, -3}},
	)
}

func TestSearch_Scenario(t *testing.T) {
	ix := BuildIndex(scenarioCatalog(t))

	got := ix.Search("song a by x", 5, 70)
	if len(got) == 0 {
		t.Fatal("Search returned no candidates")
	}
	if got[0].TrackID != "a" {
		t.Errorf("first candidate = %+v, want track a", got[0])
	}
	if got[0].Display != "Song A - X" || got[0].Score != 95 {
		t.Errorf("first candidate = %+v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("candidates not sorted by score: %+v", got)
		}
	}
}

func TestSearch_NoMatchAboveCutoff(t *testing.T) {
	ix := BuildIndex(scenarioCatalog(t))

	got := ix.Search("zzzzz not a real song", 5, 95)
	if got == nil {
		t.Fatal("Search returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Search = %+v, want empty", got)
	}
}

func TestSearch_LimitAndCutoff(t *testing.T) {
	cat := newCatalog(t,
		catalog.Item{ID: "1", Name: "Love Song", Artist: "A"},
		catalog.Item{ID: "2", Name: "Love Story", Artist: "B"},
		catalog.Item{ID: "3", Name: "Lovesong", Artist: "C"},
		catalog.Item{ID: "4", Name: "Song of Love", Artist: "D"},
		catalog.Item{ID: "5", Name: "Hate Song", Artist: "E"},
		catalog.Item{ID: "6", Name: "Unrelated", Artist: "F"},
	)
	ix := BuildIndex(cat)

	for _, limit := range []int{1, 2, 3, 20} {
		for _, cutoff := range []int{0, 50, 70, 90, 100} {
			got := ix.Search("love song", limit, cutoff)
			if len(got) > limit {
				t.Errorf("limit %d cutoff %d: %d results", limit, cutoff, len(got))
			}
			for _, c := range got {
				if c.Score < cutoff || c.Score > 100 {
					t.Errorf("limit %d cutoff %d: score %d out of range", limit, cutoff, c.Score)
				}
			}
		}
	}

	if got := ix.Search("love song", 20, 0); len(got) != cat.Len() {
		t.Errorf("cutoff 0 returned %d of %d entries", len(got), cat.Len())
	}
	if got := ix.Search("love song", 0, 0); len(got) != 0 {
		t.Errorf("limit 0 returned %d entries", len(got))
	}
}

func TestSearch_TiesInIndexOrder(t *testing.T) {
	ix := BuildIndex(newCatalog(t,
		catalog.Item{ID: "first", Name: "abc", Artist: "y"},
		catalog.Item{ID: "second", Name: "abc", Artist: "x"},
	))

	got := ix.Search("abc", 5, 0)
	if len(got) != 2 {
		t.Fatalf("Search = %+v", got)
	}
	if got[0].Score != got[1].Score {
		t.Fatalf("fixture scores differ: %+v", got)
	}
	if got[0].TrackID != "first" || got[1].TrackID != "second" {
		t.Errorf("tie order = %s, %s; want first, second", got[0].TrackID, got[1].TrackID)
	}
}

func TestBuildIndex_DuplicateDisplays(t *testing.T) {
	ix := BuildIndex(newCatalog(t,
		catalog.Item{ID: "d1", Name: "Dup", Artist: "Z"},
		catalog.Item{ID: "other", Name: "Other", Artist: "Q"},
		catalog.Item{ID: "d2", Name: "Dup", Artist: "Z"},
	))

	if ix.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ix.Len())
	}
	if id, ok := ix.Lookup("Dup - Z"); !ok || id != "d1" {
		t.Errorf("Lookup = %q, %v; want d1", id, ok)
	}
	displays := make([]string, len(ix.entries))
	for i := range ix.entries {
		displays[i] = ix.entries[i].display
	}
	if !reflect.DeepEqual(displays, []string{"Dup - Z", "Other - Q"}) {
		t.Errorf("displays = %v", displays)
	}

	got := ix.Search("dup z", 5, 90)
	if len(got) != 1 || got[0].TrackID != "d1" {
		t.Errorf("Search = %+v, want single d1", got)
	}
}

func TestSearch_EmptyInputs(t *testing.T) {
	empty := BuildIndex(newCatalog(t))
	if got := empty.Search("anything", 5, 0); got == nil || len(got) != 0 {
		t.Errorf("empty catalog Search = %#v", got)
	}

	ix := BuildIndex(scenarioCatalog(t))
	for _, q := range []string{"", "   ", "?!"} {
		if got := ix.Search(q, 5, 0); got == nil || len(got) != 0 {
			t.Errorf("Search(%q) = %#v, want empty", q, got)
		}
	}
}

func TestSearch_IdempotentAndConcurrent(t *testing.T) {
	ix := BuildIndex(scenarioCatalog(t))
	want := ix.Search("song b", 5, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := ix.Search("song b", 5, 0); !reflect.DeepEqual(got, want) {
					t.Errorf("Search diverged: %+v vs %+v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
