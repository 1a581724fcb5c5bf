// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"fmt"
	"math"
)

// Dims is the number of audio feature dimensions carried by every item.
const Dims = 6

// Feature identifies one audio feature dimension.
type Feature int

const (
	// Danceability is how suitable a track is for dancing (0-1).
	Danceability Feature = iota
	// Energy is a perceptual measure of intensity (0-1).
	Energy
	// Tempo is the estimated tempo in BPM.
	Tempo
	// Valence is the musical positiveness (0-1).
	Valence
	// Acousticness is the confidence the track is acoustic (0-1).
	Acousticness
	// Loudness is the overall loudness in dB.
	Loudness
)

var featureColumns = [Dims]string{
	"danceability",
	"energy",
	"tempo",
	"valence",
	"acousticness",
	"loudness",
}

// String returns the column name of the feature.
func (f Feature) String() string {
	if f < 0 || int(f) >= Dims {
		return "unknown"
	}
	return featureColumns[f]
}

// FeatureColumns returns the feature column names in vector order.
func FeatureColumns() []string {
	cols := make([]string, Dims)
	copy(cols, featureColumns[:])
	return cols
}

// Vector is a feature vector in FeatureColumns order.
type Vector [Dims]float64

// Item is one catalog entry.
type Item struct {
	// ID is the unique, non-empty track identifier.
	ID string `json:"track_id"`

	// Name is the track title.
	Name string `json:"name"`

	// Artist is the performing artist. May be empty.
	Artist string `json:"artist"`

	// Features holds the raw audio features.
	Features Vector `json:"features"`
}

// Display returns the human-readable label used for text matching:
// "{name} - {artist}" when an artist is present, otherwise the name.
//
//nolint:gocritic // hugeParam: Item is passed by value to keep catalog entries immutable
func (it Item) Display() string {
	if it.Artist == "" {
		return it.Name
	}
	return fmt.Sprintf("%s - %s", it.Name, it.Artist)
}

// DuplicatePolicy controls how repeated item ids are handled at load.
type DuplicatePolicy string

const (
	// DuplicatesReject fails the load on the first repeated id.
	DuplicatesReject DuplicatePolicy = "reject"

	// DuplicatesKeepFirst keeps the first row for each id and drops later ones.
	DuplicatesKeepFirst DuplicatePolicy = "first"
)

// Valid reports whether p is a known policy.
func (p DuplicatePolicy) Valid() bool {
	return p == DuplicatesReject || p == DuplicatesKeepFirst
}

// Catalog is an ordered, read-only sequence of items.
type Catalog struct {
	items []Item
	byID  map[string]int
	name  string
}

// New validates items and builds a catalog from them.
// The slice is copied, so later changes by the caller are not observed.
func New(items []Item, policy DuplicatePolicy) (*Catalog, error) {
	return build("memory", items, policy)
}

// build validates items against the item invariants. Row numbers in errors
// are 1-based data rows (the header is not counted).
func build(name string, items []Item, policy DuplicatePolicy) (*Catalog, error) {
	if policy == "" {
		policy = DuplicatesReject
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("unknown duplicate policy %q", policy)
	}

	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
		name:  name,
	}

	for i := range items {
		item := items[i]
		row := i + 1

		if item.ID == "" {
			return nil, &RowError{Source: name, Row: row, Column: "id", Reason: "empty id"}
		}
		for d, x := range item.Features {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, &RowError{Source: name, Row: row, Column: featureColumns[d], Reason: "value is not finite"}
			}
		}
		if first, dup := c.byID[item.ID]; dup {
			if policy == DuplicatesKeepFirst {
				continue
			}
			return nil, &RowError{
				Source: name,
				Row:    row,
				Column: "id",
				Reason: fmt.Sprintf("duplicate id %q (first seen at row %d)", item.ID, first+1),
				Kind:   ErrDuplicateID,
			}
		}

		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Source returns the name of the source the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.name
}

// At returns the item at catalog position i.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Features returns the raw feature vector of the item at position i.
func (c *Catalog) Features(i int) Vector {
	return c.items[i].Features
}

// IndexOf returns the catalog position of id.
func (c *Catalog) IndexOf(id string) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// Lookup returns the item with the given id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// FeatureRows returns a copy of every item's feature vector in catalog order.
func (c *Catalog) FeatureRows() []Vector {
	rows := make([]Vector, len(c.items))
	for i := range c.items {
		rows[i] = c.items[i].Features
	}
	return rows
}
