// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package cache

import "sort"

// TopK keeps the k greatest elements offered to it.
//
// less defines the ordering: less(a, b) reports whether a ranks below b.
// Internally the heap root is the lowest-ranked element retained, so each
// Offer is O(log k) and memory stays O(k) however many elements are offered.
type TopK[T any] struct {
	k    int
	less func(a, b T) bool
	heap []T
}

// NewTopK creates a TopK retaining at most k elements. k <= 0 retains nothing.
func NewTopK[T any](k int, less func(a, b T) bool) *TopK[T] {
	if k < 0 {
		k = 0
	}
	return &TopK[T]{
		k:    k,
		less: less,
		heap: make([]T, 0, k),
	}
}

// Offer considers v for inclusion. Returns true if v was retained.
func (t *TopK[T]) Offer(v T) bool {
	if t.k == 0 {
		return false
	}
	if len(t.heap) < t.k {
		t.heap = append(t.heap, v)
		t.bubbleUp(len(t.heap) - 1)
		return true
	}
	// Full: replace the root only if v outranks it.
	if !t.less(t.heap[0], v) {
		return false
	}
	t.heap[0] = v
	t.bubbleDown(0)
	return true
}

// Len returns the number of retained elements.
func (t *TopK[T]) Len() int {
	return len(t.heap)
}

// Sorted returns the retained elements, highest-ranked first.
// The TopK may keep being used afterwards.
func (t *TopK[T]) Sorted() []T {
	out := make([]T, len(t.heap))
	copy(out, t.heap)
	sort.SliceStable(out, func(i, j int) bool {
		return t.less(out[j], out[i])
	})
	return out
}

// bubbleUp moves element at index i up to its correct position.
func (t *TopK[T]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !t.less(t.heap[i], t.heap[parent]) {
			break
		}
		t.heap[i], t.heap[parent] = t.heap[parent], t.heap[i]
		i = parent
	}
}

// bubbleDown moves element at index i down to its correct position.
func (t *TopK[T]) bubbleDown(i int) {
	n := len(t.heap)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && t.less(t.heap[left], t.heap[smallest]) {
			smallest = left
		}
		if right < n && t.less(t.heap[right], t.heap[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}

		t.heap[i], t.heap[smallest] = t.heap[smallest], t.heap[i]
		i = smallest
	}
}
