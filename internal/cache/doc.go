// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package cache provides the in-memory data structures shared by the resolver
and the ranker.

# Overview

  - LRU: a thread-safe, capacity-bounded LRU cache with TTL expiration. The
    engine memoizes resolver results in it, keyed by normalized query, limit
    and cutoff.
  - TopK: a bounded min-heap keeping the k best elements of a stream under a
    caller-supplied ordering. Used for top-limit candidate selection so a
    query never sorts the whole catalog.

# Usage Example

	c := cache.NewLRU[[]fuzzy.Candidate](1024, 10*time.Minute)
	c.Add(key, candidates)
	if hit, ok := c.Get(key); ok {
	    return hit
	}

	top := cache.NewTopK(5, func(a, b Candidate) bool { return a.Score < b.Score })
	for _, c := range candidates {
	    top.Offer(c)
	}
	best := top.Sorted() // best first

# Thread Safety

LRU is safe for concurrent use. TopK is not; it is meant to be created and
drained within a single call.
*/
package cache
