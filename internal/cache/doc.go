// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package cache provides a thread-safe LRU cache with TTL expiration.

The engine service keeps recently read result bundles here so repeated
result and report requests for the same session skip the store.

# Usage

	c := cache.NewLRU[*assessment.ResultBundle](256, 10*time.Minute)
	c.Add(sessionID, bundle)

	if b, ok := c.Get(sessionID); ok {
	    // served from memory
	}

	c.Remove(sessionID) // after the session is re-analyzed

# Semantics

  - Get, Add and Remove are O(1); a doubly-linked list keeps recency order
  - Adding beyond capacity evicts the least recently used entry
  - Expired entries are dropped lazily on Get, or in bulk by CleanupExpired
  - Stats reports hits, misses and the current size

# Thread Safety

All methods are safe for concurrent use.
*/
package cache
