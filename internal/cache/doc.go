// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

/*
Package cache provides a generic, capacity-bounded LRU cache with a fixed
time-to-live and deterministic cache key generation.

# Overview

The recommendation engine memoizes catalog calls in two independent LRU
tiers (search results and video details). Both are instances of LRU:

  - O(1) Get, Set and Remove
  - Least recently used eviction once capacity is reached
  - Lazy expiration: an entry whose age reaches the TTL is reported as a
    miss but stays resident until LRU pressure, an overwrite, Remove or
    Clear removes it
  - Hit, miss and eviction counters that survive Clear

# Usage Example

	c := cache.NewLRU[[]string](1000, 30*time.Minute)

	key := cache.GenerateKey("search", params)
	if ids, ok := c.Get(key); ok {
	    return ids
	}
	c.Set(key, ids)

# Testing

NewLRUWithClock accepts a Clock so tests can move entries across their TTL
without sleeping:

	clock := newFakeClock()
	c := cache.NewLRUWithClock[int](10, time.Minute, clock.Now)
	clock.Advance(time.Minute) // entry is now expired

# Thread Safety

All LRU methods are safe for concurrent use. Range holds the cache lock
while it runs, so the callback must not call back into the cache.
*/
package cache
