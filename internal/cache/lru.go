// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package cache

import (
	"sync"
	"time"
)

// Clock returns the current time. Tests substitute a fake clock to move
// entries across their TTL without sleeping.
type Clock func() time.Time

// lruEntry represents an entry in the LRU cache with TTL support.
type lruEntry[V any] struct {
	key        string
	value      V
	insertedAt time.Time
	prev       *lruEntry[V]
	next       *lruEntry[V]
}

// LRU implements a thread-safe, capacity-bounded Least Recently Used cache
// with a fixed time-to-live per entry.
//
// Key features:
//   - O(1) Get, Set, Remove operations
//   - O(1) LRU eviction when capacity is reached
//   - Lazy expiration: an entry older than the TTL is reported as a miss
//     but is not removed on read; it leaves the cache through LRU pressure,
//     an overwrite, Remove, or Clear
//   - Thread-safe operations
//
// This implementation uses a doubly-linked list for ordering and a hashmap for lookups,
// following the pattern from TheAlgorithms/Go LRU implementation.
type LRU[V any] struct {
	mu sync.Mutex

	// capacity is the maximum number of entries
	capacity int

	// ttl is the time-to-live for entries
	ttl time.Duration

	now Clock

	// items maps keys to linked list nodes for O(1) lookup
	items map[string]*lruEntry[V]

	// head and tail are sentinel nodes for the doubly-linked list
	// head.next is the most recently used, tail.prev is the least recently used
	head *lruEntry[V]
	tail *lruEntry[V]

	// stats
	hits      int64
	misses    int64
	evictions int64
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Entries   int   `json:"entries"`
	Capacity  int   `json:"capacity"`
}

// NewLRU creates a new LRU cache with the specified capacity and TTL.
func NewLRU[V any](capacity int, ttl time.Duration) *LRU[V] {
	return NewLRUWithClock[V](capacity, ttl, time.Now)
}

// NewLRUWithClock creates a new LRU cache that reads time from clock.
func NewLRUWithClock[V any](capacity int, ttl time.Duration, clock Clock) *LRU[V] {
	if capacity <= 0 {
		capacity = 10000 // Default capacity
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute // Default TTL
	}
	if clock == nil {
		clock = time.Now
	}

	c := &LRU[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      clock,
		items:    make(map[string]*lruEntry[V], capacity),
		head:     &lruEntry[V]{},
		tail:     &lruEntry[V]{},
	}

	// Initialize linked list sentinels
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get retrieves an entry from the cache.
// A hit requires now - insertedAt < TTL. Found entries are moved to the
// front (most recently used); expired entries are ignored, not deleted.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	entry, exists := c.items[key]
	if !exists {
		c.misses++
		return zero, false
	}

	if c.now().Sub(entry.insertedAt) >= c.ttl {
		c.misses++
		return zero, false
	}

	c.moveToFront(entry)
	c.hits++
	return entry.value, true
}

// Set stores value under key with the current timestamp, overwriting any
// prior entry. If the cache is over capacity the least recently used entry
// is evicted.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if entry, exists := c.items[key]; exists {
		entry.value = value
		entry.insertedAt = now
		c.moveToFront(entry)
		return
	}

	entry := &lruEntry[V]{
		key:        key,
		value:      value,
		insertedAt: now,
	}
	c.addToFront(entry)
	c.items[key] = entry

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// Remove removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *LRU[V]) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.items[key]; exists {
		c.removeEntry(entry)
		return true
	}
	return false
}

// Len returns the current number of stored entries, expired ones included.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all entries from the cache. Counters are preserved.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*lruEntry[V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// Range calls fn for every stored entry from most to least recently used.
// fn must not call back into the cache.
func (c *LRU[V]) Range(fn func(key string, value V) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for entry := c.head.next; entry != c.tail; entry = entry.next {
		if !fn(entry.key, entry.value) {
			return
		}
	}
}

// Stats returns cache hit/miss statistics.
func (c *LRU[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Entries:   len(c.items),
		Capacity:  c.capacity,
	}
}

// TTL returns the configured time-to-live.
func (c *LRU[V]) TTL() time.Duration {
	return c.ttl
}

// Internal methods (must be called with lock held)

// addToFront adds an entry to the front of the list (most recently used).
func (c *LRU[V]) addToFront(entry *lruEntry[V]) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

// moveToFront moves an existing entry to the front of the list.
func (c *LRU[V]) moveToFront(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

// removeEntry removes an entry from both the list and the map.
func (c *LRU[V]) removeEntry(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}

// evictOldest removes the least recently used entry.
func (c *LRU[V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return // List is empty
	}
	c.removeEntry(oldest)
	c.evictions++
}
