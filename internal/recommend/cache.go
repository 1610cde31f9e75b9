// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"github.com/dustin/go-humanize"

	"github.com/tomtom215/formcoach/internal/cache"
	"github.com/tomtom215/formcoach/internal/catalog"
	"github.com/tomtom215/formcoach/internal/metrics"
)

// Per-entry overhead assumed by the memory estimate: list node, map
// bucket share, timestamp and slice/string headers.
const (
	searchEntryOverhead = 128
	detailEntryOverhead = 256
)

// TwoTierCache memoizes catalog calls in two independent bounded LRU
// tiers: search results keyed by (query, context) and video details keyed
// by video id. Entries expire lazily after the TTL. Safe for concurrent use.
type TwoTierCache struct {
	search *cache.LRU[[]string]
	detail *cache.LRU[catalog.Video]
}

// searchKey is the serialized identity of a search-tier entry.
type searchKey struct {
	Query   string   `json:"query"`
	Context *Context `json:"context"`
}

// NewTwoTierCache creates both tiers. A nil clock uses time.Now.
func NewTwoTierCache(cfg CacheConfig, clock cache.Clock) *TwoTierCache {
	if clock == nil {
		return &TwoTierCache{
			search: cache.NewLRU[[]string](cfg.SearchEntries, cfg.TTL),
			detail: cache.NewLRU[catalog.Video](cfg.DetailEntries, cfg.TTL),
		}
	}
	return &TwoTierCache{
		search: cache.NewLRUWithClock[[]string](cfg.SearchEntries, cfg.TTL, clock),
		detail: cache.NewLRUWithClock[catalog.Video](cfg.DetailEntries, cfg.TTL, clock),
	}
}

// SearchKey returns the search-tier key for a query issued for rc.
func SearchKey(query string, rc *Context) string {
	return cache.GenerateKey("search", searchKey{Query: query, Context: rc})
}

// GetSearch returns the cached video ids for key.
func (c *TwoTierCache) GetSearch(key string) ([]string, bool) {
	ids, ok := c.search.Get(key)
	metrics.RecordCacheLookup(metrics.TierSearch, ok)
	if !ok {
		return nil, false
	}
	return append([]string(nil), ids...), true
}

// SetSearch stores the video ids returned for key.
func (c *TwoTierCache) SetSearch(key string, ids []string) {
	c.search.Set(key, append([]string(nil), ids...))
}

// GetDetail returns the cached video with the given id.
func (c *TwoTierCache) GetDetail(id string) (catalog.Video, bool) {
	v, ok := c.detail.Get(id)
	metrics.RecordCacheLookup(metrics.TierDetail, ok)
	return v, ok
}

// SetDetail stores a video under its id.
func (c *TwoTierCache) SetDetail(v *catalog.Video) {
	c.detail.Set(v.ID, *v)
}

// Clear empties both tiers. Hit and miss counters are kept.
func (c *TwoTierCache) Clear() {
	c.search.Clear()
	c.detail.Clear()
}

// Stats returns entry counts, counters and an approximate memory footprint.
func (c *TwoTierCache) Stats() CacheStats {
	s := c.search.Stats()
	d := c.detail.Stats()

	mem := c.approximateMemory()

	return CacheStats{
		SearchEntries:          s.Entries,
		DetailEntries:          d.Entries,
		SearchCapacity:         s.Capacity,
		DetailCapacity:         d.Capacity,
		Hits:                   s.Hits + d.Hits,
		Misses:                 s.Misses + d.Misses,
		Evictions:              s.Evictions + d.Evictions,
		ApproximateMemoryBytes: mem,
		ApproximateMemory:      humanize.Bytes(uint64(mem)),
	}
}

// PublishMetrics pushes tier gauges to Prometheus.
func (c *TwoTierCache) PublishMetrics() CacheStats {
	s := c.search.Stats()
	d := c.detail.Stats()
	metrics.UpdateCacheStats(metrics.TierSearch, s.Entries, s.Evictions)
	metrics.UpdateCacheStats(metrics.TierDetail, d.Entries, d.Evictions)

	stats := c.Stats()
	metrics.CacheMemoryBytes.Set(float64(stats.ApproximateMemoryBytes))
	return stats
}

// approximateMemory sums string payloads plus a fixed per-entry overhead.
func (c *TwoTierCache) approximateMemory() int64 {
	var total int64

	c.search.Range(func(key string, ids []string) bool {
		total += searchEntryOverhead + int64(len(key))
		for _, id := range ids {
			total += int64(len(id)) + 16
		}
		return true
	})

	c.detail.Range(func(key string, v catalog.Video) bool {
		total += detailEntryOverhead + int64(len(key)) + videoSize(&v)
		return true
	})

	return total
}

func videoSize(v *catalog.Video) int64 {
	n := len(v.ID) + len(v.Title) + len(v.Description) + len(v.Thumbnail) +
		len(v.Duration) + len(v.ChannelTitle) + len(v.CategoryID) +
		len(v.Language) + len(v.ContentRating)
	for _, tag := range v.Tags {
		n += len(tag) + 16
	}
	return int64(n)
}
