// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/formcoach/internal/config"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains two-tier cache parameters.
	Cache CacheConfig `json:"cache"`
}

// LimitsConfig bounds the work done for one request.
type LimitsConfig struct {
	// MaxQueries is the number of catalog queries generated per request.
	// Default: 10. Maximum: 10.
	MaxQueries int `json:"max_queries"`

	// MaxResults is the length of the returned recommendation list.
	// Default: 20. Maximum: 20.
	MaxResults int `json:"max_results"`

	// SearchResults is the number of video ids requested per query.
	// Default: 10.
	SearchResults int `json:"search_results"`

	// Concurrency is the number of catalog calls in flight at once.
	// Default: 4.
	Concurrency int `json:"concurrency"`

	// CallTimeout bounds a single catalog call.
	// Default: 5s.
	CallTimeout time.Duration `json:"call_timeout"`

	// RequestTimeout bounds the whole catalog fan-out of a request.
	// Default: 20s.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// CacheConfig contains two-tier cache parameters.
type CacheConfig struct {
	// TTL is the time-to-live of both tiers.
	// Default: 30m.
	TTL time.Duration `json:"ttl"`

	// SearchEntries is the capacity of the search-result tier.
	// Default: 1000.
	SearchEntries int `json:"search_entries"`

	// DetailEntries is the capacity of the video-detail tier.
	// Default: 10000.
	DetailEntries int `json:"detail_entries"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxQueries:     DefaultMaxQueries,
			MaxResults:     MaxResults,
			SearchResults:  10,
			Concurrency:    4,
			CallTimeout:    5 * time.Second,
			RequestTimeout: 20 * time.Second,
		},
		Cache: CacheConfig{
			TTL:           30 * time.Minute,
			SearchEntries: 1000,
			DetailEntries: 10000,
		},
	}
}

// FromConfig builds an engine Config from the application configuration.
func FromConfig(cfg *config.Config) *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxQueries:     cfg.Recommend.MaxQueries,
			MaxResults:     cfg.Recommend.MaxResults,
			SearchResults:  cfg.Catalog.MaxResults,
			Concurrency:    cfg.Recommend.Concurrency,
			CallTimeout:    cfg.Recommend.CallTimeout,
			RequestTimeout: cfg.Recommend.RequestTimeout,
		},
		Cache: CacheConfig{
			TTL:           cfg.Recommend.CacheTTL,
			SearchEntries: cfg.Recommend.SearchCacheSize,
			DetailEntries: cfg.Recommend.DetailCacheSize,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.MaxQueries < 1 || c.Limits.MaxQueries > DefaultMaxQueries {
		return fmt.Errorf("limits.max_queries must be in [1, %d], got %d", DefaultMaxQueries, c.Limits.MaxQueries)
	}
	if c.Limits.MaxResults < 1 || c.Limits.MaxResults > MaxResults {
		return fmt.Errorf("limits.max_results must be in [1, %d], got %d", MaxResults, c.Limits.MaxResults)
	}
	if c.Limits.SearchResults < 1 || c.Limits.SearchResults > 50 {
		return fmt.Errorf("limits.search_results must be in [1, 50], got %d", c.Limits.SearchResults)
	}
	if c.Limits.Concurrency < 1 {
		return fmt.Errorf("limits.concurrency must be positive, got %d", c.Limits.Concurrency)
	}
	if c.Limits.CallTimeout <= 0 {
		return fmt.Errorf("limits.call_timeout must be positive, got %v", c.Limits.CallTimeout)
	}
	if c.Limits.RequestTimeout < c.Limits.CallTimeout {
		return fmt.Errorf("limits.request_timeout (%v) must be at least limits.call_timeout (%v)",
			c.Limits.RequestTimeout, c.Limits.CallTimeout)
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
	}
	if c.Cache.SearchEntries < 1 {
		return fmt.Errorf("cache.search_entries must be positive, got %d", c.Cache.SearchEntries)
	}
	if c.Cache.DetailEntries < 1 {
		return fmt.Errorf("cache.detail_entries must be positive, got %d", c.Cache.DetailEntries)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types
	return &Config{
		Limits: c.Limits,
		Cache:  c.Cache,
	}
}
