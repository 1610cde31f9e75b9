// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/formcoach/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Limits.MaxQueries != 10 || cfg.Limits.MaxResults != 20 {
		t.Errorf("limits = %+v", cfg.Limits)
	}
	if cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("TTL = %v, want 30m", cfg.Cache.TTL)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"too many queries", func(c *Config) { c.Limits.MaxQueries = 11 }, "max_queries"},
		{"zero queries", func(c *Config) { c.Limits.MaxQueries = 0 }, "max_queries"},
		{"too many results", func(c *Config) { c.Limits.MaxResults = 21 }, "max_results"},
		{"search results", func(c *Config) { c.Limits.SearchResults = 51 }, "search_results"},
		{"concurrency", func(c *Config) { c.Limits.Concurrency = 0 }, "concurrency"},
		{"call timeout", func(c *Config) { c.Limits.CallTimeout = 0 }, "call_timeout"},
		{"request shorter than call", func(c *Config) { c.Limits.RequestTimeout = time.Second }, "request_timeout"},
		{"ttl", func(c *Config) { c.Cache.TTL = 0 }, "ttl"},
		{"search entries", func(c *Config) { c.Cache.SearchEntries = 0 }, "search_entries"},
		{"detail entries", func(c *Config) { c.Cache.DetailEntries = -1 }, "detail_entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	app := &config.Config{
		Catalog: config.CatalogConfig{MaxResults: 15},
		Recommend: config.RecommendConfig{
			MaxQueries:      6,
			MaxResults:      12,
			Concurrency:     8,
			CallTimeout:     2 * time.Second,
			RequestTimeout:  9 * time.Second,
			CacheTTL:        time.Hour,
			SearchCacheSize: 50,
			DetailCacheSize: 500,
		},
	}

	cfg := FromConfig(app)
	want := &Config{
		Limits: LimitsConfig{
			MaxQueries:     6,
			MaxResults:     12,
			SearchResults:  15,
			Concurrency:    8,
			CallTimeout:    2 * time.Second,
			RequestTimeout: 9 * time.Second,
		},
		Cache: CacheConfig{TTL: time.Hour, SearchEntries: 50, DetailEntries: 500},
	}
	if *cfg != *want {
		t.Errorf("FromConfig() = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Limits.Concurrency = 99
	if cfg.Limits.Concurrency == 99 {
		t.Error("Clone shares state with the original")
	}
}
