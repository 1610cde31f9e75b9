// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package config

import "time"

// Config holds all application configuration loaded from defaults, an optional
// config file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Catalog: external video catalog connection, quota and circuit breaker
//  2. Recommend: fan-out limits, timeouts and the two-tier cache
//  3. Server & Security: HTTP listener, CORS and request rate limiting
//  4. Observability: log level and output format
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	client := catalog.NewYouTubeClient(&cfg.Catalog)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production" (default: "development")
}

// Catalog providers.
const (
	CatalogProviderYouTube = "youtube"
	CatalogProviderStatic  = "static"
)

// CatalogConfig holds the external video catalog connection settings.
//
// Environment Variables:
//   - CATALOG_PROVIDER: youtube or static (default: youtube)
//   - YOUTUBE_API_KEY: YouTube Data API v3 key (required for youtube)
//   - YOUTUBE_BASE_URL: API base URL (default: https://www.googleapis.com/youtube/v3)
//   - CATALOG_FIXTURES_PATH: JSON fixture file (required for static)
//   - CATALOG_TIMEOUT: HTTP client timeout (default: 10s)
//   - CATALOG_REQUESTS_PER_SECOND: client-side quota (default: 5)
//   - CATALOG_BURST: quota burst size (default: 10)
//   - CATALOG_MAX_RESULTS: ids requested per search (default: 10)
type CatalogConfig struct {
	Provider          string        `koanf:"provider"`
	BaseURL           string        `koanf:"base_url"`
	APIKey            string        `koanf:"api_key"`
	FixturesPath      string        `koanf:"fixtures_path"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	MaxResults        int           `koanf:"max_results"`

	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig tunes the gobreaker wrapper around the catalog client.
type CircuitBreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of requests allowed through in half-open state.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval resets the closed-state counts. Timeout is how long the
	// breaker stays open before probing again.
	Interval time.Duration `koanf:"interval"`
	Timeout  time.Duration `koanf:"timeout"`

	// The breaker opens once at least MinRequests were observed and the
	// failure ratio reaches FailureRatio.
	MinRequests  uint32  `koanf:"min_requests"`
	FailureRatio float64 `koanf:"failure_ratio"`
}

// RecommendConfig holds recommendation engine settings.
//
// Environment Variables:
//   - RECOMMEND_MAX_QUERIES: catalog queries per request (default: 10)
//   - RECOMMEND_MAX_RESULTS: recommendations returned (default: 20)
//   - RECOMMEND_CONCURRENCY: parallel catalog calls per request (default: 4)
//   - RECOMMEND_CALL_TIMEOUT: timeout for a single catalog call (default: 5s)
//   - RECOMMEND_REQUEST_TIMEOUT: overall request deadline (default: 20s)
//   - RECOMMEND_CACHE_TTL: cache entry time-to-live (default: 30m)
//   - RECOMMEND_SEARCH_CACHE_SIZE / RECOMMEND_DETAIL_CACHE_SIZE: LRU capacities
//   - RECOMMEND_STATS_INTERVAL: cache statistics reporting interval (default: 1m)
type RecommendConfig struct {
	MaxQueries      int           `koanf:"max_queries"`
	MaxResults      int           `koanf:"max_results"`
	Concurrency     int           `koanf:"concurrency"`
	CallTimeout     time.Duration `koanf:"call_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	SearchCacheSize int           `koanf:"search_cache_size"`
	DetailCacheSize int           `koanf:"detail_cache_size"`
	StatsInterval   time.Duration `koanf:"stats_interval"`
}

// SecurityConfig holds CORS and request rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Option overrides loaded configuration, e.g. from command-line flags.
type Option func(*Config)

// WithFixtures switches the catalog to the static provider backed by the
// JSON fixture file at path.
func WithFixtures(path string) Option {
	return func(c *Config) {
		c.Catalog.Provider = CatalogProviderStatic
		c.Catalog.FixturesPath = path
	}
}

// WithLogLevel overrides the configured log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.Logging.Level = level
	}
}

// Load reads configuration using the layered Koanf loader.
func Load(opts ...Option) (*Config, error) {
	return LoadWithKoanf(opts...)
}
