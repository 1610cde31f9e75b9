// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateCatalog validates the catalog provider and its settings
func (c *Config) validateCatalog() error {
	switch c.Catalog.Provider {
	case CatalogProviderYouTube:
		if err := c.validateYouTube(); err != nil {
			return err
		}
	case CatalogProviderStatic:
		if c.Catalog.FixturesPath == "" {
			return fmt.Errorf("CATALOG_FIXTURES_PATH is required when CATALOG_PROVIDER=static")
		}
	default:
		return fmt.Errorf("CATALOG_PROVIDER must be one of: youtube, static")
	}

	if c.Catalog.MaxResults < 1 || c.Catalog.MaxResults > 50 {
		return fmt.Errorf("CATALOG_MAX_RESULTS must be between 1 and 50")
	}
	if c.Catalog.RequestsPerSecond <= 0 {
		return fmt.Errorf("CATALOG_REQUESTS_PER_SECOND must be positive")
	}
	if c.Catalog.Burst < 1 {
		return fmt.Errorf("CATALOG_BURST must be at least 1")
	}

	return c.validateCircuitBreaker()
}

// validateYouTube validates the YouTube Data API settings
func (c *Config) validateYouTube() error {
	if c.Catalog.APIKey == "" {
		return fmt.Errorf("YOUTUBE_API_KEY is required when CATALOG_PROVIDER=youtube")
	}
	if containsPlaceholder(c.Catalog.APIKey) {
		return fmt.Errorf("YOUTUBE_API_KEY appears to be a placeholder value")
	}
	if err := validateHTTPURL(c.Catalog.BaseURL, "YOUTUBE_BASE_URL"); err != nil {
		return fmt.Errorf("YOUTUBE_BASE_URL is invalid: %w", err)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT must be positive")
	}
	return nil
}

// validateCircuitBreaker validates breaker tuning (only if enabled)
func (c *Config) validateCircuitBreaker() error {
	cb := c.Catalog.CircuitBreaker
	if !cb.Enabled {
		return nil
	}
	if cb.FailureRatio <= 0 || cb.FailureRatio > 1 {
		return fmt.Errorf("CATALOG_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if cb.MaxRequests == 0 {
		return fmt.Errorf("CATALOG_BREAKER_MAX_REQUESTS must be at least 1")
	}
	if cb.Timeout <= 0 {
		return fmt.Errorf("CATALOG_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateRecommend validates recommendation engine limits
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxQueries < 1 || r.MaxQueries > 10 {
		return fmt.Errorf("RECOMMEND_MAX_QUERIES must be between 1 and 10")
	}
	if r.MaxResults < 1 || r.MaxResults > 20 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be between 1 and 20")
	}
	if r.Concurrency < 1 || r.Concurrency > 64 {
		return fmt.Errorf("RECOMMEND_CONCURRENCY must be between 1 and 64")
	}
	if r.CallTimeout <= 0 || r.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_CALL_TIMEOUT and RECOMMEND_REQUEST_TIMEOUT must be positive")
	}
	if r.CallTimeout > r.RequestTimeout {
		return fmt.Errorf("RECOMMEND_CALL_TIMEOUT (%v) must not exceed RECOMMEND_REQUEST_TIMEOUT (%v)", r.CallTimeout, r.RequestTimeout)
	}
	if r.CacheTTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive")
	}
	if r.SearchCacheSize < 1 || r.DetailCacheSize < 1 {
		return fmt.Errorf("RECOMMEND_SEARCH_CACHE_SIZE and RECOMMEND_DETAIL_CACHE_SIZE must be at least 1")
	}
	if r.StatsInterval <= 0 {
		return fmt.Errorf("RECOMMEND_STATS_INTERVAL must be positive")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects wildcard origins in production.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com " +
			"or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration should be
// flagged at startup.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS() && !c.IsDevelopment()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns are values that indicate an unset secret.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_API_KEY",
	"PLACEHOLDER",
}

// containsPlaceholder checks if a value contains common placeholder patterns.
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
