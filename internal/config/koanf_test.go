// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv points CONFIG_PATH at an empty temp dir and clears the mapped
// environment variables so tests see only what they set.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	for key := range envMappings {
		name := strings.ToUpper(key)
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}
	return dir
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 3858 {
		t.Errorf("Server.Port = %d, want 3858", cfg.Server.Port)
	}
	if cfg.Catalog.Provider != CatalogProviderYouTube {
		t.Errorf("Catalog.Provider = %q, want youtube", cfg.Catalog.Provider)
	}
	if cfg.Catalog.BaseURL != DefaultYouTubeBaseURL {
		t.Errorf("Catalog.BaseURL = %q, want %q", cfg.Catalog.BaseURL, DefaultYouTubeBaseURL)
	}
	if cfg.Catalog.APIKey != "" {
		t.Errorf("Catalog.APIKey should be empty by default, got %q", cfg.Catalog.APIKey)
	}
	if !cfg.Catalog.CircuitBreaker.Enabled {
		t.Error("Catalog.CircuitBreaker.Enabled should be true by default")
	}
	if cfg.Catalog.CircuitBreaker.FailureRatio != 0.6 {
		t.Errorf("CircuitBreaker.FailureRatio = %v, want 0.6", cfg.Catalog.CircuitBreaker.FailureRatio)
	}
	if cfg.Recommend.MaxQueries != 10 {
		t.Errorf("Recommend.MaxQueries = %d, want 10", cfg.Recommend.MaxQueries)
	}
	if cfg.Recommend.MaxResults != 20 {
		t.Errorf("Recommend.MaxResults = %d, want 20", cfg.Recommend.MaxResults)
	}
	if cfg.Recommend.CacheTTL != 30*time.Minute {
		t.Errorf("Recommend.CacheTTL = %v, want 30m", cfg.Recommend.CacheTTL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"YOUTUBE_API_KEY", "catalog.api_key"},
		{"CATALOG_PROVIDER", "catalog.provider"},
		{"CATALOG_BREAKER_FAILURE_RATIO", "catalog.circuit_breaker.failure_ratio"},
		{"RECOMMEND_CONCURRENCY", "recommend.concurrency"},
		{"RECOMMEND_CACHE_TTL", "recommend.cache_ttl"},
		{"HTTP_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},

		// Unmapped
		{"PATH", ""},
		{"HOME", ""},
		{"RANDOM_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolateEnv(t)

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)

	t.Setenv("YOUTUBE_API_KEY", "test-api-key-12345")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_CONCURRENCY", "8")
	t.Setenv("RECOMMEND_REQUEST_TIMEOUT", "45s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.APIKey != "test-api-key-12345" {
		t.Errorf("Catalog.APIKey = %q, want test-api-key-12345", cfg.Catalog.APIKey)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.Concurrency != 8 {
		t.Errorf("Recommend.Concurrency = %d, want 8", cfg.Recommend.Concurrency)
	}
	if cfg.Recommend.RequestTimeout != 45*time.Second {
		t.Errorf("Recommend.RequestTimeout = %v, want 45s", cfg.Recommend.RequestTimeout)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v, want two trimmed origins", cfg.Security.CORSOrigins)
	}

	// Defaults still apply for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.CacheTTL != 30*time.Minute {
		t.Errorf("Recommend.CacheTTL = %v, want 30m (default)", cfg.Recommend.CacheTTL)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := isolateEnv(t)

	configContent := `
catalog:
  provider: static
  fixtures_path: "/tmp/fixtures.json"

server:
  port: 8888
  host: "127.0.0.1"

recommend:
  max_results: 15

logging:
  level: "warn"
`
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.Provider != CatalogProviderStatic {
		t.Errorf("Catalog.Provider = %q, want static", cfg.Catalog.Provider)
	}
	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Recommend.MaxResults != 15 {
		t.Errorf("Recommend.MaxResults = %d, want 15", cfg.Recommend.MaxResults)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Recommend.Concurrency != 4 {
		t.Errorf("Recommend.Concurrency = %d, want 4 (default)", cfg.Recommend.Concurrency)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	dir := isolateEnv(t)

	configContent := `
catalog:
  api_key: "file-key"
server:
  port: 8888
`
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "7777")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 (env override)", cfg.Server.Port)
	}
	if cfg.Catalog.APIKey != "file-key" {
		t.Errorf("Catalog.APIKey = %q, want file-key", cfg.Catalog.APIKey)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing api key", map[string]string{}},
		{"placeholder api key", map[string]string{"YOUTUBE_API_KEY": "CHANGEME"}},
		{"unknown provider", map[string]string{"CATALOG_PROVIDER": "vimeo"}},
		{"static without fixtures", map[string]string{"CATALOG_PROVIDER": "static"}},
		{"invalid port", map[string]string{"YOUTUBE_API_KEY": "k", "HTTP_PORT": "70000"}},
		{"invalid log level", map[string]string{"YOUTUBE_API_KEY": "k", "LOG_LEVEL": "verbose"}},
		{"too many queries", map[string]string{"YOUTUBE_API_KEY": "k", "RECOMMEND_MAX_QUERIES": "11"}},
		{"call timeout exceeds request timeout", map[string]string{
			"YOUTUBE_API_KEY":           "k",
			"RECOMMEND_CALL_TIMEOUT":    "30s",
			"RECOMMEND_REQUEST_TIMEOUT": "10s",
		}},
		{"wildcard cors in production", map[string]string{"YOUTUBE_API_KEY": "k", "ENVIRONMENT": "production"}},
		{"bad base url", map[string]string{"YOUTUBE_API_KEY": "k", "YOUTUBE_BASE_URL": "ftp://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadWithKoanf(); err == nil {
				t.Error("LoadWithKoanf() expected error, got nil")
			}
		})
	}
}

func TestLoadWithOptions(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load(WithFixtures("testdata/videos.json"), WithLogLevel("debug"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Catalog.Provider != CatalogProviderStatic {
		t.Errorf("Catalog.Provider = %q, want %q", cfg.Catalog.Provider, CatalogProviderStatic)
	}
	if cfg.Catalog.FixturesPath != "testdata/videos.json" {
		t.Errorf("Catalog.FixturesPath = %q", cfg.Catalog.FixturesPath)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}

	// Options run before validation.
	if _, err := Load(WithLogLevel("verbose"), WithFixtures("x.json")); err == nil {
		t.Error("Load() with invalid log level override expected error")
	}
}
