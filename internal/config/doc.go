// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

/*
Package config provides centralized configuration management for FormCoach.

Configuration is loaded in three layers using Koanf v2: struct defaults, an
optional YAML file, and environment variables. Later layers win.

# Configuration File

The first file found is used:
  - $CONFIG_PATH
  - ./config.yaml, ./config.yml
  - /etc/formcoach/config.yaml, /etc/formcoach/config.yml

Example:

	catalog:
	  provider: youtube
	  api_key: "AIza..."
	  requests_per_second: 5
	recommend:
	  concurrency: 8
	  request_timeout: 15s
	logging:
	  level: debug
	  format: console

# Environment Variables

Catalog:
  - CATALOG_PROVIDER: youtube or static (default: youtube)
  - YOUTUBE_API_KEY: YouTube Data API v3 key
  - YOUTUBE_BASE_URL: API base URL
  - CATALOG_FIXTURES_PATH: fixture file for the static provider
  - CATALOG_TIMEOUT, CATALOG_REQUESTS_PER_SECOND, CATALOG_BURST, CATALOG_MAX_RESULTS
  - CATALOG_BREAKER_*: circuit breaker tuning

Recommendation engine:
  - RECOMMEND_MAX_QUERIES (default: 10), RECOMMEND_MAX_RESULTS (default: 20)
  - RECOMMEND_CONCURRENCY (default: 4)
  - RECOMMEND_CALL_TIMEOUT (default: 5s), RECOMMEND_REQUEST_TIMEOUT (default: 20s)
  - RECOMMEND_CACHE_TTL (default: 30m)
  - RECOMMEND_SEARCH_CACHE_SIZE, RECOMMEND_DETAIL_CACHE_SIZE

HTTP server and security:
  - HTTP_HOST, HTTP_PORT (default: 3858), HTTP_TIMEOUT, ENVIRONMENT
  - CORS_ORIGINS, TRUSTED_PROXIES: comma-separated lists
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file:line

# Validation

Load returns an error when a required value is missing (YOUTUBE_API_KEY for
the youtube provider, CATALOG_FIXTURES_PATH for the static provider) or a
value is out of range.
*/
package config
