// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:3858/metrics

# Available Metrics

Recommendation engine:
  - recommendation_requests_total{outcome}: success, partial, degraded, invalid
  - recommendation_duration_seconds: end-to-end request latency (histogram)
  - recommendation_queries, recommendation_candidates, recommendation_results:
    per-request sizes (histograms)

Catalog:
  - catalog_calls_total{operation,result}: search/details by success, failure,
    not_found, timeout
  - catalog_call_duration_seconds{operation}

Two-tier cache:
  - recommend_cache_hits_total{tier}, recommend_cache_misses_total{tier}
  - recommend_cache_entries{tier}, recommend_cache_evictions{tier}
  - recommend_cache_memory_bytes

Circuit breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

HTTP API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

# Example Queries

Degraded request ratio:

	sum(rate(recommendation_requests_total{outcome="degraded"}[5m]))
	  / sum(rate(recommendation_requests_total[5m]))

Detail cache hit rate:

	rate(recommend_cache_hits_total{tier="detail"}[5m])
	  / (rate(recommend_cache_hits_total{tier="detail"}[5m]) + rate(recommend_cache_misses_total{tier="detail"}[5m]))
*/
package metrics
