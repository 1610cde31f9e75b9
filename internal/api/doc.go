// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

/*
Package api provides the HTTP REST API layer for FormCoach.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers backed by the recommendation engine
  - Response formatting: the APIResponse envelope with request metadata
  - Rate limiting: go-chi/httprate, per client IP
  - CORS: go-chi/cors for browser clients

Endpoints:

	POST   /api/v1/recommendations          ranked videos for a training context
	POST   /api/v1/recommendations/queries  catalog queries a context would issue
	GET    /api/v1/recommendations/metrics  engine counters
	GET    /api/v1/cache/stats              two-tier cache statistics
	DELETE /api/v1/cache                    empty both cache tiers
	GET    /api/v1/health/live              liveness probe
	GET    /api/v1/health/ready             readiness probe (catalog breaker state)
	GET    /metrics                         Prometheus exposition

Response Format:

Every JSON endpoint answers with the same envelope:

	{
	  "success": true,
	  "data": { ... },
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 12}
	}

Errors set success to false and fill error with a machine-readable code:

	{
	  "success": false,
	  "error": {"code": "VALIDATION_FAILED", "message": "...", "details": {...}},
	  "meta": { ... }
	}

A recommendation request whose catalog calls partly or wholly failed is
still a 200: the failures are reported in data.summary, and
data.summary.catalog_unavailable distinguishes an unreachable catalog from
an empty match.

Usage Example:

	breaker := catalog.NewCircuitBreakerClient(client, cfg.Catalog.CircuitBreaker, "youtube")
	engine, _ := recommend.NewEngine(recommend.FromConfig(cfg), breaker, logging.Logger())
	handler := api.NewHandler(engine, breaker)
	router := api.NewRouter(handler, api.MiddlewareConfigFromSecurity(&cfg.Security))
	srv := &http.Server{Addr: ":3858", Handler: router.Setup()}

Thread Safety:

Handlers hold no per-request state and are safe for concurrent use.
*/
package api
