// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

/*
Package middleware provides HTTP middleware used by the API router.

Key Components:

  - RequestID: UUID request ids propagated through the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
    labelled by chi route pattern
  - Compression: gzip response bodies

All middleware has the func(http.Handler) http.Handler shape and plugs into
chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

Thread Safety:

All middleware is stateless apart from the gzip writer pool and safe for
concurrent use.
*/
package middleware
