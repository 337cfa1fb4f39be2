// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

/*
Package middleware provides chi-compatible HTTP middleware for MovieWeb.

Key Components:

  - RequestID: UUID-based request tracking, shared with chi and the logging package
  - RequestLogger: one structured log line per request, warn on slow requests
  - PrometheusMetrics: request count, latency and in-flight instrumentation
    labelled by chi route pattern
  - Compression: gzip/deflate for HTML and JSON responses

Middleware Stack:

The router installs the stack in this order:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression())

CORS, rate limiting and security headers are configured in the api package
because they depend on the security configuration.

Thread Safety:

All middleware is safe for concurrent use. Metric collectors are registered
once at package init by the metrics package.
*/
package middleware
