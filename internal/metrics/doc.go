// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

/*
Package metrics provides Prometheus instrumentation for MovieWeb.

All collectors are registered on the default registry through promauto and
exposed by the /metrics endpoint. Every name carries the movieweb_ prefix.

Database:
  - movieweb_db_query_duration_seconds{operation,table}
  - movieweb_db_query_errors_total{operation,table,error_type}
  - movieweb_db_open_connections

HTTP (labelled by chi route pattern, not raw path):
  - movieweb_http_requests_total{method,route,status_code}
  - movieweb_http_request_duration_seconds{method,route}
  - movieweb_http_active_requests
  - movieweb_rate_limit_hits_total{route}

Domain:
  - movieweb_users_created_total
  - movieweb_movies_added_total

Example PromQL:

	# p95 latency per route
	histogram_quantile(0.95, sum(rate(movieweb_http_request_duration_seconds_bucket[5m])) by (le, route))

	# database error rate
	sum(rate(movieweb_db_query_errors_total[5m])) by (operation, table)
*/
package metrics
