// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

/*
Package services provides suture.Service wrappers for MovieWeb components.

Each wrapper implements suture.Service (Serve(ctx) error) and fmt.Stringer:

  - HTTPServerService runs an *http.Server and shuts it down gracefully when
    the context is canceled. http.ErrServerClosed is not a failure.
  - DBStatsService samples database/sql pool stats and publishes the open
    connection count as movieweb_db_open_connections.

Returning an error from Serve makes the supervisor restart the service;
returning ctx.Err() after cancellation is a clean stop.
*/
package services
