// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

// Package testinfra provides container-backed infrastructure for integration tests.
//
// It uses testcontainers-go to run a real PostgreSQL server, so the postgres
// driver path of internal/database is exercised against the same engine used
// in production deployments. Files in this package carry the integration
// build tag:
//
//	go test -tags integration ./internal/database/...
//
// # PostgreSQL Container
//
//	func TestPostgresStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//
//	    pg, err := testinfra.NewPostgresContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, pg)
//
//	    db, err := database.New(&config.DatabaseConfig{
//	        Driver: config.DriverPostgres,
//	        DSN:    pg.DSN,
//	    })
//	    // ...
//	}
//
// # CI Considerations
//
// Tests are skipped when Docker is unavailable. The first run pulls the
// postgres:16-alpine image.
package testinfra
