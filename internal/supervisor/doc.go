// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

/*
Package supervisor provides process supervision for MovieWeb using suture v4.

The tree has two layers so a crash in one does not stop the other:

	RootSupervisor ("movieweb")
	├── DataSupervisor ("data-layer")
	│   └── DBStatsService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted. Once the decaying failure counter passes
FailureThreshold, restarts wait FailureBackoff. Supervisor events are logged
through sutureslog with the zerolog-backed slog handler from internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewDBStatsService(db, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

# Configuration

TreeConfig zero values fall back to suture's defaults:

  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

After shutdown, UnstoppedServiceReport lists services that ignored the
timeout.
*/
package supervisor
