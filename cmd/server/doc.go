// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

/*
Package main is the entry point for the MovieWeb server.

MovieWeb keeps a list of users, each with a collection of favorite movies,
and serves it as HTML pages and as a JSON API under /api/v1.

# Commands

	movieweb [--config path]           run the server (same as serve)
	movieweb serve [--config path]     apply migrations, then run the server
	movieweb migrate [--config path]   apply migrations and exit
	movieweb --version

--config sets CONFIG_PATH for the koanf loader. A missing file is an error.

# Application Architecture

	RootSupervisor ("movieweb")
	├── DataSupervisor ("data-layer")
	│   └── DB pool stats
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Initialization order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON or console output
 3. Database: gorm with the sqlite or postgres driver, then AutoMigrate
 4. HTTP Server: chi router with the middleware stack
 5. Supervisor Tree: suture v4

# Configuration

	# Database
	DB_DRIVER=sqlite             # sqlite or postgres
	DB_PATH=data/movies.db       # sqlite file
	DB_DSN=host=... dbname=...   # postgres connection string

	# Server
	HTTP_PORT=8080
	HTTP_HOST=0.0.0.0
	ENVIRONMENT=development      # production requires SESSION_SECRET

	# Security
	SESSION_SECRET=<32+ chars>   # signs the flash message cookie
	COOKIE_SECURE=false
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m
	CORS_ORIGINS=*

	# Logging
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and drains in-flight requests within HTTP_TIMEOUT,
then the database is closed.
*/
package main
