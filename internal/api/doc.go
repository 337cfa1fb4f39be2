// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

/*
Package api provides the HTTP layer for MovieWeb.

It serves two surfaces over the same Store:

  - HTML pages rendered from embedded html/template files. Every form post
    answers with a 303 redirect (Post/Redirect/Get) and reports its outcome
    through a flash message kept in a signed gorilla/sessions cookie. Form
    posts carry a csrf_token field checked against a signed cookie; a
    missing or mismatched token gets a 403 page.
  - A JSON API under /api/v1 using a standard envelope
    ({"success", "data", "error", "meta"}) encoded with goccy/go-json.

Key Components:

  - Router: chi route table and global middleware stack
  - Handler: page, JSON and health handlers
  - ResponseWriter: JSON envelope with request ID and timing metadata
  - FlashStore: one-shot success and error messages
  - CSRFProtection: double-submit CSRF tokens for the form posts
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories

Routes:

	GET    /                                          users page
	POST   /users                                     add user (form field "user")
	GET    /users/{userID}                            user's movies
	POST   /users/{userID}/delete                     delete user and movies
	POST   /users/{userID}/movies                     add movie
	POST   /users/{userID}/movies/{movieID}/update    rename movie (form field "title")
	POST   /users/{userID}/movies/{movieID}/delete    delete movie

	GET    /api/v1/users                              list users
	POST   /api/v1/users                              create user
	GET    /api/v1/users/{userID}                     get user
	DELETE /api/v1/users/{userID}                     delete user
	GET    /api/v1/users/{userID}/movies              list movies
	POST   /api/v1/users/{userID}/movies              add movie
	PATCH  /api/v1/users/{userID}/movies/{movieID}    rename movie
	DELETE /api/v1/users/{userID}/movies/{movieID}    delete movie
	GET    /api/v1/health[/live|/ready]               health probes

	GET    /metrics                                   Prometheus exposition
	GET    /swagger/*                                 Swagger UI

Error Codes:

JSON errors use BAD_REQUEST for malformed IDs or bodies (including unknown
fields and data after the first JSON value), VALIDATION_FAILED
for rejected fields, NOT_FOUND for missing users or movies (including a
movie that belongs to another user), TOO_MANY_REQUESTS when rate limited and
DATABASE_ERROR for store failures. Store error text is logged, never returned.

Usage Example:

	db, err := database.New(&cfg.Database)
	handler := api.NewHandler(db, cfg, api.NewFlashStore(&cfg.Security))
	router := api.NewRouter(handler, &cfg.Security)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
