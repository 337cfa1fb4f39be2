// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

// Package main provides the MovieWeb HTTP server
//
// @title MovieWeb API
// @version 1.0
// @description JSON API for managing users and their favorite movie collections.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address, shared with the HTML pages.
// @description Writes are additionally limited to 30 requests per minute.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "VALIDATION_FAILED",
// @description     "message": "name is required",
// @description     "details": {"field": "name", "tag": "required"},
// @description     "request_id": "5f0c..."
// @description   },
// @description   "meta": {
// @description     "timestamp": "2026-01-01T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/movieweb/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness, readiness and status probes
//
// @tag.name Users
// @tag.description Create, list, fetch and delete users
//
// @tag.name Movies
// @tag.description Manage a user's favorite movies
package main
