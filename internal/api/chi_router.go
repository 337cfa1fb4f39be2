// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/movieweb/internal/config"
	"github.com/tomtom215/movieweb/internal/middleware"
)

// apiPrefix is the path prefix of the JSON API.
const apiPrefix = "/api/v1"

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for the handler using the security settings
// for CORS and rate limiting.
func NewRouter(handler *Handler, sec *config.SecurityConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(sec)),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(middleware.RequestID) // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP) // Extract real IP from X-Forwarded-For
	r.Use(middleware.RequestLogger(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Recoverer) // Recover from panics
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression())
	r.Use(chimiddleware.RequestSize(maxRequestBodyBytes))
	r.Use(SecurityHeaders())
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(router.notFound)
	r.MethodNotAllowed(router.methodNotAllowed)

	// Shared limiter instances so HTML and JSON routes draw from the same budget
	limit := router.chiMiddleware.RateLimit()
	write := router.chiMiddleware.RateLimitWrite()

	// ========================
	// Health Endpoints
	// ========================
	r.Route(apiPrefix+"/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(NoStore)
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	// ========================
	// JSON API
	// ========================
	r.Route(apiPrefix, func(r chi.Router) {
		r.Use(limit)
		r.Use(NoStore)

		r.Get("/users", h.ListUsers)
		r.With(write).Post("/users", h.CreateUser)
		r.Get("/users/{userID}", h.GetUser)
		r.With(write).Delete("/users/{userID}", h.DeleteUser)

		r.Get("/users/{userID}/movies", h.ListMovies)
		r.With(write).Post("/users/{userID}/movies", h.AddMovie)
		r.With(write).Patch("/users/{userID}/movies/{movieID}", h.UpdateMovie)
		r.With(write).Delete("/users/{userID}/movies/{movieID}", h.DeleteMovie)
	})

	// ========================
	// HTML Pages (Post/Redirect/Get)
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(limit)
		r.Use(h.csrf.Protect)

		r.Get("/", h.Index)
		r.With(write).Post("/users", h.CreateUserForm)
		r.Get("/users/{userID}", h.UserPage)
		r.Get("/users/{userID}/", h.UserPage)
		r.With(write).Post("/users/{userID}/delete", h.DeleteUserForm)

		r.With(write).Post("/users/{userID}/movies", h.AddMovieForm)
		r.With(write).Post("/users/{userID}/movies/{movieID}/update", h.UpdateMovieForm)
		r.With(write).Post("/users/{userID}/movies/{movieID}/delete", h.DeleteMovieForm)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

// isAPIRequest reports whether the request targets the JSON API.
func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, apiPrefix+"/") || r.URL.Path == apiPrefix
}

// notFound answers JSON under /api/v1 and the 404 page elsewhere.
func (router *Router) notFound(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		WriteNotFound(w, r, "Resource not found")
		return
	}
	router.handler.NotFoundPage(w, r)
}

// methodNotAllowed answers JSON under /api/v1 and plain text elsewhere.
func (router *Router) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		WriteMethodNotAllowed(w, r)
		return
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
