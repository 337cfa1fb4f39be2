// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"context"
	"time"

	"github.com/tomtom215/movieweb/internal/config"
	"github.com/tomtom215/movieweb/internal/models"
)

// Store is the data access the handlers depend on. *database.DB implements it.
type Store interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, name string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserWithMovies(ctx context.Context, id uint) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error

	ListMovies(ctx context.Context, userID uint) ([]models.Movie, error)
	AddMovie(ctx context.Context, movie *models.Movie) error
	UpdateMovieTitle(ctx context.Context, userID, movieID uint, title string) (*models.Movie, error)
	DeleteMovie(ctx context.Context, userID, movieID uint) error
}

// Handler contains dependencies for HTTP handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: shared helpers (ID parsing, error mapping)
//   - handlers_health.go: health and readiness endpoints
//   - handlers_users.go: JSON user endpoints
//   - handlers_movies.go: JSON movie endpoints
//   - handlers_pages.go: HTML pages and form posts (Post/Redirect/Get)
//   - csrf.go: CSRF tokens for the HTML forms
type Handler struct {
	store     Store
	config    *config.Config
	flashes   *FlashStore
	csrf      *CSRFProtection
	startTime time.Time
}

// NewHandler creates a handler serving both the HTML pages and the JSON API.
//
//	handler := api.NewHandler(db, cfg, api.NewFlashStore(&cfg.Security))
//	router := api.NewRouter(handler, &cfg.Security)
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(store Store, cfg *config.Config, flashes *FlashStore) *Handler {
	h := &Handler{
		store:     store,
		config:    cfg,
		flashes:   flashes,
		csrf:      NewCSRFProtection(&cfg.Security),
		startTime: time.Now(),
	}
	h.csrf.ErrorHandler = h.forbiddenPage
	return h
}
