// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"net/http"

	"github.com/tomtom215/movieweb/internal/logging"
)

// ListMovies returns a user's favorite movies.
//
// @Summary List a user's movies
// @Tags Movies
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} APIResponse{data=[]models.Movie} "Movies retrieved"
// @Failure 400 {object} APIResponse "Invalid user ID"
// @Failure 404 {object} APIResponse "User not found"
// @Router /users/{userID}/movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, err := parseIDParam(r, paramUserID)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	movies, err := h.store.ListMovies(r.Context(), userID)
	if err != nil {
		respondStoreError(rw, err)
		return
	}

	rw.SuccessList(movies, len(movies))
}

// AddMovie adds a movie to a user's collection.
//
// @Summary Add movie
// @Description Adds a movie to the user's favorites. Director defaults to "Unknown".
// @Tags Movies
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param request body AddMovieRequest true "Movie to add"
// @Success 201 {object} APIResponse{data=models.Movie} "Movie added"
// @Failure 400 {object} APIResponse "Malformed body or validation failure"
// @Failure 404 {object} APIResponse "User not found"
// @Router /users/{userID}/movies [post]
func (h *Handler) AddMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, err := parseIDParam(r, paramUserID)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	var req AddMovieRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(rw, verr)
		return
	}

	movie := req.toMovie(userID)
	if err := h.store.AddMovie(r.Context(), movie); err != nil {
		respondStoreError(rw, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Uint("user_id", userID).
		Uint("movie_id", movie.ID).
		Msg("Movie added")
	rw.Created(movie)
}

// UpdateMovie renames a movie. Only the title can be edited.
//
// @Summary Update movie title
// @Tags Movies
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param movieID path int true "Movie ID"
// @Param request body UpdateMovieRequest true "New title"
// @Success 200 {object} APIResponse{data=models.Movie} "Movie updated"
// @Failure 400 {object} APIResponse "Malformed body or validation failure"
// @Failure 404 {object} APIResponse "Movie not found for this user"
// @Router /users/{userID}/movies/{movieID} [patch]
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, movieID, err := parseUserAndMovieIDs(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	var req UpdateMovieRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(rw, verr)
		return
	}

	movie, err := h.store.UpdateMovieTitle(r.Context(), userID, movieID, req.Title)
	if err != nil {
		respondStoreError(rw, err)
		return
	}

	rw.Success(movie)
}

// DeleteMovie removes a movie from a user's collection.
//
// @Summary Delete movie
// @Tags Movies
// @Param userID path int true "User ID"
// @Param movieID path int true "Movie ID"
// @Success 204 "Movie deleted"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Movie not found for this user"
// @Router /users/{userID}/movies/{movieID} [delete]
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, movieID, err := parseUserAndMovieIDs(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	if err := h.store.DeleteMovie(r.Context(), userID, movieID); err != nil {
		respondStoreError(rw, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Uint("user_id", userID).
		Uint("movie_id", movieID).
		Msg("Movie deleted")
	rw.NoContent()
}
