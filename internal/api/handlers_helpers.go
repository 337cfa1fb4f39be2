// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/movieweb/internal/database"
	"github.com/tomtom215/movieweb/internal/validation"
)

// URL parameter names
const (
	paramUserID  = "userID"
	paramMovieID = "movieID"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// parseIDParam reads a positive integer chi URL parameter.
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidID, name, raw)
	}
	return uint(id), nil
}

// parseUserAndMovieIDs reads both IDs of a movie route.
func parseUserAndMovieIDs(r *http.Request) (userID, movieID uint, err error) {
	if userID, err = parseIDParam(r, paramUserID); err != nil {
		return 0, 0, err
	}
	if movieID, err = parseIDParam(r, paramMovieID); err != nil {
		return 0, 0, err
	}
	return userID, movieID, nil
}

// validateRequest validates a request struct.
// Returns nil if validation passes.
func validateRequest(v interface{}) *validation.RequestValidationError {
	return validation.ValidateStruct(v)
}

// respondValidationError writes a 400 VALIDATION_FAILED response.
func respondValidationError(rw *ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
}

// respondStoreError maps store errors to API responses. Not-found and
// empty-name errors are client errors; anything else is a database error.
func respondStoreError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, database.ErrUserNotFound):
		rw.NotFound("User not found")
	case errors.Is(err, database.ErrMovieNotFound):
		rw.NotFound("Movie not found")
	case errors.Is(err, database.ErrEmptyName):
		rw.ValidationError("name must not be blank", nil)
	default:
		rw.DatabaseError(err)
	}
}

// isNotFound reports whether err is a missing user or movie.
func isNotFound(err error) bool {
	return errors.Is(err, database.ErrUserNotFound) || errors.Is(err, database.ErrMovieNotFound)
}
