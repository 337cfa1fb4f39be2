// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/movieweb/internal/logging"
)

// Store errors. Callers compare with errors.Is.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrMovieNotFound = errors.New("movie not found")
	ErrEmptyName     = errors.New("name must not be empty")
)

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}
