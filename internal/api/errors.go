// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import "errors"

// Request decoding errors
var (
	// ErrInvalidID indicates a path ID that is not a positive integer
	ErrInvalidID = errors.New("invalid id")

	// ErrEmptyBody indicates a JSON request without a body
	ErrEmptyBody = errors.New("request body is empty")

	// ErrTrailingData indicates input after the first JSON value
	ErrTrailingData = errors.New("request body must contain a single JSON object")
)
