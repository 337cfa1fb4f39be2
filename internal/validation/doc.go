// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

// Package validation provides struct validation using go-playground/validator v10.
//
// It exposes a thread-safe singleton validator, translates field errors into
// user-facing messages, and converts them to the API error format
// (code VALIDATION_FAILED).
//
// Field names in messages are taken from the json tag, so a request struct
//
//	type CreateMovieRequest struct {
//	    Name      string `json:"name" validate:"required,notblank,max=100"`
//	    PosterURL string `json:"poster_url" validate:"omitempty,http_url,max=200"`
//	}
//
// produces "name is required" or "poster_url must be a valid http or https URL".
//
// # Custom Tags
//
//   - notblank: rejects strings that are empty after trimming whitespace
//
// # Usage
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// HTML forms use FirstMessage for a single flash line.
package validation
