// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movieweb/internal/models"
)

// maxRequestBodyBytes bounds JSON request bodies.
const maxRequestBodyBytes = 64 << 10

// Form field names used by the HTML pages.
const (
	formUser      = "user"
	formMovie     = "movie"
	formDirector  = "director"
	formYear      = "year"
	formPosterURL = "poster_url"
	formTitle     = "title"
)

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100" example:"Alice"`
}

// AddMovieRequest is the body of POST /api/v1/users/{userID}/movies.
// Director defaults to "Unknown" when empty.
type AddMovieRequest struct {
	Name      string `json:"name" validate:"required,notblank,max=100" example:"Blade Runner"`
	Director  string `json:"director,omitempty" validate:"max=100" example:"Ridley Scott"`
	Year      *int   `json:"year,omitempty" validate:"omitempty,gte=1870,lte=2100" example:"1982"`
	PosterURL string `json:"poster_url,omitempty" validate:"omitempty,http_url,max=200" example:"https://img.example.org/blade-runner.jpg"`
}

// toMovie builds the record to insert for the given owner.
func (req *AddMovieRequest) toMovie(userID uint) *models.Movie {
	return &models.Movie{
		Name:      req.Name,
		Director:  req.Director,
		Year:      req.Year,
		PosterURL: req.PosterURL,
		UserID:    userID,
	}
}

// UpdateMovieRequest is the body of PATCH /api/v1/users/{userID}/movies/{movieID}.
type UpdateMovieRequest struct {
	Title string `json:"title" validate:"required,notblank,max=100" example:"Blade Runner: The Final Cut"`
}

// decodeJSON decodes a bounded JSON body into dst. Unknown fields and any
// input after the first value are rejected.
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	if err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	if dec.More() {
		return ErrTrailingData
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// addMovieRequestFromForm reads the add-movie form. An empty year is
// treated as unknown; a non-numeric year is an error.
func addMovieRequestFromForm(r *http.Request) (*AddMovieRequest, error) {
	req := &AddMovieRequest{
		Name:      strings.TrimSpace(r.PostFormValue(formMovie)),
		Director:  strings.TrimSpace(r.PostFormValue(formDirector)),
		PosterURL: strings.TrimSpace(r.PostFormValue(formPosterURL)),
	}

	if raw := strings.TrimSpace(r.PostFormValue(formYear)); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("year %q is not a number", raw)
		}
		req.Year = &year
	}

	return req, nil
}
