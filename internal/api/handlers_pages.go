// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tomtom215/movieweb/internal/database"
	"github.com/tomtom215/movieweb/internal/logging"
)

// Flash messages shown by the HTML pages
const (
	msgEmptyUserName   = "User name cannot be empty."
	msgEmptyMovieTitle = "Movie title cannot be empty."
	msgMovieNotFound   = "Movie not found."
	msgUserNotFound    = "User not found."
	msgStoreFailure    = "Something went wrong. Please try again."
	msgFormExpired     = "This form has expired. Reload the page and try again."
)

// userPath returns the page URL of a user.
func userPath(userID uint) string {
	return fmt.Sprintf("/users/%d", userID)
}

// redirect answers a form post with 303 See Other (Post/Redirect/Get).
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// Index renders the list of users with the add-user form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.pageStoreError(w, r, err)
		return
	}

	h.renderPage(w, r, http.StatusOK, pageIndex, &pageData{Users: users})
}

// CreateUserForm handles the add-user form.
func (h *Handler) CreateUserForm(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PostFormValue(formUser))
	if name == "" {
		h.flashes.Add(w, r, FlashError, msgEmptyUserName)
		redirect(w, r, "/")
		return
	}

	req := CreateUserRequest{Name: name}
	if verr := validateRequest(&req); verr != nil {
		h.flashes.Add(w, r, FlashError, verr.FirstMessage())
		redirect(w, r, "/")
		return
	}

	user, err := h.store.CreateUser(r.Context(), name)
	if err != nil {
		h.formStoreError(w, r, err, "/")
		return
	}

	logging.Ctx(r.Context()).Info().Uint("user_id", user.ID).Msg("User created")
	h.flashes.Add(w, r, FlashSuccess, fmt.Sprintf("User '%s' added successfully!", user.Name))
	redirect(w, r, "/")
}

// UserPage renders a user's movies with the add, rename and delete forms.
func (h *Handler) UserPage(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, paramUserID)
	if err != nil {
		h.NotFoundPage(w, r)
		return
	}

	user, err := h.store.GetUserWithMovies(r.Context(), userID)
	if err != nil {
		h.pageStoreError(w, r, err)
		return
	}

	h.renderPage(w, r, http.StatusOK, pageUser, &pageData{User: user, Movies: user.Movies})
}

// AddMovieForm handles the add-movie form.
func (h *Handler) AddMovieForm(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, paramUserID)
	if err != nil {
		h.NotFoundPage(w, r)
		return
	}
	back := userPath(userID)

	req, err := addMovieRequestFromForm(r)
	if err != nil {
		h.flashes.Add(w, r, FlashError, "Year must be a number.")
		redirect(w, r, back)
		return
	}
	if req.Name == "" {
		h.flashes.Add(w, r, FlashError, msgEmptyMovieTitle)
		redirect(w, r, back)
		return
	}
	if verr := validateRequest(req); verr != nil {
		h.flashes.Add(w, r, FlashError, verr.FirstMessage())
		redirect(w, r, back)
		return
	}

	movie := req.toMovie(userID)
	if err := h.store.AddMovie(r.Context(), movie); err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			h.NotFoundPage(w, r)
			return
		}
		h.formStoreError(w, r, err, back)
		return
	}

	logging.Ctx(r.Context()).Info().
		Uint("user_id", userID).
		Uint("movie_id", movie.ID).
		Msg("Movie added")
	h.flashes.Add(w, r, FlashSuccess, fmt.Sprintf("Movie '%s' added.", movie.Name))
	redirect(w, r, back)
}

// UpdateMovieForm handles the rename form.
func (h *Handler) UpdateMovieForm(w http.ResponseWriter, r *http.Request) {
	userID, movieID, err := parseUserAndMovieIDs(r)
	if err != nil {
		h.NotFoundPage(w, r)
		return
	}
	back := userPath(userID)

	req := UpdateMovieRequest{Title: strings.TrimSpace(r.PostFormValue(formTitle))}
	if req.Title == "" {
		h.flashes.Add(w, r, FlashError, msgEmptyMovieTitle)
		redirect(w, r, back)
		return
	}
	if verr := validateRequest(&req); verr != nil {
		h.flashes.Add(w, r, FlashError, verr.FirstMessage())
		redirect(w, r, back)
		return
	}

	movie, err := h.store.UpdateMovieTitle(r.Context(), userID, movieID, req.Title)
	if err != nil {
		h.formStoreError(w, r, err, back)
		return
	}

	h.flashes.Add(w, r, FlashSuccess, fmt.Sprintf("Movie renamed to '%s'.", movie.Name))
	redirect(w, r, back)
}

// DeleteMovieForm handles the delete-movie button.
func (h *Handler) DeleteMovieForm(w http.ResponseWriter, r *http.Request) {
	userID, movieID, err := parseUserAndMovieIDs(r)
	if err != nil {
		h.NotFoundPage(w, r)
		return
	}
	back := userPath(userID)

	if err := h.store.DeleteMovie(r.Context(), userID, movieID); err != nil {
		h.formStoreError(w, r, err, back)
		return
	}

	logging.Ctx(r.Context()).Info().
		Uint("user_id", userID).
		Uint("movie_id", movieID).
		Msg("Movie deleted")
	h.flashes.Add(w, r, FlashSuccess, "Movie deleted.")
	redirect(w, r, back)
}

// DeleteUserForm handles the delete-user button.
func (h *Handler) DeleteUserForm(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, paramUserID)
	if err != nil {
		h.NotFoundPage(w, r)
		return
	}

	if err := h.store.DeleteUser(r.Context(), userID); err != nil {
		h.formStoreError(w, r, err, "/")
		return
	}

	logging.Ctx(r.Context()).Info().Uint("user_id", userID).Msg("User deleted")
	h.flashes.Add(w, r, FlashSuccess, "User deleted.")
	redirect(w, r, "/")
}

// NotFoundPage renders the 404 page.
func (h *Handler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusNotFound, pageNotFound, &pageData{})
}

// forbiddenPage answers a form post that failed CSRF validation.
func (h *Handler) forbiddenPage(w http.ResponseWriter, r *http.Request, _ error) {
	h.renderPage(w, r, http.StatusForbidden, pageForbidden, &pageData{Message: msgFormExpired})
}

// pageStoreError renders the 404 page for missing records and a 500 otherwise.
func (h *Handler) pageStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if isNotFound(err) {
		h.renderPage(w, r, http.StatusNotFound, pageNotFound, &pageData{Message: msgUserNotFound})
		return
	}
	logging.CtxErr(r.Context(), err).Str("path", sanitizeLogValue(r.URL.Path)).Msg("Database error")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// formStoreError flashes a store failure and redirects back.
func (h *Handler) formStoreError(w http.ResponseWriter, r *http.Request, err error, back string) {
	switch {
	case errors.Is(err, database.ErrMovieNotFound):
		h.flashes.Add(w, r, FlashError, msgMovieNotFound)
	case errors.Is(err, database.ErrUserNotFound):
		h.flashes.Add(w, r, FlashError, msgUserNotFound)
	case errors.Is(err, database.ErrEmptyName) && back == "/":
		h.flashes.Add(w, r, FlashError, msgEmptyUserName)
	case errors.Is(err, database.ErrEmptyName):
		h.flashes.Add(w, r, FlashError, msgEmptyMovieTitle)
	default:
		logging.CtxErr(r.Context(), err).Str("path", sanitizeLogValue(r.URL.Path)).Msg("Database error")
		h.flashes.Add(w, r, FlashError, msgStoreFailure)
	}
	redirect(w, r, back)
}
