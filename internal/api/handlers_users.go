// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"net/http"

	"github.com/tomtom215/movieweb/internal/logging"
)

// ListUsers returns every user.
//
// @Summary List users
// @Description Returns all users ordered by id. Movies are not included.
// @Tags Users
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.User} "Users retrieved"
// @Failure 500 {object} APIResponse "Database error"
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.SuccessList(users, len(users))
}

// CreateUser creates a user.
//
// @Summary Create user
// @Description Creates a user with the given name. Names need not be unique.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User to create"
// @Success 201 {object} APIResponse{data=models.User} "User created"
// @Failure 400 {object} APIResponse "Malformed body or validation failure"
// @Failure 500 {object} APIResponse "Database error"
// @Router /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(rw, verr)
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Name)
	if err != nil {
		respondStoreError(rw, err)
		return
	}

	logging.Ctx(r.Context()).Info().Uint("user_id", user.ID).Msg("User created")
	rw.Created(user)
}

// GetUser returns one user.
//
// @Summary Get user
// @Tags Users
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} APIResponse{data=models.User} "User retrieved"
// @Failure 400 {object} APIResponse "Invalid user ID"
// @Failure 404 {object} APIResponse "User not found"
// @Router /users/{userID} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, err := parseIDParam(r, paramUserID)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		respondStoreError(rw, err)
		return
	}

	rw.Success(user)
}

// DeleteUser deletes a user and, by cascade, all of the user's movies.
//
// @Summary Delete user
// @Description Deletes the user and every movie in the user's collection.
// @Tags Users
// @Param userID path int true "User ID"
// @Success 204 "User deleted"
// @Failure 400 {object} APIResponse "Invalid user ID"
// @Failure 404 {object} APIResponse "User not found"
// @Router /users/{userID} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, err := parseIDParam(r, paramUserID)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	if err := h.store.DeleteUser(r.Context(), userID); err != nil {
		respondStoreError(rw, err)
		return
	}

	logging.Ctx(r.Context()).Info().Uint("user_id", userID).Msg("User deleted")
	rw.NoContent()
}
