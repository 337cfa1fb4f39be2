// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/movieweb/internal/database"
	"github.com/tomtom215/movieweb/internal/models"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := srv.doJSON(t, http.MethodPost, "/api/v1/users", CreateUserRequest{Name: "Alice"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user models.User
	env := decodeEnvelope(t, rec, &user)
	assert.True(t, env.Success)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	require.NotNil(t, env.Meta)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, rec.Header().Get("X-Request-ID"), env.Meta.RequestID)
}

func TestCreateUser_Invalid(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	tests := []struct {
		name     string
		body     interface{}
		wantCode string
	}{
		{"empty body", nil, ErrCodeBadRequest},
		{"malformed json", `{"name":`, ErrCodeBadRequest},
		{"unknown field", `{"name":"Alice","bogus":1}`, ErrCodeBadRequest},
		{"trailing garbage", `{"name":"Bob"} {"name":"trailing"`, ErrCodeBadRequest},
		{"second object", `{"name":"Bob"}{"name":"Carol"}`, ErrCodeBadRequest},
		{"missing name", `{}`, ErrCodeValidationFailed},
		{"blank name", CreateUserRequest{Name: "   "}, ErrCodeValidationFailed},
		{"name too long", CreateUserRequest{Name: strings.Repeat("a", 101)}, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.doJSON(t, http.MethodPost, "/api/v1/users", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			env := decodeEnvelope(t, rec, nil)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.NotEmpty(t, env.Error.RequestID)
		})
	}

	users, err := srv.db.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users, "rejected requests must not create users")
}

func TestCreateUser_ValidationDetails(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := srv.doJSON(t, http.MethodPost, "/api/v1/users", `{}`)

	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "name is required", env.Error.Message)
	details, ok := env.Error.Details.(map[string]interface{})
	require.True(t, ok, "details: %#v", env.Error.Details)
	assert.Equal(t, "name", details["field"])
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := srv.doJSON(t, http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []models.User
	env := decodeEnvelope(t, rec, &users)
	assert.Empty(t, users)
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 0, *env.Meta.Count)
	assert.Contains(t, rec.Body.String(), `"data":[]`, "empty list must encode as [] not null")

	srv.seedUser(t, "Alice")
	srv.seedUser(t, "Bob")

	rec = srv.doJSON(t, http.MethodGet, "/api/v1/users", nil)
	env = decodeEnvelope(t, rec, &users)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
	assert.Equal(t, 2, *env.Meta.Count)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	alice := srv.seedUser(t, "Alice")

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"existing", "/api/v1/users/" + uintStr(alice.ID), http.StatusOK, ""},
		{"missing", "/api/v1/users/999", http.StatusNotFound, ErrCodeNotFound},
		{"non-numeric id", "/api/v1/users/abc", http.StatusBadRequest, ErrCodeBadRequest},
		{"zero id", "/api/v1/users/0", http.StatusBadRequest, ErrCodeBadRequest},
		{"negative id", "/api/v1/users/-1", http.StatusBadRequest, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.doJSON(t, http.MethodGet, tt.target, nil)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			env := decodeEnvelope(t, rec, nil)
			if tt.wantCode == "" {
				assert.True(t, env.Success)
				return
			}
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestDeleteUser_CascadesMovies(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	ctx := context.Background()
	alice := srv.seedUser(t, "Alice")
	bob := srv.seedUser(t, "Bob")
	srv.seedMovie(t, alice.ID, "Vertigo")
	srv.seedMovie(t, alice.ID, "Psycho")
	srv.seedMovie(t, bob.ID, "Rear Window")

	rec := srv.doJSON(t, http.MethodDelete, "/api/v1/users/"+uintStr(alice.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Empty(t, rec.Body.String())

	_, err := srv.db.GetUser(ctx, alice.ID)
	assert.ErrorIs(t, err, database.ErrUserNotFound)

	bobMovies, err := srv.db.ListMovies(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobMovies, 1, "other users' movies are untouched")

	rec = srv.doJSON(t, http.MethodDelete, "/api/v1/users/"+uintStr(alice.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "second delete")
}

func TestUserEndpoints_DatabaseError(t *testing.T) {
	t.Parallel()

	handler := newFailingServer(t)

	tests := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/api/v1/users", ""},
		{http.MethodPost, "/api/v1/users", `{"name":"Alice"}`},
		{http.MethodGet, "/api/v1/users/1", ""},
		{http.MethodDelete, "/api/v1/users/1", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			env := decodeEnvelope(t, rec, nil)
			require.NotNil(t, env.Error)
			assert.Equal(t, ErrCodeDatabaseError, env.Error.Code)
			assert.NotContains(t, rec.Body.String(), errStoreDown.Error(), "store errors must not leak")
		})
	}
}
