// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/movieweb/internal/config"
)

func requestWithCookies(cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestFlashStore_AddAndPop(t *testing.T) {
	t.Parallel()

	fs := NewFlashStore(&config.SecurityConfig{SessionSecret: testSecret})

	rec := httptest.NewRecorder()
	req := requestWithCookies(nil)
	fs.Add(rec, req, FlashSuccess, "Saved.")
	fs.Add(rec, req, FlashError, "Careful.")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	cookie := cookies[len(cookies)-1]
	assert.Equal(t, sessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	popRec := httptest.NewRecorder()
	flashes := fs.Pop(popRec, requestWithCookies([]*http.Cookie{cookie}))
	assert.Equal(t, []Flash{
		{Category: FlashError, Message: "Careful."},
		{Category: FlashSuccess, Message: "Saved."},
	}, flashes, "errors come first")

	// Pop clears the session in the refreshed cookie.
	cleared := popRec.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Empty(t, fs.Pop(httptest.NewRecorder(), requestWithCookies(cleared)))
}

func TestFlashStore_PopEmpty(t *testing.T) {
	t.Parallel()

	fs := NewFlashStore(&config.SecurityConfig{SessionSecret: testSecret})

	rec := httptest.NewRecorder()
	assert.Empty(t, fs.Pop(rec, requestWithCookies(nil)))
	assert.Empty(t, rec.Result().Cookies(), "no cookie is written without flashes")
}

func TestFlashStore_ForeignCookie(t *testing.T) {
	t.Parallel()

	signer := NewFlashStore(&config.SecurityConfig{SessionSecret: testSecret})
	other := NewFlashStore(&config.SecurityConfig{})

	rec := httptest.NewRecorder()
	signer.Add(rec, requestWithCookies(nil), FlashSuccess, "Saved.")

	assert.Empty(t, other.Pop(httptest.NewRecorder(), requestWithCookies(rec.Result().Cookies())),
		"a cookie signed with another key is discarded")
}

func TestFlashStore_SecureCookie(t *testing.T) {
	t.Parallel()

	fs := NewFlashStore(&config.SecurityConfig{SessionSecret: testSecret, CookieSecure: true})

	rec := httptest.NewRecorder()
	fs.Add(rec, requestWithCookies(nil), FlashSuccess, "Saved.")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.True(t, cookies[0].Secure)
}
