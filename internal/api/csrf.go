// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"

	"github.com/tomtom215/movieweb/internal/config"
	"github.com/tomtom215/movieweb/internal/logging"
)

// CSRF protection errors
var (
	// ErrCSRFTokenMissing indicates no CSRF token was provided.
	ErrCSRFTokenMissing = errors.New("CSRF token missing")

	// ErrCSRFTokenInvalid indicates the submitted token does not match the cookie.
	ErrCSRFTokenInvalid = errors.New("CSRF token invalid")
)

const (
	csrfCookieName  = "movieweb_csrf"
	csrfFormField   = "csrf_token"
	csrfHeaderName  = "X-CSRF-Token"
	csrfTokenLength = 32
)

// CSRFProtection guards the HTML form posts with the double-submit cookie
// pattern. The cookie carries the token signed with the session secret, and
// every state-changing request must echo the raw token in the csrf_token form
// field or the X-CSRF-Token header.
type CSRFProtection struct {
	codec  *securecookie.SecureCookie
	secure bool

	// ErrorHandler is called when validation fails. If nil, a plain 403 is written.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// NewCSRFProtection signs tokens with the session secret, or with a random
// key per process when none is configured.
func NewCSRFProtection(cfg *config.SecurityConfig) *CSRFProtection {
	hashKey := []byte(cfg.SessionSecret)
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(64)
	}

	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(sessionMaxAge)

	return &CSRFProtection{
		codec:  codec,
		secure: cfg.CookieSecure,
	}
}

// Token returns the request's CSRF token, issuing a new cookie when the
// request has no valid one. It must be called before the header is written.
func (c *CSRFProtection) Token(w http.ResponseWriter, r *http.Request) string {
	if token, err := c.cookieToken(r); err == nil {
		return token
	}

	raw := securecookie.GenerateRandomKey(csrfTokenLength)
	if raw == nil {
		logging.Ctx(r.Context()).Error().Msg("CSRF: failed to generate token")
		return ""
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	encoded, err := c.codec.Encode(csrfCookieName, token)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("CSRF: failed to sign token")
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		Secure:   c.secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return token
}

// Protect rejects state-changing requests without a matching token.
// Safe methods pass through.
func (c *CSRFProtection) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
			next.ServeHTTP(w, r)
			return
		}

		if err := c.validate(r); err != nil {
			logging.Ctx(r.Context()).Warn().
				Err(err).
				Str("path", sanitizeLogValue(r.URL.Path)).
				Msg("CSRF validation failed")
			c.handleError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (c *CSRFProtection) validate(r *http.Request) error {
	cookieToken, err := c.cookieToken(r)
	if err != nil {
		return err
	}

	requestToken := r.Header.Get(csrfHeaderName)
	if requestToken == "" {
		requestToken = r.PostFormValue(csrfFormField)
	}
	if requestToken == "" {
		return ErrCSRFTokenMissing
	}

	if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(strings.TrimSpace(requestToken))) != 1 {
		return ErrCSRFTokenInvalid
	}
	return nil
}

// cookieToken decodes the signed token cookie. A forged or expired cookie
// counts as invalid.
func (c *CSRFProtection) cookieToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrCSRFTokenMissing
	}

	var token string
	if err := c.codec.Decode(csrfCookieName, cookie.Value, &token); err != nil || token == "" {
		return "", ErrCSRFTokenInvalid
	}
	return token, nil
}

func (c *CSRFProtection) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if c.ErrorHandler != nil {
		c.ErrorHandler(w, r, err)
		return
	}
	http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
}
