// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/tomtom215/movieweb/internal/config"
	"github.com/tomtom215/movieweb/internal/logging"
)

// Flash categories
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

const (
	sessionCookieName = "movieweb_session"
	sessionMaxAge     = 24 * 60 * 60
)

// Flash is a one-shot message shown on the next page render.
type Flash struct {
	Category string
	Message  string
}

// FlashStore keeps flash messages in a signed cookie session.
type FlashStore struct {
	store *sessions.CookieStore
}

// NewFlashStore creates a cookie store keyed by the configured session secret.
// With no secret a random key is generated, so flashes do not survive a restart.
func NewFlashStore(cfg *config.SecurityConfig) *FlashStore {
	var store *sessions.CookieStore
	if cfg.SessionSecret == "" {
		logging.Warn().Msg("SESSION_SECRET not set, using a random session key for this process")
		store = sessions.NewCookieStore(
			securecookie.GenerateRandomKey(64),
			securecookie.GenerateRandomKey(32),
		)
	} else {
		store = sessions.NewCookieStore([]byte(cfg.SessionSecret))
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	return &FlashStore{store: store}
}

// Add queues a flash message for the next render. It must be called before
// the response header is written.
func (fs *FlashStore) Add(w http.ResponseWriter, r *http.Request, category, message string) {
	session := fs.session(r)
	session.AddFlash(message, category)
	if err := session.Save(r, w); err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to save flash message")
	}
}

// Pop returns and clears queued flash messages, errors first.
func (fs *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	session := fs.session(r)

	var flashes []Flash
	for _, category := range []string{FlashError, FlashSuccess} {
		for _, v := range session.Flashes(category) {
			flashes = append(flashes, Flash{Category: category, Message: fmt.Sprint(v)})
		}
	}

	if len(flashes) > 0 {
		if err := session.Save(r, w); err != nil {
			logging.CtxErr(r.Context(), err).Msg("Failed to clear flash messages")
		}
	}
	return flashes
}

// session returns the request's session. A cookie that fails to decode
// (e.g. signed with an old key) yields a fresh session.
func (fs *FlashStore) session(r *http.Request) *sessions.Session {
	session, err := fs.store.Get(r, sessionCookieName)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Discarding undecodable session cookie")
	}
	return session
}
