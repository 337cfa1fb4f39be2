// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/movieweb/internal/config"
	"github.com/tomtom215/movieweb/internal/database"
	"github.com/tomtom215/movieweb/internal/models"
)

// testSecret is 32+ bytes so the cookie store is keyed deterministically.
const testSecret = "test-session-secret-0123456789abcdef"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			Path:         filepath.Join(t.TempDir(), "movies.db"),
			MaxOpenConns: 4,
			MaxIdleConns: 2,
		},
		Server: config.ServerConfig{Port: 8080, Host: "127.0.0.1", Timeout: 30 * time.Second, Environment: "development"},
		Security: config.SecurityConfig{
			SessionSecret:     testSecret,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"https://movies.example.org"},
		},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
	}
}

// testServer is a router backed by a migrated SQLite database in a temp dir.
type testServer struct {
	db      *database.DB
	csrf    *CSRFProtection
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithConfig(t, testConfig(t))
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	db, err := database.New(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	h := NewHandler(db, cfg, NewFlashStore(&cfg.Security))
	return &testServer{
		db:      db,
		csrf:    h.csrf,
		handler: NewRouter(h, &cfg.Security).SetupChi(),
	}
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// doJSON sends a request with an optional JSON body.
func (s *testServer) doJSON(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			reader = strings.NewReader(string(data))
		}
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.do(t, req)
}

// csrfToken issues a fresh CSRF token and the cookie that carries it.
func (s *testServer) csrfToken(t *testing.T) (string, *http.Cookie) {
	t.Helper()
	rec := httptest.NewRecorder()
	token := s.csrf.Token(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, csrfCookieName, cookies[0].Name)
	return token, cookies[0]
}

// postForm submits a form with a valid CSRF token, carrying cookies from a
// previous response.
func (s *testServer) postForm(t *testing.T, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	token, csrfCookie := s.csrfToken(t)
	values := url.Values{csrfFormField: {token}}
	for k, v := range form {
		values[k] = v
	}

	req := newFormRequest(target, values)
	req.AddCookie(csrfCookie)
	for _, c := range cookies {
		if c.Name != csrfCookieName {
			req.AddCookie(c)
		}
	}
	return s.do(t, req)
}

func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// get fetches a page, carrying cookies from a previous response.
func (s *testServer) get(t *testing.T, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return s.do(t, req)
}

func uintStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (s *testServer) seedUser(t *testing.T, name string) *models.User {
	t.Helper()
	user, err := s.db.CreateUser(context.Background(), name)
	require.NoError(t, err)
	return user
}

func (s *testServer) seedMovie(t *testing.T, userID uint, name string) *models.Movie {
	t.Helper()
	movie := &models.Movie{Name: name, UserID: userID}
	require.NoError(t, s.db.AddMovie(context.Background(), movie))
	return movie
}

// envelope mirrors APIResponse with a raw data payload.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

// failingStore fails every call, for exercising the database error paths.
type failingStore struct{}

var errStoreDown = errors.New("connection refused")

func (failingStore) Ping(context.Context) error { return errStoreDown }
func (failingStore) CreateUser(context.Context, string) (*models.User, error) {
	return nil, errStoreDown
}
func (failingStore) ListUsers(context.Context) ([]models.User, error) { return nil, errStoreDown }
func (failingStore) GetUser(context.Context, uint) (*models.User, error) {
	return nil, errStoreDown
}
func (failingStore) GetUserWithMovies(context.Context, uint) (*models.User, error) {
	return nil, errStoreDown
}
func (failingStore) DeleteUser(context.Context, uint) error { return errStoreDown }
func (failingStore) ListMovies(context.Context, uint) ([]models.Movie, error) {
	return nil, errStoreDown
}
func (failingStore) AddMovie(context.Context, *models.Movie) error { return errStoreDown }
func (failingStore) UpdateMovieTitle(context.Context, uint, uint, string) (*models.Movie, error) {
	return nil, errStoreDown
}
func (failingStore) DeleteMovie(context.Context, uint, uint) error { return errStoreDown }

func newFailingServer(t *testing.T) http.Handler {
	t.Helper()
	return newFailingTestServer(t).handler
}

func newFailingTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := testConfig(t)
	h := NewHandler(failingStore{}, cfg, NewFlashStore(&cfg.Security))
	return &testServer{
		csrf:    h.csrf,
		handler: NewRouter(h, &cfg.Security).SetupChi(),
	}
}
