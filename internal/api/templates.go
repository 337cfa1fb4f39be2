// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/tomtom215/movieweb/internal/logging"
	"github.com/tomtom215/movieweb/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names
const (
	pageIndex     = "index.html"
	pageUser      = "user.html"
	pageNotFound  = "404.html"
	pageForbidden = "403.html"
)

var templateFuncs = template.FuncMap{
	"yearOf": func(year *int) string {
		if year == nil {
			return ""
		}
		return strconv.Itoa(*year)
	},
}

// pages holds one template set per page, each combined with the shared layout.
var pages = mustParsePages(pageIndex, pageUser, pageNotFound, pageForbidden)

func mustParsePages(names ...string) map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(
			template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name),
		)
	}
	return parsed
}

// pageData is the data passed to every page template.
type pageData struct {
	Flashes   []Flash
	CSRFToken string
	Users     []models.User
	User      *models.User
	Movies    []models.Movie
	Message   string
}

// renderPage pops pending flashes and renders a page. Output is buffered,
// so a template error still yields a plain 500.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data *pageData) {
	data.Flashes = h.flashes.Pop(w, r)
	data.CSRFToken = h.csrf.Token(w, r)

	var buf bytes.Buffer
	if err := pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.CtxErr(r.Context(), err).Str("template", name).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Str("template", name).Msg("Failed to write page")
	}
}
