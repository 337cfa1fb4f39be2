// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package middleware

import (
	"compress/gzip"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// compressibleTypes are the content types worth compressing. Posters are
// remote URLs, so responses are only HTML pages and JSON.
var compressibleTypes = []string{
	"text/html",
	"text/css",
	"text/plain",
	"application/json",
}

// Compression returns gzip/deflate middleware for HTML and JSON responses.
// Clients that do not send Accept-Encoding receive the body unmodified.
func Compression() func(http.Handler) http.Handler {
	return chimiddleware.Compress(gzip.DefaultCompression, compressibleTypes...)
}
