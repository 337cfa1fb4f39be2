// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

/*
Package models defines the persistent data structures for MovieWeb.

Two entities are stored:

  - User: a person with a name who owns a movie collection
  - Movie: a favorite movie (title, director, year, poster URL) owned by exactly one user

The structs carry gorm tags for schema migration and json tags for the
REST API. A user's movies are removed together with the user through the
OnDelete:CASCADE constraint on Movie.UserID.
*/
package models
