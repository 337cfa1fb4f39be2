// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

/*
Package database provides the relational store for users and their favorite movies.

The store is built on gorm. SQLite is the default backend (a single file,
data/movies.db); PostgreSQL is selected with DB_DRIVER=postgres and DB_DSN.

# Operations

  - CreateUser, ListUsers, GetUser, GetUserWithMovies, DeleteUser
  - ListMovies, AddMovie, GetMovie, UpdateMovieTitle, DeleteMovie
  - Migrate, Ping, Stats, Close

Movie lookups are always scoped to the owning user: a movie id that exists
under another user is reported as ErrMovieNotFound. Deleting a user removes
the user's movies in the same transaction.

# Errors

  - ErrUserNotFound: the user id does not exist
  - ErrMovieNotFound: the movie id does not exist for that user
  - ErrEmptyName: a user name or movie title is blank after trimming

Other errors are wrapped driver errors and should be treated as internal.

# Observability

Every statement is timed by gorm callbacks and recorded in
movieweb_db_query_duration_seconds. gorm's own log output goes through the
zerolog logger; statements are traced at debug level and queries slower than
200ms are logged at warn.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
	    return err
	}
	user, err := db.CreateUser(ctx, "Ada")
*/
package database
