// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/movieweb/internal/models"
)

func intPtr(v int) *int { return &v }

func seedUser(t *testing.T, db *DB, name string) *models.User {
	t.Helper()
	user, err := db.CreateUser(context.Background(), name)
	require.NoError(t, err)
	return user
}

func TestAddMovie(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "Alice")

	tests := []struct {
		name         string
		movie        models.Movie
		wantDirector string
		wantYear     *int
		wantErr      error
	}{
		{
			name:         "all fields",
			movie:        models.Movie{Name: "Blade Runner", Director: "Ridley Scott", Year: intPtr(1982), PosterURL: "https://img.example.org/br.jpg"},
			wantDirector: "Ridley Scott",
			wantYear:     intPtr(1982),
		},
		{
			name:         "director defaults to Unknown",
			movie:        models.Movie{Name: "Nosferatu"},
			wantDirector: models.DefaultDirector,
		},
		{
			name:    "empty title rejected",
			movie:   models.Movie{Name: "  "},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movie := tt.movie
			movie.UserID = user.ID

			err := db.AddMovie(ctx, &movie)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, movie.ID)

			stored, err := db.GetMovie(ctx, user.ID, movie.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.movie.Name, stored.Name)
			assert.Equal(t, tt.wantDirector, stored.Director)
			assert.Equal(t, tt.wantYear, stored.Year)
			assert.Equal(t, user.ID, stored.UserID)
		})
	}
}

func TestAddMovie_UnknownUser(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	err := db.AddMovie(context.Background(), &models.Movie{Name: "Alien", UserID: 404})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListMovies(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "Alice")
	bob := seedUser(t, db, "Bob")

	movies, err := db.ListMovies(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, movies)

	require.NoError(t, db.AddMovie(ctx, &models.Movie{Name: "Vertigo", UserID: alice.ID}))
	require.NoError(t, db.AddMovie(ctx, &models.Movie{Name: "Psycho", UserID: alice.ID}))
	require.NoError(t, db.AddMovie(ctx, &models.Movie{Name: "Rear Window", UserID: bob.ID}))

	movies, err = db.ListMovies(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Vertigo", movies[0].Name)
	assert.Equal(t, "Psycho", movies[1].Name)

	_, err = db.ListMovies(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateMovieTitle(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "Alice")
	bob := seedUser(t, db, "Bob")

	movie := &models.Movie{Name: "The Thing", Director: "John Carpenter", Year: intPtr(1982), UserID: alice.ID}
	require.NoError(t, db.AddMovie(ctx, movie))

	updated, err := db.UpdateMovieTitle(ctx, alice.ID, movie.ID, "  The Thing (Remastered) ")
	require.NoError(t, err)
	assert.Equal(t, "The Thing (Remastered)", updated.Name)

	stored, err := db.GetMovie(ctx, alice.ID, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Thing (Remastered)", stored.Name)
	assert.Equal(t, "John Carpenter", stored.Director, "director must be unchanged")
	assert.Equal(t, intPtr(1982), stored.Year, "year must be unchanged")

	t.Run("empty title", func(t *testing.T) {
		_, err := db.UpdateMovieTitle(ctx, alice.ID, movie.ID, "")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("unknown movie", func(t *testing.T) {
		_, err := db.UpdateMovieTitle(ctx, alice.ID, 9999, "Anything")
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})

	t.Run("movie of another user", func(t *testing.T) {
		_, err := db.UpdateMovieTitle(ctx, bob.ID, movie.ID, "Hijacked")
		assert.ErrorIs(t, err, ErrMovieNotFound)

		stored, err := db.GetMovie(ctx, alice.ID, movie.ID)
		require.NoError(t, err)
		assert.Equal(t, "The Thing (Remastered)", stored.Name)
	})
}

func TestDeleteMovie(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "Alice")
	bob := seedUser(t, db, "Bob")

	movie := &models.Movie{Name: "Jaws", UserID: alice.ID}
	require.NoError(t, db.AddMovie(ctx, movie))

	assert.ErrorIs(t, db.DeleteMovie(ctx, bob.ID, movie.ID), ErrMovieNotFound, "other user's movie")

	require.NoError(t, db.DeleteMovie(ctx, alice.ID, movie.ID))

	_, err := db.GetMovie(ctx, alice.ID, movie.ID)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	assert.ErrorIs(t, db.DeleteMovie(ctx, alice.ID, movie.ID), ErrMovieNotFound, "second delete")

	// owner is unaffected
	_, err = db.GetUser(ctx, alice.ID)
	assert.NoError(t, err)
}
