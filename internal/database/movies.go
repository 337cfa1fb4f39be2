// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tomtom215/movieweb/internal/metrics"
	"github.com/tomtom215/movieweb/internal/models"
)

// ListMovies returns the movies owned by userID ordered by id.
// An unknown user yields ErrUserNotFound rather than an empty list.
func (db *DB) ListMovies(ctx context.Context, userID uint) ([]models.Movie, error) {
	tx := db.orm.WithContext(ctx)
	if _, err := getUser(tx, userID); err != nil {
		return nil, err
	}

	movies := make([]models.Movie, 0)
	if err := tx.Where("user_id = ?", userID).Order("id").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies of user %d: %w", userID, err)
	}
	return movies, nil
}

// AddMovie stores movie in the collection of movie.UserID. The director
// defaults to models.DefaultDirector when empty. On success movie.ID is set.
func (db *DB) AddMovie(ctx context.Context, movie *models.Movie) error {
	movie.Normalize()
	if movie.Name == "" {
		return ErrEmptyName
	}

	err := db.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, movie.UserID); err != nil {
			return err
		}
		if err := tx.Create(movie).Error; err != nil {
			return fmt.Errorf("failed to add movie: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.RecordMovieAdded()
	return nil
}

// GetMovie returns a movie owned by userID, or ErrMovieNotFound when the
// movie does not exist or belongs to another user.
func (db *DB) GetMovie(ctx context.Context, userID, movieID uint) (*models.Movie, error) {
	return getMovie(db.orm.WithContext(ctx), userID, movieID)
}

func getMovie(tx *gorm.DB, userID, movieID uint) (*models.Movie, error) {
	var movie models.Movie
	err := tx.Where("user_id = ?", userID).First(&movie, movieID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie %d: %w", movieID, err)
	}
	return &movie, nil
}

// UpdateMovieTitle renames a movie owned by userID. Other fields are unchanged.
func (db *DB) UpdateMovieTitle(ctx context.Context, userID, movieID uint, title string) (*models.Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyName
	}

	var movie *models.Movie
	err := db.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := getMovie(tx, userID, movieID)
		if err != nil {
			return err
		}
		if err := tx.Model(m).Update("name", title).Error; err != nil {
			return fmt.Errorf("failed to update movie %d: %w", movieID, err)
		}
		m.Name = title
		movie = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movie, nil
}

// DeleteMovie removes a movie owned by userID.
func (db *DB) DeleteMovie(ctx context.Context, userID, movieID uint) error {
	res := db.orm.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Movie{}, movieID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete movie %d: %w", movieID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMovieNotFound
	}
	return nil
}
