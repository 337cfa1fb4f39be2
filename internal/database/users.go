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

// CreateUser stores a new user with the given name.
// Duplicate names are allowed; every call creates a distinct user.
func (db *DB) CreateUser(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	user := &models.User{Name: name}
	if err := db.orm.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.RecordUserCreated()
	return user, nil
}

// ListUsers returns every user ordered by id.
func (db *DB) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := db.orm.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns the user with the given id, or ErrUserNotFound.
func (db *DB) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return getUser(db.orm.WithContext(ctx), id)
}

func getUser(tx *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// GetUserWithMovies returns the user with the movie collection loaded,
// ordered by id, or ErrUserNotFound.
func (db *DB) GetUserWithMovies(ctx context.Context, id uint) (*models.User, error) {
	tx := db.orm.WithContext(ctx).Preload("Movies", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id")
	})
	return getUser(tx, id)
}

// DeleteUser removes a user together with all of the user's movies.
func (db *DB) DeleteUser(ctx context.Context, id uint) error {
	return db.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, id); err != nil {
			return err
		}

		// Explicit delete so the cascade also holds on connections where
		// foreign key enforcement is off.
		if err := tx.Where("user_id = ?", id).Delete(&models.Movie{}).Error; err != nil {
			return fmt.Errorf("failed to delete movies of user %d: %w", id, err)
		}
		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete user %d: %w", id, err)
		}
		return nil
	})
}
