// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// DefaultDirector is stored when a movie is added without a director.
const DefaultDirector = "Unknown"

// MaxPosterURLLength bounds the stored poster URL.
const MaxPosterURLLength = 200

// Movie is a single favorite in a user's collection.
//
// Year is nil when the release year is not known. PosterURL is empty when
// no poster was supplied.
type Movie struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Director  string    `gorm:"size:100;default:Unknown" json:"director"`
	Year      *int      `gorm:"column:year_of_release" json:"year,omitempty"`
	PosterURL string    `gorm:"column:poster_url;size:200" json:"poster_url,omitempty"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name independent of gorm's naming strategy.
func (Movie) TableName() string {
	return "movies"
}

// BeforeCreate trims input and fills in the default director.
func (m *Movie) BeforeCreate(_ *gorm.DB) error {
	m.Normalize()
	return nil
}

// Normalize trims surrounding whitespace and applies DefaultDirector
// when no director is set.
func (m *Movie) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Director = strings.TrimSpace(m.Director)
	m.PosterURL = strings.TrimSpace(m.PosterURL)
	if m.Director == "" {
		m.Director = DefaultDirector
	}
}
