// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tomtom215/movieweb/internal/config"
	"github.com/tomtom215/movieweb/internal/logging"
	"github.com/tomtom215/movieweb/internal/models"
)

// DB is the relational store for users and their movies.
// It is safe for concurrent use.
type DB struct {
	orm   *gorm.DB
	sqlDB *sql.DB
	cfg   *config.DatabaseConfig
}

// New opens the database described by cfg and configures the connection pool.
// The schema is not touched; call Migrate before serving requests.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	orm, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 newGormLogger(),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := orm.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	db := &DB{orm: orm, sqlDB: sqlDB, cfg: cfg}
	db.configureConnectionPool()

	if err := registerMetricsCallbacks(orm); err != nil {
		closeWithLog(sqlDB, "database")
		return nil, fmt.Errorf("failed to register metrics callbacks: %w", err)
	}

	logging.Info().
		Str("driver", cfg.Driver).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Database opened")

	return db, nil
}

// dialectorFor picks the gorm driver for the configured backend.
func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		// 0750: owner rwx, group rx, other none
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
		return sqlite.Open(sqliteDSN(cfg.Path)), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// sqliteDSN enables foreign keys so ON DELETE CASCADE is honored, and sets a
// busy timeout so concurrent writers wait instead of failing immediately.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=1&_busy_timeout=5000&_journal_mode=WAL"
}

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() {
	if db.cfg.MaxOpenConns > 0 {
		db.sqlDB.SetMaxOpenConns(db.cfg.MaxOpenConns)
	}
	if db.cfg.MaxIdleConns > 0 {
		db.sqlDB.SetMaxIdleConns(db.cfg.MaxIdleConns)
	}
	if db.cfg.ConnMaxLifetime > 0 {
		db.sqlDB.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
	}
}

// Migrate creates or updates the users and movies tables.
func (db *DB) Migrate(ctx context.Context) error {
	if err := db.orm.WithContext(ctx).AutoMigrate(&models.User{}, &models.Movie{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logging.Ctx(ctx).Info().Str("driver", db.Driver()).Msg("Database schema migrated")
	return nil
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if db.sqlDB == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.sqlDB.PingContext(ctx)
}

// Stats returns connection pool statistics.
func (db *DB) Stats() sql.DBStats {
	return db.sqlDB.Stats()
}

// Driver returns the configured backend name.
func (db *DB) Driver() string {
	if db.cfg.Driver == "" {
		return config.DriverSQLite
	}
	return db.cfg.Driver
}

// Close releases all pooled connections.
func (db *DB) Close() error {
	if db.sqlDB == nil {
		return nil
	}
	return db.sqlDB.Close()
}
