// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tomtom215/movieweb/internal/logging"
)

// slowQueryThreshold is the latency above which queries are logged at warn.
const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes gorm's logging through the global zerolog logger so
// database messages carry the request and correlation IDs of the caller.
type gormLogger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// newGormLogger derives gorm's verbosity from the global log level:
// every statement is traced at debug, otherwise only slow queries and errors.
func newGormLogger() *gormLogger {
	level := gormlogger.Warn
	if logging.GetLevel() <= zerolog.DebugLevel {
		level = gormlogger.Info
	}
	return &gormLogger{level: level, slowThreshold: slowQueryThreshold}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		logging.Ctx(ctx).Info().Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		logging.Ctx(ctx).Warn().Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		logging.Ctx(ctx).Error().Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

// Trace logs a finished statement. Record-not-found is an expected outcome
// of lookups and is not reported as an error.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		logging.Ctx(ctx).Error().Err(err).
			Dur("elapsed", elapsed).
			Str("sql", sql).
			Int64("rows", rows).
			Msg("Database query failed")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logging.Ctx(ctx).Warn().
			Dur("elapsed", elapsed).
			Dur("threshold", l.slowThreshold).
			Str("sql", sql).
			Int64("rows", rows).
			Msg("Slow database query")
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		logging.Ctx(ctx).Debug().
			Dur("elapsed", elapsed).
			Str("sql", sql).
			Int64("rows", rows).
			Msg("Database query")
	}
}
