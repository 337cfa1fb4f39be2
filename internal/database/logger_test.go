// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package database

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tomtom215/movieweb/internal/logging"
)

func captureLogs(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return logging.ContextWithLogger(context.Background(), logging.NewTestLogger(&buf)), &buf
}

func TestGormLogger_Trace(t *testing.T) {
	t.Parallel()

	sqlFn := func() (string, int64) { return "SELECT * FROM users", 3 }

	tests := []struct {
		name    string
		level   gormlogger.LogLevel
		elapsed time.Duration
		err     error
		want    string
	}{
		{"error is logged", gormlogger.Warn, time.Millisecond, errors.New("disk I/O error"), "Database query failed"},
		{"record not found is not an error", gormlogger.Warn, time.Millisecond, gorm.ErrRecordNotFound, ""},
		{"slow query warns", gormlogger.Warn, time.Second, nil, "Slow database query"},
		{"fast query silent at warn", gormlogger.Warn, time.Millisecond, nil, ""},
		{"silent suppresses errors", gormlogger.Silent, time.Millisecond, errors.New("boom"), ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, buf := captureLogs(t)
			l := newGormLogger().LogMode(tt.level)
			l.Trace(ctx, time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			out := buf.String()
			if tt.want == "" {
				if out != "" {
					t.Errorf("expected no output, got: %s", out)
				}
				return
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in output, got: %s", tt.want, out)
			}
			if !strings.Contains(out, "SELECT * FROM users") {
				t.Errorf("expected sql in output, got: %s", out)
			}
		})
	}
}

func TestGormLogger_TraceAtDebug(t *testing.T) {
	previous := logging.GetLevel()
	logging.SetLevelString("debug")
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	if l := newGormLogger(); l.level != gormlogger.Info {
		t.Errorf("newGormLogger() level = %v at debug, want Info", l.level)
	}

	ctx, buf := captureLogs(t)
	newGormLogger().Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	out := buf.String()
	if !strings.Contains(out, "Database query") || !strings.Contains(out, `"level":"debug"`) {
		t.Errorf("expected debug trace, got: %s", out)
	}
}

func TestGormLogger_Messages(t *testing.T) {
	t.Parallel()

	ctx, buf := captureLogs(t)
	l := newGormLogger().LogMode(gormlogger.Warn)

	l.Info(ctx, "hidden %d", 1)
	l.Warn(ctx, "careful %s", "now")
	l.Error(ctx, "broken %s", "pipe")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info should be suppressed at warn level: %s", out)
	}
	if !strings.Contains(out, "careful now") || !strings.Contains(out, "broken pipe") {
		t.Errorf("expected warn and error messages, got: %s", out)
	}
	if !strings.Contains(out, `"component":"gorm"`) {
		t.Errorf("expected component field, got: %s", out)
	}
}
