// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tomtom215/movieweb/internal/metrics"
)

const queryStartKey = "movieweb:query_start"

type registerFunc func(name string, fn func(*gorm.DB)) error

// registerMetricsCallbacks wraps every gorm operation with timing hooks
// that feed metrics.RecordDBQuery.
func registerMetricsCallbacks(orm *gorm.DB) error {
	cb := orm.Callback()
	hooks := []struct {
		operation string
		before    registerFunc
		after     registerFunc
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, h := range hooks {
		if err := h.before("metrics:before_"+h.operation, startQueryTimer); err != nil {
			return fmt.Errorf("register before %s: %w", h.operation, err)
		}
		if err := h.after("metrics:after_"+h.operation, observeQuery(h.operation)); err != nil {
			return fmt.Errorf("register after %s: %w", h.operation, err)
		}
	}
	return nil
}

func startQueryTimer(tx *gorm.DB) {
	tx.InstanceSet(queryStartKey, time.Now())
}

func observeQuery(operation string) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}

		err := tx.Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}

		table := tx.Statement.Table
		if table == "" {
			table = "unknown"
		}
		metrics.RecordDBQuery(operation, table, time.Since(start), err)
	}
}
