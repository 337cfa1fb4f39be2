// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/tomtom215/movieweb/internal/logging"
	"github.com/tomtom215/movieweb/internal/metrics"
)

// DefaultDBStatsInterval is how often connection pool stats are sampled.
const DefaultDBStatsInterval = 15 * time.Second

// StatsSource is satisfied by *database.DB.
type StatsSource interface {
	Stats() sql.DBStats
}

// DBStatsService publishes connection pool stats to Prometheus.
type DBStatsService struct {
	source   StatsSource
	interval time.Duration
	record   func(open int)
}

// NewDBStatsService samples source every interval (DefaultDBStatsInterval
// when non-positive).
func NewDBStatsService(source StatsSource, interval time.Duration) *DBStatsService {
	if interval <= 0 {
		interval = DefaultDBStatsInterval
	}
	return &DBStatsService{
		source:   source,
		interval: interval,
		record:   metrics.SetDBOpenConnections,
	}
}

// Serve implements suture.Service. It samples once immediately, then on
// every tick until the context is canceled.
func (s *DBStatsService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sample()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sample()
		}
	}
}

func (s *DBStatsService) sample() {
	stats := s.source.Stats()
	s.record(stats.OpenConnections)
	logging.Debug().
		Int("open", stats.OpenConnections).
		Int("in_use", stats.InUse).
		Int("idle", stats.Idle).
		Int64("wait_count", stats.WaitCount).
		Msg("Database pool stats")
}

// String implements fmt.Stringer.
func (s *DBStatsService) String() string {
	return "db-stats"
}
