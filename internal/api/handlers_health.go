// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package api

import (
	"context"
	"net/http"
	"time"
)

// Version is reported by the health endpoint. It is set from main at startup.
var Version = "dev"

// healthPingTimeout bounds the database ping of a health check.
const healthPingTimeout = 2 * time.Second

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status            string  `json:"status" example:"healthy"`
	Version           string  `json:"version" example:"1.0.0"`
	DatabaseConnected bool    `json:"database_connected"`
	DatabaseDriver    string  `json:"database_driver,omitempty" example:"sqlite"`
	Uptime            float64 `json:"uptime_seconds"`
}

// databaseConnected pings the store with a short timeout.
func (h *Handler) databaseConnected(ctx context.Context) bool {
	if h.store == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.store.Ping(ctx) == nil
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns database connectivity, version and uptime. Status is "degraded" when the database is unreachable.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.databaseConnected(r.Context())

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	health := HealthStatus{
		Status:            status,
		Version:           Version,
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
	}
	if h.config != nil {
		health.DatabaseDriver = h.config.Database.Driver
	}

	NewResponseWriter(w, r).Success(health)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the database answers a ping
//
// @Summary Kubernetes readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if !h.databaseConnected(r.Context()) {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Database is not reachable",
			map[string]interface{}{"database_connected": false})
		return
	}

	rw.Success(map[string]interface{}{
		"database_connected": true,
		"ready_to_serve":     true,
	})
}
