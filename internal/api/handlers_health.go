// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	CatalogState  string  `json:"catalog_state,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// HealthLive handles GET /api/v1/health/live.
// The process answering is enough to be live.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready.
// The service is not ready while the catalog circuit breaker is open,
// because every recommendation would come back empty.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	status := HealthStatus{
		Status:        "ready",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if h.catalog != nil {
		status.CatalogState = h.catalog.State()
	}

	if status.CatalogState == "open" {
		status.Status = "not_ready"
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Catalog circuit breaker is open", status)
		return
	}

	rw.Success(status)
}
