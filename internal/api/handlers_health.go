// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"context"
	"net/http"
	"time"
)

// readyTimeout bounds the store ping behind the readiness probe.
const readyTimeout = 2 * time.Second

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status       string  `json:"status"`
	Version      string  `json:"version"`
	Uptime       float64 `json:"uptime_seconds"`
	StoreBreaker string  `json:"store_breaker,omitempty"`
	StoreError   string  `json:"store_error,omitempty"`
	StoreHealthy *bool   `json:"store_healthy,omitempty"`
}

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, http.StatusOK, HealthStatus{
		Status:  "alive",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports whether the session store answers. It returns 503
// while the store or its circuit breaker is down.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	err := h.svc.Ready(ctx)
	healthy := err == nil
	status := HealthStatus{
		Status:       "ready",
		Version:      h.version,
		Uptime:       time.Since(h.startTime).Seconds(),
		StoreBreaker: h.svc.BreakerState(),
		StoreHealthy: &healthy,
	}
	if err != nil {
		status.Status = "unavailable"
		status.StoreError = err.Error()
		respondJSON(w, http.StatusServiceUnavailable, &APIResponse{
			Success: false,
			Data:    status,
			Error:   &APIError{Code: ErrCodeServiceUnavailable, Message: "Session store unavailable"},
			Meta:    newMeta(r),
		})
		return
	}
	respondData(w, r, http.StatusOK, status)
}
