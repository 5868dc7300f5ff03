// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"time"

	"github.com/alfainternational/ma-sub000/internal/engine"
	"github.com/alfainternational/ma-sub000/internal/websocket"
)

// Handler serves the API endpoints.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness
//   - handlers_analyze.go: stateless analysis and the playbook library
//   - handlers_sessions.go: session lifecycle, results and reports
//   - handlers_events.go: the websocket event stream
type Handler struct {
	svc       *engine.Service
	hub       *websocket.Hub
	origins   []string
	startTime time.Time
	version   string
}

// NewHandler creates a handler backed by svc.
func NewHandler(svc *engine.Service, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		svc:       svc,
		startTime: time.Now(),
		version:   version,
	}
}

// WithEventStream enables GET /api/v1/events/ws. Browser connections must
// send an Origin listed in origins; "*" allows any.
func (h *Handler) WithEventStream(hub *websocket.Hub, origins []string) *Handler {
	h.hub = hub
	h.origins = append([]string(nil), origins...)
	return h
}
