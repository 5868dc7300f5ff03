// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alfainternational/ma-sub000/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler    *Handler
	middleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware uses the defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, middleware: mw}
}

// Setup builds the HTTP handler.
func (router *Router) Setup() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestTiming)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(APISecurityHeaders())
	r.Use(router.middleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// Probes and scrapes are exempt from rate limiting.
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/api/v1/health/live", h.HealthLive)
	r.Get("/api/v1/health/ready", h.HealthReady)

	// Long-lived; outside the rate limiter and compression.
	r.Get("/api/v1/events/ws", h.EventStream)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Post("/analyze", h.Analyze)
		r.Get("/playbooks", h.Playbooks)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Get("/", h.ListSessions)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetSession)
				r.Put("/answers", h.SubmitAnswers)
				r.Post("/complete", h.CompleteSession)
				r.Post("/abandon", h.AbandonSession)
				r.Post("/analyze", h.AnalyzeSession)
				r.Get("/results", h.GetResult)
				r.Get("/reports/{variant}", h.GetReport)
			})
		})
	})

	return r
}
