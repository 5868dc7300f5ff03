// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package middleware provides chi-compatible HTTP middleware shared by the API.

  - RequestID: accepts or generates X-Request-ID and stores it in the
    logging context so every log line of the request carries it
  - PrometheusMetrics: request counts, latency and in-flight gauge, labeled
    by the chi route pattern
  - AccessLog: one zerolog line per request with status, size and duration

All three have the func(http.Handler) http.Handler shape and are installed
with chi's r.Use. The expected order is RequestID first so the others see
the ID:

	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)
*/
package middleware
