// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package api exposes the assessment engine over HTTP using chi.

# Endpoints

	GET  /api/v1/health/live                     process is up
	GET  /api/v1/health/ready                    session store reachable
	GET  /metrics                                Prometheus exposition
	POST /api/v1/analyze                         stateless analysis
	GET  /api/v1/playbooks                       pattern library
	POST /api/v1/sessions                        create a draft session
	GET  /api/v1/sessions?status=&limit=&offset= list sessions, newest first
	GET  /api/v1/sessions/{id}                   session with its answers
	PUT  /api/v1/sessions/{id}/answers           merge answers
	POST /api/v1/sessions/{id}/complete          close for analysis
	POST /api/v1/sessions/{id}/abandon           close without analysis
	POST /api/v1/sessions/{id}/analyze           analyze and store the result
	GET  /api/v1/sessions/{id}/results           stored result bundle
	GET  /api/v1/sessions/{id}/reports/{variant} report view of the result
	GET  /api/v1/events/ws?session_id=           websocket event stream

# Response Format

Every JSON response uses one envelope:

	{
	  "success": true,
	  "data": { ... },
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

Errors carry a machine-readable code:

	{
	  "success": false,
	  "error": {"code": "NOT_FOUND", "message": "session not found", "request_id": "..."}
	}

# Middleware

Installed in order: RequestID, RealIP, access log, Prometheus metrics,
Recoverer, security headers, CORS, per-IP rate limiting (httprate) and gzip
compression. Health, metrics and the event stream skip the rate limiter.
*/
package api
