// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Command server runs the assessment HTTP API.

Components start in this order:

 1. Configuration: defaults, optional YAML file, environment (koanf v2)
 2. Logging: zerolog with the configured level and format
 3. Store: DuckDB (default) or Badger, selected by DATABASE_DRIVER
 4. Events: in-process watermill bus, or NATS JetStream when built with
    -tags nats and NATS_ENABLED=true; consumed events feed the websocket hub
 5. Engine: analyzer plus the session service
 6. HTTP API: chi router with CORS, rate limiting and Prometheus metrics
 7. Supervisor tree: store probe, event router, websocket hub and HTTP server

SIGINT or SIGTERM cancels the tree. The HTTP server drains for
SERVER_SHUTDOWN_TIMEOUT, then the event system and store close.

# Example

	export DATABASE_PATH=/var/lib/ma-sub000/assessments.duckdb
	export LOG_FORMAT=console
	./server

	curl -s localhost:8080/api/v1/health/ready
*/
package main
