// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package eventprocessor publishes assessment lifecycle events and consumes
them through a Watermill router.

Two events are emitted: "<prefix>.analyzed" after a result bundle is
stored and "<prefix>.status_changed" on every session transition. Payloads
are AssessmentEvent values encoded with goccy/go-json.

# Transports

The default transport is Watermill's in-process gochannel pub/sub. Builds
with -tags=nats add a JetStream transport and an optional embedded NATS
server:

	go build -tags=nats ./cmd/server

If NATS is enabled in configuration but the binary lacks the tag, or the
broker cannot be reached, NewSystem falls back to the in-process bus.

# Resilience

Publish runs through a gobreaker circuit breaker so a failing broker does
not stall analyses. The router wraps handlers with panic recovery, retry
with exponential backoff and a poison queue on "<prefix>.poison".
*/
package eventprocessor
