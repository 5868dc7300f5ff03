// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package logging

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// EventLogger logs the lifecycle of assessment events.
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger tags the global logger with the eventprocessor component.
func NewEventLogger() *EventLogger {
	return &EventLogger{logger: WithComponent("eventprocessor")}
}

// NewEventLoggerWithLogger tags logger with the eventprocessor component.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEventLoggerWithLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{logger: logger.With().Str("component", "eventprocessor").Logger()}
}

func (e *EventLogger) from(ctx context.Context) *zerolog.Logger {
	lc := e.logger.With()
	if id := RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	if id := SessionIDFromContext(ctx); id != "" {
		lc = lc.Str("session_id", id)
	}
	l := lc.Logger()
	return &l
}

// LogEventPublished records a successful publish.
func (e *EventLogger) LogEventPublished(ctx context.Context, eventID, topic string) {
	e.from(ctx).Debug().
		Str("event_id", eventID).
		Str("topic", topic).
		Msg("Event published")
}

// LogPublishFailed records a failed publish.
func (e *EventLogger) LogPublishFailed(ctx context.Context, topic string, err error) {
	e.from(ctx).Warn().
		Err(err).
		Str("topic", topic).
		Msg("Event publish failed")
}

// LogEventHandled records a consumed event.
func (e *EventLogger) LogEventHandled(ctx context.Context, eventID, eventType string, d time.Duration) {
	e.from(ctx).Info().
		Str("event_id", eventID).
		Str("event_type", eventType).
		Dur("duration", d).
		Msg("Event handled")
}

// LogEventFailed records a consumer error.
func (e *EventLogger) LogEventFailed(ctx context.Context, eventID string, err error) {
	e.from(ctx).Error().
		Err(err).
		Str("event_id", eventID).
		Msg("Event handling failed")
}

// LogRouterStarted records router startup.
func (e *EventLogger) LogRouterStarted(topics ...string) {
	e.logger.Info().Strs("topics", topics).Msg("Event router started")
}

// LogRouterStopped records router shutdown.
func (e *EventLogger) LogRouterStopped() {
	e.logger.Info().Msg("Event router stopped")
}
