// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package eventprocessor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// SchemaVersion is the current event schema version.
// Increment this when making breaking changes to AssessmentEvent.
const SchemaVersion = 1

// Event types. The published topic is "<prefix>.<type>".
const (
	EventAnalyzed      = "analyzed"
	EventStatusChanged = "status_changed"
)

// AssessmentEvent is the payload of every published event. Analyzed events
// carry the result summary; status events carry the transition.
type AssessmentEvent struct {
	SchemaVersion int       `json:"schema_version"`
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	SessionID     string    `json:"session_id"`
	Timestamp     time.Time `json:"timestamp"`

	// Status changes
	FromStatus assessment.SessionStatus `json:"from_status,omitempty"`
	ToStatus   assessment.SessionStatus `json:"to_status,omitempty"`

	// Analysis summary
	OverallScore        int                      `json:"overall_score,omitempty"`
	MaturityLevel       assessment.MaturityLevel `json:"maturity_level,omitempty"`
	PlanType            assessment.PlanType      `json:"plan_type,omitempty"`
	AlertCount          int                      `json:"alert_count,omitempty"`
	CriticalAlerts      int                      `json:"critical_alerts,omitempty"`
	RecommendationCount int                      `json:"recommendation_count,omitempty"`
	TopPattern          string                   `json:"top_pattern,omitempty"`
}

// NewAnalyzedEvent summarizes a finished analysis.
func NewAnalyzedEvent(b *assessment.ResultBundle) *AssessmentEvent {
	e := &AssessmentEvent{
		SchemaVersion:       SchemaVersion,
		EventID:             uuid.New().String(),
		Type:                EventAnalyzed,
		SessionID:           b.SessionID,
		Timestamp:           b.GeneratedAt,
		OverallScore:        b.Scores.Overall,
		MaturityLevel:       b.Scores.MaturityLevel,
		PlanType:            b.Synthesis.PlanType,
		AlertCount:          len(b.Alerts),
		RecommendationCount: len(b.Recommendations),
	}
	for i := range b.Alerts {
		if b.Alerts[i].Tier == assessment.AlertCritical {
			e.CriticalAlerts++
		}
	}
	if len(b.Playbook.Matches) > 0 {
		e.TopPattern = b.Playbook.Matches[0].ID
	}
	return e
}

// NewStatusChangedEvent records a session transition.
func NewStatusChangedEvent(sessionID string, from, to assessment.SessionStatus, at time.Time) *AssessmentEvent {
	return &AssessmentEvent{
		SchemaVersion: SchemaVersion,
		EventID:       uuid.New().String(),
		Type:          EventStatusChanged,
		SessionID:     sessionID,
		Timestamp:     at,
		FromStatus:    from,
		ToStatus:      to,
	}
}

// Validate checks the fields every consumer relies on.
func (e *AssessmentEvent) Validate() error {
	switch {
	case e.EventID == "":
		return fmt.Errorf("%w: event_id is required", ErrInvalidEvent)
	case e.SessionID == "":
		return fmt.Errorf("%w: session_id is required", ErrInvalidEvent)
	case e.Timestamp.IsZero():
		return fmt.Errorf("%w: timestamp is required", ErrInvalidEvent)
	}
	switch e.Type {
	case EventAnalyzed:
		return nil
	case EventStatusChanged:
		if e.ToStatus == "" {
			return fmt.Errorf("%w: to_status is required", ErrInvalidEvent)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
}

// Topic returns the topic the event is published on.
func (e *AssessmentEvent) Topic(prefix string) string {
	return Topic(prefix, e.Type)
}

// Topic joins a prefix and an event type.
func Topic(prefix, eventType string) string {
	if prefix == "" {
		return eventType
	}
	return prefix + "." + eventType
}
