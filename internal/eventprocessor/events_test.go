// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package eventprocessor

import (
	"errors"
	"testing"
	"time"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

func sampleBundle() *assessment.ResultBundle {
	return &assessment.ResultBundle{
		SessionID: "sess-1",
		Scores: assessment.Scores{
			Overall:       62,
			MaturityLevel: assessment.MaturityAdvanced,
		},
		Playbook: assessment.PlaybookResult{
			Matches: []assessment.PatternMatch{{ID: "growth_ready"}, {ID: "digital_laggard"}},
		},
		Synthesis: assessment.Synthesis{PlanType: assessment.PlanGrowth},
		Recommendations: []assessment.Recommendation{
			{Title: "a"}, {Title: "b"}, {Title: "c"},
		},
		Alerts: []assessment.Alert{
			{Tier: assessment.AlertCritical},
			{Tier: assessment.AlertWarning},
			{Tier: assessment.AlertCritical},
		},
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewAnalyzedEvent(t *testing.T) {
	t.Parallel()

	e := NewAnalyzedEvent(sampleBundle())

	if e.EventID == "" {
		t.Error("EventID is empty")
	}
	if e.Type != EventAnalyzed {
		t.Errorf("Type = %q, want %q", e.Type, EventAnalyzed)
	}
	if e.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", e.SchemaVersion, SchemaVersion)
	}
	if e.OverallScore != 62 {
		t.Errorf("OverallScore = %d, want 62", e.OverallScore)
	}
	if e.MaturityLevel != assessment.MaturityAdvanced {
		t.Errorf("MaturityLevel = %q, want advanced", e.MaturityLevel)
	}
	if e.PlanType != assessment.PlanGrowth {
		t.Errorf("PlanType = %q, want growth", e.PlanType)
	}
	if e.AlertCount != 3 || e.CriticalAlerts != 2 {
		t.Errorf("alerts = %d/%d, want 3/2", e.AlertCount, e.CriticalAlerts)
	}
	if e.RecommendationCount != 3 {
		t.Errorf("RecommendationCount = %d, want 3", e.RecommendationCount)
	}
	if e.TopPattern != "growth_ready" {
		t.Errorf("TopPattern = %q, want growth_ready", e.TopPattern)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestAssessmentEventValidate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	valid := func() *AssessmentEvent {
		return NewStatusChangedEvent("sess-1", assessment.StatusDraft, assessment.StatusInProgress, now)
	}

	tests := []struct {
		name    string
		mutate  func(e *AssessmentEvent)
		wantErr bool
	}{
		{"valid status event", func(*AssessmentEvent) {}, false},
		{"missing event id", func(e *AssessmentEvent) { e.EventID = "" }, true},
		{"missing session id", func(e *AssessmentEvent) { e.SessionID = "" }, true},
		{"zero timestamp", func(e *AssessmentEvent) { e.Timestamp = time.Time{} }, true},
		{"unknown type", func(e *AssessmentEvent) { e.Type = "deleted" }, true},
		{"status without target", func(e *AssessmentEvent) { e.ToStatus = "" }, true},
		{"analyzed needs no status", func(e *AssessmentEvent) { e.Type = EventAnalyzed; e.ToStatus = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := valid()
			tt.mutate(e)
			err := e.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEvent) {
				t.Errorf("Validate() = %v, want ErrInvalidEvent", err)
			}
		})
	}
}

func TestTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix, eventType, want string
	}{
		{"assessment", EventAnalyzed, "assessment.analyzed"},
		{"prod.assessment", EventStatusChanged, "prod.assessment.status_changed"},
		{"", EventAnalyzed, "analyzed"},
	}
	for _, tt := range tests {
		if got := Topic(tt.prefix, tt.eventType); got != tt.want {
			t.Errorf("Topic(%q, %q) = %q, want %q", tt.prefix, tt.eventType, got, tt.want)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	in := NewAnalyzedEvent(sampleBundle())
	data, err := SerializeEvent(in)
	if err != nil {
		t.Fatalf("SerializeEvent() error = %v", err)
	}
	out, err := DeserializeEvent(data)
	if err != nil {
		t.Fatalf("DeserializeEvent() error = %v", err)
	}
	if out.EventID != in.EventID || out.SessionID != in.SessionID || out.OverallScore != in.OverallScore {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
	if !out.Timestamp.Equal(in.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", out.Timestamp, in.Timestamp)
	}
}

func TestSerializeRejectsInvalid(t *testing.T) {
	t.Parallel()

	if _, err := SerializeEvent(&AssessmentEvent{Type: EventAnalyzed}); !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("SerializeEvent(invalid) = %v, want ErrInvalidEvent", err)
	}
	if _, err := DeserializeEvent([]byte("{not json")); err == nil {
		t.Error("DeserializeEvent(garbage) = nil, want error")
	}
	if _, err := DeserializeEvent([]byte(`{"event_id":"x"}`)); !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("DeserializeEvent(partial) = %v, want ErrInvalidEvent", err)
	}
}
