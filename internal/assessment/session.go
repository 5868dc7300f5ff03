// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package assessment

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition is returned when a session status change is not
// allowed by the lifecycle.
var ErrInvalidTransition = errors.New("invalid session status transition")

// SessionStatus is the lifecycle state of an assessment session.
type SessionStatus string

const (
	StatusDraft      SessionStatus = "draft"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusAbandoned  SessionStatus = "abandoned"
)

// allowedTransitions lists the permitted targets for each status.
var allowedTransitions = map[SessionStatus][]SessionStatus{
	StatusDraft:      {StatusInProgress, StatusCompleted, StatusAbandoned},
	StatusInProgress: {StatusCompleted, StatusAbandoned},
	StatusCompleted:  nil,
	StatusAbandoned:  nil,
}

// ParseSessionStatus parses a status string.
func ParseSessionStatus(s string) (SessionStatus, bool) {
	st := SessionStatus(normalizeToken(s))
	if _, ok := allowedTransitions[st]; ok {
		return st, true
	}
	return "", false
}

// Terminal reports whether no further transitions are possible.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// CanTransition reports whether s may move to target.
func (s SessionStatus) CanTransition(target SessionStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Session is the owning assessment. The engine only runs once a session is
// completed.
type Session struct {
	ID          string        `json:"id"`
	Status      SessionStatus `json:"status"`
	Context     Context       `json:"context"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// NewSession returns a draft session.
func NewSession(id string, c Context, now time.Time) *Session {
	return &Session{
		ID:        id,
		Status:    StatusDraft,
		Context:   c.Normalize(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Transition moves the session to target, stamping timestamps.
func (s *Session) Transition(target SessionStatus, now time.Time) error {
	if !s.Status.CanTransition(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Status, target)
	}
	s.Status = target
	s.UpdatedAt = now
	if target == StatusCompleted {
		t := now
		s.CompletedAt = &t
	}
	return nil
}
