// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/config"
	"github.com/alfainternational/ma-sub000/internal/metrics"
)

// Store errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
	ErrResultNotFound  = errors.New("result not found")
)

// Driver names.
const (
	DriverDuckDB = "duckdb"
	DriverBadger = "badger"
)

// DefaultListLimit applies when ListFilter.Limit is zero.
const DefaultListLimit = 100

// ListFilter narrows ListSessions. Sessions are returned newest first.
type ListFilter struct {
	Status assessment.SessionStatus
	Limit  int
	Offset int
}

func (f ListFilter) limit() int {
	if f.Limit <= 0 {
		return DefaultListLimit
	}
	return f.Limit
}

// Store persists sessions, their answers and their analysis results.
// Results are keyed by session; saving a result twice replaces it.
type Store interface {
	CreateSession(ctx context.Context, s *assessment.Session) error
	GetSession(ctx context.Context, id string) (*assessment.Session, error)
	UpdateSession(ctx context.Context, s *assessment.Session) error
	ListSessions(ctx context.Context, filter ListFilter) ([]*assessment.Session, error)

	// SaveAnswers merges answers into the stored set. Absent values delete
	// their key.
	SaveAnswers(ctx context.Context, sessionID string, answers assessment.AnswerMap) error
	GetAnswers(ctx context.Context, sessionID string) (assessment.AnswerMap, error)

	SaveResult(ctx context.Context, result *assessment.ResultBundle) error
	GetResult(ctx context.Context, sessionID string) (*assessment.ResultBundle, error)

	Ping(ctx context.Context) error
	Close() error
}

// Open creates the store selected by cfg.Driver.
func Open(cfg *config.DatabaseConfig) (Store, error) {
	switch cfg.Driver {
	case DriverDuckDB, "":
		return NewDuckDBStore(cfg)
	case DriverBadger:
		return OpenBadgerStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// observe records the duration and outcome of one store call.
func observe(driver, op string, start time.Time, err error) {
	metrics.RecordStoreOperation(driver, op, time.Since(start), err)
}
