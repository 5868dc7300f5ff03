// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// scriptedChecker returns the queued results in order, then nil.
type scriptedChecker struct {
	mu      sync.Mutex
	results []error
	calls   int
}

func (s *scriptedChecker) Ready(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.results) == 0 {
		return nil
	}
	err := s.results[0]
	s.results = s.results[1:]
	return err
}

func TestStoreProbeService_Transitions(t *testing.T) {
	t.Parallel()

	down := errors.New("store: database is locked")
	checker := &scriptedChecker{results: []error{down, down, nil}}
	probe := NewStoreProbeService(checker, time.Hour)
	ctx := context.Background()

	probe.probe(ctx)
	if probe.Healthy() {
		t.Error("Healthy() = true after failed probe, want false")
	}
	probe.probe(ctx)
	probe.probe(ctx)
	if !probe.Healthy() {
		t.Error("Healthy() = false after recovery, want true")
	}

	total, failed := probe.Probes()
	if total != 3 || failed != 2 {
		t.Errorf("Probes() = (%d, %d), want (3, 2)", total, failed)
	}
}

func TestStoreProbeService_Serve(t *testing.T) {
	t.Parallel()

	checker := &scriptedChecker{}
	probe := NewStoreProbeService(checker, 5*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := probe.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if total, _ := probe.Probes(); total < 2 {
		t.Errorf("probes = %d, want at least 2", total)
	}
}

func TestNewStoreProbeService_Defaults(t *testing.T) {
	t.Parallel()

	probe := NewStoreProbeService(&scriptedChecker{}, 0)
	if probe.interval != defaultProbeInterval {
		t.Errorf("interval = %v, want %v", probe.interval, defaultProbeInterval)
	}
	if !probe.Healthy() {
		t.Error("new probe should start healthy")
	}
	if probe.String() != "store-probe" {
		t.Errorf("String() = %q, want %q", probe.String(), "store-probe")
	}
}
