// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/alfainternational/ma-sub000/internal/logging"
)

const (
	defaultProbeInterval = 30 * time.Second
	probeTimeout         = 5 * time.Second
)

// ReadinessChecker is satisfied by *engine.Service.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// StoreProbeService checks store readiness on a fixed interval.
type StoreProbeService struct {
	checker  ReadinessChecker
	interval time.Duration
	healthy  atomic.Bool
	probes   atomic.Int64
	failures atomic.Int64
}

// NewStoreProbeService creates a probe. A non-positive interval uses 30s.
func NewStoreProbeService(checker ReadinessChecker, interval time.Duration) *StoreProbeService {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	p := &StoreProbeService{checker: checker, interval: interval}
	p.healthy.Store(true)
	return p
}

// Serve implements suture.Service. It probes once immediately, then on
// every tick until ctx is canceled.
func (p *StoreProbeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *StoreProbeService) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	p.probes.Add(1)
	err := p.checker.Ready(probeCtx)
	if err != nil {
		p.failures.Add(1)
		if p.healthy.Swap(false) {
			logging.Warn().Err(err).Msg("Session store became unavailable")
		}
		return
	}
	if !p.healthy.Swap(true) {
		logging.Info().Msg("Session store recovered")
	}
}

// Healthy reports the result of the latest probe.
func (p *StoreProbeService) Healthy() bool {
	return p.healthy.Load()
}

// Probes returns the total and failed probe counts.
func (p *StoreProbeService) Probes() (total, failed int64) {
	return p.probes.Load(), p.failures.Load()
}

// String names the service in supervisor logs.
func (p *StoreProbeService) String() string {
	return "store-probe"
}
