// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/logging"
)

// Panel registration errors.
var (
	ErrDuplicateExpert = errors.New("expert already registered")
	ErrInvalidWeight   = errors.New("decision weight must be within [0, 1]")
	ErrNoAuthority     = errors.New("no synthesis authority registered")
)

// Verdict is the panel output.
type Verdict struct {
	// Results holds every expert result, domain experts in registration
	// order followed by the synthesis authority.
	Results []assessment.ExpertAnalysisResult

	// Synthesis is the authority's final verdict.
	Synthesis assessment.Synthesis

	// Scores is the shared score map after the domain experts published
	// their health scores.
	Scores assessment.ScoreMap
}

// Panel is the expert registry. Experts are stateless, so a panel can be
// shared across concurrent analyses.
type Panel struct {
	mu      sync.RWMutex
	experts []Expert
	ids     map[string]struct{}
}

// NewPanel creates an empty panel.
func NewPanel() *Panel {
	return &Panel{ids: make(map[string]struct{})}
}

// DefaultPanel returns a panel with all ten experts registered.
func DefaultPanel() *Panel {
	p := NewPanel()
	for _, e := range []Expert{
		NewFinancialAnalyst(),
		NewMarketAnalyst(),
		NewDigitalMarketingExpert(),
		NewBrandStrategist(),
		NewConsumerBehaviorExpert(),
		NewDataAnalyticsExpert(),
		NewOperationsExpert(),
		NewRiskManager(),
		NewInnovationExpert(),
		NewChiefStrategist(),
	} {
		if err := p.Register(e); err != nil {
			panic(err)
		}
	}
	return p
}

// Register adds an expert to the panel.
func (p *Panel) Register(e Expert) error {
	prof := e.Profile()
	if prof.DecisionWeight < 0 || prof.DecisionWeight > 1 {
		return fmt.Errorf("%w: %s has %f", ErrInvalidWeight, prof.ID, prof.DecisionWeight)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.ids[prof.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateExpert, prof.ID)
	}
	p.ids[prof.ID] = struct{}{}
	p.experts = append(p.experts, e)

	logging.Debug().
		Str("expert", prof.ID).
		Float64("decision_weight", prof.DecisionWeight).
		Msg("registered expert")
	return nil
}

// Experts returns the registered experts in registration order.
func (p *Panel) Experts() []Expert {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Expert(nil), p.experts...)
}

// Authority returns the registered Synthesizer with the highest decision
// weight; the earliest registered wins ties.
func (p *Panel) Authority() (Synthesizer, bool) {
	var best Synthesizer
	for _, e := range p.Experts() {
		s, ok := e.(Synthesizer)
		if !ok {
			continue
		}
		if best == nil || s.Profile().DecisionWeight > best.Profile().DecisionWeight {
			best = s
		}
	}
	return best, best != nil
}

// Run executes the domain experts, publishes their health scores into the
// shared score map and lets the authority synthesize the final verdict.
func (p *Panel) Run(in *Input) (*Verdict, error) {
	authority, ok := p.Authority()
	if !ok {
		return nil, ErrNoAuthority
	}
	authorityID := authority.Profile().ID

	scores := make(assessment.ScoreMap, len(in.Scores)+len(healthDimensions))
	for k, v := range in.Scores {
		scores[k] = v
	}
	experts := p.Experts()
	results := make([]assessment.ExpertAnalysisResult, 0, len(experts))
	for _, e := range experts {
		if e.Profile().ID == authorityID {
			continue
		}
		a, r := Result(e, in)
		results = append(results, r)
		if key := a.Profile.Contributes; key != "" {
			scores[key] = a.Health
		}
	}

	authorityIn := in.withScores(scores)
	authorityIn.Panel = results[:len(results):len(results)]
	analysis, authorityResult := Result(authority, authorityIn)
	synthesis := authority.Synthesize(analysis, results)
	results = append(results, authorityResult)

	return &Verdict{
		Results:   results,
		Synthesis: synthesis,
		Scores:    scores,
	}, nil
}
