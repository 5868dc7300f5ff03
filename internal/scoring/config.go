// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package scoring

import (
	"fmt"
	"math"
)

// weightTolerance is the allowed drift from 1.0 for a weight group.
const weightTolerance = 1e-6

// Config holds the weights for every dimension and the composite.
type Config struct {
	// Composite weights the five dimensions into the overall score. Risk is
	// applied as (100 - risk).
	Composite CompositeWeights `json:"composite"`

	Digital        DigitalWeights        `json:"digital"`
	Marketing      MarketingWeights      `json:"marketing"`
	Organizational OrganizationalWeights `json:"organizational"`
	Risk           RiskWeights           `json:"risk"`
	Opportunity    OpportunityWeights    `json:"opportunity"`

	// BudgetSteps maps the marketing budget to revenue percentage onto the
	// budget adequacy score. Evaluated top-down; first match wins.
	BudgetSteps []BudgetStep `json:"budget_steps"`
}

// CompositeWeights weights the dimensions in the overall score.
type CompositeWeights struct {
	Digital        float64 `json:"digital"`
	Marketing      float64 `json:"marketing"`
	Organizational float64 `json:"organizational"`
	RiskInverse    float64 `json:"risk_inverse"`
	Opportunity    float64 `json:"opportunity"`
}

func (w CompositeWeights) sum() float64 {
	return w.Digital + w.Marketing + w.Organizational + w.RiskInverse + w.Opportunity
}

// Normalize returns a copy with weights summing to 1.0. All-zero weights
// become equal weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w CompositeWeights) Normalize() CompositeWeights {
	sum := w.sum()
	if sum == 0 {
		const equal = 1.0 / 5.0
		return CompositeWeights{equal, equal, equal, equal, equal}
	}
	return CompositeWeights{
		Digital:        w.Digital / sum,
		Marketing:      w.Marketing / sum,
		Organizational: w.Organizational / sum,
		RiskInverse:    w.RiskInverse / sum,
		Opportunity:    w.Opportunity / sum,
	}
}

// DigitalWeights weights the digital maturity sub-components.
type DigitalWeights struct {
	Website   float64 `json:"website"`
	Social    float64 `json:"social"`
	Ads       float64 `json:"ads"`
	Email     float64 `json:"email"`
	Analytics float64 `json:"analytics"`
}

// MarketingWeights weights the marketing maturity sub-components.
type MarketingWeights struct {
	Strategy    float64 `json:"strategy"`
	Execution   float64 `json:"execution"`
	Measurement float64 `json:"measurement"`
}

// OrganizationalWeights weights the organizational readiness sub-components.
type OrganizationalWeights struct {
	Team       float64 `json:"team"`
	Budget     float64 `json:"budget"`
	Leadership float64 `json:"leadership"`
	Process    float64 `json:"process"`
}

// RiskWeights weights the 0-10 risk sub-scores.
type RiskWeights struct {
	Financial   float64 `json:"financial"`
	Competitive float64 `json:"competitive"`
	Execution   float64 `json:"execution"`
	Market      float64 `json:"market"`
}

// OpportunityWeights weights the 0-10 opportunity sub-scores.
type OpportunityWeights struct {
	Growth    float64 `json:"growth"`
	Market    float64 `json:"market"`
	Advantage float64 `json:"advantage"`
}

// BudgetStep awards Score when the budget/revenue percentage is at least
// MinPercent. A zero MinPercent step with Exclusive set matches any positive
// ratio.
type BudgetStep struct {
	MinPercent float64 `json:"min_percent"`
	Exclusive  bool    `json:"exclusive"`
	Score      float64 `json:"score"`
}

// DefaultConfig returns the canonical weights.
func DefaultConfig() *Config {
	return &Config{
		Composite: CompositeWeights{
			Digital:        0.25,
			Marketing:      0.25,
			Organizational: 0.20,
			RiskInverse:    0.15,
			Opportunity:    0.15,
		},
		Digital: DigitalWeights{
			Website:   0.25,
			Social:    0.20,
			Ads:       0.20,
			Email:     0.15,
			Analytics: 0.20,
		},
		Marketing: MarketingWeights{
			Strategy:    0.30,
			Execution:   0.40,
			Measurement: 0.30,
		},
		Organizational: OrganizationalWeights{
			Team:       0.35,
			Budget:     0.30,
			Leadership: 0.20,
			Process:    0.15,
		},
		Risk: RiskWeights{
			Financial:   0.30,
			Competitive: 0.25,
			Execution:   0.25,
			Market:      0.20,
		},
		Opportunity: OpportunityWeights{
			Growth:    0.35,
			Market:    0.30,
			Advantage: 0.35,
		},
		BudgetSteps: []BudgetStep{
			{MinPercent: 10, Score: 100},
			{MinPercent: 5, Score: 70},
			{MinPercent: 2, Score: 40},
			{MinPercent: 0, Exclusive: true, Score: 20},
		},
	}
}

// Validate checks that every weight group is non-negative and sums to 1.
func (c *Config) Validate() error {
	groups := []struct {
		name    string
		weights []float64
	}{
		{"composite", []float64{c.Composite.Digital, c.Composite.Marketing, c.Composite.Organizational, c.Composite.RiskInverse, c.Composite.Opportunity}},
		{"digital", []float64{c.Digital.Website, c.Digital.Social, c.Digital.Ads, c.Digital.Email, c.Digital.Analytics}},
		{"marketing", []float64{c.Marketing.Strategy, c.Marketing.Execution, c.Marketing.Measurement}},
		{"organizational", []float64{c.Organizational.Team, c.Organizational.Budget, c.Organizational.Leadership, c.Organizational.Process}},
		{"risk", []float64{c.Risk.Financial, c.Risk.Competitive, c.Risk.Execution, c.Risk.Market}},
		{"opportunity", []float64{c.Opportunity.Growth, c.Opportunity.Market, c.Opportunity.Advantage}},
	}

	for _, g := range groups {
		var sum float64
		for _, w := range g.weights {
			if w < 0 {
				return fmt.Errorf("%s weights must be non-negative, got %f", g.name, w)
			}
			sum += w
		}
		if math.Abs(sum-1) > weightTolerance {
			return fmt.Errorf("%s weights must sum to 1, got %f", g.name, sum)
		}
	}

	if len(c.BudgetSteps) == 0 {
		return fmt.Errorf("budget_steps must not be empty")
	}
	for i, step := range c.BudgetSteps {
		if step.Score < 0 || step.Score > 100 {
			return fmt.Errorf("budget_steps[%d].score must be in [0, 100], got %f", i, step.Score)
		}
		if i > 0 && step.MinPercent > c.BudgetSteps[i-1].MinPercent {
			return fmt.Errorf("budget_steps must be ordered by descending min_percent")
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.BudgetSteps = append([]BudgetStep(nil), c.BudgetSteps...)
	return &clone
}
