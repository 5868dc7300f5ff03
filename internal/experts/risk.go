// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/playbook"
)

// RiskManager turns the scorer's four risk sub-scores into resilience
// scores; its health is the inverse of risk.
type RiskManager struct {
	base
}

// NewRiskManager creates the risk manager.
func NewRiskManager() *RiskManager {
	return &RiskManager{base{
		profile: Profile{
			ID:             IDRiskManager,
			Name:           "Risk Manager",
			Role:           "Identifies what could break the business and how exposed it is",
			Expertise:      []string{"financial risk", "competitive risk", "execution risk", "market risk"},
			DecisionWeight: 0.85,
		},
		fields: []string{
			assessment.FieldProfitMargin, assessment.FieldCashFlow, assessment.FieldRevenueTrend,
			assessment.FieldCompetitionLevel, assessment.FieldDifferentiation,
			assessment.FieldExecutionCapacity, assessment.FieldSingleChannelDependency,
			assessment.FieldMarketTrend, assessment.FieldCustomerChurn,
		},
		advice: map[string]advice{
			"financial_resilience": {
				label:    "Financial resilience",
				weak:     "Thin margins, negative cash or falling revenue expose the business to shocks.",
				strong:   "Finances can absorb a bad quarter.",
				action:   "Build a financial safety buffer",
				detail:   "Target three months of operating cash and cut spend that does not protect revenue.",
				steps:    []string{"Set a cash reserve target", "Defer non-critical spend", "Review pricing for margin"},
				effort:   assessment.EffortHigh,
				timeline: "6 months",
				impact:   "Survives a revenue dip",
			},
			"competitive_resilience": {
				label:    "Competitive resilience",
				weak:     "Strong competition and weak differentiation threaten share.",
				strong:   "The business is well protected against competitors.",
				action:   "Reduce exposure to competitor moves",
				detail:   "Lock in key customers with contracts or loyalty and monitor competitor pricing monthly.",
				steps:    []string{"Sign longer agreements with top customers", "Track competitor offers monthly"},
				effort:   assessment.EffortMedium,
				timeline: "3 months",
				impact:   "Fewer customers lost to competitors",
			},
			"execution_resilience": {
				label:    "Execution resilience",
				weak:     "Limited capacity or dependence on a single channel makes delivery fragile.",
				strong:   "Execution does not hinge on a single person or channel.",
				action:   "Diversify channels and key skills",
				detail:   "Add a second acquisition channel and cross-train so no single point of failure remains.",
				steps:    []string{"Test a second acquisition channel", "Cross-train one backup per key role"},
				effort:   assessment.EffortMedium,
				timeline: "3 months",
				impact:   "No single point of failure",
			},
			"market_resilience": {
				label:    "Market resilience",
				weak:     "A shrinking market or high churn erodes the customer base.",
				strong:   "The market and customer base are stable.",
				action:   "Hedge against market contraction",
				detail:   "Develop an adjacent segment and improve retention to offset market decline.",
				steps:    []string{"Size an adjacent segment", "Launch a retention campaign"},
				effort:   assessment.EffortHigh,
				timeline: "6 months",
				impact:   "Revenue less tied to one market",
			},
		},
	}}
}

// Analyze implements Expert.
func (e *RiskManager) Analyze(in *Input) *Analysis {
	dim := string(assessment.ScoreRisk)
	resilience := func(component string) float64 {
		return 100 - in.component(dim, component, assessment.ScaleMidpoint)*10
	}
	risk := in.Scores.Get(assessment.ScoreRisk)

	sections := map[string]interface{}{
		"risk_score": risk,
		"risk_level": assessment.ClassifyRisk(risk),
	}
	if in.Findings != nil {
		sections["red_flags"] = len(in.Findings.RedFlags)
	}

	a := e.finish(in, []SubScore{
		{Name: "financial_resilience", Value: resilience("financial"), Weight: 0.30},
		{Name: "competitive_resilience", Value: resilience("competitive"), Weight: 0.25},
		{Name: "execution_resilience", Value: resilience("execution"), Weight: 0.25},
		{Name: "market_resilience", Value: resilience("market"), Weight: 0.20},
	}, sections)
	a.Plan = playbook.ClassifyPlan(a.Health, risk)
	return a
}
