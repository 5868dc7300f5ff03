// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/scoring"
)

var marginPoints = []struct {
	below  float64
	points float64
}{
	{0, 10},
	{5, 30},
	{10, 55},
	{20, 80},
}

var cashFlowPoints = map[assessment.CashFlow]float64{
	assessment.CashPositive:  100,
	assessment.CashBreakeven: 55,
	assessment.CashNegative:  10,
}

var revenueTrendPoints = map[assessment.RevenueTrend]float64{
	assessment.TrendGrowing:   100,
	assessment.TrendStable:    60,
	assessment.TrendDeclining: 20,
}

// FinancialAnalyst judges budget fit, unit economics, ROI and financial
// stability against the sector benchmark.
type FinancialAnalyst struct {
	base
}

// NewFinancialAnalyst creates the financial analyst.
func NewFinancialAnalyst() *FinancialAnalyst {
	return &FinancialAnalyst{base{
		profile: Profile{
			ID:             IDFinancialAnalyst,
			Name:           "Financial Analyst",
			Role:           "Assesses whether marketing spend is affordable and pays back",
			Expertise:      []string{"budgeting", "unit economics", "marketing roi", "cash flow"},
			DecisionWeight: 0.9,
			Contributes:    assessment.ScoreFinancial,
		},
		fields: []string{
			assessment.FieldMarketingBudget, assessment.FieldAnnualRevenue,
			assessment.FieldCAC, assessment.FieldLTV, assessment.FieldMarketingROI,
			assessment.FieldProfitMargin, assessment.FieldCashFlow, assessment.FieldRevenueTrend,
		},
		advice: map[string]advice{
			"budget_fit": {
				label:    "Budget fit",
				weak:     "Marketing spend is far from what comparable businesses in the sector invest.",
				strong:   "Marketing spend is in line with the sector.",
				action:   "Re-baseline the marketing budget against the sector",
				detail:   "Set the budget as a share of revenue close to the sector norm and tie increases to measured return.",
				steps:    []string{"Compute spend as a share of trailing revenue", "Agree a target share with finance", "Review the share quarterly"},
				effort:   assessment.EffortLow,
				timeline: "1 month",
				impact:   "Spend aligned with what the business can sustain",
			},
			"unit_economics": {
				label:    "Unit economics",
				weak:     "Customers are not worth enough relative to what they cost to acquire.",
				strong:   "Each customer returns several times their acquisition cost.",
				action:   "Fix the LTV to CAC ratio",
				detail:   "Lower acquisition cost on the most expensive channels and raise lifetime value through retention and upsell.",
				steps:    []string{"Compute CAC per channel", "Cut the channel with the worst CAC", "Launch a retention offer for existing customers"},
				effort:   assessment.EffortMedium,
				timeline: "3 months",
				impact:   "LTV to CAC above 3",
			},
			"roi": {
				label:    "Marketing ROI",
				weak:     "Marketing returns less than the sector benchmark.",
				strong:   "Marketing returns at or above the sector benchmark.",
				action:   "Reallocate spend toward proven returns",
				detail:   "Rank campaigns by return and move budget from the bottom quartile to the top.",
				steps:    []string{"Rank campaigns by return", "Pause the bottom quartile", "Scale the top quartile"},
				effort:   assessment.EffortLow,
				timeline: "6 weeks",
				impact:   "ROI closer to the sector benchmark",
			},
			"stability": {
				label:    "Financial stability",
				weak:     "Margins, cash flow or revenue direction leave no buffer for marketing bets.",
				strong:   "Healthy margins and cash flow give room to invest.",
				action:   "Stabilize cash before scaling marketing",
				detail:   "Protect margin and cash so marketing can be funded from operations rather than reserves.",
				steps:    []string{"Build a 13-week cash forecast", "Remove unprofitable offers", "Tie marketing spend to collected revenue"},
				effort:   assessment.EffortHigh,
				timeline: "3 months",
				impact:   "Positive operating cash flow",
			},
		},
	}}
}

// Analyze implements Expert.
func (e *FinancialAnalyst) Analyze(in *Input) *Analysis {
	bench := assessment.BenchmarkFor(in.Context.Sector)
	budgetPct, budgetOK := scoring.BudgetPercent(in.Answers, in.Context)

	sections := map[string]interface{}{
		"benchmark": bench,
	}
	if budgetOK {
		sections["budget_percent"] = assessment.Round1(budgetPct)
	}
	ltvCAC, ltvOK := ltvToCAC(in.Answers)
	if ltvOK {
		sections["ltv_cac_ratio"] = assessment.Round1(ltvCAC)
	}

	subs := []SubScore{
		{Name: "budget_fit", Value: budgetFit(budgetPct, budgetOK, bench), Weight: 0.20},
		{Name: "unit_economics", Value: unitEconomics(ltvCAC, ltvOK), Weight: 0.25},
		{Name: "roi", Value: roiVersusBenchmark(in.Answers, bench), Weight: 0.20},
		{Name: "stability", Value: financialStability(in.Answers), Weight: 0.35},
	}
	return e.finish(in, subs, sections)
}

func budgetFit(pct float64, ok bool, bench assessment.Benchmark) float64 {
	if !ok {
		return assessment.ScoreMidpoint
	}
	if bench.TypicalBudgetPercent <= 0 {
		return assessment.ScoreMidpoint
	}
	r := pct / bench.TypicalBudgetPercent
	switch {
	case r >= 0.8 && r <= 1.5:
		return 100
	case r >= 0.5 && r <= 2.5:
		return 70
	case r >= 0.25 && r <= 4:
		return 40
	default:
		return 15
	}
}

func ltvToCAC(a assessment.AnswerMap) (float64, bool) {
	ltv, ltvOK := a.Float(assessment.FieldLTV)
	cac, cacOK := a.Float(assessment.FieldCAC)
	return assessment.Ratio(ltv, cac, ltvOK, cacOK)
}

func unitEconomics(ratio float64, ok bool) float64 {
	if !ok {
		return assessment.ScoreMidpoint
	}
	switch {
	case ratio >= 3:
		return 100
	case ratio >= 2:
		return 75
	case ratio >= 1:
		return 45
	default:
		return 10
	}
}

func roiVersusBenchmark(a assessment.AnswerMap, bench assessment.Benchmark) float64 {
	roi, ok := a.Float(assessment.FieldMarketingROI)
	if !ok {
		return assessment.ScoreMidpoint
	}
	if roi < 0 {
		return 5
	}
	r := roi / bench.ExpectedROI
	switch {
	case r >= 1:
		return 100
	case r >= 0.6:
		return 70
	case r >= 0.3:
		return 45
	default:
		return 25
	}
}

func financialStability(a assessment.AnswerMap) float64 {
	margin := assessment.ScoreMidpoint
	if m, ok := a.Float(assessment.FieldProfitMargin); ok {
		margin = 100
		for _, step := range marginPoints {
			if m < step.below {
				margin = step.points
				break
			}
		}
	}
	cash := assessment.ScoreMidpoint
	if cf, ok := a.CashFlow(); ok {
		cash = cashFlowPoints[cf]
	}
	trend := assessment.ScoreMidpoint
	if t, ok := a.RevenueTrend(); ok {
		trend = revenueTrendPoints[t]
	}
	return 0.4*margin + 0.35*cash + 0.25*trend
}
