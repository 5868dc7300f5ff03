// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package playbook

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// Pattern is one named situation and the playbook it triggers.
type Pattern struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Conditions  []Condition         `json:"conditions"`
	Confidence  float64             `json:"confidence"`
	Plan        assessment.PlanType `json:"recommended_plan"`
	Actions     []string            `json:"actions"`
	Experts     []string            `json:"experts"`
	Outcome     assessment.Outcome  `json:"predicted_outcome"`
}

// Matches reports whether every condition holds. A pattern without
// conditions never matches.
func (p *Pattern) Matches(in *Input) bool {
	if len(p.Conditions) == 0 {
		return false
	}
	for _, c := range p.Conditions {
		if !c.Holds(in) {
			return false
		}
	}
	return true
}

func (p *Pattern) match() assessment.PatternMatch {
	return assessment.PatternMatch{
		ID:          p.ID,
		Name:        p.Name,
		Confidence:  p.Confidence,
		Plan:        p.Plan,
		Actions:     append([]string(nil), p.Actions...),
		Experts:     append([]string(nil), p.Experts...),
		Outcome:     p.Outcome,
		Description: p.Description,
	}
}

// Library returns the built-in patterns.
func Library() []Pattern {
	return []Pattern{
		{
			ID:          "INF_001",
			Name:        "Struggling business",
			Description: "Revenue is falling, the business is barely visible online and competitors are crowding in.",
			Conditions: []Condition{
				answerIn(assessment.FieldRevenueTrend, string(assessment.TrendDeclining)),
				score(assessment.ScoreDigital, OpLess, 30),
				answerIn(assessment.FieldCompetitionLevel, string(assessment.CompetitionHigh), string(assessment.CompetitionVeryHigh)),
			},
			Confidence: 0.90,
			Plan:       assessment.PlanEmergency,
			Actions: []string{
				"Protect cash: freeze discretionary spend and renegotiate fixed costs",
				"Retain existing customers with a direct win-back campaign",
				"Launch a minimum viable web presence with local search listings",
				"Pick one defensible niche and reposition around it",
			},
			Experts: []string{"financial_analyst", "risk_manager", "chief_strategist"},
			Outcome: assessment.Outcome{Metric: "overall_score", Low: 5, High: 12, Horizon: "6 months"},
		},
		{
			ID:          "INF_002",
			Name:        "Digital laggard",
			Description: "Customers in this sector buy online but the business has not followed them.",
			Conditions: []Condition{
				score(assessment.ScoreDigital, OpLess, 40),
				ctxFlag(ContextDigitalDependent),
				answerNotIn(assessment.FieldRevenueTrend, string(assessment.TrendDeclining)),
			},
			Confidence: 0.85,
			Plan:       assessment.PlanTreatment,
			Actions: []string{
				"Rebuild the website for mobile and conversion tracking",
				"Stand up search and social advertising with ROI tracking",
				"Start an email list with a welcome automation",
			},
			Experts: []string{"digital_marketing_expert", "data_analytics_expert", "consumer_behavior_expert"},
			Outcome: assessment.Outcome{Metric: "digital_score", Low: 15, High: 30, Horizon: "6 months"},
		},
		{
			ID:          "INF_003",
			Name:        "Growth ready",
			Description: "Solid foundations and a favourable market: the business can scale what already works.",
			Conditions: []Condition{
				answerIn(assessment.FieldRevenueTrend, string(assessment.TrendGrowing)),
				score(assessment.ScoreOverall, OpGreaterEq, 50),
				score(assessment.ScoreOpportunity, OpGreaterEq, 60),
			},
			Confidence: 0.80,
			Plan:       assessment.PlanGrowth,
			Actions: []string{
				"Double budget on the two best performing channels",
				"Open one adjacent customer segment",
				"Hire or contract for the largest capability gap",
			},
			Experts: []string{"market_analyst", "innovation_expert", "chief_strategist"},
			Outcome: assessment.Outcome{Metric: "revenue_growth_percent", Low: 15, High: 35, Horizon: "12 months"},
		},
		{
			ID:          "INF_004",
			Name:        "Cash constrained",
			Description: "Cash flow is negative while marketing absorbs a large share of revenue.",
			Conditions: []Condition{
				answerIn(assessment.FieldCashFlow, string(assessment.CashNegative)),
				metric(DerivedBudgetPercent, OpGreater, 15),
			},
			Confidence: 0.85,
			Plan:       assessment.PlanTreatment,
			Actions: []string{
				"Cut channels without measurable return",
				"Shift spend to retention and referral",
				"Set a monthly budget ceiling tied to collected revenue",
			},
			Experts: []string{"financial_analyst", "data_analytics_expert", "risk_manager"},
			Outcome: assessment.Outcome{Metric: "marketing_roi_percent", Low: 20, High: 60, Horizon: "3 months"},
		},
		{
			ID:          "INF_005",
			Name:        "Loyal but invisible",
			Description: "Customers love the product but few people know the brand exists.",
			Conditions: []Condition{
				answer(assessment.FieldCustomerSatisfaction, OpGreaterEq, 8),
				answer(assessment.FieldBrandAwareness, OpLessEq, 4),
			},
			Confidence: 0.75,
			Plan:       assessment.PlanGrowth,
			Actions: []string{
				"Launch a referral programme for existing customers",
				"Collect and publish reviews and case studies",
				"Invest in awareness campaigns in the core segment",
			},
			Experts: []string{"brand_strategist", "consumer_behavior_expert"},
			Outcome: assessment.Outcome{Metric: "brand_awareness", Low: 2, High: 4, Horizon: "9 months"},
		},
		{
			ID:          "INF_006",
			Name:        "Market leader",
			Description: "High maturity with contained risk: the business can shape its market.",
			Conditions: []Condition{
				score(assessment.ScoreOverall, OpGreaterEq, 70),
				score(assessment.ScoreRisk, OpLess, 30),
			},
			Confidence: 0.80,
			Plan:       assessment.PlanTransformation,
			Actions: []string{
				"Fund a continuous experimentation programme",
				"Build proprietary data assets and personalization",
				"Explore new business models or geographies",
			},
			Experts: []string{"innovation_expert", "chief_strategist", "market_analyst"},
			Outcome: assessment.Outcome{Metric: "market_share_points", Low: 2, High: 5, Horizon: "18 months"},
		},
		{
			ID:          "INF_007",
			Name:        "Blind spender",
			Description: "Paid advertising runs without any analytics to tell what it returns.",
			Conditions: []Condition{
				answerFlag(assessment.FieldUsesPaidAds, true),
				answerFlag(assessment.FieldUsesAnalytics, false),
			},
			Confidence: 0.85,
			Plan:       assessment.PlanTreatment,
			Actions: []string{
				"Install analytics and conversion tracking before the next campaign",
				"Pause campaigns that cannot be attributed",
				"Define three KPIs and review them weekly",
			},
			Experts: []string{"data_analytics_expert", "digital_marketing_expert", "financial_analyst"},
			Outcome: assessment.Outcome{Metric: "wasted_spend_percent", Low: -30, High: -15, Horizon: "3 months"},
		},
	}
}
