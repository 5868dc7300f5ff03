// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/scoring"
)

var marketTrendPoints = map[assessment.RevenueTrend]float64{
	assessment.TrendGrowing:   90,
	assessment.TrendStable:    55,
	assessment.TrendDeclining: 20,
}

// MarketAnalyst judges competitive position, market momentum and
// positioning.
type MarketAnalyst struct {
	base
}

// NewMarketAnalyst creates the market analyst.
func NewMarketAnalyst() *MarketAnalyst {
	return &MarketAnalyst{base{
		profile: Profile{
			ID:             IDMarketAnalyst,
			Name:           "Market Analyst",
			Role:           "Reads the competitive landscape and market direction",
			Expertise:      []string{"competition", "market sizing", "positioning"},
			DecisionWeight: 0.8,
			Contributes:    assessment.ScoreMarket,
		},
		fields: []string{
			assessment.FieldCompetitionLevel, assessment.FieldCompetitorCount,
			assessment.FieldDifferentiation, assessment.FieldMarketTrend,
			assessment.FieldMarketGrowthRate, assessment.FieldBrandPositioningClarity,
			assessment.FieldTargetAudienceClarity,
		},
		advice: map[string]advice{
			"competitive_position": {
				label:    "Competitive position",
				weak:     "Competitors can take share easily because the offer is hard to tell apart.",
				strong:   "The business holds a defensible position against competitors.",
				action:   "Sharpen differentiation against the top three competitors",
				detail:   "Map the top competitors' promises and pick the dimension where the business can credibly win.",
				steps:    []string{"Audit the top three competitors", "List proof points only the business can claim", "Rewrite the core message around them"},
				effort:   assessment.EffortMedium,
				timeline: "2 months",
				impact:   "Clearer reason to choose the business",
			},
			"market_momentum": {
				label:    "Market momentum",
				weak:     "The market is flat or shrinking, growth must come from share gains.",
				strong:   "The market is growing and lifts every player in it.",
				action:   "Find the growing pockets of the market",
				detail:   "Segment the market and shift focus to segments still expanding.",
				steps:    []string{"Segment customers by growth", "Pick one expanding segment", "Build an offer for it"},
				effort:   assessment.EffortHigh,
				timeline: "6 months",
				impact:   "Exposure to growing demand",
			},
			"positioning": {
				label:    "Positioning",
				weak:     "The target customer and the brand's place in the market are not clearly defined.",
				strong:   "The target customer and positioning are well defined.",
				action:   "Define the ideal customer profile and positioning statement",
				detail:   "Write down who the business serves, the problem it solves and why it is the better choice.",
				steps:    []string{"Interview five best customers", "Draft the ideal customer profile", "Publish a one-line positioning statement"},
				effort:   assessment.EffortLow,
				timeline: "1 month",
				impact:   "Focused messaging and targeting",
			},
		},
	}}
}

// Analyze implements Expert.
func (e *MarketAnalyst) Analyze(in *Input) *Analysis {
	a := in.Answers

	competition := 100 - scoring.CompetitionRisk(a)*10
	position := 0.5*competition + 0.5*scale10(a, assessment.FieldDifferentiation)

	trend := assessment.ScoreMidpoint
	if t, ok := a.MarketTrend(); ok {
		trend = marketTrendPoints[t]
	}
	rate := assessment.ScoreMidpoint
	if g, ok := a.Float(assessment.FieldMarketGrowthRate); ok {
		rate = assessment.Clamp(g*5, 0, 100)
	}
	momentum := 0.6*trend + 0.4*rate

	positioning := 0.5*scale10(a, assessment.FieldBrandPositioningClarity) +
		0.5*scale10(a, assessment.FieldTargetAudienceClarity)

	sections := map[string]interface{}{}
	if n, ok := a.Float(assessment.FieldCompetitorCount); ok {
		sections["competitor_count"] = n
	}
	if lvl, ok := a.CompetitionLevel(); ok {
		sections["competition_level"] = lvl
	}

	return e.finish(in, []SubScore{
		{Name: "competitive_position", Value: position, Weight: 0.40},
		{Name: "market_momentum", Value: momentum, Weight: 0.35},
		{Name: "positioning", Value: positioning, Weight: 0.25},
	}, sections)
}
