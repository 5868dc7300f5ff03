// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package scoring

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// competitionRisk is the 0-10 risk of each competition level.
var competitionRisk = map[assessment.CompetitionLevel]float64{
	assessment.CompetitionLow:      2,
	assessment.CompetitionMedium:   5,
	assessment.CompetitionHigh:     8,
	assessment.CompetitionVeryHigh: 10,
}

// revenueTrendRisk is the financial risk points of each revenue trend.
var revenueTrendRisk = map[assessment.RevenueTrend]float64{
	assessment.TrendGrowing:   0,
	assessment.TrendStable:    1,
	assessment.TrendDeclining: 3,
}

// cashFlowRisk is the financial risk points of each cash position.
var cashFlowRisk = map[assessment.CashFlow]float64{
	assessment.CashPositive:  0,
	assessment.CashBreakeven: 1.5,
	assessment.CashNegative:  3,
}

// marketTrendRisk is the 0-10 market risk of each market trend.
var marketTrendRisk = map[assessment.RevenueTrend]float64{
	assessment.TrendGrowing:   2,
	assessment.TrendStable:    5,
	assessment.TrendDeclining: 9,
}

// trendPotential is the 0-10 upside of each trend.
var trendPotential = map[assessment.RevenueTrend]float64{
	assessment.TrendGrowing:   9,
	assessment.TrendStable:    5,
	assessment.TrendDeclining: 2,
}

// CompetitionRisk returns the 0-10 risk of the competition answer,
// defaulting to the scale midpoint.
func CompetitionRisk(a assessment.AnswerMap) float64 {
	if lvl, ok := a.CompetitionLevel(); ok {
		return competitionRisk[lvl]
	}
	return assessment.ScaleMidpoint
}

// Risk scores financial, competitive, execution and market risk. Higher
// means riskier.
func (s *Scorer) Risk(a assessment.AnswerMap) assessment.DimensionScore {
	w := s.cfg.Risk
	d := newTenPointDimension("risk")
	d.add("financial", financialRisk(a), w.Financial)
	d.add("competitive", competitiveRisk(a), w.Competitive)
	d.add("execution", executionRisk(a), w.Execution)
	d.add("market", marketRisk(a), w.Market)
	return d.result(riskLevel)
}

func financialRisk(a assessment.AnswerMap) float64 {
	margin := 2.0
	if m, ok := a.Float(assessment.FieldProfitMargin); ok {
		switch {
		case m < 0:
			margin = 4
		case m < 5:
			margin = 3
		case m < 10:
			margin = 2
		case m < 20:
			margin = 1
		default:
			margin = 0
		}
	}

	cash := 1.5
	if cf, ok := a.CashFlow(); ok {
		cash = cashFlowRisk[cf]
	}

	trend := 1.5
	if t, ok := a.RevenueTrend(); ok {
		trend = revenueTrendRisk[t]
	}

	return margin + cash + trend
}

func competitiveRisk(a assessment.AnswerMap) float64 {
	return 0.6*CompetitionRisk(a) +
		0.4*(10-a.ScaleValue(assessment.FieldDifferentiation))
}

func executionRisk(a assessment.AnswerMap) float64 {
	return 0.4*(10-a.ScaleValue(assessment.FieldExecutionCapacity)) +
		0.4*(10-a.ScaleValue(assessment.FieldTeamSkillLevel)) +
		0.2*bonus(a.Bool(assessment.FieldSingleChannelDependency), 10)
}

func marketRisk(a assessment.AnswerMap) float64 {
	trend := assessment.ScaleMidpoint
	if t, ok := a.MarketTrend(); ok {
		trend = marketTrendRisk[t]
	}
	churn := assessment.ScaleMidpoint
	if c, ok := a.Float(assessment.FieldCustomerChurn); ok {
		churn = assessment.Clamp(c/5, 0, 10)
	}
	return 0.6*trend + 0.4*churn
}

// Opportunity scores growth potential, market opportunity and competitive
// advantage.
func (s *Scorer) Opportunity(a assessment.AnswerMap) assessment.DimensionScore {
	w := s.cfg.Opportunity
	d := newTenPointDimension("opportunity")
	d.add("growth", growthPotential(a), w.Growth)
	d.add("market", marketOpportunity(a), w.Market)
	d.add("advantage", competitiveAdvantage(a), w.Advantage)
	return d.result(dimensionLevel)
}

func growthPotential(a assessment.AnswerMap) float64 {
	rate := assessment.ScaleMidpoint
	if g, ok := a.Float(assessment.FieldMarketGrowthRate); ok {
		rate = assessment.Clamp(g/2, 0, 10)
	}
	trend := assessment.ScaleMidpoint
	if t, ok := a.RevenueTrend(); ok {
		trend = trendPotential[t]
	}
	return 0.5*rate + 0.5*trend
}

func marketOpportunity(a assessment.AnswerMap) float64 {
	trend := assessment.ScaleMidpoint
	if t, ok := a.MarketTrend(); ok {
		trend = trendPotential[t]
	}
	return 0.5*trend + 0.5*(10-CompetitionRisk(a))
}

func competitiveAdvantage(a assessment.AnswerMap) float64 {
	uvp := 4.0
	if a.Bool(assessment.FieldUniqueValueProposition) {
		uvp = 10
	}
	return 0.4*a.ScaleValue(assessment.FieldDifferentiation) +
		0.3*a.ScaleValue(assessment.FieldCustomerSatisfaction) +
		0.3*uvp
}
