// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package alerting

import (
	"fmt"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/scoring"
)

// Alert thresholds.
const (
	NoPresenceDigital  = 20.0
	CriticalRisk       = 70.0
	HighChurnPercent   = 30.0
	OverspendPercent   = 30.0
	LowMaturityOverall = 40.0
	LowSatisfaction    = 6.0
	HighSatisfaction   = 8.0
	LowAwareness       = 5.0
	DigitalGapScore    = 40.0
	HeadroomPercent    = 5.0
	HighOpportunity    = 70.0
	StrongNPS          = 50.0
	MaxUrgency         = 100
)

const (
	dimensionFinancial   = "financial"
	dimensionDigital     = "digital"
	dimensionRisk        = "risk"
	dimensionCustomer    = "customer"
	dimensionMarketing   = "marketing"
	dimensionAnalytics   = "analytics"
	dimensionBrand       = "brand"
	dimensionMarket      = "market"
	dimensionOverall     = "overall"
	dimensionOpportunity = "opportunity"
)

// Input is what the alert rules read. Scores may be nil, in which case
// score-based rules do not fire.
type Input struct {
	Answers assessment.AnswerMap
	Context assessment.Context
	Scores  *assessment.Scores
}

// Rule raises one alert when Check reports a description.
type Rule struct {
	ID                string
	Tier              assessment.AlertTier
	Title             string
	Dimension         string
	RecommendedAction string
	Urgency           int

	// Check returns the alert description and whether the rule fired.
	Check func(in *Input) (string, bool)
}

func (r *Rule) alert(description string) assessment.Alert {
	return assessment.Alert{
		ID:                r.ID,
		Tier:              r.Tier,
		Title:             r.Title,
		Description:       description,
		Dimension:         r.Dimension,
		RecommendedAction: r.RecommendedAction,
		UrgencyScore:      r.Urgency,
	}
}

// DefaultRules returns every built-in rule, tier by tier.
func DefaultRules() []Rule {
	var rules []Rule
	rules = append(rules, CriticalRules()...)
	rules = append(rules, HighRules()...)
	rules = append(rules, WarningRules()...)
	rules = append(rules, OpportunityRules()...)
	return rules
}

// CriticalRules returns the rules for threats to the business.
func CriticalRules() []Rule {
	return []Rule{
		{
			ID:                "ALC_CASH_CRISIS",
			Tier:              assessment.AlertCritical,
			Title:             "Cash crisis",
			Dimension:         dimensionFinancial,
			RecommendedAction: "Cut non-essential spend and secure working capital immediately",
			Urgency:           98,
			Check: func(in *Input) (string, bool) {
				cf, cfOK := in.Answers.CashFlow()
				trend, trendOK := in.Answers.RevenueTrend()
				if !cfOK || !trendOK || cf != assessment.CashNegative || trend != assessment.TrendDeclining {
					return "", false
				}
				return "Cash flow is negative while revenue is declining", true
			},
		},
		{
			ID:                "ALC_NO_DIGITAL_PRESENCE",
			Tier:              assessment.AlertCritical,
			Title:             "No digital presence",
			Dimension:         dimensionDigital,
			RecommendedAction: "Launch a website and claim the main social profiles",
			Urgency:           95,
			Check: func(in *Input) (string, bool) {
				if in.Scores == nil || in.Answers.Bool(assessment.FieldHasWebsite) {
					return "", false
				}
				if d := in.Scores.Digital.Value; d < NoPresenceDigital {
					return fmt.Sprintf("No website and a digital score of %.0f/100", d), true
				}
				return "", false
			},
		},
		{
			ID:                "ALC_CRITICAL_RISK",
			Tier:              assessment.AlertCritical,
			Title:             "Critical risk exposure",
			Dimension:         dimensionRisk,
			RecommendedAction: "Run a risk review and mitigate the top three risks",
			Urgency:           92,
			Check: func(in *Input) (string, bool) {
				if in.Scores == nil || in.Scores.Risk.Value < CriticalRisk {
					return "", false
				}
				return fmt.Sprintf("Risk score is %.0f/100", in.Scores.Risk.Value), true
			},
		},
		{
			ID:                "ALC_CAC_EXCEEDS_LTV",
			Tier:              assessment.AlertCritical,
			Title:             "CAC exceeds LTV",
			Dimension:         dimensionFinancial,
			RecommendedAction: "Stop scaling acquisition until each customer earns back its cost",
			Urgency:           90,
			Check: func(in *Input) (string, bool) {
				cac, cacOK := in.Answers.Float(assessment.FieldCAC)
				ltv, ltvOK := in.Answers.Float(assessment.FieldLTV)
				if !cacOK || !ltvOK || cac <= ltv {
					return "", false
				}
				return fmt.Sprintf("Each customer costs %.0f to acquire but is worth %.0f", cac, ltv), true
			},
		},
		{
			ID:                "ALC_NEGATIVE_MARGIN",
			Tier:              assessment.AlertCritical,
			Title:             "Negative profit margin",
			Dimension:         dimensionFinancial,
			RecommendedAction: "Review pricing and cost structure before increasing marketing spend",
			Urgency:           88,
			Check: func(in *Input) (string, bool) {
				m, ok := in.Answers.Float(assessment.FieldProfitMargin)
				if !ok || m >= 0 {
					return "", false
				}
				return fmt.Sprintf("Profit margin is %.1f%%", m), true
			},
		},
	}
}

// HighRules returns the rules for problems that need action this quarter.
func HighRules() []Rule {
	return []Rule{
		{
			ID:                "ALH_DECLINING_REVENUE",
			Tier:              assessment.AlertHigh,
			Title:             "Revenue is declining",
			Dimension:         dimensionFinancial,
			RecommendedAction: "Identify the lost customers and segments and win them back",
			Urgency:           82,
			Check: func(in *Input) (string, bool) {
				if t, ok := in.Answers.RevenueTrend(); ok && t == assessment.TrendDeclining {
					return "Revenue trend is reported as declining", true
				}
				return "", false
			},
		},
		{
			ID:                "ALH_HIGH_CHURN",
			Tier:              assessment.AlertHigh,
			Title:             "High customer churn",
			Dimension:         dimensionCustomer,
			RecommendedAction: "Launch a retention program and interview churned customers",
			Urgency:           80,
			Check: func(in *Input) (string, bool) {
				c, ok := in.Answers.Float(assessment.FieldCustomerChurn)
				if !ok || c <= HighChurnPercent {
					return "", false
				}
				return fmt.Sprintf("Annual churn is %.0f%%", c), true
			},
		},
		{
			ID:                "ALH_BUDGET_OVERSPEND",
			Tier:              assessment.AlertHigh,
			Title:             "Marketing budget out of proportion",
			Dimension:         dimensionFinancial,
			RecommendedAction: "Cap marketing spend and reallocate to proven channels",
			Urgency:           78,
			Check: func(in *Input) (string, bool) {
				pct, ok := scoring.BudgetPercent(in.Answers, in.Context)
				if !ok || pct <= OverspendPercent {
					return "", false
				}
				return fmt.Sprintf("Marketing budget is %.0f%% of revenue", pct), true
			},
		},
		{
			ID:                "ALH_LOW_MATURITY",
			Tier:              assessment.AlertHigh,
			Title:             "Low marketing maturity",
			Dimension:         dimensionOverall,
			RecommendedAction: "Follow the treatment plan and fix the foundations first",
			Urgency:           75,
			Check: func(in *Input) (string, bool) {
				if in.Scores == nil || float64(in.Scores.Overall) >= LowMaturityOverall {
					return "", false
				}
				return fmt.Sprintf("Overall maturity is %d/100", in.Scores.Overall), true
			},
		},
		{
			ID:                "ALH_NO_ANALYTICS",
			Tier:              assessment.AlertHigh,
			Title:             "No analytics in place",
			Dimension:         dimensionAnalytics,
			RecommendedAction: "Install web analytics and define conversion goals",
			Urgency:           70,
			Check: func(in *Input) (string, bool) {
				if in.Answers.Bool(assessment.FieldUsesAnalytics) {
					return "", false
				}
				return "Marketing results are not measured", true
			},
		},
	}
}

// WarningRules returns the rules for weaknesses worth planning around.
func WarningRules() []Rule {
	return []Rule{
		{
			ID:                "ALW_NO_STRATEGY",
			Tier:              assessment.AlertWarning,
			Title:             "No documented marketing strategy",
			Dimension:         dimensionMarketing,
			RecommendedAction: "Write a one-page marketing strategy",
			Urgency:           60,
			Check: func(in *Input) (string, bool) {
				if in.Answers.Bool(assessment.FieldHasMarketingStrategy) {
					return "", false
				}
				return "Marketing runs without a written strategy", true
			},
		},
		{
			ID:                "ALW_LOW_SATISFACTION",
			Tier:              assessment.AlertWarning,
			Title:             "Low customer satisfaction",
			Dimension:         dimensionCustomer,
			RecommendedAction: "Survey customers and fix the top complaint",
			Urgency:           58,
			Check: func(in *Input) (string, bool) {
				s, ok := in.Answers.Float(assessment.FieldCustomerSatisfaction)
				if !ok || s >= LowSatisfaction {
					return "", false
				}
				return fmt.Sprintf("Customer satisfaction is %.1f/10", s), true
			},
		},
		{
			ID:                "ALW_SINGLE_CHANNEL",
			Tier:              assessment.AlertWarning,
			Title:             "Single channel dependency",
			Dimension:         dimensionRisk,
			RecommendedAction: "Test one additional acquisition channel",
			Urgency:           55,
			Check: func(in *Input) (string, bool) {
				if !in.Answers.Bool(assessment.FieldSingleChannelDependency) {
					return "", false
				}
				return "Most customers arrive through one channel", true
			},
		},
		{
			ID:                "ALW_NO_EMAIL_LIST",
			Tier:              assessment.AlertWarning,
			Title:             "No email list",
			Dimension:         dimensionDigital,
			RecommendedAction: "Start collecting email addresses on every touchpoint",
			Urgency:           45,
			Check: func(in *Input) (string, bool) {
				if in.Answers.Bool(assessment.FieldHasEmailList) {
					return "", false
				}
				return "The business owns no direct channel to its customers", true
			},
		},
		{
			ID:                "ALW_INACTIVE_SOCIAL",
			Tier:              assessment.AlertWarning,
			Title:             "Inactive social media",
			Dimension:         dimensionDigital,
			RecommendedAction: "Post on a fixed weekly schedule",
			Urgency:           40,
			Check: func(in *Input) (string, bool) {
				f, ok := in.Answers.Frequency(assessment.FieldSocialPostingFrequency)
				if !ok || (f != assessment.FrequencyRarely && f != assessment.FrequencyNever) {
					return "", false
				}
				return fmt.Sprintf("Social posting frequency is %s", f), true
			},
		},
	}
}

// OpportunityRules returns the rules for upside worth pursuing.
func OpportunityRules() []Rule {
	return []Rule{
		{
			ID:                "ALO_DIGITAL_GAP",
			Tier:              assessment.AlertOpportunity,
			Title:             "Growing market, weak digital",
			Dimension:         dimensionMarket,
			RecommendedAction: "Invest in digital channels to capture market growth",
			Urgency:           32,
			Check: func(in *Input) (string, bool) {
				t, ok := in.Answers.MarketTrend()
				if !ok || t != assessment.TrendGrowing || in.Scores == nil || in.Scores.Digital.Value >= DigitalGapScore {
					return "", false
				}
				return fmt.Sprintf("The market is growing but the digital score is %.0f/100", in.Scores.Digital.Value), true
			},
		},
		{
			ID:                "ALO_HIDDEN_GEM",
			Tier:              assessment.AlertOpportunity,
			Title:             "Loved but unknown",
			Dimension:         dimensionBrand,
			RecommendedAction: "Turn satisfied customers into referrals and reviews",
			Urgency:           30,
			Check: func(in *Input) (string, bool) {
				s, sOK := in.Answers.Float(assessment.FieldCustomerSatisfaction)
				aw, awOK := in.Answers.Float(assessment.FieldBrandAwareness)
				if !sOK || !awOK || s <= HighSatisfaction || aw >= LowAwareness {
					return "", false
				}
				return fmt.Sprintf("Satisfaction is %.1f/10 but awareness only %.1f/10", s, aw), true
			},
		},
		{
			ID:                "ALO_HIGH_OPPORTUNITY",
			Tier:              assessment.AlertOpportunity,
			Title:             "Strong growth opportunity",
			Dimension:         dimensionOpportunity,
			RecommendedAction: "Prioritize the growth plan while conditions are favorable",
			Urgency:           28,
			Check: func(in *Input) (string, bool) {
				if in.Scores == nil || in.Scores.Opportunity.Value < HighOpportunity {
					return "", false
				}
				return fmt.Sprintf("Opportunity score is %.0f/100", in.Scores.Opportunity.Value), true
			},
		},
		{
			ID:                "ALO_BUDGET_HEADROOM",
			Tier:              assessment.AlertOpportunity,
			Title:             "Room to invest in growth",
			Dimension:         dimensionFinancial,
			RecommendedAction: "Raise marketing investment toward the sector benchmark",
			Urgency:           25,
			Check: func(in *Input) (string, bool) {
				t, ok := in.Answers.RevenueTrend()
				if !ok || t != assessment.TrendGrowing {
					return "", false
				}
				pct, ok := scoring.BudgetPercent(in.Answers, in.Context)
				if !ok || pct >= HeadroomPercent {
					return "", false
				}
				return fmt.Sprintf("Revenue is growing with marketing at %.1f%% of revenue", pct), true
			},
		},
		{
			ID:                "ALO_PROMOTERS",
			Tier:              assessment.AlertOpportunity,
			Title:             "Strong promoter base",
			Dimension:         dimensionCustomer,
			RecommendedAction: "Launch a referral program",
			Urgency:           20,
			Check: func(in *Input) (string, bool) {
				nps, ok := in.Answers.Float(assessment.FieldNPS)
				if !ok || nps <= StrongNPS {
					return "", false
				}
				return fmt.Sprintf("Net promoter score is %.0f", nps), true
			},
		},
	}
}
