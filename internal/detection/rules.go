// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package detection

import (
	"fmt"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// Rule thresholds.
const (
	thinMarginPercent      = 5.0
	heavyChurnPercent      = 30.0
	overspendPercent       = 40.0
	weakDifferentiation    = 3.0
	delightedSatisfaction  = 8.0
	strongNPS              = 50.0
	minRevenuePerEmployee  = 20_000.0
	maxRevenuePerEmployee  = 2_000_000.0
	budgetRevenueCeiling   = 0.30
	lowRevenuePerHead      = 100_000.0
	digitalNearZero        = 10.0
	crowdedCompetitorCount = 10.0
	underspentUtilization  = 70.0
	lowBrandAwareness      = 4.0
)

// DefaultRules returns a fresh instance of every built-in rule.
func DefaultRules() []Rule {
	rules := make([]Rule, 0, 22)
	rules = append(rules, RedFlagRules()...)
	rules = append(rules, GreenFlagRules()...)
	rules = append(rules, AnomalyRules()...)
	rules = append(rules, ConsistencyRules()...)
	rules = append(rules, ContradictionRules()...)
	rules = append(rules, OpportunityRules()...)
	return rules
}

// RedFlagRules returns the warning-sign rules.
func RedFlagRules() []Rule {
	return []Rule{
		newRule("RF_DECLINING_REVENUE", CategoryRedFlag, SeverityHigh, "Declining revenue",
			func(in *Input) (observation, bool) {
				t, ok := in.Answers.RevenueTrend()
				if !ok || t != assessment.TrendDeclining {
					return observation{}, false
				}
				return observation{description: "Revenue is reported as declining."}, true
			}),
		newRule("RF_THIN_MARGIN", CategoryRedFlag, SeverityHigh, "Thin profit margin",
			func(in *Input) (observation, bool) {
				m, ok := in.Answers.Float(assessment.FieldProfitMargin)
				if !ok || m >= thinMarginPercent {
					return observation{}, false
				}
				return observation{
					observed:    m,
					threshold:   thinMarginPercent,
					description: fmt.Sprintf("Profit margin of %.1f%% leaves little room to invest in growth.", m),
				}, true
			}),
		newRule("RF_HEAVY_CHURN", CategoryRedFlag, SeverityHigh, "Heavy customer churn",
			func(in *Input) (observation, bool) {
				c, ok := in.Answers.Float(assessment.FieldCustomerChurn)
				if !ok || c <= heavyChurnPercent {
					return observation{}, false
				}
				return observation{
					observed:    c,
					threshold:   heavyChurnPercent,
					description: fmt.Sprintf("%.1f%% of customers churn, acquisition spend is leaking.", c),
				}, true
			}),
		newRule("RF_MARKETING_OVERSPEND", CategoryRedFlag, SeverityCritical, "Marketing budget out of proportion",
			func(in *Input) (observation, bool) {
				ratio, ok := budgetRatio(in)
				if !ok || ratio*100 <= overspendPercent {
					return observation{}, false
				}
				return observation{
					observed:    ratio * 100,
					threshold:   overspendPercent,
					description: fmt.Sprintf("Marketing budget is %.1f%% of revenue.", ratio*100),
				}, true
			}),
		newRule("RF_NO_WEBSITE", CategoryRedFlag, SeverityHigh, "No website",
			func(in *Input) (observation, bool) {
				if in.Answers.Bool(assessment.FieldHasWebsite) {
					return observation{}, false
				}
				return observation{description: "The business has no website to capture demand."}, true
			}),
		newRule("RF_WEAK_DIFFERENTIATION", CategoryRedFlag, SeverityHigh, "Undifferentiated in a crowded market",
			func(in *Input) (observation, bool) {
				d, ok := in.Answers.Float(assessment.FieldDifferentiation)
				lvl, lvlOK := in.Answers.CompetitionLevel()
				if !ok || !lvlOK || d > weakDifferentiation || !lvl.Severe() {
					return observation{}, false
				}
				return observation{
					observed:    d,
					threshold:   weakDifferentiation,
					description: fmt.Sprintf("Differentiation of %.0f/10 under %s competition.", d, lvl),
				}, true
			}),
	}
}

// GreenFlagRules returns the strength rules.
func GreenFlagRules() []Rule {
	return []Rule{
		newRule("GF_DELIGHTED_CUSTOMERS", CategoryGreenFlag, SeverityInfo, "Delighted customers",
			func(in *Input) (observation, bool) {
				s, ok := in.Answers.Float(assessment.FieldCustomerSatisfaction)
				if !ok || s <= delightedSatisfaction {
					return observation{}, false
				}
				return observation{
					observed:    s,
					threshold:   delightedSatisfaction,
					description: fmt.Sprintf("Customer satisfaction of %.1f/10.", s),
				}, true
			}),
		newRule("GF_GROWING_REVENUE", CategoryGreenFlag, SeverityInfo, "Growing revenue",
			func(in *Input) (observation, bool) {
				t, ok := in.Answers.RevenueTrend()
				if !ok || t != assessment.TrendGrowing {
					return observation{}, false
				}
				return observation{description: "Revenue is reported as growing."}, true
			}),
		newRule("GF_STRONG_NPS", CategoryGreenFlag, SeverityInfo, "Strong net promoter score",
			func(in *Input) (observation, bool) {
				n, ok := in.Answers.Float(assessment.FieldNPS)
				if !ok || n <= strongNPS {
					return observation{}, false
				}
				return observation{
					observed:    n,
					threshold:   strongNPS,
					description: fmt.Sprintf("NPS of %.0f signals word-of-mouth potential.", n),
				}, true
			}),
		newRule("GF_DATA_DRIVEN", CategoryGreenFlag, SeverityInfo, "Data-driven decisions",
			func(in *Input) (observation, bool) {
				if !in.Answers.Bool(assessment.FieldDataDrivenDecisions) {
					return observation{}, false
				}
				return observation{description: "Decisions are made from data."}, true
			}),
	}
}

// AnomalyRules returns the plausibility rules.
func AnomalyRules() []Rule {
	return []Rule{
		newRule("AN_REVENUE_PER_EMPLOYEE", CategoryAnomaly, SeverityMedium, "Implausible revenue per employee",
			func(in *Input) (observation, bool) {
				rpe, ok := revenuePerEmployee(in)
				if !ok || (rpe >= minRevenuePerEmployee && rpe <= maxRevenuePerEmployee) {
					return observation{}, false
				}
				threshold := minRevenuePerEmployee
				if rpe > maxRevenuePerEmployee {
					threshold = maxRevenuePerEmployee
				}
				return observation{
					observed:    rpe,
					threshold:   threshold,
					description: fmt.Sprintf("Revenue per employee of %.0f is outside the plausible band; verify revenue and headcount.", rpe),
				}, true
			}),
	}
}

// ConsistencyRules returns the cross-field rules, each owned by an expert.
func ConsistencyRules() []Rule {
	return []Rule{
		newRule("CC_BUDGET_REVENUE", CategoryConsistency, SeverityCritical, "Budget exceeds a sustainable share of revenue",
			func(in *Input) (observation, bool) {
				ratio, ok := budgetRatio(in)
				if !ok || ratio <= budgetRevenueCeiling {
					return observation{}, false
				}
				return observation{
					observed:    ratio,
					threshold:   budgetRevenueCeiling,
					description: fmt.Sprintf("Marketing budget is %.0f%% of revenue.", ratio*100),
				}, true
			}).ownedBy(ExpertFinancial),
		newRule("CC_CAC_LTV", CategoryConsistency, SeverityCritical, "Acquisition cost exceeds lifetime value",
			func(in *Input) (observation, bool) {
				cac, cacOK := in.Answers.Float(assessment.FieldCAC)
				ltv, ltvOK := in.Answers.Float(assessment.FieldLTV)
				if !cacOK || !ltvOK || ltv <= 0 || cac <= ltv {
					return observation{}, false
				}
				return observation{
					observed:    cac,
					threshold:   ltv,
					description: fmt.Sprintf("Each customer costs %.0f to acquire but returns %.0f.", cac, ltv),
				}, true
			}).ownedBy(ExpertFinancial),
		newRule("CC_REVENUE_PER_HEAD", CategoryConsistency, SeverityHigh, "Low revenue per head",
			func(in *Input) (observation, bool) {
				rpe, ok := revenuePerEmployee(in)
				if !ok || rpe >= lowRevenuePerHead {
					return observation{}, false
				}
				return observation{
					observed:    rpe,
					threshold:   lowRevenuePerHead,
					description: fmt.Sprintf("Revenue per employee of %.0f points to operational drag.", rpe),
				}, true
			}).ownedBy(ExpertOperations),
		newRule("CC_DIGITAL_DEPENDENCY", CategoryConsistency, SeverityHigh, "Offline in a digital-dependent sector",
			func(in *Input) (observation, bool) {
				if in.Scores == nil || !in.Context.Sector.DigitalDependent() {
					return observation{}, false
				}
				d := in.Scores.Digital.Value
				if d > digitalNearZero {
					return observation{}, false
				}
				return observation{
					observed:    d,
					threshold:   digitalNearZero,
					description: fmt.Sprintf("Digital maturity of %.0f in the %s sector, where customers buy online.", d, in.Context.Sector),
				}, true
			}).ownedBy(ExpertDigital),
	}
}

// ContradictionRules returns the rules that cross-check self-reported claims.
func ContradictionRules() []Rule {
	return []Rule{
		newRule("CT_GROWTH_CLAIM", CategoryContradiction, SeverityMedium, "Growth claim contradicts revenue trend",
			func(in *Input) (observation, bool) {
				t, ok := in.Answers.RevenueTrend()
				if !ok || t != assessment.TrendDeclining || !in.Answers.Bool(assessment.FieldClaimsGrowth) {
					return observation{}, false
				}
				return observation{description: "Growth is claimed while revenue is reported as declining."}, true
			}),
		newRule("CT_COMPETITION_CLAIM", CategoryContradiction, SeverityMedium, "Low competition claim contradicts competitor count",
			func(in *Input) (observation, bool) {
				lvl, ok := in.Answers.CompetitionLevel()
				n, nOK := in.Answers.Float(assessment.FieldCompetitorCount)
				if !ok || !nOK || lvl != assessment.CompetitionLow || n <= crowdedCompetitorCount {
					return observation{}, false
				}
				return observation{
					observed:    n,
					threshold:   crowdedCompetitorCount,
					description: fmt.Sprintf("Competition is rated low but %.0f competitors are named.", n),
				}, true
			}),
		newRule("CT_SATISFACTION_CHURN", CategoryContradiction, SeverityMedium, "High satisfaction with high churn",
			func(in *Input) (observation, bool) {
				s, sOK := in.Answers.Float(assessment.FieldCustomerSatisfaction)
				c, cOK := in.Answers.Float(assessment.FieldCustomerChurn)
				if !sOK || !cOK || s < delightedSatisfaction || c <= heavyChurnPercent {
					return observation{}, false
				}
				return observation{
					observed:    c,
					threshold:   heavyChurnPercent,
					description: fmt.Sprintf("Satisfaction of %.1f/10 does not match churn of %.1f%%.", s, c),
				}, true
			}),
	}
}

// OpportunityRules returns the rules that surface uncaptured upside.
func OpportunityRules() []Rule {
	return []Rule{
		newRule("OP_UNDERSPENT_BUDGET", CategoryOpportunity, SeverityLow, "Budget left unspent in a growth phase",
			func(in *Input) (observation, bool) {
				u, ok := in.Answers.Float(assessment.FieldBudgetUtilization)
				t, tOK := in.Answers.RevenueTrend()
				if !ok || !tOK || t != assessment.TrendGrowing || u >= underspentUtilization {
					return observation{}, false
				}
				return observation{
					observed:    u,
					threshold:   underspentUtilization,
					description: fmt.Sprintf("Only %.0f%% of the allocated budget is spent while revenue grows.", u),
				}, true
			}),
		newRule("OP_HIDDEN_GEM", CategoryOpportunity, SeverityLow, "Loved but unknown",
			func(in *Input) (observation, bool) {
				s, sOK := in.Answers.Float(assessment.FieldCustomerSatisfaction)
				a, aOK := in.Answers.Float(assessment.FieldBrandAwareness)
				if !sOK || !aOK || s < delightedSatisfaction || a > lowBrandAwareness {
					return observation{}, false
				}
				return observation{
					observed:    a,
					threshold:   lowBrandAwareness,
					description: fmt.Sprintf("Satisfaction of %.1f/10 with brand awareness of only %.1f/10.", s, a),
				}, true
			}),
		newRule("OP_DIGITAL_WHITESPACE", CategoryOpportunity, SeverityMedium, "Growing market with no digital presence",
			func(in *Input) (observation, bool) {
				t, ok := in.Answers.MarketTrend()
				if !ok || t != assessment.TrendGrowing || hasDigitalPresence(in.Answers) {
					return observation{}, false
				}
				return observation{description: "The market is growing and the business is not yet visible online."}, true
			}),
	}
}

// budgetRatio returns marketing budget divided by revenue.
func budgetRatio(in *Input) (float64, bool) {
	budget, budgetOK := in.Answers.Float(assessment.FieldMarketingBudget)
	revenue, revenueOK := in.Answers.Revenue(in.Context)
	return assessment.Ratio(budget, revenue, budgetOK, revenueOK)
}

// revenuePerEmployee returns revenue divided by headcount.
func revenuePerEmployee(in *Input) (float64, bool) {
	revenue, revenueOK := in.Answers.Revenue(in.Context)
	employees, employeesOK := in.Answers.Employees(in.Context)
	return assessment.Ratio(revenue, employees, revenueOK, employeesOK)
}

func hasDigitalPresence(a assessment.AnswerMap) bool {
	social, _ := a.Count(assessment.FieldSocialPlatforms)
	return a.Bool(assessment.FieldHasWebsite) || a.Bool(assessment.FieldUsesPaidAds) || social > 0
}
