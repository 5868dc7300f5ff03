// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package assessment

import "strings"

// normalizeToken lowercases and folds separators so "Very High" and
// "very-high" parse the same way.
func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Sector is the business sector used for benchmarks.
type Sector string

const (
	SectorRetail        Sector = "retail"
	SectorEcommerce     Sector = "ecommerce"
	SectorTechnology    Sector = "technology"
	SectorServices      Sector = "services"
	SectorManufacturing Sector = "manufacturing"
	SectorHealthcare    Sector = "healthcare"
	SectorEducation     Sector = "education"
	SectorHospitality   Sector = "hospitality"
	SectorFinance       Sector = "finance"
	SectorRealEstate    Sector = "real_estate"
	SectorOther         Sector = "other"
)

var sectorAliases = map[string]Sector{
	"retail":        SectorRetail,
	"ecommerce":     SectorEcommerce,
	"e_commerce":    SectorEcommerce,
	"online_retail": SectorEcommerce,
	"technology":    SectorTechnology,
	"tech":          SectorTechnology,
	"saas":          SectorTechnology,
	"software":      SectorTechnology,
	"services":      SectorServices,
	"service":       SectorServices,
	"consulting":    SectorServices,
	"manufacturing": SectorManufacturing,
	"industrial":    SectorManufacturing,
	"healthcare":    SectorHealthcare,
	"health":        SectorHealthcare,
	"medical":       SectorHealthcare,
	"education":     SectorEducation,
	"hospitality":   SectorHospitality,
	"restaurant":    SectorHospitality,
	"restaurants":   SectorHospitality,
	"tourism":       SectorHospitality,
	"finance":       SectorFinance,
	"financial":     SectorFinance,
	"banking":       SectorFinance,
	"real_estate":   SectorRealEstate,
	"realestate":    SectorRealEstate,
	"property":      SectorRealEstate,
	"other":         SectorOther,
}

// ParseSector maps free text onto a Sector. Unknown sectors are SectorOther.
func ParseSector(s string) Sector {
	if sector, ok := sectorAliases[normalizeToken(s)]; ok {
		return sector
	}
	return SectorOther
}

// LookupSector is ParseSector without the fallback.
func LookupSector(s string) (Sector, bool) {
	sector, ok := sectorAliases[normalizeToken(s)]
	return sector, ok
}

// Sectors lists every known sector.
func Sectors() []Sector {
	return []Sector{
		SectorRetail, SectorEcommerce, SectorTechnology, SectorServices,
		SectorManufacturing, SectorHealthcare, SectorEducation,
		SectorHospitality, SectorFinance, SectorRealEstate, SectorOther,
	}
}

// RevenueTrend is the self-reported direction of revenue.
type RevenueTrend string

const (
	TrendGrowing   RevenueTrend = "growing"
	TrendStable    RevenueTrend = "stable"
	TrendDeclining RevenueTrend = "declining"
)

// ParseRevenueTrend parses a trend answer.
func ParseRevenueTrend(s string) (RevenueTrend, bool) {
	switch normalizeToken(s) {
	case "growing", "growth", "increasing", "up", "rising":
		return TrendGrowing, true
	case "stable", "flat", "steady":
		return TrendStable, true
	case "declining", "decline", "decreasing", "down", "falling":
		return TrendDeclining, true
	default:
		return "", false
	}
}

// RevenueTrend returns the parsed revenue trend answer.
func (a AnswerMap) RevenueTrend() (RevenueTrend, bool) {
	s, ok := a.Str(FieldRevenueTrend)
	if !ok {
		return "", false
	}
	return ParseRevenueTrend(s)
}

// MarketTrend returns the parsed market trend answer. It shares the
// revenue trend vocabulary.
func (a AnswerMap) MarketTrend() (RevenueTrend, bool) {
	s, ok := a.Str(FieldMarketTrend)
	if !ok {
		return "", false
	}
	return ParseRevenueTrend(s)
}

// CashFlow is the current cash position.
type CashFlow string

const (
	CashPositive  CashFlow = "positive"
	CashBreakeven CashFlow = "breakeven"
	CashNegative  CashFlow = "negative"
)

// ParseCashFlow parses a cash-flow answer.
func ParseCashFlow(s string) (CashFlow, bool) {
	switch normalizeToken(s) {
	case "positive", "healthy", "good":
		return CashPositive, true
	case "breakeven", "break_even", "neutral", "tight":
		return CashBreakeven, true
	case "negative", "poor", "burning":
		return CashNegative, true
	default:
		return "", false
	}
}

// CashFlow returns the parsed cash-flow answer.
func (a AnswerMap) CashFlow() (CashFlow, bool) {
	s, ok := a.Str(FieldCashFlow)
	if !ok {
		return "", false
	}
	return ParseCashFlow(s)
}

// CompetitionLevel is the perceived intensity of competition.
type CompetitionLevel string

const (
	CompetitionLow      CompetitionLevel = "low"
	CompetitionMedium   CompetitionLevel = "medium"
	CompetitionHigh     CompetitionLevel = "high"
	CompetitionVeryHigh CompetitionLevel = "very_high"
)

// ParseCompetitionLevel parses a competition answer.
func ParseCompetitionLevel(s string) (CompetitionLevel, bool) {
	switch normalizeToken(s) {
	case "low", "none", "minimal":
		return CompetitionLow, true
	case "medium", "moderate":
		return CompetitionMedium, true
	case "high", "strong":
		return CompetitionHigh, true
	case "very_high", "veryhigh", "severe", "intense", "extreme":
		return CompetitionVeryHigh, true
	default:
		return "", false
	}
}

// Severe reports whether the level is high or very high.
func (c CompetitionLevel) Severe() bool {
	return c == CompetitionHigh || c == CompetitionVeryHigh
}

// CompetitionLevel returns the parsed competition answer.
func (a AnswerMap) CompetitionLevel() (CompetitionLevel, bool) {
	s, ok := a.Str(FieldCompetitionLevel)
	if !ok {
		return "", false
	}
	return ParseCompetitionLevel(s)
}

// Frequency is a cadence answer for posting, emailing or KPI reviews.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyRarely    Frequency = "rarely"
	FrequencyNever     Frequency = "never"
)

// ParseFrequency parses a cadence answer.
func ParseFrequency(s string) (Frequency, bool) {
	switch normalizeToken(s) {
	case "daily", "every_day", "multiple_daily":
		return FrequencyDaily, true
	case "weekly", "several_times_week", "few_times_week":
		return FrequencyWeekly, true
	case "biweekly", "bi_weekly", "fortnightly":
		return FrequencyBiweekly, true
	case "monthly":
		return FrequencyMonthly, true
	case "quarterly":
		return FrequencyQuarterly, true
	case "yearly", "annually", "annual":
		return FrequencyYearly, true
	case "rarely", "occasionally", "sometimes":
		return FrequencyRarely, true
	case "never", "none", "no":
		return FrequencyNever, true
	default:
		return "", false
	}
}

// Frequency returns the parsed cadence answer for key.
func (a AnswerMap) Frequency(key string) (Frequency, bool) {
	s, ok := a.Str(key)
	if !ok {
		return "", false
	}
	return ParseFrequency(s)
}

// Priority tags recommendations and expert guidance.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Impact returns the prioritization weight of the tag.
func (p Priority) Impact() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Layer is the recommendation tier.
type Layer string

const (
	LayerStrategic Layer = "strategic"
	LayerTactical  Layer = "tactical"
	LayerExecution Layer = "execution"
)

// Order returns the tie-break position of the layer.
func (l Layer) Order() int {
	switch l {
	case LayerStrategic:
		return 0
	case LayerTactical:
		return 1
	default:
		return 2
	}
}

// Effort estimates how much work a recommendation needs.
type Effort string

const (
	EffortMinimal  Effort = "minimal"
	EffortLow      Effort = "low"
	EffortMedium   Effort = "medium"
	EffortHigh     Effort = "high"
	EffortVeryHigh Effort = "very_high"
)

// Cost returns the prioritization divisor of the effort tag.
func (e Effort) Cost() int {
	switch e {
	case EffortMinimal:
		return 1
	case EffortLow:
		return 2
	case EffortHigh:
		return 4
	case EffortVeryHigh:
		return 5
	default:
		return 3
	}
}

// ImpactTag classifies an insight.
type ImpactTag string

const (
	ImpactPositive ImpactTag = "positive"
	ImpactNeutral  ImpactTag = "neutral"
	ImpactWarning  ImpactTag = "warning"
	ImpactNegative ImpactTag = "negative"
)

// AlertTier is the alert rule set that raised an alert.
type AlertTier string

const (
	AlertCritical    AlertTier = "critical"
	AlertHigh        AlertTier = "high"
	AlertWarning     AlertTier = "warning"
	AlertOpportunity AlertTier = "opportunity"
)

// PlanType is the overall strategic posture recommended for the business.
type PlanType string

const (
	PlanEmergency      PlanType = "emergency"
	PlanTreatment      PlanType = "treatment"
	PlanGrowth         PlanType = "growth"
	PlanTransformation PlanType = "transformation"
)

// MaturityLevel classifies the overall score.
type MaturityLevel string

const (
	MaturityBeginner   MaturityLevel = "beginner"
	MaturityDeveloping MaturityLevel = "developing"
	MaturityAdvanced   MaturityLevel = "advanced"
	MaturityExpert     MaturityLevel = "expert"
)

// ClassifyMaturity maps an overall score onto a maturity level.
func ClassifyMaturity(overall float64) MaturityLevel {
	switch {
	case overall >= 76:
		return MaturityExpert
	case overall >= 51:
		return MaturityAdvanced
	case overall >= 26:
		return MaturityDeveloping
	default:
		return MaturityBeginner
	}
}

// RiskLevel classifies the risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// ClassifyRisk maps a 0-100 risk score onto a level.
func ClassifyRisk(risk float64) RiskLevel {
	switch {
	case risk >= 70:
		return RiskCritical
	case risk >= 50:
		return RiskHigh
	case risk >= 30:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ScoreKey names an entry of the shared score map read by the experts.
type ScoreKey string

const (
	ScoreDigital        ScoreKey = "digital"
	ScoreMarketing      ScoreKey = "marketing"
	ScoreOrganizational ScoreKey = "organizational"
	ScoreRisk           ScoreKey = "risk"
	ScoreOpportunity    ScoreKey = "opportunity"
	ScoreOverall        ScoreKey = "overall"
	ScoreFinancial      ScoreKey = "financial"
	ScoreMarket         ScoreKey = "market"
	ScoreBrand          ScoreKey = "brand"
	ScoreOperations     ScoreKey = "operations"
	ScoreInnovation     ScoreKey = "innovation"
	ScoreCustomer       ScoreKey = "customer"
	ScoreAnalytics      ScoreKey = "analytics"
)
