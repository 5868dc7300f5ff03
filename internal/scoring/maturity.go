// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package scoring

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// Missing categorical answers score at the middle of their table.
const (
	socialPostingMidpoint = 15.0
	emailFrequencyMid     = 12.5
	emailListSizeMid      = 12.5
	kpiReviewMidpoint     = 15.0
	channelCountMidpoint  = 10.0
	teamSizeMidpoint      = 20.0
)

var socialPostingPoints = map[assessment.Frequency]float64{
	assessment.FrequencyDaily:     30,
	assessment.FrequencyWeekly:    25,
	assessment.FrequencyBiweekly:  20,
	assessment.FrequencyMonthly:   10,
	assessment.FrequencyQuarterly: 5,
	assessment.FrequencyYearly:    2,
	assessment.FrequencyRarely:    5,
	assessment.FrequencyNever:     0,
}

var emailFrequencyPoints = map[assessment.Frequency]float64{
	assessment.FrequencyDaily:     15,
	assessment.FrequencyWeekly:    25,
	assessment.FrequencyBiweekly:  22,
	assessment.FrequencyMonthly:   18,
	assessment.FrequencyQuarterly: 8,
	assessment.FrequencyYearly:    3,
	assessment.FrequencyRarely:    3,
	assessment.FrequencyNever:     0,
}

var kpiReviewPoints = map[assessment.Frequency]float64{
	assessment.FrequencyDaily:     30,
	assessment.FrequencyWeekly:    30,
	assessment.FrequencyBiweekly:  27,
	assessment.FrequencyMonthly:   25,
	assessment.FrequencyQuarterly: 15,
	assessment.FrequencyYearly:    5,
	assessment.FrequencyRarely:    3,
	assessment.FrequencyNever:     0,
}

// frequencyPoints looks key up in table, falling back to mid when the
// answer is missing or outside the enumeration.
func frequencyPoints(a assessment.AnswerMap, key string, table map[assessment.Frequency]float64, mid float64) float64 {
	f, ok := a.Frequency(key)
	if !ok {
		return mid
	}
	return table[f]
}

// Digital scores website, social, advertising, email and analytics maturity.
func (s *Scorer) Digital(a assessment.AnswerMap) assessment.DimensionScore {
	w := s.cfg.Digital
	d := newPercentDimension("digital")
	d.add("website", websitePoints(a), w.Website)
	d.add("social", socialPoints(a), w.Social)
	d.add("ads", adsPoints(a), w.Ads)
	d.add("email", emailPoints(a), w.Email)
	d.add("analytics", analyticsPoints(a), w.Analytics)
	return d.result(dimensionLevel)
}

func websitePoints(a assessment.AnswerMap) float64 {
	if !a.Bool(assessment.FieldHasWebsite) {
		return 0
	}
	return 40 +
		bonus(a.Bool(assessment.FieldWebsiteMobileFriendly), 20) +
		a.Scale(assessment.FieldWebsiteSEO, 20, false) +
		a.Scale(assessment.FieldWebsiteSpeed, 10, false) +
		bonus(a.Bool(assessment.FieldWebsiteConversionTracking), 10)
}

func socialPoints(a assessment.AnswerMap) float64 {
	platforms, _ := a.Count(assessment.FieldSocialPlatforms)
	if platforms == 0 {
		return 0
	}
	return perItem(platforms, 15, 45) +
		frequencyPoints(a, assessment.FieldSocialPostingFrequency, socialPostingPoints, socialPostingMidpoint) +
		a.Scale(assessment.FieldSocialEngagement, 25, false)
}

func adsPoints(a assessment.AnswerMap) float64 {
	if !a.Bool(assessment.FieldUsesPaidAds) {
		return 0
	}
	platforms, _ := a.Count(assessment.FieldAdPlatforms)
	return 30 +
		perItem(platforms, 10, 20) +
		bonus(a.Bool(assessment.FieldAdsROITracking), 25) +
		a.Scale(assessment.FieldAdPerformance, 25, false)
}

func emailPoints(a assessment.AnswerMap) float64 {
	if !a.Bool(assessment.FieldHasEmailList) {
		return 0
	}
	size := emailListSizeMid
	if n, ok := a.Float(assessment.FieldEmailListSize); ok {
		switch {
		case n >= 10000:
			size = 25
		case n >= 1000:
			size = 18
		case n >= 100:
			size = 10
		case n > 0:
			size = 5
		default:
			size = 0
		}
	}
	return 30 + size +
		frequencyPoints(a, assessment.FieldEmailFrequency, emailFrequencyPoints, emailFrequencyMid) +
		bonus(a.Bool(assessment.FieldEmailAutomation), 20)
}

func analyticsPoints(a assessment.AnswerMap) float64 {
	tools, _ := a.Count(assessment.FieldAnalyticsTools)
	return bonus(a.Bool(assessment.FieldUsesAnalytics), 30) +
		perItem(tools, 10, 20) +
		bonus(a.Bool(assessment.FieldTracksKPIs), 25) +
		bonus(a.Bool(assessment.FieldDataDrivenDecisions), 25)
}

// Marketing scores strategy clarity, execution quality and measurement.
func (s *Scorer) Marketing(a assessment.AnswerMap) assessment.DimensionScore {
	w := s.cfg.Marketing
	d := newPercentDimension("marketing")
	d.add("strategy", strategyPoints(a), w.Strategy)
	d.add("execution", executionPoints(a), w.Execution)
	d.add("measurement", measurementPoints(a), w.Measurement)
	return d.result(dimensionLevel)
}

func strategyPoints(a assessment.AnswerMap) float64 {
	return bonus(a.Bool(assessment.FieldHasMarketingStrategy), 30) +
		bonus(a.Bool(assessment.FieldHasDocumentedPlan), 20) +
		a.Scale(assessment.FieldTargetAudienceClarity, 25, false) +
		a.Scale(assessment.FieldBrandPositioningClarity, 25, false)
}

func executionPoints(a assessment.AnswerMap) float64 {
	channels := channelCountMidpoint
	if n, ok := a.Count(assessment.FieldChannelCount); ok {
		switch {
		case n >= 5:
			channels = 20
		case n >= 3:
			channels = 15
		case n >= 1:
			channels = 8
		default:
			channels = 0
		}
	}
	return a.Scale(assessment.FieldCampaignConsistency, 30, false) +
		a.Scale(assessment.FieldContentQuality, 30, false) +
		channels +
		bonus(a.Bool(assessment.FieldHasContentCalendar), 20)
}

func measurementPoints(a assessment.AnswerMap) float64 {
	return bonus(a.Bool(assessment.FieldMeasuresROI), 30) +
		frequencyPoints(a, assessment.FieldKPIReviewFrequency, kpiReviewPoints, kpiReviewMidpoint) +
		bonus(a.Bool(assessment.FieldAttributionModel), 20) +
		bonus(a.Bool(assessment.FieldUsesAnalytics), 20)
}

// Organizational scores team capability, budget adequacy, leadership
// support and process maturity.
func (s *Scorer) Organizational(a assessment.AnswerMap, c assessment.Context) assessment.DimensionScore {
	w := s.cfg.Organizational
	d := newPercentDimension("organizational")
	d.add("team", teamPoints(a), w.Team)
	d.add("budget", s.BudgetAdequacy(a, c), w.Budget)
	d.add("leadership", a.Scale(assessment.FieldLeadershipSupport, 100, false), w.Leadership)
	d.add("process", processPoints(a), w.Process)
	return d.result(dimensionLevel)
}

func teamPoints(a assessment.AnswerMap) float64 {
	size := teamSizeMidpoint
	if n, ok := a.Float(assessment.FieldMarketingTeamSize); ok {
		switch {
		case n >= 10:
			size = 40
		case n >= 5:
			size = 32
		case n >= 2:
			size = 22
		case n >= 1:
			size = 12
		default:
			size = 0
		}
	}
	return size +
		a.Scale(assessment.FieldTeamSkillLevel, 40, false) +
		bonus(a.Bool(assessment.FieldUsesAgency), 20)
}

func processPoints(a assessment.AnswerMap) float64 {
	return a.Scale(assessment.FieldProcessDocumentation, 60, false) +
		bonus(a.Bool(assessment.FieldHasApprovalWorkflow), 40)
}

// BudgetPercent returns the marketing budget as a percentage of revenue.
// ok is false when either figure is missing or revenue is not positive.
func BudgetPercent(a assessment.AnswerMap, c assessment.Context) (float64, bool) {
	budget, budgetOK := a.Float(assessment.FieldMarketingBudget)
	revenue, revenueOK := a.Revenue(c)
	return assessment.Ratio(budget*100, revenue, budgetOK, revenueOK)
}

// BudgetAdequacy applies the budget step function. An undefined ratio
// scores the midpoint.
func (s *Scorer) BudgetAdequacy(a assessment.AnswerMap, c assessment.Context) float64 {
	pct, ok := BudgetPercent(a, c)
	if !ok {
		return assessment.ScoreMidpoint
	}
	for _, step := range s.cfg.BudgetSteps {
		if step.Exclusive {
			if pct > step.MinPercent {
				return step.Score
			}
			continue
		}
		if pct >= step.MinPercent {
			return step.Score
		}
	}
	return 0
}
