// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// DigitalMarketingExpert judges web presence, social reach, paid
// performance and the owned audience from the scorer's digital breakdown.
type DigitalMarketingExpert struct {
	base
}

// NewDigitalMarketingExpert creates the digital marketing expert.
func NewDigitalMarketingExpert() *DigitalMarketingExpert {
	return &DigitalMarketingExpert{base{
		profile: Profile{
			ID:             IDDigitalMarketing,
			Name:           "Digital Marketing Expert",
			Role:           "Evaluates the online channels that generate demand",
			Expertise:      []string{"web", "social media", "paid advertising", "email"},
			DecisionWeight: 0.8,
		},
		fields: []string{
			assessment.FieldHasWebsite, assessment.FieldWebsiteMobileFriendly,
			assessment.FieldWebsiteSEO, assessment.FieldSocialPlatforms,
			assessment.FieldSocialPostingFrequency, assessment.FieldUsesPaidAds,
			assessment.FieldHasEmailList, assessment.FieldEmailAutomation,
		},
		advice: map[string]advice{
			"web_presence": {
				label:    "Web presence",
				weak:     "The website is missing or does not convert visitors.",
				strong:   "The website is fast, mobile friendly and tracks conversions.",
				action:   "Rebuild the website around conversion",
				detail:   "Ship a mobile-first site with clear calls to action, search basics and conversion tracking.",
				steps:    []string{"Fix mobile layout and page speed", "Add conversion tracking", "Optimize titles and descriptions for search"},
				effort:   assessment.EffortMedium,
				timeline: "2 months",
				impact:   "More leads from existing traffic",
			},
			"social_reach": {
				label:    "Social reach",
				weak:     "Social channels are absent or inactive.",
				strong:   "Social channels are active and engaging.",
				action:   "Commit to a consistent social cadence",
				detail:   "Pick the two platforms the target audience uses most and post on a fixed weekly schedule.",
				steps:    []string{"Choose two platforms", "Plan four weeks of posts", "Review engagement weekly"},
				effort:   assessment.EffortLow,
				timeline: "1 month",
				impact:   "Steady audience growth",
			},
			"paid_performance": {
				label:    "Paid performance",
				weak:     "Paid advertising is absent or its return is unknown.",
				strong:   "Paid campaigns are tracked and performing.",
				action:   "Launch tracked paid campaigns",
				detail:   "Start small search or social campaigns with ROI tracking and scale what pays back.",
				steps:    []string{"Set up conversion goals", "Launch one test campaign", "Scale ad sets above target ROI"},
				effort:   assessment.EffortMedium,
				timeline: "6 weeks",
				impact:   "Predictable paid acquisition",
			},
			"owned_audience": {
				label:    "Owned audience",
				weak:     "There is no email list or it is not nurtured.",
				strong:   "A sizeable, automated email audience.",
				action:   "Build and automate the email list",
				detail:   "Capture emails on every touchpoint and send a welcome sequence automatically.",
				steps:    []string{"Add sign-up forms", "Write a three-email welcome sequence", "Send a monthly newsletter"},
				effort:   assessment.EffortLow,
				timeline: "1 month",
				impact:   "Lower cost repeat sales",
			},
		},
	}}
}

// Analyze implements Expert.
func (e *DigitalMarketingExpert) Analyze(in *Input) *Analysis {
	dim := string(assessment.ScoreDigital)
	sections := map[string]interface{}{
		"digital_score":     in.Scores.Get(assessment.ScoreDigital),
		"digital_dependent": in.Context.Sector.DigitalDependent(),
	}
	return e.finish(in, []SubScore{
		{Name: "web_presence", Value: in.component(dim, "website", assessment.ScoreMidpoint), Weight: 0.30},
		{Name: "social_reach", Value: in.component(dim, "social", assessment.ScoreMidpoint), Weight: 0.25},
		{Name: "paid_performance", Value: in.component(dim, "ads", assessment.ScoreMidpoint), Weight: 0.20},
		{Name: "owned_audience", Value: in.component(dim, "email", assessment.ScoreMidpoint), Weight: 0.25},
	}, sections)
}
