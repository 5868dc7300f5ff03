// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"math"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// InnovationExpert judges innovation culture, adaptability and technology
// adoption.
type InnovationExpert struct {
	base
}

// NewInnovationExpert creates the innovation expert.
func NewInnovationExpert() *InnovationExpert {
	return &InnovationExpert{base{
		profile: Profile{
			ID:             IDInnovation,
			Name:           "Innovation Expert",
			Role:           "Looks for the capacity to try new things and adopt new tools",
			Expertise:      []string{"experimentation", "martech", "new business models"},
			DecisionWeight: 0.6,
			Contributes:    assessment.ScoreInnovation,
		},
		fields: []string{
			assessment.FieldInnovationLevel, assessment.FieldRunsExperiments,
			assessment.FieldEmailAutomation, assessment.FieldAnalyticsTools,
			assessment.FieldAdPlatforms, assessment.FieldWebsiteConversionTracking,
		},
		advice: map[string]advice{
			"innovation_culture": {
				label:    "Innovation culture",
				weak:     "New ideas are rarely tried.",
				strong:   "The business experiments continuously.",
				action:   "Ring-fence a small innovation budget",
				detail:   "Reserve a fixed share of the marketing budget for new channels and formats.",
				steps:    []string{"Reserve 10% of budget for tests", "Run one new-channel test per quarter"},
				effort:   assessment.EffortLow,
				timeline: "3 months",
				impact:   "Early access to new growth channels",
			},
			"adaptability": {
				label:    "Adaptability",
				weak:     "The business has little room to exploit new opportunities.",
				strong:   "The business is well placed to seize new opportunities.",
				action:   "Create an opportunity review",
				detail:   "Review market shifts quarterly and decide which to pursue.",
				steps:    []string{"Collect market signals", "Hold a quarterly opportunity review"},
				effort:   assessment.EffortLow,
				timeline: "Quarterly",
				impact:   "Faster response to market change",
			},
			"technology_adoption": {
				label:    "Technology adoption",
				weak:     "Marketing runs on few tools and little automation.",
				strong:   "Modern marketing technology is in place.",
				action:   "Adopt core marketing automation",
				detail:   "Introduce email automation, tracking and ad platform integrations.",
				steps:    []string{"Automate the welcome email", "Connect ad platforms to analytics"},
				effort:   assessment.EffortMedium,
				timeline: "2 months",
				impact:   "Less manual work, better data",
			},
		},
	}}
}

// Analyze implements Expert.
func (e *InnovationExpert) Analyze(in *Input) *Analysis {
	a := in.Answers
	tools, _ := a.Count(assessment.FieldAnalyticsTools)
	ads, _ := a.Count(assessment.FieldAdPlatforms)

	culture := 0.6*scale10(a, assessment.FieldInnovationLevel) +
		points(a.Bool(assessment.FieldRunsExperiments), 40)
	tech := points(a.Bool(assessment.FieldEmailAutomation), 25) +
		math.Min(float64(tools)*15, 30) +
		math.Min(float64(ads)*15, 30) +
		points(a.Bool(assessment.FieldWebsiteConversionTracking), 15)

	return e.finish(in, []SubScore{
		{Name: "innovation_culture", Value: culture, Weight: 0.40},
		{Name: "adaptability", Value: in.Scores.Get(assessment.ScoreOpportunity), Weight: 0.30},
		{Name: "technology_adoption", Value: tech, Weight: 0.30},
	}, nil)
}
