// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// BrandStrategist judges awareness, positioning clarity, differentiation
// and message consistency.
type BrandStrategist struct {
	base
}

// NewBrandStrategist creates the brand strategist.
func NewBrandStrategist() *BrandStrategist {
	return &BrandStrategist{base{
		profile: Profile{
			ID:             IDBrandStrategist,
			Name:           "Brand Strategist",
			Role:           "Guards how the market perceives and remembers the business",
			Expertise:      []string{"brand awareness", "positioning", "messaging"},
			DecisionWeight: 0.7,
			Contributes:    assessment.ScoreBrand,
		},
		fields: []string{
			assessment.FieldBrandAwareness, assessment.FieldBrandPositioningClarity,
			assessment.FieldUniqueValueProposition, assessment.FieldDifferentiation,
			assessment.FieldCampaignConsistency, assessment.FieldContentQuality,
		},
		advice: map[string]advice{
			"awareness": {
				label:    "Brand awareness",
				weak:     "Too few people in the target market know the brand.",
				strong:   "The brand is well known in its market.",
				action:   "Run a sustained awareness programme",
				detail:   "Invest in reach within the core segment through PR, partnerships and upper-funnel campaigns.",
				steps:    []string{"Pick one core segment", "Secure two partnership or PR placements", "Measure aided awareness after a quarter"},
				effort:   assessment.EffortHigh,
				timeline: "6 months",
				impact:   "Higher recall in the core segment",
			},
			"positioning_clarity": {
				label:    "Positioning clarity",
				weak:     "The brand promise is vague or missing.",
				strong:   "The brand promise is clear and distinctive.",
				action:   "Write the brand platform",
				detail:   "Document the promise, personality and proof points and brief everyone who writes for the brand.",
				steps:    []string{"Draft the value proposition", "Define tone of voice", "Brief the team and agencies"},
				effort:   assessment.EffortLow,
				timeline: "1 month",
				impact:   "Consistent, recognizable messaging",
			},
			"differentiation": {
				label:    "Differentiation",
				weak:     "Customers cannot tell the brand apart from alternatives.",
				strong:   "The brand stands out from alternatives.",
				action:   "Build a signature differentiator",
				detail:   "Own one attribute competitors cannot copy quickly and make it visible everywhere.",
				steps:    []string{"List candidate attributes", "Validate with customers", "Feature the winner in all assets"},
				effort:   assessment.EffortMedium,
				timeline: "3 months",
				impact:   "Less price pressure",
			},
			"consistency": {
				label:    "Message consistency",
				weak:     "Campaigns and content vary in quality and message.",
				strong:   "Campaigns and content are consistent and high quality.",
				action:   "Introduce brand guidelines and a review step",
				detail:   "Templates and a light approval step keep every asset on message.",
				steps:    []string{"Create templates for the main formats", "Add a brand check before publishing"},
				effort:   assessment.EffortLow,
				timeline: "1 month",
				impact:   "Stronger cumulative brand effect",
			},
		},
	}}
}

// Analyze implements Expert.
func (e *BrandStrategist) Analyze(in *Input) *Analysis {
	a := in.Answers
	uvp := 40.0
	if a.Bool(assessment.FieldUniqueValueProposition) {
		uvp = 100
	}
	return e.finish(in, []SubScore{
		{Name: "awareness", Value: scale10(a, assessment.FieldBrandAwareness), Weight: 0.30},
		{Name: "positioning_clarity", Value: 0.6*scale10(a, assessment.FieldBrandPositioningClarity) + 0.4*uvp, Weight: 0.25},
		{Name: "differentiation", Value: scale10(a, assessment.FieldDifferentiation), Weight: 0.25},
		{Name: "consistency", Value: 0.5*scale10(a, assessment.FieldCampaignConsistency) + 0.5*scale10(a, assessment.FieldContentQuality), Weight: 0.20},
	}, map[string]interface{}{
		"has_value_proposition": a.Bool(assessment.FieldUniqueValueProposition),
	})
}
