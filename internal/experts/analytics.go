// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"math"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

var reviewCadencePoints = map[assessment.Frequency]float64{
	assessment.FrequencyDaily:     40,
	assessment.FrequencyWeekly:    40,
	assessment.FrequencyBiweekly:  35,
	assessment.FrequencyMonthly:   30,
	assessment.FrequencyQuarterly: 15,
	assessment.FrequencyYearly:    5,
	assessment.FrequencyRarely:    5,
	assessment.FrequencyNever:     0,
}

// DataAnalyticsExpert judges tracking, measurement and decision culture.
type DataAnalyticsExpert struct {
	base
}

// NewDataAnalyticsExpert creates the data analytics expert.
func NewDataAnalyticsExpert() *DataAnalyticsExpert {
	return &DataAnalyticsExpert{base{
		profile: Profile{
			ID:             IDDataAnalytics,
			Name:           "Data & Analytics Expert",
			Role:           "Checks whether marketing can be measured and steered by data",
			Expertise:      []string{"analytics", "attribution", "kpis", "experimentation"},
			DecisionWeight: 0.75,
			Contributes:    assessment.ScoreAnalytics,
		},
		fields: []string{
			assessment.FieldUsesAnalytics, assessment.FieldAnalyticsTools,
			assessment.FieldWebsiteConversionTracking, assessment.FieldMeasuresROI,
			assessment.FieldAttributionModel, assessment.FieldKPIReviewFrequency,
			assessment.FieldDataDrivenDecisions, assessment.FieldRunsExperiments,
		},
		advice: map[string]advice{
			"tracking": {
				label:    "Tracking",
				weak:     "Customer behavior and conversions are not tracked.",
				strong:   "Tracking covers the full customer journey.",
				action:   "Instrument the customer journey",
				detail:   "Install analytics with conversion events on every key action.",
				steps:    []string{"Install an analytics tool", "Define conversion events", "Verify data quality"},
				effort:   assessment.EffortLow,
				timeline: "2 weeks",
				impact:   "Visibility into what drives sales",
			},
			"measurement": {
				label:    "Measurement",
				weak:     "Return on marketing is not measured or reviewed.",
				strong:   "Marketing return is measured and reviewed regularly.",
				action:   "Set up a KPI dashboard with a review cadence",
				detail:   "Agree three to five KPIs, attribute revenue to channels and review them on a fixed schedule.",
				steps:    []string{"Choose the KPIs", "Build the dashboard", "Hold a weekly review"},
				effort:   assessment.EffortMedium,
				timeline: "1 month",
				impact:   "Faster, evidence-based budget shifts",
			},
			"decision_culture": {
				label:    "Decision culture",
				weak:     "Decisions rely on intuition rather than evidence.",
				strong:   "Decisions are driven by data and experiments.",
				action:   "Introduce a test-and-learn routine",
				detail:   "Run one controlled experiment per month and record the learnings.",
				steps:    []string{"Pick a hypothesis", "Run an A/B test", "Share results with the team"},
				effort:   assessment.EffortMedium,
				timeline: "3 months",
				impact:   "Compounding performance gains",
			},
		},
	}}
}

// Analyze implements Expert.
func (e *DataAnalyticsExpert) Analyze(in *Input) *Analysis {
	a := in.Answers
	tools, _ := a.Count(assessment.FieldAnalyticsTools)

	tracking := points(a.Bool(assessment.FieldUsesAnalytics), 40) +
		math.Min(float64(tools)*15, 30) +
		points(a.Bool(assessment.FieldWebsiteConversionTracking), 30)

	cadence := 20.0
	if f, ok := a.Frequency(assessment.FieldKPIReviewFrequency); ok {
		cadence = reviewCadencePoints[f]
	}
	measurement := points(a.Bool(assessment.FieldMeasuresROI), 35) +
		points(a.Bool(assessment.FieldAttributionModel), 25) +
		cadence

	culture := points(a.Bool(assessment.FieldDataDrivenDecisions), 60) +
		points(a.Bool(assessment.FieldRunsExperiments), 40)

	return e.finish(in, []SubScore{
		{Name: "tracking", Value: tracking, Weight: 0.35},
		{Name: "measurement", Value: measurement, Weight: 0.35},
		{Name: "decision_culture", Value: culture, Weight: 0.30},
	}, map[string]interface{}{
		"analytics_tools": tools,
	})
}
