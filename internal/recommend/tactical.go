// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package recommend

import (
	"fmt"
	"sort"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// tacticalRule emits its template when the gate holds.
type tacticalRule struct {
	gate func(in *Input, t Thresholds) bool
	item template
}

var tacticalRules = []tacticalRule{
	{
		gate: func(in *Input, _ Thresholds) bool { return !in.Answers.Bool(assessment.FieldHasWebsite) },
		item: template{
			Title:       "Launch a conversion-ready website",
			Description: "Without a website the business is invisible to online buyers.",
			Priority:    assessment.PriorityCritical,
			Effort:      assessment.EffortMedium,
			Timeline:    "1-2 months",
			Dimension:   string(assessment.ScoreDigital),
			Actions:     []string{"Register a domain and choose a site builder", "Publish core pages with contact and offer", "Add a lead capture form"},
		},
	},
	{
		gate: func(in *Input, t Thresholds) bool {
			return in.Answers.Bool(assessment.FieldHasWebsite) &&
				in.Answers.ScaleValue(assessment.FieldWebsiteSEO)*10 < t.High
		},
		item: template{
			Title:       "Improve search visibility",
			Description: "The website exists but is hard to find in search.",
			Priority:    assessment.PriorityHigh,
			Effort:      assessment.EffortLow,
			Timeline:    "1-3 months",
			Dimension:   string(assessment.ScoreDigital),
			Actions:     []string{"Research the top ten buyer keywords", "Optimize titles and descriptions on key pages", "Publish one search-focused article per week"},
		},
	},
	{
		gate: func(in *Input, _ Thresholds) bool { return !in.Answers.Bool(assessment.FieldUsesAnalytics) },
		item: template{
			Title:       "Install analytics and KPI tracking",
			Description: "Marketing decisions are made without data.",
			Priority:    assessment.PriorityHigh,
			Effort:      assessment.EffortMinimal,
			Timeline:    "2 weeks",
			Dimension:   string(assessment.ScoreAnalytics),
			Actions:     []string{"Install a web analytics tool", "Define conversion goals", "Build a weekly KPI report"},
		},
	},
	{
		gate: func(in *Input, _ Thresholds) bool {
			return in.Answers.Bool(assessment.FieldUsesPaidAds) && !in.Answers.Bool(assessment.FieldAdsROITracking)
		},
		item: template{
			Title:       "Track return on ad spend",
			Description: "Paid advertising runs without measuring its return.",
			Priority:    assessment.PriorityHigh,
			Effort:      assessment.EffortMinimal,
			Timeline:    "2 weeks",
			Dimension:   string(assessment.ScoreDigital),
			Actions:     []string{"Install conversion tracking on every ad platform", "Pause campaigns with no measurable return"},
		},
	},
	{
		gate: func(in *Input, _ Thresholds) bool { return !in.Answers.Bool(assessment.FieldHasDocumentedPlan) },
		item: template{
			Title:       "Document the marketing plan",
			Description: "An undocumented plan cannot be executed or measured consistently.",
			Priority:    assessment.PriorityHigh,
			Effort:      assessment.EffortLow,
			Timeline:    "1 month",
			Dimension:   string(assessment.ScoreMarketing),
			Actions:     []string{"Write goals, audiences, channels and budget on one page", "Share the plan with the whole team"},
		},
	},
	{
		gate: func(in *Input, _ Thresholds) bool { return in.Answers.Bool(assessment.FieldSingleChannelDependency) },
		item: template{
			Title:       "Diversify acquisition channels",
			Description: "Depending on one channel concentrates risk.",
			Priority:    assessment.PriorityHigh,
			Effort:      assessment.EffortMedium,
			Timeline:    "3 months",
			Dimension:   string(assessment.ScoreRisk),
			Actions:     []string{"Pick one complementary channel to test", "Allocate 15% of budget to the test", "Compare cost per lead after 60 days"},
		},
	},
	{
		gate: func(in *Input, t Thresholds) bool {
			if churn, ok := in.Answers.Float(assessment.FieldCustomerChurn); ok && churn > 20 {
				return true
			}
			sat, ok := in.Answers.Float(assessment.FieldCustomerSatisfaction)
			return ok && sat*10 < t.High
		},
		item: template{
			Title:       "Launch a retention program",
			Description: "Customers are leaving or dissatisfied.",
			Priority:    assessment.PriorityHigh,
			Effort:      assessment.EffortMedium,
			Timeline:    "2-3 months",
			Dimension:   string(assessment.ScoreCustomer),
			Actions:     []string{"Survey customers who left in the last quarter", "Fix the top complaint", "Start a win-back email sequence"},
		},
	},
	{
		gate: func(in *Input, _ Thresholds) bool { return !in.Answers.Bool(assessment.FieldHasEmailList) },
		item: template{
			Title:       "Build an owned email list",
			Description: "The business owns no direct channel to its customers.",
			Priority:    assessment.PriorityMedium,
			Effort:      assessment.EffortLow,
			Timeline:    "1-2 months",
			Dimension:   string(assessment.ScoreDigital),
			Actions:     []string{"Add a sign-up incentive to the website", "Send a monthly newsletter"},
		},
	},
	{
		gate: func(in *Input, _ Thresholds) bool {
			return in.Answers.Bool(assessment.FieldHasEmailList) && !in.Answers.Bool(assessment.FieldEmailAutomation)
		},
		item: template{
			Title:       "Automate email journeys",
			Description: "Email is sent manually and misses lifecycle moments.",
			Priority:    assessment.PriorityMedium,
			Effort:      assessment.EffortMedium,
			Timeline:    "1-2 months",
			Dimension:   string(assessment.ScoreDigital),
			Actions:     []string{"Build a welcome sequence", "Add an abandoned-cart or re-engagement flow"},
		},
	},
	{
		gate: func(in *Input, _ Thresholds) bool {
			if n, _ := in.Answers.Count(assessment.FieldSocialPlatforms); n == 0 {
				return true
			}
			f, ok := in.Answers.Frequency(assessment.FieldSocialPostingFrequency)
			return ok && (f == assessment.FrequencyRarely || f == assessment.FrequencyNever)
		},
		item: template{
			Title:       "Establish a consistent social cadence",
			Description: "Social channels are missing or inactive.",
			Priority:    assessment.PriorityMedium,
			Effort:      assessment.EffortLow,
			Timeline:    "1 month",
			Dimension:   string(assessment.ScoreDigital),
			Actions:     []string{"Choose the two platforms where customers are", "Post at least three times a week"},
		},
	},
	{
		gate: func(in *Input, _ Thresholds) bool { return !in.Answers.Bool(assessment.FieldHasContentCalendar) },
		item: template{
			Title:       "Adopt a content calendar",
			Description: "Content is produced ad hoc.",
			Priority:    assessment.PriorityMedium,
			Effort:      assessment.EffortMinimal,
			Timeline:    "2 weeks",
			Dimension:   string(assessment.ScoreMarketing),
			Actions:     []string{"Plan next month's content themes", "Assign owners and publish dates"},
		},
	},
	{
		gate: func(in *Input, t Thresholds) bool {
			return !in.Answers.Bool(assessment.FieldUsesPaidAds) && in.scoreOr(string(assessment.ScoreDigital)) >= t.Critical
		},
		item: template{
			Title:       "Pilot a paid acquisition channel",
			Description: "Digital foundations can support a small paid test.",
			Priority:    assessment.PriorityMedium,
			Effort:      assessment.EffortMedium,
			Timeline:    "2-3 months",
			Dimension:   string(assessment.ScoreDigital),
			Actions:     []string{"Launch one search or social campaign with a fixed budget", "Measure cost per acquisition against LTV"},
		},
	},
	{
		gate: func(in *Input, t Thresholds) bool {
			return !in.Answers.Bool(assessment.FieldAttributionModel) && in.scoreOr(string(assessment.ScoreMarketing)) < t.Strong
		},
		item: template{
			Title:       "Introduce campaign attribution",
			Description: "Results cannot be credited to the campaigns that produced them.",
			Priority:    assessment.PriorityLow,
			Effort:      assessment.EffortMedium,
			Timeline:    "2-3 months",
			Dimension:   string(assessment.ScoreMarketing),
			Actions:     []string{"Tag every campaign link", "Adopt a first-touch or last-touch model"},
		},
	},
}

var tacticalFillers = []template{
	{
		Title:       "Run a monthly performance review",
		Description: "Review channel results and reallocate budget monthly.",
		Priority:    assessment.PriorityMedium,
		Effort:      assessment.EffortLow,
		Timeline:    "Monthly",
		Actions:     []string{"Collect results for every channel", "Move budget from the weakest to the strongest channel"},
	},
	{
		Title:       "Refresh customer personas",
		Description: "Keep audience definitions current.",
		Priority:    assessment.PriorityLow,
		Effort:      assessment.EffortLow,
		Timeline:    "1 month",
		Actions:     []string{"Interview five recent customers", "Update personas with new findings"},
	},
	{
		Title:       "Audit brand consistency across channels",
		Description: "Make sure every channel tells the same story.",
		Priority:    assessment.PriorityLow,
		Effort:      assessment.EffortMinimal,
		Timeline:    "2 weeks",
		Actions:     []string{"Collect samples from every channel", "Fix assets that break brand guidelines"},
	},
	{
		Title:       "Set up a campaign testing routine",
		Description: "Test one variable per campaign to learn continuously.",
		Priority:    assessment.PriorityLow,
		Effort:      assessment.EffortLow,
		Timeline:    "Ongoing",
		Actions:     []string{"Pick one variable to test each month", "Record results in a shared log"},
	},
	{
		Title:       "Benchmark three competitors",
		Description: "Track what competitors offer and how they market it.",
		Priority:    assessment.PriorityLow,
		Effort:      assessment.EffortMinimal,
		Timeline:    "Quarterly",
		Actions:     []string{"List three direct competitors", "Compare offers, prices and channels"},
	},
}

// Tactical generates the tactical layer. Gated items whose dimension scores
// below the critical threshold are escalated to critical priority; the list
// is ordered by priority before it is capped.
func (s *Synthesizer) Tactical(in *Input) []assessment.Recommendation {
	limits := s.cfg.Tactical
	t := s.cfg.Thresholds

	var items []template
	for _, r := range tacticalRules {
		if !r.gate(in, t) {
			continue
		}
		item := r.item
		if v, ok := in.score(item.Dimension); ok && v < t.Critical {
			item.Priority = assessment.PriorityCritical
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority.Impact() > items[j].Priority.Impact()
	})
	if len(items) > limits.Max {
		items = items[:limits.Max]
	}

	out := make([]assessment.Recommendation, 0, limits.Max)
	for i := range items {
		out = append(out, items[i].build(fmt.Sprintf("TAC_%02d", len(out)+1), assessment.LayerTactical, SourceGated))
	}
	for i := 0; len(out) < limits.Min && i < len(tacticalFillers); i++ {
		out = append(out, tacticalFillers[i].build(fmt.Sprintf("TAC_%02d", len(out)+1), assessment.LayerTactical, SourceFiller))
	}
	return out
}

// Execution slices the first StepsPerItem actions of each tactical item
// into weekly execution steps, up to the execution maximum.
func (s *Synthesizer) Execution(tactical []assessment.Recommendation) []assessment.Recommendation {
	limit := s.cfg.Execution.Max
	out := make([]assessment.Recommendation, 0, limit)
	for _, parent := range tactical {
		for step, action := range parent.Actions {
			if step == s.cfg.StepsPerItem {
				break
			}
			if len(out) == limit {
				return out
			}
			week := len(out) + 1
			out = append(out, assessment.Recommendation{
				ID:              fmt.Sprintf("EXE_%02d", week),
				Title:           action,
				Description:     fmt.Sprintf("Step %d of %q", step+1, parent.Title),
				Priority:        parent.Priority,
				Layer:           assessment.LayerExecution,
				Actions:         []string{action},
				Timeline:        fmt.Sprintf("Week %d", week),
				EstimatedImpact: parent.EstimatedImpact,
				Effort:          assessment.EffortLow,
				Dimension:       parent.Dimension,
				Source:          parent.ID,
			})
		}
	}
	return out
}
