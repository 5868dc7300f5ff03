// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package recommend

import (
	"sort"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/playbook"
)

// Input carries everything the synthesizer reads. Every field is optional;
// missing scores fall back to the scale midpoint.
type Input struct {
	Answers   assessment.AnswerMap
	Context   assessment.Context
	Scores    *assessment.Scores
	Synthesis *assessment.Synthesis
	Playbook  *assessment.PlaybookResult
}

// Plan returns the plan type driving the strategic directive: the
// synthesis verdict, then the playbook classification, then a
// classification of the raw scores.
func (in *Input) Plan() assessment.PlanType {
	if in.Synthesis != nil && in.Synthesis.PlanType != "" {
		return in.Synthesis.PlanType
	}
	if in.Playbook != nil && in.Playbook.PlanType != "" {
		return in.Playbook.PlanType
	}
	if in.Scores != nil {
		return playbook.ClassifyPlan(float64(in.Scores.Overall), in.Scores.Risk.Value)
	}
	return playbook.ClassifyPlan(assessment.ScoreMidpoint, 0)
}

// score returns a named dimension value from the synthesis health
// breakdown or the scorer output. Risk from the scorer is inverted so that
// higher always means healthier.
func (in *Input) score(name string) (float64, bool) {
	if in.Synthesis != nil {
		if v, ok := in.Synthesis.HealthBreakdown[name]; ok {
			return v, true
		}
	}
	if in.Scores == nil {
		return 0, false
	}
	switch assessment.ScoreKey(name) {
	case assessment.ScoreDigital:
		return in.Scores.Digital.Value, true
	case assessment.ScoreMarketing:
		return in.Scores.Marketing.Value, true
	case assessment.ScoreOrganizational:
		return in.Scores.Organizational.Value, true
	case assessment.ScoreOpportunity:
		return in.Scores.Opportunity.Value, true
	case assessment.ScoreRisk:
		return 100 - in.Scores.Risk.Value, true
	}
	return 0, false
}

// scoreOr returns the named dimension or the midpoint.
func (in *Input) scoreOr(name string) float64 {
	if v, ok := in.score(name); ok {
		return v
	}
	return assessment.ScoreMidpoint
}

// dimension is one named health value.
type dimension struct {
	name  string
	value float64
}

// weakest returns the dimensions the strategic layer should address: the
// synthesis focus pillars when present, otherwise the lowest scorer
// dimensions below the high threshold.
func (in *Input) weakest(limit int, high float64) []dimension {
	if in.Synthesis != nil && len(in.Synthesis.FocusPillars) > 0 {
		out := make([]dimension, 0, len(in.Synthesis.FocusPillars))
		for _, name := range in.Synthesis.FocusPillars {
			if len(out) == limit {
				break
			}
			out = append(out, dimension{name: name, value: in.scoreOr(name)})
		}
		return out
	}
	if in.Scores == nil {
		return nil
	}

	dims := []dimension{
		{string(assessment.ScoreDigital), in.Scores.Digital.Value},
		{string(assessment.ScoreMarketing), in.Scores.Marketing.Value},
		{string(assessment.ScoreOrganizational), in.Scores.Organizational.Value},
		{string(assessment.ScoreOpportunity), in.Scores.Opportunity.Value},
		{string(assessment.ScoreRisk), 100 - in.Scores.Risk.Value},
	}
	sort.SliceStable(dims, func(i, j int) bool { return dims[i].value < dims[j].value })

	out := make([]dimension, 0, limit)
	for _, d := range dims {
		if len(out) == limit || d.value >= high {
			break
		}
		out = append(out, d)
	}
	return out
}

// topMatch returns the highest-confidence playbook match.
func (in *Input) topMatch() (assessment.PatternMatch, bool) {
	if in.Playbook == nil || len(in.Playbook.Matches) == 0 {
		return assessment.PatternMatch{}, false
	}
	return in.Playbook.Matches[0], true
}

// template is a recommendation before layer, ID and rank are assigned.
type template struct {
	Title       string
	Description string
	Priority    assessment.Priority
	Effort      assessment.Effort
	Timeline    string
	Dimension   string
	Actions     []string
}

func (t *template) build(id string, layer assessment.Layer, source string) assessment.Recommendation {
	return assessment.Recommendation{
		ID:              id,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        t.Priority,
		Layer:           layer,
		Actions:         append([]string(nil), t.Actions...),
		Timeline:        t.Timeline,
		EstimatedImpact: impactText[t.Priority],
		Effort:          t.Effort,
		Dimension:       t.Dimension,
		Source:          source,
	}
}

var impactText = map[assessment.Priority]string{
	assessment.PriorityCritical: "Removes an urgent threat to revenue or survival",
	assessment.PriorityHigh:     "Significant lift in marketing performance",
	assessment.PriorityMedium:   "Moderate, steady improvement",
	assessment.PriorityLow:      "Incremental gain",
}

// gate maps a 0-100 health value onto a priority.
func gate(v float64, t Thresholds) assessment.Priority {
	switch {
	case v < t.Critical:
		return assessment.PriorityCritical
	case v < t.High:
		return assessment.PriorityHigh
	case v < t.Strong:
		return assessment.PriorityMedium
	default:
		return assessment.PriorityLow
	}
}
