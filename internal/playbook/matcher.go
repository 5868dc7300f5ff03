// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package playbook

import (
	"fmt"
	"sort"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// Plan thresholds.
const (
	EmergencyRisk     = 70.0
	EmergencyOverall  = 20.0
	TreatmentOverall  = 40.0
	GrowthOverall     = 70.0
	checkpointCount   = 5
	projectionCeiling = 100.0
)

// Band is one projection offset applied per checkpoint.
type Band struct {
	Name   string
	Offset float64
}

// Bands are the conservative, moderate and aggressive projections.
var Bands = []Band{
	{Name: "conservative", Offset: 2},
	{Name: "moderate", Offset: 5},
	{Name: "aggressive", Offset: 8},
}

// Matcher matches assessments against a pattern library. It holds no
// mutable state.
type Matcher struct {
	patterns []Pattern
}

// NewMatcher creates a matcher over patterns, or the built-in library when
// none are given.
func NewMatcher(patterns ...Pattern) (*Matcher, error) {
	if len(patterns) == 0 {
		patterns = Library()
	}
	seen := make(map[string]struct{}, len(patterns))
	for i := range patterns {
		p := &patterns[i]
		if p.ID == "" {
			return nil, fmt.Errorf("pattern %d: id is required", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("pattern %s: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Confidence < 0 || p.Confidence > 1 {
			return nil, fmt.Errorf("pattern %s: confidence must be in [0, 1], got %f", p.ID, p.Confidence)
		}
		if len(p.Conditions) == 0 {
			return nil, fmt.Errorf("pattern %s: at least one condition is required", p.ID)
		}
	}
	return &Matcher{patterns: patterns}, nil
}

// Patterns returns the library the matcher was built with.
func (m *Matcher) Patterns() []Pattern {
	return append([]Pattern(nil), m.patterns...)
}

// Match returns every matching pattern ordered by confidence, highest
// first, then by library order.
func (m *Matcher) Match(in *Input) []assessment.PatternMatch {
	matches := []assessment.PatternMatch{}
	if in == nil {
		return matches
	}
	for i := range m.patterns {
		if m.patterns[i].Matches(in) {
			matches = append(matches, m.patterns[i].match())
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// Evaluate matches patterns, classifies the plan and projects scenarios.
func (m *Matcher) Evaluate(in *Input) assessment.PlaybookResult {
	overall := in.Scores.Get(assessment.ScoreOverall)
	risk := in.Scores.Get(assessment.ScoreRisk)
	return assessment.PlaybookResult{
		Matches:   m.Match(in),
		PlanType:  ClassifyPlan(overall, risk),
		Scenarios: Project(overall),
	}
}

// ClassifyPlan maps the overall and risk scores onto a plan type.
func ClassifyPlan(overall, risk float64) assessment.PlanType {
	switch {
	case risk > EmergencyRisk || overall < EmergencyOverall:
		return assessment.PlanEmergency
	case overall < TreatmentOverall:
		return assessment.PlanTreatment
	case overall < GrowthOverall:
		return assessment.PlanGrowth
	default:
		return assessment.PlanTransformation
	}
}

// Project returns the three bands as quarterly checkpoints offset from the
// current overall score, capped at 100.
func Project(overall float64) []assessment.Scenario {
	scenarios := make([]assessment.Scenario, 0, len(Bands))
	for _, b := range Bands {
		s := assessment.Scenario{Name: b.Name, Checkpoints: make([]assessment.Checkpoint, 0, checkpointCount)}
		for q := 1; q <= checkpointCount; q++ {
			s.Checkpoints = append(s.Checkpoints, assessment.Checkpoint{
				Label: fmt.Sprintf("Q%d", q),
				Score: assessment.Clamp(overall+b.Offset*float64(q), 0, projectionCeiling),
			})
		}
		scenarios = append(scenarios, s)
	}
	return scenarios
}
