// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package alerting

import (
	"fmt"
	"sort"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/logging"
)

// Tiers lists the alert tiers in evaluation order.
func Tiers() []assessment.AlertTier {
	return []assessment.AlertTier{
		assessment.AlertCritical,
		assessment.AlertHigh,
		assessment.AlertWarning,
		assessment.AlertOpportunity,
	}
}

// Evaluator runs the alert rule sets. It holds no mutable state and is safe
// for concurrent use.
type Evaluator struct {
	tiers map[assessment.AlertTier][]Rule
	count int
}

// NewEvaluator creates an evaluator over rules, or DefaultRules when none
// are given.
func NewEvaluator(rules ...Rule) (*Evaluator, error) {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	valid := make(map[assessment.AlertTier]bool, 4)
	for _, t := range Tiers() {
		valid[t] = true
	}

	e := &Evaluator{tiers: make(map[assessment.AlertTier][]Rule, 4)}
	seen := make(map[string]struct{}, len(rules))
	for i := range rules {
		r := rules[i]
		if r.ID == "" {
			return nil, fmt.Errorf("alert rule %d: id is required", i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("alert rule %s: duplicate id", r.ID)
		}
		seen[r.ID] = struct{}{}
		if !valid[r.Tier] {
			return nil, fmt.Errorf("alert rule %s: unknown tier %q", r.ID, r.Tier)
		}
		if r.Urgency < 0 || r.Urgency > MaxUrgency {
			return nil, fmt.Errorf("alert rule %s: urgency must be in [0, %d], got %d", r.ID, MaxUrgency, r.Urgency)
		}
		if r.Check == nil {
			return nil, fmt.Errorf("alert rule %s: check is required", r.ID)
		}
		e.tiers[r.Tier] = append(e.tiers[r.Tier], r)
		e.count++
	}
	return e, nil
}

// Rules returns the registered rules in tier order.
func (e *Evaluator) Rules() []Rule {
	out := make([]Rule, 0, e.count)
	for _, t := range Tiers() {
		out = append(out, e.tiers[t]...)
	}
	return out
}

// Evaluate runs every tier and returns the alerts sorted by urgency
// descending. The result is never nil.
func (e *Evaluator) Evaluate(in *Input) []assessment.Alert {
	alerts := []assessment.Alert{}
	if in == nil {
		return alerts
	}
	for _, t := range Tiers() {
		rules := e.tiers[t]
		for i := range rules {
			if desc, ok := rules[i].Check(in); ok {
				alerts = append(alerts, rules[i].alert(desc))
			}
		}
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].UrgencyScore > alerts[j].UrgencyScore
	})

	logging.Debug().
		Int("alerts", len(alerts)).
		Msg("Evaluated alert rules")
	return alerts
}

// CountByTier counts alerts per tier.
func CountByTier(alerts []assessment.Alert) map[assessment.AlertTier]int {
	counts := make(map[assessment.AlertTier]int, 4)
	for _, a := range alerts {
		counts[a.Tier]++
	}
	return counts
}
