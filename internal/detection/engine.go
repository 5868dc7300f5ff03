// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package detection

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/logging"
)

// ErrRuleNotFound is returned when toggling an unregistered rule.
var ErrRuleNotFound = errors.New("detection rule not found")

// Engine coordinates detection rule evaluation. It is safe for concurrent
// use; Run never mutates its input.
type Engine struct {
	mu    sync.RWMutex
	rules []Rule
	index map[string]Rule
}

// NewEngine creates an engine with no rules.
func NewEngine() *Engine {
	return &Engine{index: make(map[string]Rule)}
}

// NewDefaultEngine creates an engine with every built-in rule registered.
func NewDefaultEngine() *Engine {
	e := NewEngine()
	for _, r := range DefaultRules() {
		e.RegisterRule(r)
	}
	return e
}

// RegisterRule adds a rule to the engine. A rule with an existing ID
// replaces the earlier registration in place.
func (e *Engine) RegisterRule(rule Rule) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.index[rule.ID()]; exists {
		for i, r := range e.rules {
			if r.ID() == rule.ID() {
				e.rules[i] = rule
				break
			}
		}
	} else {
		e.rules = append(e.rules, rule)
	}
	e.index[rule.ID()] = rule

	logging.Debug().
		Str("rule", rule.ID()).
		Str("category", string(rule.Category())).
		Msg("registered detection rule")
}

// Rules returns the registered rules in registration order.
func (e *Engine) Rules() []Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Rule(nil), e.rules...)
}

// SetRuleEnabled toggles a rule by ID.
func (e *Engine) SetRuleEnabled(id string, enabled bool) error {
	e.mu.RLock()
	rule, ok := e.index[id]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	rule.SetEnabled(enabled)
	return nil
}

// Run evaluates every enabled rule and groups the findings by category.
func (e *Engine) Run(in *Input) assessment.Findings {
	out := assessment.Findings{
		RedFlags:       []assessment.Finding{},
		GreenFlags:     []assessment.Finding{},
		Anomalies:      []assessment.Finding{},
		Violations:     []assessment.Finding{},
		Contradictions: []assessment.Finding{},
		Opportunities:  []assessment.Finding{},
	}
	if in == nil {
		return out
	}

	for _, rule := range e.Rules() {
		if !rule.Enabled() {
			continue
		}
		finding, fired := rule.Evaluate(in)
		if !fired {
			continue
		}
		switch rule.Category() {
		case CategoryRedFlag:
			out.RedFlags = append(out.RedFlags, *finding)
		case CategoryGreenFlag:
			out.GreenFlags = append(out.GreenFlags, *finding)
		case CategoryAnomaly:
			out.Anomalies = append(out.Anomalies, *finding)
		case CategoryConsistency:
			out.Violations = append(out.Violations, *finding)
		case CategoryContradiction:
			out.Contradictions = append(out.Contradictions, *finding)
		case CategoryOpportunity:
			out.Opportunities = append(out.Opportunities, *finding)
		}
	}
	return out
}
