// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package detection

import (
	"sync/atomic"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// Category groups findings in the detection report.
type Category string

const (
	CategoryRedFlag       Category = "red_flag"
	CategoryGreenFlag     Category = "green_flag"
	CategoryAnomaly       Category = "anomaly"
	CategoryConsistency   Category = "consistency"
	CategoryContradiction Category = "contradiction"
	CategoryOpportunity   Category = "opportunity"
)

// Categories lists every category in report order.
func Categories() []Category {
	return []Category{
		CategoryRedFlag, CategoryGreenFlag, CategoryAnomaly,
		CategoryConsistency, CategoryContradiction, CategoryOpportunity,
	}
}

// Severity indicates how serious a finding is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Owning experts of consistency rules.
const (
	ExpertFinancial  = "financial_analyst"
	ExpertOperations = "operations_expert"
	ExpertDigital    = "digital_marketing_expert"
)

// Input is the read-only snapshot a rule evaluates.
type Input struct {
	Answers assessment.AnswerMap
	Context assessment.Context
	Scores  *assessment.Scores
}

// Rule is one detection signal.
type Rule interface {
	// ID returns the stable rule identifier.
	ID() string

	// Category returns the report group the rule contributes to.
	Category() Category

	// Enabled returns whether the rule participates in Run.
	Enabled() bool

	// SetEnabled enables or disables the rule.
	SetEnabled(enabled bool)

	// Evaluate returns a finding and true when the rule fires.
	Evaluate(in *Input) (*assessment.Finding, bool)
}

// observation is what a rule check reports when it fires.
type observation struct {
	observed    float64
	threshold   float64
	description string
}

// checkFunc inspects the input and reports whether the rule fires.
type checkFunc func(in *Input) (observation, bool)

// thresholdRule is the Rule implementation shared by every built-in signal.
type thresholdRule struct {
	id       string
	category Category
	severity Severity
	title    string
	expert   string
	check    checkFunc
	enabled  atomic.Bool
}

func newRule(id string, category Category, severity Severity, title string, check checkFunc) *thresholdRule {
	r := &thresholdRule{
		id:       id,
		category: category,
		severity: severity,
		title:    title,
		check:    check,
	}
	r.enabled.Store(true)
	return r
}

// ownedBy assigns the expert responsible for acting on the finding.
func (r *thresholdRule) ownedBy(expert string) *thresholdRule {
	r.expert = expert
	return r
}

func (r *thresholdRule) ID() string              { return r.id }
func (r *thresholdRule) Category() Category      { return r.category }
func (r *thresholdRule) Enabled() bool           { return r.enabled.Load() }
func (r *thresholdRule) SetEnabled(enabled bool) { r.enabled.Store(enabled) }

func (r *thresholdRule) Evaluate(in *Input) (*assessment.Finding, bool) {
	obs, ok := r.check(in)
	if !ok {
		return nil, false
	}
	return &assessment.Finding{
		RuleID:      r.id,
		Category:    string(r.category),
		Severity:    string(r.severity),
		Title:       r.title,
		Description: obs.description,
		Expert:      r.expert,
		Observed:    assessment.Round1(obs.observed),
		Threshold:   obs.threshold,
	}, true
}
