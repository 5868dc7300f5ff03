// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package playbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/scoring"
)

// Source selects where a condition reads its value from.
type Source string

const (
	SourceAnswer  Source = "answer"
	SourceScore   Source = "score"
	SourceContext Source = "context"
	SourceDerived Source = "derived"
)

// Op is a condition comparison.
type Op string

const (
	OpLess      Op = "<"
	OpLessEq    Op = "<="
	OpGreater   Op = ">"
	OpGreaterEq Op = ">="
	OpIn        Op = "in"
	OpNotIn     Op = "not_in"
	OpTrue      Op = "is_true"
	OpFalse     Op = "is_false"
)

// Context and derived fields a condition may reference.
const (
	ContextSector           = "sector"
	ContextDigitalDependent = "digital_dependent"

	DerivedBudgetPercent      = "budget_percent"
	DerivedRevenuePerEmployee = "revenue_per_employee"
	DerivedCACToLTV           = "cac_ltv_ratio"
)

// Condition is one threshold test. Numeric comparisons and OpIn fail when
// the value is absent; OpNotIn passes.
type Condition struct {
	Source Source   `json:"source"`
	Field  string   `json:"field"`
	Op     Op       `json:"op"`
	Value  float64  `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// Input is the snapshot patterns are matched against.
type Input struct {
	Answers assessment.AnswerMap
	Context assessment.Context
	Scores  assessment.ScoreMap
}

// String renders the condition for listings.
func (c Condition) String() string {
	switch c.Op {
	case OpIn, OpNotIn:
		return fmt.Sprintf("%s.%s %s [%s]", c.Source, c.Field, c.Op, strings.Join(c.Values, ", "))
	case OpTrue, OpFalse:
		return fmt.Sprintf("%s.%s %s", c.Source, c.Field, c.Op)
	default:
		return fmt.Sprintf("%s.%s %s %g", c.Source, c.Field, c.Op, c.Value)
	}
}

// Holds reports whether the condition is satisfied by in.
func (c Condition) Holds(in *Input) bool {
	switch c.Op {
	case OpIn, OpNotIn:
		v, ok := c.token(in)
		if !ok {
			return c.Op == OpNotIn
		}
		found := slices.Contains(c.Values, v)
		return found == (c.Op == OpIn)
	case OpTrue, OpFalse:
		return c.flag(in) == (c.Op == OpTrue)
	default:
		v, ok := c.number(in)
		if !ok {
			return false
		}
		switch c.Op {
		case OpLess:
			return v < c.Value
		case OpLessEq:
			return v <= c.Value
		case OpGreater:
			return v > c.Value
		case OpGreaterEq:
			return v >= c.Value
		}
		return false
	}
}

func (c Condition) number(in *Input) (float64, bool) {
	switch c.Source {
	case SourceAnswer:
		return in.Answers.Float(c.Field)
	case SourceScore:
		return in.Scores.Lookup(assessment.ScoreKey(c.Field))
	case SourceDerived:
		return derived(c.Field, in)
	case SourceContext:
		switch c.Field {
		case "annual_revenue":
			return in.Context.AnnualRevenue, in.Context.AnnualRevenue > 0
		case "employee_count":
			return float64(in.Context.EmployeeCount), in.Context.EmployeeCount > 0
		case "company_age_years":
			return in.Context.CompanyAge, in.Context.CompanyAge > 0
		}
	}
	return 0, false
}

func (c Condition) flag(in *Input) bool {
	switch c.Source {
	case SourceAnswer:
		return in.Answers.Bool(c.Field)
	case SourceContext:
		return c.Field == ContextDigitalDependent && in.Context.Sector.DigitalDependent()
	}
	return false
}

// token resolves a categorical value through the field's enumeration so
// aliases match their canonical names.
func (c Condition) token(in *Input) (string, bool) {
	if c.Source == SourceContext && c.Field == ContextSector {
		return string(assessment.ParseSector(string(in.Context.Sector))), true
	}
	if c.Source != SourceAnswer {
		return "", false
	}
	switch c.Field {
	case assessment.FieldRevenueTrend:
		t, ok := in.Answers.RevenueTrend()
		return string(t), ok
	case assessment.FieldMarketTrend:
		t, ok := in.Answers.MarketTrend()
		return string(t), ok
	case assessment.FieldCompetitionLevel:
		l, ok := in.Answers.CompetitionLevel()
		return string(l), ok
	case assessment.FieldCashFlow:
		cf, ok := in.Answers.CashFlow()
		return string(cf), ok
	}
	s, ok := in.Answers.Str(c.Field)
	return strings.ToLower(strings.TrimSpace(s)), ok
}

func derived(field string, in *Input) (float64, bool) {
	switch field {
	case DerivedBudgetPercent:
		return scoring.BudgetPercent(in.Answers, in.Context)
	case DerivedRevenuePerEmployee:
		revenue, revenueOK := in.Answers.Revenue(in.Context)
		employees, employeesOK := in.Answers.Employees(in.Context)
		return assessment.Ratio(revenue, employees, revenueOK, employeesOK)
	case DerivedCACToLTV:
		cac, cacOK := in.Answers.Float(assessment.FieldCAC)
		ltv, ltvOK := in.Answers.Float(assessment.FieldLTV)
		return assessment.Ratio(cac, ltv, cacOK, ltvOK)
	}
	return 0, false
}

// Condition constructors for the built-in library.
func answer(field string, op Op, v float64) Condition {
	return Condition{Source: SourceAnswer, Field: field, Op: op, Value: v}
}

func answerIn(field string, values ...string) Condition {
	return Condition{Source: SourceAnswer, Field: field, Op: OpIn, Values: values}
}

func answerNotIn(field string, values ...string) Condition {
	return Condition{Source: SourceAnswer, Field: field, Op: OpNotIn, Values: values}
}

func answerFlag(field string, want bool) Condition {
	op := OpFalse
	if want {
		op = OpTrue
	}
	return Condition{Source: SourceAnswer, Field: field, Op: op}
}

func score(key assessment.ScoreKey, op Op, v float64) Condition {
	return Condition{Source: SourceScore, Field: string(key), Op: op, Value: v}
}

func ctxFlag(field string) Condition {
	return Condition{Source: SourceContext, Field: field, Op: OpTrue}
}

func metric(field string, op Op, v float64) Condition {
	return Condition{Source: SourceDerived, Field: field, Op: op, Value: v}
}
