// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package detection

import (
	"errors"
	"testing"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

func ruleIDs(findings []assessment.Finding) map[string]assessment.Finding {
	out := make(map[string]assessment.Finding, len(findings))
	for _, f := range findings {
		out[f.RuleID] = f
	}
	return out
}

func TestEngine_RedFlags(t *testing.T) {
	t.Parallel()
	e := NewDefaultEngine()

	got := e.Run(&Input{
		Answers: assessment.AnswerMap{
			assessment.FieldRevenueTrend:     assessment.StringValue("declining"),
			assessment.FieldProfitMargin:     assessment.NumberValue(3),
			assessment.FieldCustomerChurn:    assessment.NumberValue(45),
			assessment.FieldMarketingBudget:  assessment.NumberValue(50000),
			assessment.FieldAnnualRevenue:    assessment.NumberValue(100000),
			assessment.FieldHasWebsite:       assessment.StringValue("no"),
			assessment.FieldDifferentiation:  assessment.NumberValue(2),
			assessment.FieldCompetitionLevel: assessment.StringValue("very high"),
		},
	})

	ids := ruleIDs(got.RedFlags)
	for _, want := range []string{
		"RF_DECLINING_REVENUE", "RF_THIN_MARGIN", "RF_HEAVY_CHURN",
		"RF_MARKETING_OVERSPEND", "RF_NO_WEBSITE", "RF_WEAK_DIFFERENTIATION",
	} {
		if _, ok := ids[want]; !ok {
			t.Errorf("red flag %s did not fire, got %v", want, ids)
		}
	}
	if f := ids["RF_MARKETING_OVERSPEND"]; f.Observed != 50 {
		t.Errorf("overspend observed = %v, want 50", f.Observed)
	}
}

func TestEngine_GreenFlags(t *testing.T) {
	t.Parallel()
	e := NewDefaultEngine()

	got := e.Run(&Input{
		Answers: assessment.AnswerMap{
			assessment.FieldCustomerSatisfaction: assessment.NumberValue(9),
			assessment.FieldRevenueTrend:         assessment.StringValue("growing"),
			assessment.FieldNPS:                  assessment.NumberValue(62),
			assessment.FieldDataDrivenDecisions:  assessment.StringValue("yes"),
			assessment.FieldHasWebsite:           assessment.BoolValue(true),
		},
	})

	if len(got.GreenFlags) != 4 {
		t.Errorf("len(GreenFlags) = %d, want 4: %+v", len(got.GreenFlags), got.GreenFlags)
	}
	if len(got.RedFlags) != 0 {
		t.Errorf("len(RedFlags) = %d, want 0: %+v", len(got.RedFlags), got.RedFlags)
	}
}

func TestEngine_RevenuePerEmployeeAnomaly(t *testing.T) {
	t.Parallel()
	e := NewDefaultEngine()

	tests := []struct {
		name      string
		revenue   float64
		employees int
		want      bool
	}{
		{"too low", 100000, 10, true},
		{"plausible", 5000000, 50, false},
		{"too high", 50000000, 5, true},
		{"lower bound inclusive", 200000, 10, false},
		{"zero headcount skipped", 1000000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Run(&Input{
				Answers: assessment.AnswerMap{assessment.FieldHasWebsite: assessment.BoolValue(true)},
				Context: assessment.Context{AnnualRevenue: tt.revenue, EmployeeCount: tt.employees},
			})
			if fired := len(got.Anomalies) == 1; fired != tt.want {
				t.Errorf("anomaly fired = %v, want %v", fired, tt.want)
			}
		})
	}
}

func TestEngine_ConsistencyViolations(t *testing.T) {
	t.Parallel()
	e := NewDefaultEngine()

	got := e.Run(&Input{
		Answers: assessment.AnswerMap{
			assessment.FieldMarketingBudget: assessment.NumberValue(400000),
			assessment.FieldAnnualRevenue:   assessment.NumberValue(1000000),
			assessment.FieldEmployeeCount:   assessment.NumberValue(20),
			assessment.FieldCAC:             assessment.NumberValue(500),
			assessment.FieldLTV:             assessment.NumberValue(300),
		},
		Context: assessment.Context{Sector: assessment.SectorRetail},
		Scores:  &assessment.Scores{Digital: assessment.DimensionScore{Value: 5}},
	})

	ids := ruleIDs(got.Violations)
	want := map[string]struct {
		severity string
		expert   string
	}{
		"CC_BUDGET_REVENUE":     {"critical", ExpertFinancial},
		"CC_CAC_LTV":            {"critical", ExpertFinancial},
		"CC_REVENUE_PER_HEAD":   {"high", ExpertOperations},
		"CC_DIGITAL_DEPENDENCY": {"high", ExpertDigital},
	}
	for id, w := range want {
		f, ok := ids[id]
		if !ok {
			t.Errorf("violation %s did not fire", id)
			continue
		}
		if f.Severity != w.severity || f.Expert != w.expert {
			t.Errorf("%s = (%s, %s), want (%s, %s)", id, f.Severity, f.Expert, w.severity, w.expert)
		}
	}

	if n := len(got.ViolationsFor(ExpertFinancial)); n != 2 {
		t.Errorf("ViolationsFor(financial) = %d, want 2", n)
	}
}

func TestEngine_UndefinedRatiosSkip(t *testing.T) {
	t.Parallel()
	e := NewDefaultEngine()

	got := e.Run(&Input{
		Answers: assessment.AnswerMap{
			assessment.FieldMarketingBudget: assessment.NumberValue(1000),
			assessment.FieldAnnualRevenue:   assessment.NumberValue(0),
			assessment.FieldCAC:             assessment.NumberValue(500),
			assessment.FieldLTV:             assessment.StringValue(""),
			assessment.FieldHasWebsite:      assessment.BoolValue(true),
		},
	})

	if len(got.Violations) != 0 {
		t.Errorf("Violations = %+v, want none when denominators are undefined", got.Violations)
	}
	if len(got.RedFlags) != 0 {
		t.Errorf("RedFlags = %+v, want none", got.RedFlags)
	}
}

func TestEngine_DigitalDependencyIgnoresOfflineSectors(t *testing.T) {
	t.Parallel()
	e := NewDefaultEngine()

	got := e.Run(&Input{
		Answers: assessment.AnswerMap{},
		Context: assessment.Context{Sector: assessment.SectorManufacturing},
		Scores:  &assessment.Scores{},
	})
	if _, ok := ruleIDs(got.Violations)["CC_DIGITAL_DEPENDENCY"]; ok {
		t.Error("CC_DIGITAL_DEPENDENCY fired for manufacturing")
	}
}

func TestEngine_Contradictions(t *testing.T) {
	t.Parallel()
	e := NewDefaultEngine()

	got := e.Run(&Input{
		Answers: assessment.AnswerMap{
			assessment.FieldClaimsGrowth:         assessment.StringValue("yes"),
			assessment.FieldRevenueTrend:         assessment.StringValue("declining"),
			assessment.FieldCompetitionLevel:     assessment.StringValue("low"),
			assessment.FieldCompetitorCount:      assessment.NumberValue(25),
			assessment.FieldCustomerSatisfaction: assessment.NumberValue(8),
			assessment.FieldCustomerChurn:        assessment.NumberValue(40),
		},
	})

	if len(got.Contradictions) != 3 {
		t.Errorf("len(Contradictions) = %d, want 3: %+v", len(got.Contradictions), got.Contradictions)
	}
}

func TestEngine_Opportunities(t *testing.T) {
	t.Parallel()
	e := NewDefaultEngine()

	got := e.Run(&Input{
		Answers: assessment.AnswerMap{
			assessment.FieldBudgetUtilization:    assessment.NumberValue(55),
			assessment.FieldRevenueTrend:         assessment.StringValue("growing"),
			assessment.FieldCustomerSatisfaction: assessment.NumberValue(9),
			assessment.FieldBrandAwareness:       assessment.NumberValue(3),
			assessment.FieldMarketTrend:          assessment.StringValue("growing"),
		},
	})

	ids := ruleIDs(got.Opportunities)
	for _, want := range []string{"OP_UNDERSPENT_BUDGET", "OP_HIDDEN_GEM", "OP_DIGITAL_WHITESPACE"} {
		if _, ok := ids[want]; !ok {
			t.Errorf("opportunity %s did not fire", want)
		}
	}
}

func TestEngine_SetRuleEnabled(t *testing.T) {
	t.Parallel()
	e := NewDefaultEngine()
	in := &Input{Answers: assessment.AnswerMap{}}

	if got := e.Run(in); len(got.RedFlags) != 1 {
		t.Fatalf("len(RedFlags) = %d, want 1 (no website)", len(got.RedFlags))
	}
	if err := e.SetRuleEnabled("RF_NO_WEBSITE", false); err != nil {
		t.Fatalf("SetRuleEnabled() error = %v", err)
	}
	if got := e.Run(in); len(got.RedFlags) != 0 {
		t.Errorf("len(RedFlags) = %d after disabling, want 0", len(got.RedFlags))
	}

	err := e.SetRuleEnabled("NOPE", true)
	if !errors.Is(err, ErrRuleNotFound) {
		t.Errorf("SetRuleEnabled(unknown) error = %v, want ErrRuleNotFound", err)
	}
}

func TestEngine_RegisterRuleReplaces(t *testing.T) {
	t.Parallel()
	e := NewDefaultEngine()
	before := len(e.Rules())

	e.RegisterRule(newRule("RF_NO_WEBSITE", CategoryRedFlag, SeverityLow, "replaced",
		func(*Input) (observation, bool) { return observation{}, false }))

	if after := len(e.Rules()); after != before {
		t.Errorf("len(Rules()) = %d, want %d", after, before)
	}
	if got := e.Run(&Input{Answers: assessment.AnswerMap{}}); len(got.RedFlags) != 0 {
		t.Errorf("replaced rule still fired: %+v", got.RedFlags)
	}
}

func TestEngine_NilInput(t *testing.T) {
	t.Parallel()
	got := NewDefaultEngine().Run(nil)
	if got.Total() != 0 {
		t.Errorf("Total() = %d, want 0", got.Total())
	}
	if got.RedFlags == nil {
		t.Error("RedFlags = nil, want empty slice")
	}
}
