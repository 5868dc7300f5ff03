// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package alerting

import (
	"reflect"
	"testing"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	e, err := NewEvaluator()
	if err != nil {
		t.Fatalf("NewEvaluator() error = %v", err)
	}
	return e
}

func findAlert(alerts []assessment.Alert, id string) (assessment.Alert, bool) {
	for _, a := range alerts {
		if a.ID == id {
			return a, true
		}
	}
	return assessment.Alert{}, false
}

func TestEvaluator_CACExceedsLTV(t *testing.T) {
	t.Parallel()
	e := newTestEvaluator(t)

	got := e.Evaluate(&Input{Answers: assessment.AnswerMap{
		assessment.FieldCAC: assessment.NumberValue(500),
		assessment.FieldLTV: assessment.NumberValue(300),
	}})

	a, ok := findAlert(got, "ALC_CAC_EXCEEDS_LTV")
	if !ok {
		t.Fatal("CAC exceeds LTV alert not raised")
	}
	if a.Title != "CAC exceeds LTV" || a.Tier != assessment.AlertCritical || a.UrgencyScore != 90 {
		t.Errorf("alert = %q/%s/%d, want CAC exceeds LTV/critical/90", a.Title, a.Tier, a.UrgencyScore)
	}
}

func TestEvaluator_NoDigitalPresence(t *testing.T) {
	t.Parallel()
	e := newTestEvaluator(t)

	got := e.Evaluate(&Input{
		Answers: assessment.AnswerMap{
			assessment.FieldRevenueTrend: assessment.StringValue("declining"),
			assessment.FieldHasWebsite:   assessment.BoolValue(false),
		},
		Context: assessment.Context{Sector: assessment.SectorRetail},
		Scores:  &assessment.Scores{Digital: assessment.DimensionScore{Value: 10}, Overall: 30},
	})

	a, ok := findAlert(got, "ALC_NO_DIGITAL_PRESENCE")
	if !ok {
		t.Fatal("no digital presence alert not raised")
	}
	if a.Tier != assessment.AlertCritical || a.UrgencyScore != 95 {
		t.Errorf("alert = %s/%d, want critical/95", a.Tier, a.UrgencyScore)
	}
	if got[0].ID != "ALC_NO_DIGITAL_PRESENCE" {
		t.Errorf("first alert = %s, want ALC_NO_DIGITAL_PRESENCE", got[0].ID)
	}
}

func TestEvaluator_Rules(t *testing.T) {
	t.Parallel()
	e := newTestEvaluator(t)

	tests := []struct {
		name    string
		answers assessment.AnswerMap
		context assessment.Context
		scores  *assessment.Scores
		wantID  string
		wantNot bool
	}{
		{
			name: "cash crisis",
			answers: assessment.AnswerMap{
				assessment.FieldCashFlow:     assessment.StringValue("negative"),
				assessment.FieldRevenueTrend: assessment.StringValue("declining"),
			},
			wantID: "ALC_CASH_CRISIS",
		},
		{
			name:    "cash negative but growing",
			answers: assessment.AnswerMap{assessment.FieldCashFlow: assessment.StringValue("negative"), assessment.FieldRevenueTrend: assessment.StringValue("growing")},
			wantID:  "ALC_CASH_CRISIS",
			wantNot: true,
		},
		{
			name:   "critical risk",
			scores: &assessment.Scores{Risk: assessment.DimensionScore{Value: 70}, Overall: 50},
			wantID: "ALC_CRITICAL_RISK",
		},
		{
			name:    "website blocks no presence",
			answers: assessment.AnswerMap{assessment.FieldHasWebsite: assessment.BoolValue(true)},
			scores:  &assessment.Scores{Digital: assessment.DimensionScore{Value: 5}},
			wantID:  "ALC_NO_DIGITAL_PRESENCE",
			wantNot: true,
		},
		{
			name:    "cac equal ltv",
			answers: assessment.AnswerMap{assessment.FieldCAC: assessment.NumberValue(300), assessment.FieldLTV: assessment.NumberValue(300)},
			wantID:  "ALC_CAC_EXCEEDS_LTV",
			wantNot: true,
		},
		{
			name:    "negative margin",
			answers: assessment.AnswerMap{assessment.FieldProfitMargin: assessment.NumberValue(-3)},
			wantID:  "ALC_NEGATIVE_MARGIN",
		},
		{
			name:    "declining revenue",
			answers: assessment.AnswerMap{assessment.FieldRevenueTrend: assessment.StringValue("declining")},
			wantID:  "ALH_DECLINING_REVENUE",
		},
		{
			name:    "high churn",
			answers: assessment.AnswerMap{assessment.FieldCustomerChurn: assessment.NumberValue(35)},
			wantID:  "ALH_HIGH_CHURN",
		},
		{
			name:    "churn at threshold",
			answers: assessment.AnswerMap{assessment.FieldCustomerChurn: assessment.NumberValue(30)},
			wantID:  "ALH_HIGH_CHURN",
			wantNot: true,
		},
		{
			name: "budget overspend",
			answers: assessment.AnswerMap{
				assessment.FieldMarketingBudget: assessment.NumberValue(40000),
				assessment.FieldAnnualRevenue:   assessment.NumberValue(100000),
			},
			wantID: "ALH_BUDGET_OVERSPEND",
		},
		{
			name:    "overspend needs revenue",
			answers: assessment.AnswerMap{assessment.FieldMarketingBudget: assessment.NumberValue(40000)},
			wantID:  "ALH_BUDGET_OVERSPEND",
			wantNot: true,
		},
		{
			name:   "low maturity",
			scores: &assessment.Scores{Overall: 39},
			wantID: "ALH_LOW_MATURITY",
		},
		{
			name:    "analytics in place",
			answers: assessment.AnswerMap{assessment.FieldUsesAnalytics: assessment.BoolValue(true)},
			wantID:  "ALH_NO_ANALYTICS",
			wantNot: true,
		},
		{
			name:    "low satisfaction",
			answers: assessment.AnswerMap{assessment.FieldCustomerSatisfaction: assessment.NumberValue(4)},
			wantID:  "ALW_LOW_SATISFACTION",
		},
		{
			name:    "single channel",
			answers: assessment.AnswerMap{assessment.FieldSingleChannelDependency: assessment.BoolValue(true)},
			wantID:  "ALW_SINGLE_CHANNEL",
		},
		{
			name:    "inactive social",
			answers: assessment.AnswerMap{assessment.FieldSocialPostingFrequency: assessment.StringValue("rarely")},
			wantID:  "ALW_INACTIVE_SOCIAL",
		},
		{
			name:    "digital gap in growing market",
			answers: assessment.AnswerMap{assessment.FieldMarketTrend: assessment.StringValue("growing")},
			scores:  &assessment.Scores{Digital: assessment.DimensionScore{Value: 30}, Overall: 50},
			wantID:  "ALO_DIGITAL_GAP",
		},
		{
			name: "hidden gem",
			answers: assessment.AnswerMap{
				assessment.FieldCustomerSatisfaction: assessment.NumberValue(9),
				assessment.FieldBrandAwareness:       assessment.NumberValue(3),
			},
			wantID: "ALO_HIDDEN_GEM",
		},
		{
			name:   "high opportunity",
			scores: &assessment.Scores{Opportunity: assessment.DimensionScore{Value: 75}, Overall: 50},
			wantID: "ALO_HIGH_OPPORTUNITY",
		},
		{
			name: "budget headroom",
			answers: assessment.AnswerMap{
				assessment.FieldRevenueTrend:    assessment.StringValue("growing"),
				assessment.FieldMarketingBudget: assessment.NumberValue(2000),
			},
			context: assessment.Context{AnnualRevenue: 100000},
			wantID:  "ALO_BUDGET_HEADROOM",
		},
		{
			name:    "promoters",
			answers: assessment.AnswerMap{assessment.FieldNPS: assessment.NumberValue(60)},
			wantID:  "ALO_PROMOTERS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := tt.answers
			if answers == nil {
				answers = assessment.AnswerMap{}
			}
			got := e.Evaluate(&Input{Answers: answers, Context: tt.context, Scores: tt.scores})
			_, ok := findAlert(got, tt.wantID)
			if ok == tt.wantNot {
				t.Errorf("alert %s raised = %v, want %v", tt.wantID, ok, !tt.wantNot)
			}
		})
	}
}

func TestEvaluator_EmptyInput(t *testing.T) {
	t.Parallel()
	e := newTestEvaluator(t)

	got := e.Evaluate(&Input{Answers: assessment.AnswerMap{}})
	var ids []string
	for _, a := range got {
		ids = append(ids, a.ID)
	}
	want := []string{"ALH_NO_ANALYTICS", "ALW_NO_STRATEGY", "ALW_NO_EMAIL_LIST"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Evaluate(empty) = %v, want %v", ids, want)
	}

	if got := e.Evaluate(nil); got == nil || len(got) != 0 {
		t.Errorf("Evaluate(nil) = %v, want empty non-nil slice", got)
	}
}

func TestEvaluator_SortedByUrgency(t *testing.T) {
	t.Parallel()
	e := newTestEvaluator(t)

	got := e.Evaluate(&Input{
		Answers: assessment.AnswerMap{
			assessment.FieldCAC:                     assessment.NumberValue(500),
			assessment.FieldLTV:                     assessment.NumberValue(300),
			assessment.FieldCashFlow:                assessment.StringValue("negative"),
			assessment.FieldRevenueTrend:            assessment.StringValue("declining"),
			assessment.FieldCustomerChurn:           assessment.NumberValue(45),
			assessment.FieldSingleChannelDependency: assessment.BoolValue(true),
			assessment.FieldNPS:                     assessment.NumberValue(70),
			assessment.FieldProfitMargin:            assessment.NumberValue(-10),
		},
		Scores: &assessment.Scores{
			Digital:     assessment.DimensionScore{Value: 5},
			Risk:        assessment.DimensionScore{Value: 85},
			Opportunity: assessment.DimensionScore{Value: 80},
			Overall:     15,
		},
	})

	if len(got) < 10 {
		t.Fatalf("len(alerts) = %d, want at least 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].UrgencyScore > got[i-1].UrgencyScore {
			t.Errorf("alert %d urgency %d above previous %d", i, got[i].UrgencyScore, got[i-1].UrgencyScore)
		}
	}
	if got[0].ID != "ALC_CASH_CRISIS" || got[0].UrgencyScore != 98 {
		t.Errorf("first alert = %s/%d, want ALC_CASH_CRISIS/98", got[0].ID, got[0].UrgencyScore)
	}

	counts := CountByTier(got)
	if counts[assessment.AlertCritical] != 5 {
		t.Errorf("critical alerts = %d, want 5", counts[assessment.AlertCritical])
	}
}

func TestEvaluator_TiesKeepTierOrder(t *testing.T) {
	t.Parallel()

	always := func(*Input) (string, bool) { return "fired", true }
	e, err := NewEvaluator(
		Rule{ID: "opp", Tier: assessment.AlertOpportunity, Urgency: 50, Check: always},
		Rule{ID: "warn", Tier: assessment.AlertWarning, Urgency: 50, Check: always},
		Rule{ID: "crit", Tier: assessment.AlertCritical, Urgency: 50, Check: always},
	)
	if err != nil {
		t.Fatalf("NewEvaluator() error = %v", err)
	}

	got := e.Evaluate(&Input{})
	var ids []string
	for _, a := range got {
		ids = append(ids, a.ID)
	}
	want := []string{"crit", "warn", "opp"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
}

func TestNewEvaluator_Validation(t *testing.T) {
	t.Parallel()

	check := func(*Input) (string, bool) { return "", false }
	tests := []struct {
		name  string
		rules []Rule
	}{
		{"missing id", []Rule{{Tier: assessment.AlertHigh, Urgency: 10, Check: check}}},
		{"duplicate id", []Rule{
			{ID: "x", Tier: assessment.AlertHigh, Urgency: 10, Check: check},
			{ID: "x", Tier: assessment.AlertHigh, Urgency: 10, Check: check},
		}},
		{"unknown tier", []Rule{{ID: "x", Tier: "urgent", Urgency: 10, Check: check}}},
		{"urgency out of range", []Rule{{ID: "x", Tier: assessment.AlertHigh, Urgency: 101, Check: check}}},
		{"missing check", []Rule{{ID: "x", Tier: assessment.AlertHigh, Urgency: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEvaluator(tt.rules...); err == nil {
				t.Error("NewEvaluator() error = nil, want error")
			}
		})
	}
}

func TestDefaultRules_UrgencyRange(t *testing.T) {
	t.Parallel()

	e := newTestEvaluator(t)
	rules := e.Rules()
	if len(rules) != 20 {
		t.Errorf("len(Rules) = %d, want 20", len(rules))
	}
	for _, r := range rules {
		if r.Urgency < 0 || r.Urgency > MaxUrgency {
			t.Errorf("%s urgency = %d, want within [0,100]", r.ID, r.Urgency)
		}
	}
}
