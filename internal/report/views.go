// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/experts"
)

// Section sizes.
const (
	executivePriorities = 3
	executiveInsights   = 5
	monthlyWeeks        = 4
)

// DimensionSummary is one scored axis without its component breakdown.
type DimensionSummary struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Level string  `json:"level,omitempty"`
}

func summarize(s *assessment.Scores) []DimensionSummary {
	dims := []assessment.DimensionScore{s.Digital, s.Marketing, s.Organizational, s.Risk, s.Opportunity}
	out := make([]DimensionSummary, len(dims))
	for i, d := range dims {
		out[i] = DimensionSummary{Name: d.Name, Value: d.Value, Level: d.Level}
	}
	return out
}

// Executive is the one-page leadership summary.
type Executive struct {
	OverallScore   int                         `json:"overall_score"`
	MaturityLevel  assessment.MaturityLevel    `json:"maturity_level"`
	RiskLevel      assessment.RiskLevel        `json:"risk_level"`
	PlanType       assessment.PlanType         `json:"plan_type"`
	BusinessHealth float64                     `json:"business_health"`
	Confidence     float64                     `json:"confidence"`
	Dimensions     []DimensionSummary          `json:"dimensions"`
	FocusPillars   []string                    `json:"focus_pillars"`
	TopPattern     *assessment.PatternMatch    `json:"top_pattern,omitempty"`
	TopPriorities  []assessment.Recommendation `json:"top_priorities"`
	CriticalAlerts []assessment.Alert          `json:"critical_alerts"`
	KeyInsights    []assessment.Insight        `json:"key_insights"`
}

// NewExecutive builds the executive view.
func NewExecutive(b *assessment.ResultBundle) *Executive {
	e := &Executive{
		OverallScore:   b.Scores.Overall,
		MaturityLevel:  b.Scores.MaturityLevel,
		RiskLevel:      b.Scores.RiskLevel,
		PlanType:       b.Synthesis.PlanType,
		BusinessHealth: b.Synthesis.BusinessHealth,
		Confidence:     b.Synthesis.Confidence,
		Dimensions:     summarize(&b.Scores),
		FocusPillars:   append([]string(nil), b.Synthesis.FocusPillars...),
		TopPriorities:  firstN(b.Recommendations, executivePriorities),
		CriticalAlerts: alertsOf(b.Alerts, assessment.AlertCritical),
		KeyInsights:    keyInsights(b.ExpertResults, executiveInsights),
	}
	if len(b.Playbook.Matches) > 0 {
		top := b.Playbook.Matches[0]
		e.TopPattern = &top
	}
	return e
}

// keyInsights picks the highest-confidence negative and warning insights
// across experts, falling back to any insight.
func keyInsights(results []assessment.ExpertAnalysisResult, n int) []assessment.Insight {
	var urgent, rest []assessment.Insight
	for i := range results {
		for _, in := range results[i].Insights {
			if in.Impact == assessment.ImpactNegative || in.Impact == assessment.ImpactWarning {
				urgent = append(urgent, in)
			} else {
				rest = append(rest, in)
			}
		}
	}
	byConfidence := func(s []assessment.Insight) {
		sort.SliceStable(s, func(i, j int) bool { return s[i].Confidence > s[j].Confidence })
	}
	byConfidence(urgent)
	byConfidence(rest)
	return firstN(append(urgent, rest...), n)
}

// ExpertSummary is an expert result without sections or recommendations.
type ExpertSummary struct {
	ExpertID       string               `json:"expert_id"`
	ExpertName     string               `json:"expert_name"`
	HealthScore    float64              `json:"health_score"`
	SuggestedPlan  assessment.PlanType  `json:"suggested_plan"`
	Confidence     float64              `json:"confidence"`
	DecisionWeight float64              `json:"decision_weight"`
	SubScores      map[string]float64   `json:"sub_scores"`
	Insights       []assessment.Insight `json:"insights"`
}

func summarizeExperts(results []assessment.ExpertAnalysisResult) []ExpertSummary {
	out := make([]ExpertSummary, 0, len(results))
	for i := range results {
		r := &results[i]
		out = append(out, ExpertSummary{
			ExpertID:       r.ExpertID,
			ExpertName:     r.ExpertName,
			HealthScore:    r.HealthScore,
			SuggestedPlan:  r.SuggestedPlan,
			Confidence:     r.Confidence,
			DecisionWeight: r.DecisionWeight,
			SubScores:      r.SubScores,
			Insights:       r.Insights,
		})
	}
	return out
}

// Detailed carries every stage output, recommendations grouped by layer.
type Detailed struct {
	Scores       assessment.Scores            `json:"scores"`
	Findings     assessment.Findings          `json:"findings"`
	Playbook     assessment.PlaybookResult    `json:"playbook"`
	Synthesis    assessment.Synthesis         `json:"synthesis"`
	Experts      []ExpertSummary              `json:"experts"`
	Strategic    []assessment.Recommendation  `json:"strategic"`
	Tactical     []assessment.Recommendation  `json:"tactical"`
	Execution    []assessment.Recommendation  `json:"execution"`
	Alerts       []assessment.Alert           `json:"alerts"`
	AlertsByTier map[assessment.AlertTier]int `json:"alerts_by_tier"`
}

// NewDetailed builds the detailed view.
func NewDetailed(b *assessment.ResultBundle) *Detailed {
	d := &Detailed{
		Scores:       b.Scores,
		Findings:     b.Findings,
		Playbook:     b.Playbook,
		Synthesis:    b.Synthesis,
		Experts:      summarizeExperts(b.ExpertResults),
		Strategic:    byLayer(b.Recommendations, assessment.LayerStrategic),
		Tactical:     byLayer(b.Recommendations, assessment.LayerTactical),
		Execution:    byLayer(b.Recommendations, assessment.LayerExecution),
		Alerts:       b.Alerts,
		AlertsByTier: make(map[assessment.AlertTier]int, 4),
	}
	for i := range b.Alerts {
		d.AlertsByTier[b.Alerts[i].Tier]++
	}
	return d
}

// Week groups the execution steps scheduled for one week.
type Week struct {
	Number int                         `json:"number"`
	Steps  []assessment.Recommendation `json:"steps"`
}

// ActionPlan orders the work: strategic directives, tactical initiatives
// and a week-by-week execution schedule.
type ActionPlan struct {
	PlanType    assessment.PlanType         `json:"plan_type"`
	Immediate   []assessment.Alert          `json:"immediate"`
	Strategic   []assessment.Recommendation `json:"strategic"`
	Tactical    []assessment.Recommendation `json:"tactical"`
	Weeks       []Week                      `json:"weeks"`
	Predictions []assessment.Outcome        `json:"predictions"`
}

// NewActionPlan builds the action plan view. Critical and high alerts come
// first as immediate actions.
func NewActionPlan(b *assessment.ResultBundle) *ActionPlan {
	p := &ActionPlan{
		PlanType:  b.Synthesis.PlanType,
		Immediate: append(alertsOf(b.Alerts, assessment.AlertCritical), alertsOf(b.Alerts, assessment.AlertHigh)...),
		Strategic: byLayer(b.Recommendations, assessment.LayerStrategic),
		Tactical:  byLayer(b.Recommendations, assessment.LayerTactical),
		Weeks:     schedule(b.Recommendations),
	}
	for i := range b.Playbook.Matches {
		p.Predictions = append(p.Predictions, b.Playbook.Matches[i].Outcome)
	}
	return p
}

// schedule buckets execution steps by their "Week N" timeline. Steps with
// another timeline are appended after the last numbered week.
func schedule(recs []assessment.Recommendation) []Week {
	byWeek := make(map[int][]assessment.Recommendation)
	var unscheduled []assessment.Recommendation
	for _, r := range byLayer(recs, assessment.LayerExecution) {
		if n, ok := weekNumber(r.Timeline); ok {
			byWeek[n] = append(byWeek[n], r)
		} else {
			unscheduled = append(unscheduled, r)
		}
	}

	numbers := make([]int, 0, len(byWeek))
	for n := range byWeek {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	weeks := make([]Week, 0, len(numbers)+1)
	last := 0
	for _, n := range numbers {
		weeks = append(weeks, Week{Number: n, Steps: byWeek[n]})
		last = n
	}
	if len(unscheduled) > 0 {
		weeks = append(weeks, Week{Number: last + 1, Steps: unscheduled})
	}
	return weeks
}

func weekNumber(timeline string) (int, bool) {
	var n int
	if _, err := fmt.Sscanf(strings.ToLower(timeline), "week %d", &n); err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Monthly is the progress-tracking snapshot for the next review cycle.
type Monthly struct {
	OverallScore  int                      `json:"overall_score"`
	MaturityLevel assessment.MaturityLevel `json:"maturity_level"`
	Dimensions    []DimensionSummary       `json:"dimensions"`
	HealthScores  map[string]float64       `json:"health_scores"`
	Milestones    []Week                   `json:"milestones"`
	Watchlist     []assessment.Alert       `json:"watchlist"`
	Targets       []assessment.Scenario    `json:"targets"`
	GreenFlags    []assessment.Finding     `json:"green_flags"`
}

// NewMonthly builds the monthly view: the first four execution weeks as
// milestones, warning alerts to watch and the projected score bands.
func NewMonthly(b *assessment.ResultBundle) *Monthly {
	m := &Monthly{
		OverallScore:  b.Scores.Overall,
		MaturityLevel: b.Scores.MaturityLevel,
		Dimensions:    summarize(&b.Scores),
		HealthScores:  make(map[string]float64, len(b.ExpertResults)),
		Milestones:    firstN(schedule(b.Recommendations), monthlyWeeks),
		Watchlist:     append(alertsOf(b.Alerts, assessment.AlertHigh), alertsOf(b.Alerts, assessment.AlertWarning)...),
		Targets:       b.Playbook.Scenarios,
		GreenFlags:    b.Findings.GreenFlags,
	}
	for i := range b.ExpertResults {
		m.HealthScores[b.ExpertResults[i].ExpertID] = b.ExpertResults[i].HealthScore
	}
	return m
}

// Competitive focuses on market position: risk and opportunity, the
// market-facing experts and detected opportunities.
type Competitive struct {
	Risk          assessment.DimensionScore `json:"risk"`
	Opportunity   assessment.DimensionScore `json:"opportunity"`
	RiskLevel     assessment.RiskLevel      `json:"risk_level"`
	Experts       []ExpertSummary           `json:"experts"`
	Patterns      []assessment.PatternMatch `json:"patterns"`
	Opportunities []assessment.Finding      `json:"opportunities"`
	Threats       []assessment.Finding      `json:"threats"`
	Openings      []assessment.Alert        `json:"openings"`
}

var competitiveExperts = map[string]bool{
	experts.IDMarketAnalyst:    true,
	experts.IDBrandStrategist:  true,
	experts.IDInnovation:       true,
	experts.IDConsumerBehavior: true,
	experts.IDRiskManager:      true,
}

// NewCompetitive builds the competitive view.
func NewCompetitive(b *assessment.ResultBundle) *Competitive {
	c := &Competitive{
		Risk:          b.Scores.Risk,
		Opportunity:   b.Scores.Opportunity,
		RiskLevel:     b.Scores.RiskLevel,
		Patterns:      b.Playbook.Matches,
		Opportunities: b.Findings.Opportunities,
		Threats:       append(append([]assessment.Finding(nil), b.Findings.RedFlags...), b.Findings.Contradictions...),
		Openings:      alertsOf(b.Alerts, assessment.AlertOpportunity),
	}
	for _, s := range summarizeExperts(b.ExpertResults) {
		if competitiveExperts[s.ExpertID] {
			c.Experts = append(c.Experts, s)
		}
	}
	return c
}

func firstN[T any](s []T, n int) []T {
	if len(s) > n {
		s = s[:n]
	}
	return append([]T(nil), s...)
}

func byLayer(recs []assessment.Recommendation, layer assessment.Layer) []assessment.Recommendation {
	out := []assessment.Recommendation{}
	for _, r := range recs {
		if r.Layer == layer {
			out = append(out, r)
		}
	}
	return out
}

func alertsOf(alerts []assessment.Alert, tier assessment.AlertTier) []assessment.Alert {
	out := []assessment.Alert{}
	for _, a := range alerts {
		if a.Tier == tier {
			out = append(out, a)
		}
	}
	return out
}
