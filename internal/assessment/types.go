// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package assessment

import "time"

// Context describes the business being assessed. It is supplied alongside
// the answers and never modified by the engine.
type Context struct {
	Sector         Sector   `json:"sector" validate:"omitempty,max=64"`
	CompanySize    string   `json:"company_size,omitempty" validate:"omitempty,oneof=micro small medium large enterprise"`
	CompanyAge     float64  `json:"company_age_years,omitempty" validate:"gte=0"`
	AnnualRevenue  float64  `json:"annual_revenue,omitempty" validate:"gte=0"`
	EmployeeCount  int      `json:"employee_count,omitempty" validate:"gte=0"`
	BusinessStage  string   `json:"business_stage,omitempty" validate:"omitempty,oneof=startup growth mature decline"`
	BudgetTier     string   `json:"budget_tier,omitempty" validate:"omitempty,oneof=low medium high"`
	UrgencyLevel   string   `json:"urgency_level,omitempty" validate:"omitempty,oneof=low medium high critical"`
	PreviousScores ScoreMap `json:"previous_scores,omitempty"`
}

// Normalize returns a copy with the sector folded onto the closed set.
func (c Context) Normalize() Context {
	c.Sector = ParseSector(string(c.Sector))
	return c
}

// Component is one named factor of a dimension score.
type Component struct {
	Name         string  `json:"name"`
	Raw          float64 `json:"raw"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// DimensionScore is one 0-100 maturity axis with its breakdown.
type DimensionScore struct {
	Name       string      `json:"name"`
	Value      float64     `json:"value"`
	Level      string      `json:"level,omitempty"`
	Components []Component `json:"components"`
}

// Scores is the output of the dimension scorer.
type Scores struct {
	Digital        DimensionScore `json:"digital"`
	Marketing      DimensionScore `json:"marketing"`
	Organizational DimensionScore `json:"organizational"`
	Risk           DimensionScore `json:"risk"`
	Opportunity    DimensionScore `json:"opportunity"`
	Overall        int            `json:"overall"`
	MaturityLevel  MaturityLevel  `json:"maturity_level"`
	RiskLevel      RiskLevel      `json:"risk_level"`
}

// Map returns the dimension values keyed for the shared score map.
func (s *Scores) Map() ScoreMap {
	return ScoreMap{
		ScoreDigital:        s.Digital.Value,
		ScoreMarketing:      s.Marketing.Value,
		ScoreOrganizational: s.Organizational.Value,
		ScoreRisk:           s.Risk.Value,
		ScoreOpportunity:    s.Opportunity.Value,
		ScoreOverall:        float64(s.Overall),
	}
}

// ScoreMap is the shared score map the experts read from.
type ScoreMap map[ScoreKey]float64

// Get returns the score for key or ScoreMidpoint when absent.
func (m ScoreMap) Get(key ScoreKey) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return ScoreMidpoint
}

// Lookup returns the score for key and whether it was present.
func (m ScoreMap) Lookup(key ScoreKey) (float64, bool) {
	v, ok := m[key]
	return v, ok
}

// With returns a copy of m with key set to v.
func (m ScoreMap) With(key ScoreKey, v float64) ScoreMap {
	out := make(ScoreMap, len(m)+1)
	for k, val := range m {
		out[k] = val
	}
	out[key] = v
	return out
}

// Insight is one explainable observation.
type Insight struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Impact      ImpactTag `json:"impact"`
	Confidence  float64   `json:"confidence"`
}

// Recommendation is one prioritized action item. PriorityRank is zero until
// global prioritization assigns it.
type Recommendation struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        Priority `json:"priority"`
	Layer           Layer    `json:"layer"`
	Actions         []string `json:"actions"`
	Timeline        string   `json:"timeline"`
	EstimatedImpact string   `json:"estimated_impact"`
	Effort          Effort   `json:"effort"`
	Dimension       string   `json:"dimension,omitempty"`
	Source          string   `json:"source,omitempty"`
	PriorityRank    int      `json:"priority_rank"`
}

// Ratio returns the impact/effort prioritization ratio.
func (r *Recommendation) Ratio() float64 {
	return float64(r.Priority.Impact()) / float64(r.Effort.Cost())
}

// Alert is a threshold-rule alert ranked by urgency.
type Alert struct {
	ID                string    `json:"id"`
	Tier              AlertTier `json:"type"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Dimension         string    `json:"dimension"`
	RecommendedAction string    `json:"recommended_action"`
	UrgencyScore      int       `json:"urgency_score"`
}

// ExpertAnalysisResult is one expert's verdict for a single invocation.
type ExpertAnalysisResult struct {
	ExpertID        string                 `json:"expert_id"`
	ExpertName      string                 `json:"expert_name"`
	DecisionWeight  float64                `json:"decision_weight"`
	SubScores       map[string]float64     `json:"sub_scores"`
	HealthScore     float64                `json:"health_score"`
	SuggestedPlan   PlanType               `json:"suggested_plan"`
	Sections        map[string]interface{} `json:"sections,omitempty"`
	Insights        []Insight              `json:"insights"`
	Recommendations []Recommendation       `json:"recommendations"`
	Confidence      float64                `json:"confidence"`
}

// Finding is one detection output: a flag, anomaly, consistency violation,
// contradiction or opportunity.
type Finding struct {
	RuleID      string  `json:"rule_id"`
	Category    string  `json:"category"`
	Severity    string  `json:"severity"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Expert      string  `json:"expert,omitempty"`
	Observed    float64 `json:"observed,omitempty"`
	Threshold   float64 `json:"threshold,omitempty"`
}

// Findings groups detection outputs by category.
type Findings struct {
	RedFlags       []Finding `json:"red_flags"`
	GreenFlags     []Finding `json:"green_flags"`
	Anomalies      []Finding `json:"anomalies"`
	Violations     []Finding `json:"consistency_violations"`
	Contradictions []Finding `json:"contradictions"`
	Opportunities  []Finding `json:"opportunities"`
}

// ViolationsFor returns the consistency violations owned by expertID.
func (f *Findings) ViolationsFor(expertID string) []Finding {
	if f == nil {
		return nil
	}
	var out []Finding
	for _, v := range f.Violations {
		if v.Expert == expertID {
			out = append(out, v)
		}
	}
	return out
}

// Total returns the number of findings across every category.
func (f *Findings) Total() int {
	if f == nil {
		return 0
	}
	return len(f.RedFlags) + len(f.GreenFlags) + len(f.Anomalies) +
		len(f.Violations) + len(f.Contradictions) + len(f.Opportunities)
}

// PatternMatch is one matched situational playbook.
type PatternMatch struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Confidence  float64  `json:"confidence"`
	Plan        PlanType `json:"recommended_plan"`
	Actions     []string `json:"actions"`
	Experts     []string `json:"experts"`
	Outcome     Outcome  `json:"predicted_outcome"`
	Description string   `json:"description"`
}

// Outcome is a predicted metric range for a matched pattern.
type Outcome struct {
	Metric  string  `json:"metric"`
	Low     float64 `json:"low"`
	High    float64 `json:"high"`
	Horizon string  `json:"horizon"`
}

// Checkpoint is one projected point of a scenario band.
type Checkpoint struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Scenario is one projection band.
type Scenario struct {
	Name        string       `json:"name"`
	Checkpoints []Checkpoint `json:"checkpoints"`
}

// PlaybookResult is the playbook stage output.
type PlaybookResult struct {
	Matches   []PatternMatch `json:"matches"`
	PlanType  PlanType       `json:"plan_type"`
	Scenarios []Scenario     `json:"scenarios"`
}

// Vote is one expert's weighted plan suggestion.
type Vote struct {
	ExpertID string   `json:"expert_id"`
	Plan     PlanType `json:"plan"`
	Weight   float64  `json:"weight"`
}

// Synthesis is the synthesis authority's final verdict.
type Synthesis struct {
	BusinessHealth  float64            `json:"business_health"`
	HealthBreakdown map[string]float64 `json:"health_breakdown"`
	PlanType        PlanType           `json:"plan_type"`
	FocusPillars    []string           `json:"focus_pillars"`
	ConsensusHealth float64            `json:"consensus_health"`
	Agreement       float64            `json:"agreement"`
	Votes           []Vote             `json:"votes"`
	Dissenters      []string           `json:"dissenters,omitempty"`
	Confidence      float64            `json:"confidence"`
}

// ResultBundle is the engine's only externally visible artifact.
type ResultBundle struct {
	SessionID       string                 `json:"session_id,omitempty"`
	Scores          Scores                 `json:"scores"`
	Findings        Findings               `json:"findings"`
	Playbook        PlaybookResult         `json:"playbook"`
	ExpertResults   []ExpertAnalysisResult `json:"expert_results"`
	Synthesis       Synthesis              `json:"synthesis"`
	Recommendations []Recommendation       `json:"recommendations"`
	Alerts          []Alert                `json:"alerts"`
	GeneratedAt     time.Time              `json:"generated_at"`
}
