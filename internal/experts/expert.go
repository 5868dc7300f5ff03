// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"fmt"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/playbook"
)

// Gating thresholds shared by every expert.
const (
	CriticalThreshold = 35.0
	HighThreshold     = 60.0
	StrongThreshold   = 75.0
)

// Expert identifiers.
const (
	IDFinancialAnalyst = "financial_analyst"
	IDMarketAnalyst    = "market_analyst"
	IDDigitalMarketing = "digital_marketing_expert"
	IDBrandStrategist  = "brand_strategist"
	IDConsumerBehavior = "consumer_behavior_expert"
	IDDataAnalytics    = "data_analytics_expert"
	IDOperations       = "operations_expert"
	IDRiskManager      = "risk_manager"
	IDInnovation       = "innovation_expert"
	IDChiefStrategist  = "chief_strategist"
)

// Profile is the static metadata of an expert.
type Profile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	Expertise      []string `json:"expertise"`
	DecisionWeight float64  `json:"decision_weight"`

	// Contributes is the shared score key this expert's health score is
	// published under before synthesis. Empty for experts whose dimension
	// the scorer already owns.
	Contributes assessment.ScoreKey `json:"contributes,omitempty"`
}

// Input is the snapshot every expert analyzes.
type Input struct {
	Answers  assessment.AnswerMap
	Context  assessment.Context
	Scores   assessment.ScoreMap
	Detail   *assessment.Scores
	Findings *assessment.Findings

	// Panel holds the domain results seen by the synthesis authority.
	Panel []assessment.ExpertAnalysisResult
}

// withScores returns a shallow copy of in reading from scores.
func (in *Input) withScores(scores assessment.ScoreMap) *Input {
	out := *in
	out.Scores = scores
	return &out
}

// component returns the raw value of a scorer component, or def when the
// detailed scores are unavailable.
func (in *Input) component(dim, name string, def float64) float64 {
	if in.Detail == nil {
		return def
	}
	var d assessment.DimensionScore
	switch assessment.ScoreKey(dim) {
	case assessment.ScoreDigital:
		d = in.Detail.Digital
	case assessment.ScoreMarketing:
		d = in.Detail.Marketing
	case assessment.ScoreOrganizational:
		d = in.Detail.Organizational
	case assessment.ScoreRisk:
		d = in.Detail.Risk
	case assessment.ScoreOpportunity:
		d = in.Detail.Opportunity
	}
	for _, c := range d.Components {
		if c.Name == name {
			return c.Raw
		}
	}
	return def
}

// SubScore is one weighted 0-100 factor of an expert's health score.
type SubScore struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// Analysis is the raw outcome of Expert.Analyze.
type Analysis struct {
	Profile    Profile
	SubScores  []SubScore
	Health     float64
	Plan       assessment.PlanType
	Confidence float64
	Sections   map[string]interface{}
	Violations []assessment.Finding
}

// SubScoreMap returns the sub-scores keyed by name.
func (a *Analysis) SubScoreMap() map[string]float64 {
	out := make(map[string]float64, len(a.SubScores))
	for _, s := range a.SubScores {
		out[s.Name] = s.Value
	}
	return out
}

// Weakest returns the lowest sub-score, first wins on ties.
func (a *Analysis) Weakest() (SubScore, bool) {
	if len(a.SubScores) == 0 {
		return SubScore{}, false
	}
	w := a.SubScores[0]
	for _, s := range a.SubScores[1:] {
		if s.Value < w.Value {
			w = s
		}
	}
	return w, true
}

// Expert is one independent analyzer on the panel.
type Expert interface {
	// Profile returns the expert's static metadata.
	Profile() Profile

	// Analyze computes sub-scores, health, plan and confidence.
	Analyze(in *Input) *Analysis

	// GenerateInsights explains an analysis.
	GenerateInsights(a *Analysis) []assessment.Insight

	// GenerateRecommendations turns an analysis into action items.
	GenerateRecommendations(a *Analysis) []assessment.Recommendation
}

// Synthesizer is an expert able to act as the synthesis authority.
type Synthesizer interface {
	Expert

	// Synthesize produces the final verdict from the authority's own
	// analysis and the domain experts' results.
	Synthesize(a *Analysis, results []assessment.ExpertAnalysisResult) assessment.Synthesis
}

// Result runs e over in and assembles the published result.
func Result(e Expert, in *Input) (*Analysis, assessment.ExpertAnalysisResult) {
	a := e.Analyze(in)
	p := e.Profile()
	return a, assessment.ExpertAnalysisResult{
		ExpertID:        p.ID,
		ExpertName:      p.Name,
		DecisionWeight:  p.DecisionWeight,
		SubScores:       a.SubScoreMap(),
		HealthScore:     a.Health,
		SuggestedPlan:   a.Plan,
		Sections:        a.Sections,
		Insights:        e.GenerateInsights(a),
		Recommendations: e.GenerateRecommendations(a),
		Confidence:      a.Confidence,
	}
}

// advice is the copy an expert attaches to one of its sub-scores.
type advice struct {
	label    string
	weak     string
	strong   string
	action   string
	detail   string
	steps    []string
	effort   assessment.Effort
	timeline string
	impact   string
}

// base carries the profile and advice tables shared by domain experts and
// implements the threshold-gated insight and recommendation generation.
type base struct {
	profile Profile
	advice  map[string]advice
	fields  []string
}

func (b *base) Profile() Profile { return b.profile }

// finish weights the sub-scores into a health score and fills in the
// common parts of an analysis.
func (b *base) finish(in *Input, subs []SubScore, sections map[string]interface{}) *Analysis {
	for i := range subs {
		subs[i].Value = assessment.Round1(assessment.Clamp(subs[i].Value, 0, 100))
	}
	health := weightedHealth(subs)
	a := &Analysis{
		Profile:    b.profile,
		SubScores:  subs,
		Health:     health,
		Plan:       playbook.ClassifyPlan(health, 0),
		Confidence: Confidence(in.Answers, b.fields),
		Sections:   sections,
	}
	if in.Findings != nil {
		a.Violations = in.Findings.ViolationsFor(b.profile.ID)
	}
	return a
}

func weightedHealth(subs []SubScore) float64 {
	var sum, weights float64
	for _, s := range subs {
		sum += s.Value * s.Weight
		weights += s.Weight
	}
	if weights == 0 {
		return assessment.ScoreMidpoint
	}
	return assessment.Round1(assessment.Clamp(sum/weights, 0, 100))
}

// GenerateInsights emits one insight per sub-score outside the neutral band
// and one negative insight per owned consistency violation.
func (b *base) GenerateInsights(a *Analysis) []assessment.Insight {
	insights := make([]assessment.Insight, 0, len(a.SubScores)+len(a.Violations))
	for _, s := range a.SubScores {
		adv := b.advice[s.Name]
		label := adv.label
		if label == "" {
			label = s.Name
		}
		switch {
		case s.Value < CriticalThreshold:
			insights = append(insights, assessment.Insight{
				Title:       fmt.Sprintf("%s is critical (%.0f/100)", label, s.Value),
				Description: adv.weak,
				Impact:      assessment.ImpactNegative,
				Confidence:  a.Confidence,
			})
		case s.Value < HighThreshold:
			insights = append(insights, assessment.Insight{
				Title:       fmt.Sprintf("%s needs attention (%.0f/100)", label, s.Value),
				Description: adv.weak,
				Impact:      assessment.ImpactWarning,
				Confidence:  a.Confidence,
			})
		case s.Value >= StrongThreshold:
			insights = append(insights, assessment.Insight{
				Title:       fmt.Sprintf("%s is a strength (%.0f/100)", label, s.Value),
				Description: adv.strong,
				Impact:      assessment.ImpactPositive,
				Confidence:  a.Confidence,
			})
		}
	}
	insights = append(insights, violationInsights(a)...)
	if len(insights) == 0 {
		insights = append(insights, assessment.Insight{
			Title:       fmt.Sprintf("%s: no major issues", b.profile.Name),
			Description: fmt.Sprintf("Health score of %.0f/100 with every factor in the normal band.", a.Health),
			Impact:      assessment.ImpactNeutral,
			Confidence:  a.Confidence,
		})
	}
	return insights
}

func violationInsights(a *Analysis) []assessment.Insight {
	out := make([]assessment.Insight, 0, len(a.Violations))
	for _, v := range a.Violations {
		out = append(out, assessment.Insight{
			Title:       v.Title,
			Description: v.Description,
			Impact:      assessment.ImpactNegative,
			Confidence:  a.Confidence,
		})
	}
	return out
}

// GenerateRecommendations emits a critical or high item for every sub-score
// below the high threshold. When none is, the weakest factor gets one
// lower-priority item.
func (b *base) GenerateRecommendations(a *Analysis) []assessment.Recommendation {
	var recs []assessment.Recommendation
	for _, s := range a.SubScores {
		if s.Value >= HighThreshold {
			continue
		}
		recs = append(recs, b.recommendation(s, gate(s.Value)))
	}
	if len(recs) == 0 {
		if w, ok := a.Weakest(); ok {
			recs = append(recs, b.recommendation(w, gate(w.Value)))
		}
	}
	return recs
}

func (b *base) recommendation(s SubScore, priority assessment.Priority) assessment.Recommendation {
	adv := b.advice[s.Name]
	layer := assessment.LayerTactical
	if priority == assessment.PriorityCritical {
		layer = assessment.LayerStrategic
	}
	return assessment.Recommendation{
		ID:              fmt.Sprintf("%s.%s", b.profile.ID, s.Name),
		Title:           adv.action,
		Description:     adv.detail,
		Priority:        priority,
		Layer:           layer,
		Actions:         append([]string(nil), adv.steps...),
		Timeline:        adv.timeline,
		EstimatedImpact: adv.impact,
		Effort:          adv.effort,
		Dimension:       s.Name,
		Source:          b.profile.ID,
	}
}

// gate maps a 0-100 score onto a priority tag.
func gate(v float64) assessment.Priority {
	switch {
	case v < CriticalThreshold:
		return assessment.PriorityCritical
	case v < HighThreshold:
		return assessment.PriorityHigh
	case v < StrongThreshold:
		return assessment.PriorityMedium
	default:
		return assessment.PriorityLow
	}
}

// scale10 reads a 0-10 answer as 0-100, defaulting to the midpoint.
func scale10(a assessment.AnswerMap, key string) float64 {
	return a.ScaleValue(key) * 10
}

// points returns pts when cond holds.
func points(cond bool, pts float64) float64 {
	if cond {
		return pts
	}
	return 0
}
