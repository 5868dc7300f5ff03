// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"fmt"
	"sort"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/playbook"
)

// Focus pillar selection.
const (
	minFocusPillars   = 2
	maxFocusPillars   = 3
	thirdPillarCutoff = 60.0
)

// healthDimension is one input of the business health score.
type healthDimension struct {
	key     assessment.ScoreKey
	weight  float64
	inverse bool
}

var healthDimensions = []healthDimension{
	{key: assessment.ScoreFinancial, weight: 0.25},
	{key: assessment.ScoreMarket, weight: 0.20},
	{key: assessment.ScoreDigital, weight: 0.15},
	{key: assessment.ScoreBrand, weight: 0.15},
	{key: assessment.ScoreOperations, weight: 0.10},
	{key: assessment.ScoreInnovation, weight: 0.10},
	{key: assessment.ScoreRisk, weight: 0.05, inverse: true},
}

var pillarAdvice = map[assessment.ScoreKey]string{
	assessment.ScoreFinancial:  "Restore profitable unit economics and a sustainable budget.",
	assessment.ScoreMarket:     "Reposition against competitors and focus on growing segments.",
	assessment.ScoreDigital:    "Build the digital channels customers use to find and buy.",
	assessment.ScoreBrand:      "Raise awareness and sharpen what the brand stands for.",
	assessment.ScoreOperations: "Give the team the process and capacity to execute.",
	assessment.ScoreInnovation: "Start testing new channels, tools and offers.",
	assessment.ScoreRisk:       "Reduce exposure to the largest business risks.",
}

// ChiefStrategist is the synthesis authority. It weighs seven dimensions of
// the shared score map into the business health score, fixes the final plan
// and chooses the strategic focus pillars.
type ChiefStrategist struct {
	profile Profile
}

// NewChiefStrategist creates the chief strategist.
func NewChiefStrategist() *ChiefStrategist {
	return &ChiefStrategist{profile: Profile{
		ID:             IDChiefStrategist,
		Name:           "Chief Strategist",
		Role:           "Reconciles the panel into one verdict and plan",
		Expertise:      []string{"strategy", "prioritization", "synthesis"},
		DecisionWeight: 1.0,
	}}
}

// Profile implements Expert.
func (c *ChiefStrategist) Profile() Profile { return c.profile }

// Analyze implements Expert.
func (c *ChiefStrategist) Analyze(in *Input) *Analysis {
	subs := make([]SubScore, 0, len(healthDimensions))
	breakdown := make(map[string]float64, len(healthDimensions))
	present := 0
	values := make([]float64, 0, len(healthDimensions))

	for _, d := range healthDimensions {
		v, ok := in.Scores.Lookup(d.key)
		if ok {
			present++
			values = append(values, v)
		} else {
			v = assessment.ScoreMidpoint
		}
		if d.inverse {
			v = 100 - v
		}
		v = assessment.Round1(assessment.Clamp(v, 0, 100))
		subs = append(subs, SubScore{Name: string(d.key), Value: v, Weight: d.weight})
		breakdown[string(d.key)] = v
	}

	pillars := FocusPillars(subs)
	health := weightedHealth(subs)

	// Scorer dimensions exist even for an empty answer map, so confidence
	// follows the panel rather than dimension presence.
	confidence := 0.0
	switch {
	case len(in.Panel) > 0:
		confidence = PanelConfidence(in.Panel)
	case len(in.Answers) > 0:
		confidence = ConfidenceFrom(present, len(healthDimensions), values)
	}

	return &Analysis{
		Profile:    c.profile,
		SubScores:  subs,
		Health:     health,
		Plan:       playbook.ClassifyPlan(in.Scores.Get(assessment.ScoreOverall), in.Scores.Get(assessment.ScoreRisk)),
		Confidence: confidence,
		Sections: map[string]interface{}{
			"health_breakdown": breakdown,
			"focus_pillars":    pillars,
		},
	}
}

// FocusPillars returns the two lowest dimensions, plus the third lowest
// when it is below 60. Ties keep dimension order.
func FocusPillars(subs []SubScore) []string {
	sorted := append([]SubScore(nil), subs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	pillars := make([]string, 0, maxFocusPillars)
	for i, s := range sorted {
		if i >= maxFocusPillars {
			break
		}
		if i >= minFocusPillars && s.Value >= thirdPillarCutoff {
			break
		}
		pillars = append(pillars, s.Name)
	}
	return pillars
}

func (c *ChiefStrategist) pillars(a *Analysis) []string {
	if p, ok := a.Sections["focus_pillars"].([]string); ok {
		return p
	}
	return FocusPillars(a.SubScores)
}

// GenerateInsights implements Expert.
func (c *ChiefStrategist) GenerateInsights(a *Analysis) []assessment.Insight {
	impact := assessment.ImpactNeutral
	switch {
	case a.Health < CriticalThreshold:
		impact = assessment.ImpactNegative
	case a.Health < HighThreshold:
		impact = assessment.ImpactWarning
	case a.Health >= StrongThreshold:
		impact = assessment.ImpactPositive
	}
	insights := []assessment.Insight{{
		Title:       fmt.Sprintf("Business health %.0f/100: %s plan", a.Health, a.Plan),
		Description: planSummary(a.Plan),
		Impact:      impact,
		Confidence:  a.Confidence,
	}}

	values := a.SubScoreMap()
	for _, p := range c.pillars(a) {
		v := values[p]
		pillarImpact := assessment.ImpactWarning
		if v < CriticalThreshold {
			pillarImpact = assessment.ImpactNegative
		}
		insights = append(insights, assessment.Insight{
			Title:       fmt.Sprintf("Focus pillar: %s (%.0f/100)", p, v),
			Description: pillarAdvice[assessment.ScoreKey(p)],
			Impact:      pillarImpact,
			Confidence:  a.Confidence,
		})
	}
	return insights
}

// GenerateRecommendations implements Expert.
func (c *ChiefStrategist) GenerateRecommendations(a *Analysis) []assessment.Recommendation {
	values := a.SubScoreMap()
	pillars := c.pillars(a)
	recs := make([]assessment.Recommendation, 0, len(pillars))
	for _, p := range pillars {
		v := values[p]
		recs = append(recs, assessment.Recommendation{
			ID:              fmt.Sprintf("%s.focus.%s", c.profile.ID, p),
			Title:           fmt.Sprintf("Make %s a strategic focus", p),
			Description:     pillarAdvice[assessment.ScoreKey(p)],
			Priority:        gate(v),
			Layer:           assessment.LayerStrategic,
			Actions:         []string{fmt.Sprintf("Name an owner for %s", p), "Set a 90-day target and review it monthly"},
			Timeline:        "90 days",
			EstimatedImpact: fmt.Sprintf("Lift %s from %.0f toward %.0f", p, v, assessment.Clamp(v+20, 0, 100)),
			Effort:          assessment.EffortHigh,
			Dimension:       p,
			Source:          c.profile.ID,
		})
	}
	return recs
}

// Synthesize implements Synthesizer.
func (c *ChiefStrategist) Synthesize(a *Analysis, results []assessment.ExpertAnalysisResult) assessment.Synthesis {
	tally := TallyVotes(a.Plan, results, c.profile.ID)
	breakdown, _ := a.Sections["health_breakdown"].(map[string]float64)
	return assessment.Synthesis{
		BusinessHealth:  a.Health,
		HealthBreakdown: breakdown,
		PlanType:        a.Plan,
		FocusPillars:    c.pillars(a),
		ConsensusHealth: tally.ConsensusHealth,
		Agreement:       tally.Agreement,
		Votes:           tally.Votes,
		Dissenters:      tally.Dissenters,
		Confidence:      a.Confidence,
	}
}

func planSummary(p assessment.PlanType) string {
	switch p {
	case assessment.PlanEmergency:
		return "Stabilize the business first: protect cash, keep existing customers and stop unproductive spend."
	case assessment.PlanTreatment:
		return "Fix the weakest foundations before investing in growth."
	case assessment.PlanGrowth:
		return "Foundations are in place: scale what works and close the remaining gaps."
	default:
		return "The business is mature: invest in transformation and new sources of advantage."
	}
}
