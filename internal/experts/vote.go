// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"math"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// Tally is the outcome of the weighted plan vote.
type Tally struct {
	Votes           []assessment.Vote
	Agreement       float64
	ConsensusHealth float64
	Dissenters      []string
}

// TallyVotes weighs each domain expert's suggested plan by decision weight
// x confidence. Agreement is the weight share backing final; the consensus
// health is the weighted mean of the experts' health scores. The result of
// authorityID is excluded.
func TallyVotes(final assessment.PlanType, results []assessment.ExpertAnalysisResult, authorityID string) Tally {
	t := Tally{Votes: make([]assessment.Vote, 0, len(results))}

	var total, agreeing, weightedHealth, plainHealth float64
	voters := 0
	for _, r := range results {
		if r.ExpertID == authorityID {
			continue
		}
		w := round3(r.DecisionWeight * r.Confidence)
		t.Votes = append(t.Votes, assessment.Vote{ExpertID: r.ExpertID, Plan: r.SuggestedPlan, Weight: w})
		total += w
		weightedHealth += w * r.HealthScore
		plainHealth += r.HealthScore
		voters++
		if r.SuggestedPlan == final {
			agreeing += w
		} else {
			t.Dissenters = append(t.Dissenters, r.ExpertID)
		}
	}

	switch {
	case total > 0:
		t.Agreement = round3(agreeing / total)
		t.ConsensusHealth = assessment.Round1(weightedHealth / total)
	case voters > 0:
		t.ConsensusHealth = assessment.Round1(plainHealth / float64(voters))
	default:
		t.ConsensusHealth = assessment.ScoreMidpoint
	}
	return t
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
