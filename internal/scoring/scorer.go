// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package scoring

import (
	"fmt"
	"math"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// Scorer computes dimension scores. It holds no mutable state and is safe
// for concurrent use.
type Scorer struct {
	cfg *Config
}

// NewScorer creates a scorer. A nil config uses DefaultConfig.
func NewScorer(cfg *Config) (*Scorer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}
	return &Scorer{cfg: cfg.Clone()}, nil
}

// Config returns a copy of the scorer configuration.
func (s *Scorer) Config() *Config {
	return s.cfg.Clone()
}

// Score computes all five dimensions and the composite.
func (s *Scorer) Score(answers assessment.AnswerMap, c assessment.Context) assessment.Scores {
	scores := assessment.Scores{
		Digital:        s.Digital(answers),
		Marketing:      s.Marketing(answers),
		Organizational: s.Organizational(answers, c),
		Risk:           s.Risk(answers),
		Opportunity:    s.Opportunity(answers),
	}
	scores.Overall = s.Composite(&scores)
	scores.MaturityLevel = assessment.ClassifyMaturity(float64(scores.Overall))
	scores.RiskLevel = assessment.ClassifyRisk(scores.Risk.Value)
	return scores
}

// Composite returns the rounded overall score from the five dimensions.
func (s *Scorer) Composite(scores *assessment.Scores) int {
	w := s.cfg.Composite.Normalize()
	overall := scores.Digital.Value*w.Digital +
		scores.Marketing.Value*w.Marketing +
		scores.Organizational.Value*w.Organizational +
		(100-scores.Risk.Value)*w.RiskInverse +
		scores.Opportunity.Value*w.Opportunity
	return int(math.Round(assessment.Clamp(overall, 0, 100)))
}

// dimension accumulates weighted components of one dimension score.
type dimension struct {
	name    string
	ceiling float64
	rescale float64
	comps   []assessment.Component
	total   float64
}

// newPercentDimension accumulates 0-100 sub-components.
func newPercentDimension(name string) *dimension {
	return &dimension{name: name, ceiling: 100, rescale: 1}
}

// newTenPointDimension accumulates 0-10 sub-scores rescaled x10.
func newTenPointDimension(name string) *dimension {
	return &dimension{name: name, ceiling: 10, rescale: 10}
}

func (d *dimension) add(name string, raw, weight float64) {
	raw = assessment.Clamp(raw, 0, d.ceiling)
	contribution := raw * weight * d.rescale
	d.comps = append(d.comps, assessment.Component{
		Name:         name,
		Raw:          assessment.Round1(raw),
		Weight:       weight,
		Contribution: assessment.Round1(contribution),
	})
	d.total += contribution
}

// result rounds the total and labels the rounded value, so Level always
// agrees with Value.
func (d *dimension) result(classify func(float64) string) assessment.DimensionScore {
	value := assessment.Round1(assessment.Clamp(d.total, 0, 100))
	return assessment.DimensionScore{
		Name:       d.name,
		Value:      value,
		Level:      classify(value),
		Components: d.comps,
	}
}

// bonus returns pts when cond holds.
func bonus(cond bool, pts float64) float64 {
	if cond {
		return pts
	}
	return 0
}

// perItem awards pts per counted item up to limit.
func perItem(n int, pts, limit float64) float64 {
	return math.Min(float64(n)*pts, limit)
}

// dimensionLevel labels a 0-100 maturity dimension with the same bands as
// the overall maturity level.
func dimensionLevel(v float64) string {
	return string(assessment.ClassifyMaturity(v))
}

// riskLevel labels the risk dimension.
func riskLevel(v float64) string {
	return string(assessment.ClassifyRisk(v))
}
