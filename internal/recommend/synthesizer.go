// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package recommend

import (
	"fmt"
	"sort"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/logging"
)

// Synthesizer generates and ranks the recommendation layers.
type Synthesizer struct {
	cfg *Config
}

// NewSynthesizer creates a synthesizer. A nil config uses DefaultConfig.
func NewSynthesizer(cfg *Config) (*Synthesizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	return &Synthesizer{cfg: cfg.Clone()}, nil
}

// Config returns a copy of the synthesizer configuration.
func (s *Synthesizer) Config() *Config {
	return s.cfg.Clone()
}

// Generate builds all three layers and returns them prioritized.
func (s *Synthesizer) Generate(in *Input) []assessment.Recommendation {
	if in == nil {
		in = &Input{}
	}

	strategic := s.Strategic(in)
	tactical := s.Tactical(in)
	execution := s.Execution(tactical)

	all := make([]assessment.Recommendation, 0, len(strategic)+len(tactical)+len(execution))
	all = append(all, strategic...)
	all = append(all, tactical...)
	all = append(all, execution...)

	logging.Debug().
		Str("plan", string(in.Plan())).
		Int("strategic", len(strategic)).
		Int("tactical", len(tactical)).
		Int("execution", len(execution)).
		Msg("Generated recommendations")

	return Prioritize(all)
}

// Prioritize returns a copy of recs sorted by impact/effort ratio
// descending, then layer order, then input order, with PriorityRank set to
// position+1.
func Prioritize(recs []assessment.Recommendation) []assessment.Recommendation {
	out := append([]assessment.Recommendation(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Ratio(), out[j].Ratio()
		if ri != rj {
			return ri > rj
		}
		return out[i].Layer.Order() < out[j].Layer.Order()
	})
	for i := range out {
		out[i].PriorityRank = i + 1
	}
	return out
}

// ByLayer returns the items of one layer, keeping their order.
func ByLayer(recs []assessment.Recommendation, layer assessment.Layer) []assessment.Recommendation {
	var out []assessment.Recommendation
	for _, r := range recs {
		if r.Layer == layer {
			out = append(out, r)
		}
	}
	return out
}
