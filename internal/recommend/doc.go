// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

// Package recommend synthesizes the three-layer recommendation list from the
// scores, the chief strategist's verdict and the playbook result.
//
// # Layers
//
//   - Strategic: the plan directive, one item per weakest dimension and the
//     top playbook match, padded with general items to the configured minimum.
//   - Tactical: channel and process items gated by answers and dimension
//     thresholds, padded with general items to the configured minimum.
//   - Execution: the first action steps of each tactical item, one per
//     simulated week.
//
// # Prioritization
//
// Prioritize orders every item by impact/effort ratio descending, breaking
// ties by layer (strategic, tactical, execution) and then by generation
// order, and assigns PriorityRank as position+1.
//
// # Usage
//
//	syn, err := recommend.NewSynthesizer(recommend.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	recs := syn.Generate(&recommend.Input{
//	    Answers:   answers,
//	    Scores:    &scores,
//	    Synthesis: &verdict.Synthesis,
//	    Playbook:  &playbookResult,
//	})
//
// # Thread Safety
//
// A Synthesizer holds only its validated configuration and is safe for
// concurrent use.
package recommend
