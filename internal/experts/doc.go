// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

// Package experts implements the expert panel: independent analyzers that
// each read the answers, context, shared scores and detection findings
// through their own lens, plus the synthesis authority that turns their
// verdicts into one business health score and plan.
//
// Every expert implements Expert. Domain experts map answers through fixed
// lookup tables into two to four 0-100 sub-scores, weight them into a
// health score and gate insights and recommendations by threshold:
//
//	sub-score < 35   critical
//	sub-score < 60   high
//	otherwise        lower-priority guidance
//
// Confidence is shared by all experts: 0.7 x completeness of the expected
// inputs + 0.3 x consistency (1 - coefficient of variation, floored at 0.5)
// of the numeric inputs supplied. No inputs at all yields zero. The
// synthesis authority instead reports the decision-weighted mean confidence
// of the domain experts.
//
// The Panel runs the domain experts first, publishes their health scores
// into the shared score map and then runs the synthesis authority, the
// registered Synthesizer with the highest decision weight. Each domain
// expert casts a plan vote weighted by decision weight x confidence; the
// authority's plan is final and the vote reports agreement and dissent.
package experts
