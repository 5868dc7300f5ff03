// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

// Package scoring computes the five maturity dimensions and the composite
// overall score from raw answers.
//
// Dimensions and their sub-components (weights from DefaultConfig):
//
//	digital         website 25%, social 20%, ads 20%, email 15%, analytics 20%
//	marketing       strategy 30%, execution 40%, measurement 30%
//	organizational  team 35%, budget 30%, leadership 20%, process 15%
//	risk            financial 30%, competitive 25%, execution 25%, market 20% (0-10, x10)
//	opportunity     growth 35%, market 30%, advantage 35% (0-10, x10)
//
// The composite is
//
//	overall = round(digital*.25 + marketing*.25 + organizational*.20 +
//	                (100-risk)*.15 + opportunity*.15)
//
// Every 0-100 sub-component is capped at 100 before weighting and every risk
// or opportunity sub-score is clamped to [0,10] before rescaling. Missing
// scale answers fall back to the midpoint, so the scorer never fails.
package scoring
