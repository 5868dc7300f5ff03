// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

// Package assessment defines the data model shared by every stage of the
// marketing maturity pipeline.
//
// Inputs:
//   - AnswerMap: questionnaire answers keyed by semantic field name. Values
//     are decoded once at the JSON boundary into the Value union.
//   - Context: sector, size, revenue and previously inferred attributes.
//
// Outputs:
//   - Scores / DimensionScore: the five maturity dimensions and the composite.
//   - ExpertAnalysisResult, Insight, Recommendation, Alert.
//   - ResultBundle: the single persisted artifact of one analysis.
//
// Categorical answers are modelled as closed enumerations (Sector,
// RevenueTrend, CompetitionLevel, ...). Parsers return ok=false for any value
// outside the enumeration so that callers treat it as absent.
//
// Session carries the owning assessment lifecycle:
//
//	draft -> in_progress -> completed
//	   \          \-------> abandoned
//	    \-> completed | abandoned
//
// Completed and abandoned are terminal.
package assessment
