// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

// Package detection evaluates fixed threshold rules over an answer set and
// its scores to surface red flags, green flags, anomalies, consistency
// violations, contradictions and opportunities.
//
// Detection Architecture:
//
//	AnswerMap + Context + Scores -> Engine -> Rule.Evaluate -> Findings
//
// Every rule fires independently; the engine only groups the findings by
// category in registration order. Rules never mutate their input and skip
// silently when a ratio denominator is missing or zero.
//
// Supported rule categories:
//   - Red flags: declining revenue, thin margin, heavy churn, overspend,
//     no website, weak differentiation under severe competition
//   - Green flags: delighted customers, growing revenue, strong NPS,
//     data-driven decisions
//   - Anomalies: implausible revenue per employee
//   - Consistency: cross-field ratios owned by a named expert
//   - Contradictions: self-reported claims the other answers disagree with
//   - Opportunities: upside the business is not yet capturing
package detection
