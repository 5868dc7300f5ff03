// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

// Package alerting raises threshold alerts from answers and scores.
//
// Four rule sets run independently: critical, high, warning and
// opportunity. Every alert carries an explicit urgency score in [0, 100].
// The evaluator concatenates the tiers in that order and sorts the result
// by urgency descending, keeping tier order for equal urgencies.
package alerting
