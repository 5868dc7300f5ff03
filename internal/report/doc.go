// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

// Package report renders result bundles into the five report variants:
// executive, detailed, action_plan, monthly and competitive. Each variant
// is a typed JSON view; no HTML, CSV or PDF rendering happens here.
package report
