// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

// Package playbook matches an assessment against a fixed library of named
// situational patterns, classifies the plan type and projects illustrative
// score bands.
//
// A Pattern is a conjunction of Conditions over answers, scores, context and
// a few derived ratios. Every matching pattern is returned with its fixed
// confidence, recommended plan, action list and the experts whose view
// should weigh most for that situation.
//
// Plan classification is independent of pattern matches:
//
//	risk > 70 or overall < 20  -> emergency
//	overall < 40               -> treatment
//	overall < 70               -> growth
//	otherwise                  -> transformation
//
// Projections are fixed additive offsets from the current overall score and
// are not a fitted forecast.
package playbook
