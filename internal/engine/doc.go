// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package engine wires the assessment stages into one pipeline and wraps it
with the session lifecycle.

Analyzer runs, in order: dimension scoring, pattern and consistency
detection, the expert panel with its synthesis authority, playbook
matching against the panel's score map, recommendation synthesis and alert
evaluation. The result is a single assessment.ResultBundle. Analyzer is
stateless; the context is checked between stages.

Service adds:

  - session state changes (draft, in_progress, completed, abandoned)
  - persistence through database.Store behind a gobreaker circuit breaker
  - a global token bucket and a per-analysis timeout
  - per-session write serialization
  - lifecycle events on an EventPublisher

Errors from Service are wrapped with the operation and compare with
errors.Is against ErrSessionNotFound, ErrResultNotFound,
ErrInvalidTransition, ErrSessionNotCompleted, ErrStoreUnavailable and
ErrRateLimited.
*/
package engine
