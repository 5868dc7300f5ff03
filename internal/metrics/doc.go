// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package metrics registers the Prometheus collectors for the assessment
server and offers small Record helpers for the packages that emit them.

Collectors are package-level promauto variables on the default registry
and are exposed by the API at /metrics. The analysis packages (scoring,
detection, experts, playbook, recommend, alerting) stay free of metrics;
the engine records a finished ResultBundle in one call:

	bundle, err := analyzer.Analyze(ctx, answers, bctx)
	if err == nil {
	    metrics.RecordBundle(bundle)
	}

Circuit breaker state follows gobreaker numbering (0 closed, 1 half-open,
2 open) so dashboards can alert on circuit_breaker_state == 2.
*/
package metrics
