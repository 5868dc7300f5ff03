// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// Analysis outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeCanceled    = "canceled"
	OutcomeRateLimited = "rate_limited"
	OutcomeError       = "error"
)

var (
	// Analysis Metrics
	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assessment_analysis_duration_seconds",
			Help:    "Duration of a full assessment analysis in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"mode"}, // "stateless", "session"
	)

	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_analyses_total",
			Help: "Total number of analyses by outcome",
		},
		[]string{"mode", "outcome"},
	)

	AlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_alerts_total",
			Help: "Total number of alerts raised by tier",
		},
		[]string{"tier"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_recommendations_total",
			Help: "Total number of recommendations generated by layer",
		},
		[]string{"layer"},
	)

	PlaybookMatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_playbook_matches_total",
			Help: "Total number of playbook pattern matches",
		},
		[]string{"pattern"},
	)

	DetectionFindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_detection_findings_total",
			Help: "Total number of detection findings by kind",
		},
		[]string{"kind"}, // "red_flag", "green_flag", "anomaly", "violation", "contradiction", "opportunity"
	)

	ExpertConfidence = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assessment_expert_confidence",
			Help:    "Confidence reported by each expert (0-1)",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
		[]string{"expert"},
	)

	PlanTypesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_plan_types_total",
			Help: "Total number of final plan decisions by plan type",
		},
		[]string{"plan"},
	)

	// Session Metrics
	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_session_transitions_total",
			Help: "Total number of session status transitions",
		},
		[]string{"from", "to"},
	)

	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assessment_store_operation_duration_seconds",
			Help:    "Duration of session store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver", "operation"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_store_errors_total",
			Help: "Total number of session store errors",
		},
		[]string{"driver", "operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_events_published_total",
			Help: "Total number of domain events published",
		},
		[]string{"topic"},
	)

	EventsPublishFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_events_publish_failed_total",
			Help: "Total number of domain events that failed to publish",
		},
		[]string{"topic"},
	)

	EventsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_events_handled_total",
			Help: "Total number of domain events consumed by the router",
		},
		[]string{"topic", "result"}, // result: "success", "failure"
	)

	EventHandlingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assessment_event_handling_duration_seconds",
			Help:    "Duration of event handling in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	// Result Cache Metrics
	ResultCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_lookups_total",
			Help: "Total number of stored-result cache lookups by outcome",
		},
		[]string{"outcome"}, // "hit", "miss"
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// RecordAnalysis records one analysis attempt.
func RecordAnalysis(mode, outcome string, duration time.Duration) {
	AnalysesTotal.WithLabelValues(mode, outcome).Inc()
	if outcome == OutcomeSuccess {
		AnalysisDuration.WithLabelValues(mode).Observe(duration.Seconds())
	}
}

// RecordBundle records the contents of a finished analysis.
func RecordBundle(b *assessment.ResultBundle) {
	if b == nil {
		return
	}
	for i := range b.Alerts {
		AlertsTotal.WithLabelValues(string(b.Alerts[i].Tier)).Inc()
	}
	for i := range b.Recommendations {
		RecommendationsTotal.WithLabelValues(string(b.Recommendations[i].Layer)).Inc()
	}
	for i := range b.Playbook.Matches {
		PlaybookMatchesTotal.WithLabelValues(b.Playbook.Matches[i].ID).Inc()
	}
	for i := range b.ExpertResults {
		ExpertConfidence.WithLabelValues(b.ExpertResults[i].ExpertID).Observe(b.ExpertResults[i].Confidence)
	}
	recordFindings(&b.Findings)
	if b.Synthesis.PlanType != "" {
		PlanTypesTotal.WithLabelValues(string(b.Synthesis.PlanType)).Inc()
	}
}

func recordFindings(f *assessment.Findings) {
	kinds := []struct {
		kind  string
		count int
	}{
		{"red_flag", len(f.RedFlags)},
		{"green_flag", len(f.GreenFlags)},
		{"anomaly", len(f.Anomalies)},
		{"violation", len(f.Violations)},
		{"contradiction", len(f.Contradictions)},
		{"opportunity", len(f.Opportunities)},
	}
	for _, k := range kinds {
		if k.count > 0 {
			DetectionFindingsTotal.WithLabelValues(k.kind).Add(float64(k.count))
		}
	}
}

// RecordResultCacheLookup records a stored-result cache lookup.
func RecordResultCacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	ResultCacheLookups.WithLabelValues(outcome).Inc()
}

// RecordSessionTransition records a session status change.
func RecordSessionTransition(from, to assessment.SessionStatus) {
	SessionTransitions.WithLabelValues(string(from), string(to)).Inc()
}

// RecordStoreOperation records a store call.
func RecordStoreOperation(driver, operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(driver, operation).Observe(duration.Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(driver, operation).Inc()
	}
}

// RecordBreakerRequest records the result of a call through a breaker.
func RecordBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordBreakerTransition updates the state gauge and the transition count.
// state uses gobreaker's numbering: 0 closed, 1 half-open, 2 open.
func RecordBreakerTransition(name, from, to string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordEventPublished records a publish attempt.
func RecordEventPublished(topic string, err error) {
	if err != nil {
		EventsPublishFailed.WithLabelValues(topic).Inc()
		return
	}
	EventsPublished.WithLabelValues(topic).Inc()
}

// RecordEventHandled records a consumed event.
func RecordEventHandled(topic string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	EventsHandled.WithLabelValues(topic, result).Inc()
	EventHandlingDuration.Observe(duration.Seconds())
}

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// NormalizeEndpoint replaces session IDs in a path with a placeholder so
// the endpoint label stays low-cardinality.
func NormalizeEndpoint(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if i > 0 && parts[i-1] == "sessions" && p != "" {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}
