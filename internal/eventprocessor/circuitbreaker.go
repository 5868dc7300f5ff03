// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package eventprocessor

import (
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/alfainternational/ma-sub000/internal/logging"
	"github.com/alfainternational/ma-sub000/internal/metrics"
)

// NewCircuitBreaker creates a breaker that trips after FailureThreshold
// consecutive failures. State changes are logged and exported as metrics.
// isSuccessful may be nil; when set, errors it accepts do not count as
// failures.
func NewCircuitBreaker[T any](cfg CircuitBreakerConfig, isSuccessful func(error) bool) *gobreaker.CircuitBreaker[T] {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordBreakerTransition(name, from.String(), to.String(), int(to))
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
		IsSuccessful: isSuccessful,
	}
	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(float64(gobreaker.StateClosed))
	return gobreaker.NewCircuitBreaker[T](settings)
}

// CircuitBreakerState returns the breaker state for health output.
func CircuitBreakerState[T any](cb *gobreaker.CircuitBreaker[T]) string {
	return cb.State().String()
}

// BreakerResult maps an Execute error onto the requests metric label.
func BreakerResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsBreakerRejection(err):
		return "rejected"
	default:
		return "failure"
	}
}

// IsBreakerRejection reports whether err came from an open or saturated
// breaker rather than from the protected call.
func IsBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
