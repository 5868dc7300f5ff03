// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/cache"
	"github.com/alfainternational/ma-sub000/internal/config"
	"github.com/alfainternational/ma-sub000/internal/database"
	"github.com/alfainternational/ma-sub000/internal/eventprocessor"
	"github.com/alfainternational/ma-sub000/internal/logging"
	"github.com/alfainternational/ma-sub000/internal/metrics"
	"github.com/alfainternational/ma-sub000/internal/report"
)

// Analysis modes for metrics.
const (
	ModeStateless = "stateless"
	ModeSession   = "session"
)

// StoreBreakerName labels the persistence circuit breaker.
const StoreBreakerName = "session-store"

// EventPublisher receives lifecycle events. *eventprocessor.Bus satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, event *eventprocessor.AssessmentEvent) error
}

// Service owns the session lifecycle around the Analyzer: persistence
// behind a circuit breaker, a global analysis rate limit, per-session
// write serialization, a stored-result cache and event publishing.
type Service struct {
	analyzer  *Analyzer
	store     database.Store
	results   *cache.LRU[*assessment.ResultBundle] // nil when disabled
	publisher EventPublisher
	breaker   *gobreaker.CircuitBreaker[any]
	limiter   *rate.Limiter
	locks     *keyedMutex
	timeout   time.Duration
	now       func() time.Time
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithPublisher sets the event publisher. Without one no events are sent.
func WithPublisher(p EventPublisher) ServiceOption {
	return func(s *Service) { s.publisher = p }
}

// WithServiceClock sets the clock for session timestamps.
func WithServiceClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service. cfg supplies the timeout, the rate limit,
// the breaker and the result cache settings.
func NewService(analyzer *Analyzer, store database.Store, cfg config.EngineConfig, opts ...ServiceOption) *Service {
	breakerCfg := eventprocessor.DefaultCircuitBreakerConfig(StoreBreakerName)
	if cfg.BreakerMaxFailures > 0 {
		breakerCfg.FailureThreshold = cfg.BreakerMaxFailures
	}
	if cfg.BreakerTimeout > 0 {
		breakerCfg.Timeout = cfg.BreakerTimeout
	}

	limit := rate.Inf
	if cfg.AnalysisRate > 0 {
		limit = rate.Limit(cfg.AnalysisRate)
	}
	burst := cfg.AnalysisBurst
	if burst < 1 {
		burst = 1
	}

	s := &Service{
		analyzer: analyzer,
		store:    store,
		breaker:  eventprocessor.NewCircuitBreaker[any](breakerCfg, isStoreSuccess),
		limiter:  rate.NewLimiter(limit, burst),
		locks:    newKeyedMutex(),
		timeout:  cfg.AnalysisTimeout,
		now:      time.Now,
	}
	if cfg.ResultCacheSize > 0 {
		s.results = cache.NewLRU[*assessment.ResultBundle](cfg.ResultCacheSize, cfg.ResultCacheTTL)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// isStoreSuccess keeps lookups of missing records and caller cancellations
// from tripping the breaker.
func isStoreSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, database.ErrSessionNotFound) ||
		errors.Is(err, database.ErrSessionExists) ||
		errors.Is(err, database.ErrResultNotFound) ||
		errors.Is(err, context.Canceled)
}

// storeCall runs fn through the store breaker.
func storeCall[T any](s *Service, fn func() (T, error)) (T, error) {
	var out T
	_, err := s.breaker.Execute(func() (any, error) {
		v, err := fn()
		out = v
		return nil, err
	})
	metrics.RecordBreakerRequest(StoreBreakerName, eventprocessor.BreakerResult(err))
	if eventprocessor.IsBreakerRejection(err) {
		return out, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return out, err
}

func storeExec(s *Service, fn func() error) error {
	_, err := storeCall(s, func() (struct{}, error) { return struct{}{}, fn() })
	return err
}

// Analyzer returns the underlying pipeline.
func (s *Service) Analyzer() *Analyzer { return s.analyzer }

// BreakerState reports the store breaker state.
func (s *Service) BreakerState() string {
	return eventprocessor.CircuitBreakerState(s.breaker)
}

// Ready checks the store.
func (s *Service) Ready(ctx context.Context) error {
	return storeExec(s, func() error { return s.store.Ping(ctx) })
}

// CreateSession starts a draft session.
func (s *Service) CreateSession(ctx context.Context, c assessment.Context) (*assessment.Session, error) {
	sess := assessment.NewSession(uuid.NewString(), c, s.now().UTC())
	if err := storeExec(s, func() error { return s.store.CreateSession(ctx, sess) }); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	logging.Ctx(ctx).Info().Str("session_id", sess.ID).Str("sector", string(c.Sector)).Msg("Session created")
	return sess, nil
}

// GetSession loads a session.
func (s *Service) GetSession(ctx context.Context, id string) (*assessment.Session, error) {
	sess, err := storeCall(s, func() (*assessment.Session, error) { return s.store.GetSession(ctx, id) })
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return sess, nil
}

// ListSessions returns sessions newest first.
func (s *Service) ListSessions(ctx context.Context, filter database.ListFilter) ([]*assessment.Session, error) {
	list, err := storeCall(s, func() ([]*assessment.Session, error) { return s.store.ListSessions(ctx, filter) })
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return list, nil
}

// GetAnswers returns the stored answers for a session.
func (s *Service) GetAnswers(ctx context.Context, id string) (assessment.AnswerMap, error) {
	answers, err := storeCall(s, func() (assessment.AnswerMap, error) { return s.store.GetAnswers(ctx, id) })
	if err != nil {
		return nil, fmt.Errorf("get answers %s: %w", id, err)
	}
	return answers, nil
}

// SubmitAnswers merges answers into an open session. A draft session moves
// to in_progress before the answers are saved, so a failed status update
// leaves nothing stored. Closed sessions reject answers with
// ErrInvalidTransition.
func (s *Service) SubmitAnswers(ctx context.Context, id string, answers assessment.AnswerMap) (*assessment.Session, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status.Terminal() {
		return nil, fmt.Errorf("submit answers to %s session: %w", sess.Status, ErrInvalidTransition)
	}

	draft := sess.Status == assessment.StatusDraft
	if draft {
		if err := s.transition(ctx, sess, assessment.StatusInProgress); err != nil {
			return nil, err
		}
	}

	if err := storeExec(s, func() error { return s.store.SaveAnswers(ctx, id, answers) }); err != nil {
		return nil, fmt.Errorf("save answers %s: %w", id, err)
	}

	if !draft {
		sess.UpdatedAt = s.now().UTC()
		if err := storeExec(s, func() error { return s.store.UpdateSession(ctx, sess) }); err != nil {
			return nil, fmt.Errorf("update session %s: %w", id, err)
		}
	}
	return sess, nil
}

// Complete marks a session completed.
func (s *Service) Complete(ctx context.Context, id string) (*assessment.Session, error) {
	return s.changeStatus(ctx, id, assessment.StatusCompleted)
}

// Abandon marks a session abandoned.
func (s *Service) Abandon(ctx context.Context, id string) (*assessment.Session, error) {
	return s.changeStatus(ctx, id, assessment.StatusAbandoned)
}

func (s *Service) changeStatus(ctx context.Context, id string, to assessment.SessionStatus) (*assessment.Session, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(ctx, sess, to); err != nil {
		return nil, err
	}
	return sess, nil
}

// transition applies, persists and announces a status change. The caller
// holds the session lock.
func (s *Service) transition(ctx context.Context, sess *assessment.Session, to assessment.SessionStatus) error {
	from := sess.Status
	now := s.now().UTC()
	if err := sess.Transition(to, now); err != nil {
		return err
	}
	if err := storeExec(s, func() error { return s.store.UpdateSession(ctx, sess) }); err != nil {
		sess.Status = from
		return fmt.Errorf("update session %s: %w", sess.ID, err)
	}

	metrics.RecordSessionTransition(from, to)
	logging.Ctx(ctx).Info().
		Str("session_id", sess.ID).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("Session status changed")
	s.publish(ctx, eventprocessor.NewStatusChangedEvent(sess.ID, from, to, now))
	return nil
}

// Analyze runs a stateless analysis under the rate limit and timeout.
func (s *Service) Analyze(ctx context.Context, answers assessment.AnswerMap, c assessment.Context) (*assessment.ResultBundle, error) {
	return s.run(ctx, ModeStateless, answers, c)
}

// AnalyzeSession analyzes a completed session and stores the result,
// replacing any earlier one. An analyzed event is published afterwards.
func (s *Service) AnalyzeSession(ctx context.Context, id string) (*assessment.ResultBundle, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status != assessment.StatusCompleted {
		return nil, fmt.Errorf("analyze session %s (%s): %w", id, sess.Status, ErrSessionNotCompleted)
	}
	answers, err := s.GetAnswers(ctx, id)
	if err != nil {
		return nil, err
	}

	bundle, err := s.run(logging.ContextWithSessionID(ctx, id), ModeSession, answers, sess.Context)
	if err != nil {
		return nil, err
	}
	bundle.SessionID = id

	if err := storeExec(s, func() error { return s.store.SaveResult(ctx, bundle) }); err != nil {
		if s.results != nil {
			s.results.Remove(id)
		}
		return nil, fmt.Errorf("save result %s: %w", id, err)
	}
	if s.results != nil {
		s.results.Add(id, bundle)
	}
	s.publish(ctx, eventprocessor.NewAnalyzedEvent(bundle))
	return bundle, nil
}

func (s *Service) run(ctx context.Context, mode string, answers assessment.AnswerMap, c assessment.Context) (*assessment.ResultBundle, error) {
	start := time.Now()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.limiter.Wait(ctx); err != nil {
		metrics.RecordAnalysis(mode, metrics.OutcomeRateLimited, time.Since(start))
		return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	bundle, err := s.analyzer.Analyze(ctx, answers, c)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			outcome = metrics.OutcomeCanceled
		}
		metrics.RecordAnalysis(mode, outcome, time.Since(start))
		return nil, err
	}

	metrics.RecordAnalysis(mode, metrics.OutcomeSuccess, time.Since(start))
	metrics.RecordBundle(bundle)
	return bundle, nil
}

// GetResult returns the stored result of a session. Recently read or
// written results come from the cache. The bundle is shared; callers must
// not modify it.
func (s *Service) GetResult(ctx context.Context, id string) (*assessment.ResultBundle, error) {
	if s.results != nil {
		bundle, ok := s.results.Get(id)
		metrics.RecordResultCacheLookup(ok)
		if ok {
			return bundle, nil
		}
	}

	if _, err := s.GetSession(ctx, id); err != nil {
		return nil, err
	}
	bundle, err := storeCall(s, func() (*assessment.ResultBundle, error) { return s.store.GetResult(ctx, id) })
	if err != nil {
		return nil, fmt.Errorf("get result %s: %w", id, err)
	}
	if s.results != nil {
		s.results.Add(id, bundle)
	}
	return bundle, nil
}

// Report renders a report variant from the stored result.
func (s *Service) Report(ctx context.Context, id string, variant report.Variant) (*report.Report, error) {
	bundle, err := s.GetResult(ctx, id)
	if err != nil {
		return nil, err
	}
	return report.Build(bundle, variant)
}

// publish sends an event without failing the caller. Publish errors are
// logged and counted by the bus.
func (s *Service) publish(ctx context.Context, event *eventprocessor.AssessmentEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logging.Ctx(ctx).Warn().Err(err).
			Str("session_id", event.SessionID).
			Str("event_type", event.Type).
			Msg("Failed to publish assessment event")
	}
}
