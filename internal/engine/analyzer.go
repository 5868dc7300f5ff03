// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/alfainternational/ma-sub000/internal/alerting"
	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/detection"
	"github.com/alfainternational/ma-sub000/internal/experts"
	"github.com/alfainternational/ma-sub000/internal/logging"
	"github.com/alfainternational/ma-sub000/internal/playbook"
	"github.com/alfainternational/ma-sub000/internal/recommend"
	"github.com/alfainternational/ma-sub000/internal/scoring"
)

// Analyzer runs the full assessment pipeline. It holds no per-analysis
// state and is safe for concurrent use.
type Analyzer struct {
	scorer    *scoring.Scorer
	detector  *detection.Engine
	panel     *experts.Panel
	matcher   *playbook.Matcher
	recommend *recommend.Synthesizer
	alerts    *alerting.Evaluator
	now       func() time.Time
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithClock sets the clock stamping GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// WithScorer replaces the dimension scorer.
func WithScorer(s *scoring.Scorer) Option {
	return func(a *Analyzer) { a.scorer = s }
}

// WithDetector replaces the pattern detector.
func WithDetector(d *detection.Engine) Option {
	return func(a *Analyzer) { a.detector = d }
}

// WithPanel replaces the expert panel.
func WithPanel(p *experts.Panel) Option {
	return func(a *Analyzer) { a.panel = p }
}

// WithMatcher replaces the playbook matcher.
func WithMatcher(m *playbook.Matcher) Option {
	return func(a *Analyzer) { a.matcher = m }
}

// WithSynthesizer replaces the recommendation synthesizer.
func WithSynthesizer(s *recommend.Synthesizer) Option {
	return func(a *Analyzer) { a.recommend = s }
}

// WithEvaluator replaces the alert evaluator.
func WithEvaluator(e *alerting.Evaluator) Option {
	return func(a *Analyzer) { a.alerts = e }
}

// NewAnalyzer creates an analyzer with the default components, then
// applies opts.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}

	var err error
	if a.scorer == nil {
		if a.scorer, err = scoring.NewScorer(nil); err != nil {
			return nil, fmt.Errorf("create scorer: %w", err)
		}
	}
	if a.detector == nil {
		a.detector = detection.NewDefaultEngine()
	}
	if a.panel == nil {
		a.panel = experts.DefaultPanel()
	}
	if a.matcher == nil {
		if a.matcher, err = playbook.NewMatcher(); err != nil {
			return nil, fmt.Errorf("create playbook matcher: %w", err)
		}
	}
	if a.recommend == nil {
		if a.recommend, err = recommend.NewSynthesizer(nil); err != nil {
			return nil, fmt.Errorf("create recommendation synthesizer: %w", err)
		}
	}
	if a.alerts == nil {
		if a.alerts, err = alerting.NewEvaluator(); err != nil {
			return nil, fmt.Errorf("create alert evaluator: %w", err)
		}
	}
	if _, ok := a.panel.Authority(); !ok {
		return nil, experts.ErrNoAuthority
	}
	return a, nil
}

// Matcher returns the playbook matcher, used for library listings.
func (a *Analyzer) Matcher() *playbook.Matcher { return a.matcher }

// Analyze scores the answers, runs detection and the expert panel, matches
// playbooks and produces recommendations and alerts. The only errors are
// context cancellation between stages and a panel without an authority.
func (a *Analyzer) Analyze(ctx context.Context, answers assessment.AnswerMap, c assessment.Context) (*assessment.ResultBundle, error) {
	if answers == nil {
		answers = assessment.AnswerMap{}
	}

	scores := a.scorer.Score(answers, c)
	if err := stageDone(ctx, "scoring"); err != nil {
		return nil, err
	}

	findings := a.detector.Run(&detection.Input{Answers: answers, Context: c, Scores: &scores})
	if err := stageDone(ctx, "detection"); err != nil {
		return nil, err
	}

	verdict, err := a.panel.Run(&experts.Input{
		Answers:  answers,
		Context:  c,
		Scores:   scores.Map(),
		Detail:   &scores,
		Findings: &findings,
	})
	if err != nil {
		return nil, fmt.Errorf("expert panel: %w", err)
	}
	if err := stageDone(ctx, "experts"); err != nil {
		return nil, err
	}

	pb := a.matcher.Evaluate(&playbook.Input{Answers: answers, Context: c, Scores: verdict.Scores})
	if err := stageDone(ctx, "playbook"); err != nil {
		return nil, err
	}

	recs := a.recommend.Generate(&recommend.Input{
		Answers:   answers,
		Context:   c,
		Scores:    &scores,
		Synthesis: &verdict.Synthesis,
		Playbook:  &pb,
	})
	alerts := a.alerts.Evaluate(&alerting.Input{Answers: answers, Context: c, Scores: &scores})

	bundle := &assessment.ResultBundle{
		Scores:          scores,
		Findings:        findings,
		Playbook:        pb,
		ExpertResults:   verdict.Results,
		Synthesis:       verdict.Synthesis,
		Recommendations: recs,
		Alerts:          alerts,
		GeneratedAt:     a.now().UTC(),
	}

	logging.Ctx(ctx).Debug().
		Int("overall", scores.Overall).
		Str("plan", string(verdict.Synthesis.PlanType)).
		Int("findings", findings.Total()).
		Int("patterns", len(pb.Matches)).
		Int("recommendations", len(recs)).
		Int("alerts", len(alerts)).
		Msg("Analysis complete")
	return bundle, nil
}

func stageDone(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("analysis canceled after %s: %w", stage, err)
	}
	return nil
}
