// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// ErrUnknownVariant is returned for variant names outside Variants.
var ErrUnknownVariant = errors.New("unknown report variant")

// Variant names a report view.
type Variant string

// Report variants
const (
	VariantExecutive   Variant = "executive"
	VariantDetailed    Variant = "detailed"
	VariantActionPlan  Variant = "action_plan"
	VariantMonthly     Variant = "monthly"
	VariantCompetitive Variant = "competitive"
)

// Variants lists every report variant.
func Variants() []Variant {
	return []Variant{VariantExecutive, VariantDetailed, VariantActionPlan, VariantMonthly, VariantCompetitive}
}

// ParseVariant accepts variant names case-insensitively, with "-" for "_".
func ParseVariant(s string) (Variant, bool) {
	v := Variant(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range Variants() {
		if v == known {
			return v, true
		}
	}
	return "", false
}

// Report is a typed JSON view of a result bundle.
type Report struct {
	Variant     Variant   `json:"variant"`
	SessionID   string    `json:"session_id,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	Body        any       `json:"body"`
}

// Build renders variant from b. The bundle is not modified.
func Build(b *assessment.ResultBundle, variant Variant) (*Report, error) {
	if b == nil {
		return nil, errors.New("report: nil result bundle")
	}

	var body any
	switch variant {
	case VariantExecutive:
		body = NewExecutive(b)
	case VariantDetailed:
		body = NewDetailed(b)
	case VariantActionPlan:
		body = NewActionPlan(b)
	case VariantMonthly:
		body = NewMonthly(b)
	case VariantCompetitive:
		body = NewCompetitive(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	return &Report{
		Variant:     variant,
		SessionID:   b.SessionID,
		GeneratedAt: b.GeneratedAt,
		Body:        body,
	}, nil
}
