// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package assessment

import (
	"math"
	"strings"
)

// ScaleMidpoint is the neutral value assumed for a missing 0-10 answer.
const ScaleMidpoint = 5.0

// ScoreMidpoint is the neutral value assumed for a missing 0-100 score.
const ScoreMidpoint = 50.0

// truthyTokens is the closed set of string answers that count as "yes".
var truthyTokens = map[string]struct{}{
	"yes":  {},
	"Yes":  {},
	"YES":  {},
	"y":    {},
	"Y":    {},
	"true": {},
	"True": {},
	"TRUE": {},
	"1":    {},
	"on":   {},
	"نعم":  {},
}

// IsTruthy reports whether s is exactly one of the affirmative tokens.
func IsTruthy(s string) bool {
	_, ok := truthyTokens[s]
	return ok
}

// AnswerMap holds one session's answers keyed by semantic field name.
// It is treated as read-only for the duration of an analysis.
type AnswerMap map[string]Value

// Clone returns a shallow copy safe to hand to another goroutine.
func (a AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Merge overlays src onto a copy of a. Absent values in src delete the key.
func (a AnswerMap) Merge(src AnswerMap) AnswerMap {
	out := a.Clone()
	for k, v := range src {
		if v.Kind() == KindAbsent {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// Has reports whether key carries a non-empty answer.
func (a AnswerMap) Has(key string) bool {
	v, ok := a[key]
	return ok && !v.IsEmpty()
}

// Bool applies the strict truthy rule: true only for boolean true, the
// number 1, or a string that is exactly one of the truthy tokens.
func (a AnswerMap) Bool(key string) bool {
	v, ok := a[key]
	if !ok {
		return false
	}
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num == 1
	case KindString:
		return IsTruthy(v.str)
	default:
		return false
	}
}

// Float returns a numeric answer. Coercion failures resolve to absent.
func (a AnswerMap) Float(key string) (float64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	f, ok := v.AsNumber()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FloatOr returns the numeric answer or def when absent.
func (a AnswerMap) FloatOr(key string, def float64) float64 {
	if f, ok := a.Float(key); ok {
		return f
	}
	return def
}

// ScaleValue returns a 0-10 answer clamped to range, defaulting to the
// midpoint when absent.
func (a AnswerMap) ScaleValue(key string) float64 {
	f, ok := a.Float(key)
	if !ok {
		return ScaleMidpoint
	}
	return Clamp(f, 0, 10)
}

// Scale normalizes a 0-10 answer to a share of maxPoints. With invert set,
// high answers earn fewer points.
func (a AnswerMap) Scale(key string, maxPoints float64, invert bool) float64 {
	v := a.ScaleValue(key)
	if invert {
		v = 10 - v
	}
	return v / 10 * maxPoints
}

// Str returns the trimmed string form of an answer.
func (a AnswerMap) Str(key string) (string, bool) {
	v, ok := a[key]
	if !ok {
		return "", false
	}
	s, ok := v.AsString()
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// List returns the list form of an answer, dropping blank items.
func (a AnswerMap) List(key string) []string {
	v, ok := a[key]
	if !ok {
		return nil
	}
	var out []string
	for _, item := range v.AsList() {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Count returns the number of list items, or the numeric value for a
// numeric answer capped at math.MaxInt32. ok is false when the answer is
// absent.
func (a AnswerMap) Count(key string) (int, bool) {
	if !a.Has(key) {
		return 0, false
	}
	if a[key].Kind() == KindList {
		return len(a.List(key)), true
	}
	if f, ok := a.Float(key); ok {
		return int(Clamp(f, 0, math.MaxInt32)), true
	}
	return len(a.List(key)), true
}

// Revenue returns annual revenue from the answers, falling back to the
// context record.
func (a AnswerMap) Revenue(c Context) (float64, bool) {
	if f, ok := a.Float(FieldAnnualRevenue); ok {
		return f, true
	}
	if c.AnnualRevenue > 0 {
		return c.AnnualRevenue, true
	}
	return 0, false
}

// Employees returns the headcount from the answers, falling back to the
// context record.
func (a AnswerMap) Employees(c Context) (float64, bool) {
	if f, ok := a.Float(FieldEmployeeCount); ok {
		return f, true
	}
	if c.EmployeeCount > 0 {
		return float64(c.EmployeeCount), true
	}
	return 0, false
}

// Ratio divides two answers, returning ok=false when either is missing or
// the denominator is not positive.
func Ratio(num, den float64, numOK, denOK bool) (float64, bool) {
	if !numOK || !denOK || den <= 0 {
		return 0, false
	}
	return num / den, true
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
