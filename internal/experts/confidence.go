// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"math"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// Confidence weights.
const (
	completenessWeight = 0.7
	consistencyWeight  = 0.3
	consistencyFloor   = 0.5
)

// Confidence scores how much an analysis can be trusted from the expected
// input fields: 0.7 x fraction present + 0.3 x consistency of the numeric
// values among them. No fields present yields 0.
func Confidence(a assessment.AnswerMap, fields []string) float64 {
	present := 0
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		if !a.Has(f) {
			continue
		}
		present++
		if v, ok := a.Float(f); ok {
			values = append(values, v)
		}
	}
	return ConfidenceFrom(present, len(fields), values)
}

// ConfidenceFrom applies the confidence formula to a presence count and
// the numeric values supplied.
func ConfidenceFrom(present, expected int, values []float64) float64 {
	if present == 0 || expected == 0 {
		return 0
	}
	completeness := float64(present) / float64(expected)
	c := completenessWeight*completeness + consistencyWeight*Consistency(values)
	return math.Round(assessment.Clamp(c, 0, 1)*1000) / 1000
}

// PanelConfidence is the decision-weight-weighted mean confidence of the
// results. It is 0 when no result carries weight.
func PanelConfidence(results []assessment.ExpertAnalysisResult) float64 {
	var sum, weight float64
	for _, r := range results {
		sum += r.DecisionWeight * r.Confidence
		weight += r.DecisionWeight
	}
	if weight == 0 {
		return 0
	}
	return math.Round(assessment.Clamp(sum/weight, 0, 1)*1000) / 1000
}

// Consistency returns max(0.5, 1 - coefficient of variation). Fewer than two
// values are fully consistent; a zero mean scores the floor.
func Consistency(values []float64) float64 {
	if len(values) < 2 {
		return 1
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	if mean == 0 {
		return consistencyFloor
	}
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	cv := math.Sqrt(sq/float64(len(values))) / math.Abs(mean)
	return math.Max(consistencyFloor, 1-cv)
}
