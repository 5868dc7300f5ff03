// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation synthesizer.
type Config struct {
	// Strategic bounds the number of strategic items.
	Strategic LayerLimits `json:"strategic"`

	// Tactical bounds the number of tactical items.
	Tactical LayerLimits `json:"tactical"`

	// Execution bounds the number of execution items. Min is ignored.
	Execution LayerLimits `json:"execution"`

	// StepsPerItem is how many execution steps are sliced from each
	// tactical item.
	StepsPerItem int `json:"steps_per_item"`

	// Thresholds gate dimension-driven items and escalate priorities.
	Thresholds Thresholds `json:"thresholds"`
}

// LayerLimits bounds one recommendation layer.
type LayerLimits struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Thresholds are the dimension score cutoffs shared with the expert panel.
type Thresholds struct {
	// Critical escalates items for dimensions scoring below it.
	Critical float64 `json:"critical"`

	// High marks a dimension as needing attention.
	High float64 `json:"high"`

	// Strong marks a dimension as healthy.
	Strong float64 `json:"strong"`
}

// DefaultConfig returns the standard layer sizes and thresholds.
func DefaultConfig() *Config {
	return &Config{
		Strategic:    LayerLimits{Min: 3, Max: 5},
		Tactical:     LayerLimits{Min: 5, Max: 10},
		Execution:    LayerLimits{Min: 0, Max: 15},
		StepsPerItem: 2,
		Thresholds: Thresholds{
			Critical: 35,
			High:     60,
			Strong:   75,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	layers := []struct {
		name   string
		limits LayerLimits
	}{
		{"strategic", c.Strategic},
		{"tactical", c.Tactical},
		{"execution", c.Execution},
	}
	for _, l := range layers {
		if l.limits.Min < 0 {
			return fmt.Errorf("%s.min must be non-negative, got %d", l.name, l.limits.Min)
		}
		if l.limits.Max < 1 {
			return fmt.Errorf("%s.max must be positive, got %d", l.name, l.limits.Max)
		}
		if l.limits.Max < l.limits.Min {
			return fmt.Errorf("%s.max (%d) must be >= min (%d)", l.name, l.limits.Max, l.limits.Min)
		}
	}
	if c.Strategic.Min > len(strategicFillers)+1 {
		return fmt.Errorf("strategic.min must be at most %d, got %d", len(strategicFillers)+1, c.Strategic.Min)
	}
	if c.Tactical.Min > len(tacticalFillers) {
		return fmt.Errorf("tactical.min must be at most %d, got %d", len(tacticalFillers), c.Tactical.Min)
	}

	if c.StepsPerItem < 1 {
		return fmt.Errorf("steps_per_item must be positive, got %d", c.StepsPerItem)
	}

	t := c.Thresholds
	if t.Critical <= 0 || t.High <= t.Critical || t.Strong <= t.High || t.Strong > 100 {
		return fmt.Errorf("thresholds must satisfy 0 < critical < high < strong <= 100, got %v/%v/%v",
			t.Critical, t.High, t.Strong)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
