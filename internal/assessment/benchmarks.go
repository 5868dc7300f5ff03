// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package assessment

// Benchmark holds the sector reference figures experts and rules compare
// against.
type Benchmark struct {
	// ExpectedROI is the typical marketing ROI in percent.
	ExpectedROI float64 `json:"expected_roi"`
	// AcceptableCAC is the customer acquisition cost considered healthy.
	AcceptableCAC float64 `json:"acceptable_cac"`
	// TypicalMargin is the typical net profit margin in percent.
	TypicalMargin float64 `json:"typical_margin"`
	// TypicalBudgetPercent is the typical marketing budget as percent of revenue.
	TypicalBudgetPercent float64 `json:"typical_budget_percent"`
	// DigitalDependent marks sectors where customers are mostly won online.
	DigitalDependent bool `json:"digital_dependent"`
}

// DefaultBenchmark applies to SectorOther and any sector without its own row.
var DefaultBenchmark = Benchmark{
	ExpectedROI:          250,
	AcceptableCAC:        150,
	TypicalMargin:        10,
	TypicalBudgetPercent: 7,
}

var sectorBenchmarks = map[Sector]Benchmark{
	SectorRetail:        {ExpectedROI: 300, AcceptableCAC: 50, TypicalMargin: 5, TypicalBudgetPercent: 7, DigitalDependent: true},
	SectorEcommerce:     {ExpectedROI: 400, AcceptableCAC: 40, TypicalMargin: 10, TypicalBudgetPercent: 10, DigitalDependent: true},
	SectorTechnology:    {ExpectedROI: 500, AcceptableCAC: 300, TypicalMargin: 20, TypicalBudgetPercent: 12, DigitalDependent: true},
	SectorServices:      {ExpectedROI: 250, AcceptableCAC: 150, TypicalMargin: 15, TypicalBudgetPercent: 6},
	SectorManufacturing: {ExpectedROI: 200, AcceptableCAC: 500, TypicalMargin: 8, TypicalBudgetPercent: 4},
	SectorHealthcare:    {ExpectedROI: 250, AcceptableCAC: 200, TypicalMargin: 12, TypicalBudgetPercent: 5},
	SectorEducation:     {ExpectedROI: 300, AcceptableCAC: 100, TypicalMargin: 10, TypicalBudgetPercent: 8, DigitalDependent: true},
	SectorHospitality:   {ExpectedROI: 300, AcceptableCAC: 60, TypicalMargin: 8, TypicalBudgetPercent: 6, DigitalDependent: true},
	SectorFinance:       {ExpectedROI: 350, AcceptableCAC: 250, TypicalMargin: 20, TypicalBudgetPercent: 7, DigitalDependent: true},
	SectorRealEstate:    {ExpectedROI: 400, AcceptableCAC: 500, TypicalMargin: 15, TypicalBudgetPercent: 5},
}

// BenchmarkFor returns the benchmark row of s, or DefaultBenchmark.
func BenchmarkFor(s Sector) Benchmark {
	if b, ok := sectorBenchmarks[ParseSector(string(s))]; ok {
		return b
	}
	return DefaultBenchmark
}

// DigitalDependent reports whether the sector relies on digital channels.
func (s Sector) DigitalDependent() bool {
	return BenchmarkFor(s).DigitalDependent
}
