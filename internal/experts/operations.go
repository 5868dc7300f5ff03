// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
)

var productivityPoints = []struct {
	atLeast float64
	points  float64
}{
	{500_000, 100},
	{250_000, 80},
	{100_000, 60},
	{50_000, 35},
}

// OperationsExpert judges productivity, process maturity, execution
// capacity and content operations.
type OperationsExpert struct {
	base
}

// NewOperationsExpert creates the operations expert.
func NewOperationsExpert() *OperationsExpert {
	return &OperationsExpert{base{
		profile: Profile{
			ID:             IDOperations,
			Name:           "Operations Expert",
			Role:           "Checks that the organization can execute what marketing plans",
			Expertise:      []string{"productivity", "process", "team capacity"},
			DecisionWeight: 0.7,
			Contributes:    assessment.ScoreOperations,
		},
		fields: []string{
			assessment.FieldAnnualRevenue, assessment.FieldEmployeeCount,
			assessment.FieldProcessDocumentation, assessment.FieldHasApprovalWorkflow,
			assessment.FieldExecutionCapacity, assessment.FieldTeamSkillLevel,
			assessment.FieldHasContentCalendar,
		},
		advice: map[string]advice{
			"productivity": {
				label:    "Productivity",
				weak:     "Revenue per employee is low for the size of the team.",
				strong:   "The team generates strong revenue per head.",
				action:   "Automate repetitive marketing and sales work",
				detail:   "Identify the most time-consuming manual tasks and automate or outsource them.",
				steps:    []string{"Log a week of team time", "Automate the top two manual tasks"},
				effort:   assessment.EffortMedium,
				timeline: "3 months",
				impact:   "More output per person",
			},
			"process": {
				label:    "Process maturity",
				weak:     "Marketing work is ad hoc and undocumented.",
				strong:   "Processes are documented with clear approvals.",
				action:   "Document the core marketing workflows",
				detail:   "Write down how campaigns are planned, approved and launched.",
				steps:    []string{"Map the campaign workflow", "Define approval owners", "Store checklists centrally"},
				effort:   assessment.EffortLow,
				timeline: "1 month",
				impact:   "Fewer mistakes and delays",
			},
			"capacity": {
				label:    "Execution capacity",
				weak:     "The team lacks the capacity or skills to deliver the plan.",
				strong:   "The team has capacity and skills to execute.",
				action:   "Close the capacity gap",
				detail:   "Train the team on the weakest skill and bring in specialist help for peaks.",
				steps:    []string{"Run a skills audit", "Book training for the biggest gap", "Line up a freelance specialist"},
				effort:   assessment.EffortHigh,
				timeline: "3 months",
				impact:   "Plans delivered on time",
			},
			"content_ops": {
				label:    "Content operations",
				weak:     "Content is produced without a calendar or regular rhythm.",
				strong:   "Content runs on a reliable calendar.",
				action:   "Introduce a content calendar",
				detail:   "Plan content a month ahead and assign owners and deadlines.",
				steps:    []string{"Set up a shared calendar", "Plan the next month"},
				effort:   assessment.EffortMinimal,
				timeline: "2 weeks",
				impact:   "Consistent publishing",
			},
		},
	}}
}

// Analyze implements Expert.
func (e *OperationsExpert) Analyze(in *Input) *Analysis {
	a := in.Answers
	sections := map[string]interface{}{}

	productivity := assessment.ScoreMidpoint
	revenue, revenueOK := a.Revenue(in.Context)
	employees, employeesOK := a.Employees(in.Context)
	if rpe, ok := assessment.Ratio(revenue, employees, revenueOK, employeesOK); ok {
		sections["revenue_per_employee"] = assessment.Round1(rpe)
		productivity = 15
		for _, step := range productivityPoints {
			if rpe >= step.atLeast {
				productivity = step.points
				break
			}
		}
	}

	process := 0.6*scale10(a, assessment.FieldProcessDocumentation) +
		points(a.Bool(assessment.FieldHasApprovalWorkflow), 40)
	capacity := 0.5*scale10(a, assessment.FieldExecutionCapacity) +
		0.5*scale10(a, assessment.FieldTeamSkillLevel)
	content := points(a.Bool(assessment.FieldHasContentCalendar), 50) +
		0.5*scale10(a, assessment.FieldCampaignConsistency)

	return e.finish(in, []SubScore{
		{Name: "productivity", Value: productivity, Weight: 0.30},
		{Name: "process", Value: process, Weight: 0.25},
		{Name: "capacity", Value: capacity, Weight: 0.30},
		{Name: "content_ops", Value: content, Weight: 0.15},
	}, sections)
}
