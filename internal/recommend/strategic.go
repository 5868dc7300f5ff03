// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package recommend

import (
	"fmt"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// Source tags identifying which generator produced an item.
const (
	SourcePlan      = "plan"
	SourceDimension = "dimension"
	SourcePlaybook  = "playbook"
	SourceGated     = "gated"
	SourceFiller    = "general"
)

var planDirectives = map[assessment.PlanType]template{
	assessment.PlanEmergency: {
		Title:       "Stabilize the business before scaling marketing",
		Description: "Risk or overall maturity is at emergency level. Protect cash and core customers first.",
		Priority:    assessment.PriorityCritical,
		Effort:      assessment.EffortHigh,
		Timeline:    "0-3 months",
		Actions: []string{
			"Freeze non-essential marketing spend",
			"Protect cash flow and the most profitable customers",
			"Resolve every critical alert within 30 days",
		},
	},
	assessment.PlanTreatment: {
		Title:       "Repair the weakest marketing foundations",
		Description: "Maturity is below 40. Fix the fundamentals before adding channels.",
		Priority:    assessment.PriorityHigh,
		Effort:      assessment.EffortHigh,
		Timeline:    "3-6 months",
		Actions: []string{
			"Write a one-page marketing strategy with measurable goals",
			"Fix tracking so every channel reports results",
			"Concentrate budget on the two best-performing channels",
		},
	},
	assessment.PlanGrowth: {
		Title:       "Scale the channels that already work",
		Description: "Foundations are in place. Invest where returns are proven.",
		Priority:    assessment.PriorityHigh,
		Effort:      assessment.EffortMedium,
		Timeline:    "6-12 months",
		Actions: []string{
			"Increase budget on channels with proven return",
			"Expand into one adjacent audience segment",
			"Introduce quarterly growth experiments",
		},
	},
	assessment.PlanTransformation: {
		Title:       "Lead the market with an innovation agenda",
		Description: "Marketing is mature. Differentiate through innovation and category leadership.",
		Priority:    assessment.PriorityMedium,
		Effort:      assessment.EffortVeryHigh,
		Timeline:    "12-24 months",
		Actions: []string{
			"Fund a dedicated innovation budget",
			"Build proprietary data and personalization capabilities",
			"Explore new markets or business models",
		},
	},
}

var dimensionAdvice = map[string]template{
	"financial": {
		Title:       "Put marketing economics on a sound footing",
		Description: "Budget, unit economics or margins are holding the business back.",
		Actions:     []string{"Rebalance the budget toward profitable channels", "Set CAC and LTV targets per channel", "Review pricing and margin levers"},
	},
	"market": {
		Title:       "Sharpen competitive positioning",
		Description: "The business is exposed in its market.",
		Actions:     []string{"Map the top competitors and their offers", "Define a defensible niche", "Track market share signals quarterly"},
	},
	"digital": {
		Title:       "Build a complete digital presence",
		Description: "Digital channels are underdeveloped.",
		Actions:     []string{"Audit website, social, email and ads", "Close the largest digital gap first", "Set a digital maturity target for next year"},
	},
	"brand": {
		Title:       "Clarify the brand and its promise",
		Description: "Awareness or differentiation is weak.",
		Actions:     []string{"Rewrite the value proposition", "Create brand guidelines", "Measure awareness with a simple survey"},
	},
	"operations": {
		Title:       "Strengthen marketing operations",
		Description: "Team capacity and processes limit execution.",
		Actions:     []string{"Document core marketing processes", "Assign clear channel owners", "Add capacity through training or an agency"},
	},
	"innovation": {
		Title:       "Create room for experimentation",
		Description: "The business is slow to adopt new ideas and tools.",
		Actions:     []string{"Reserve budget for small experiments", "Adopt one new marketing technology per quarter", "Review experiment results monthly"},
	},
	"risk": {
		Title:       "Reduce business and execution risk",
		Description: "Risk exposure is high enough to threaten plans.",
		Actions:     []string{"List the top five risks with owners", "Diversify revenue and acquisition channels", "Create a cash contingency plan"},
	},
	"marketing": {
		Title:       "Formalize marketing strategy and measurement",
		Description: "Strategy, execution or measurement is immature.",
		Actions:     []string{"Document the marketing plan", "Set a consistent campaign calendar", "Review KPIs every month"},
	},
	"organizational": {
		Title:       "Build organizational readiness for marketing",
		Description: "Team, budget or leadership support is insufficient.",
		Actions:     []string{"Secure leadership sponsorship", "Align budget with revenue goals", "Define marketing roles and skills"},
	},
	"opportunity": {
		Title:       "Pursue the strongest growth opportunities",
		Description: "Market and competitive upside is not being captured.",
		Actions:     []string{"Rank growth opportunities by size and effort", "Pilot the top opportunity", "Track results against a control"},
	},
	"customer": {
		Title:       "Deepen customer understanding and loyalty",
		Description: "Satisfaction, loyalty or audience insight is weak.",
		Actions:     []string{"Interview ten recent customers", "Launch a loyalty or referral program", "Track churn monthly"},
	},
	"analytics": {
		Title:       "Build a data-driven marketing culture",
		Description: "Tracking and measurement are not guiding decisions.",
		Actions:     []string{"Define a KPI dashboard", "Connect campaign data to revenue", "Hold a monthly data review"},
	},
}

var strategicFillers = []template{
	{
		Title:       "Establish a quarterly strategy review",
		Description: "Revisit goals, results and priorities every quarter.",
		Priority:    assessment.PriorityMedium,
		Effort:      assessment.EffortLow,
		Timeline:    "Quarterly",
		Actions:     []string{"Schedule quarterly reviews with leadership", "Compare results to targets"},
	},
	{
		Title:       "Define a marketing KPI framework",
		Description: "Agree on the handful of metrics that define success.",
		Priority:    assessment.PriorityMedium,
		Effort:      assessment.EffortMedium,
		Timeline:    "1-2 months",
		Actions:     []string{"Pick five KPIs tied to revenue", "Set baselines and targets"},
	},
	{
		Title:       "Align leadership on marketing goals",
		Description: "Marketing succeeds when leadership commits to shared goals.",
		Priority:    assessment.PriorityLow,
		Effort:      assessment.EffortLow,
		Timeline:    "1 month",
		Actions:     []string{"Run a goal-setting workshop", "Publish the agreed goals"},
	},
	{
		Title:       "Invest in team capability",
		Description: "Skills determine how far the strategy can go.",
		Priority:    assessment.PriorityLow,
		Effort:      assessment.EffortMedium,
		Timeline:    "3-6 months",
		Actions:     []string{"Assess team skills against the plan", "Fund targeted training"},
	},
}

// Strategic generates the strategic layer.
func (s *Synthesizer) Strategic(in *Input) []assessment.Recommendation {
	limits := s.cfg.Strategic
	var out []assessment.Recommendation
	add := func(t *template, source string) {
		if len(out) < limits.Max {
			out = append(out, t.build(fmt.Sprintf("STR_%02d", len(out)+1), assessment.LayerStrategic, source))
		}
	}

	plan := in.Plan()
	directive, ok := planDirectives[plan]
	if !ok {
		directive = planDirectives[assessment.PlanTreatment]
	}
	add(&directive, SourcePlan)

	// Leave one slot for the playbook match.
	for _, d := range in.weakest(max(limits.Max-2, 0), s.cfg.Thresholds.High) {
		t := dimensionTemplate(d, s.cfg.Thresholds)
		add(&t, SourceDimension)
	}

	if m, ok := in.topMatch(); ok {
		t := playbookTemplate(m)
		add(&t, SourcePlaybook+":"+m.ID)
	}

	for i := 0; len(out) < limits.Min && i < len(strategicFillers); i++ {
		add(&strategicFillers[i], SourceFiller)
	}
	return out
}

func dimensionTemplate(d dimension, t Thresholds) template {
	advice, ok := dimensionAdvice[d.name]
	if !ok {
		advice = template{
			Title:       fmt.Sprintf("Improve %s", d.name),
			Description: fmt.Sprintf("The %s dimension is among the weakest.", d.name),
			Actions:     []string{fmt.Sprintf("Diagnose the causes of the low %s score", d.name), "Set a 90-day improvement target"},
		}
	}
	advice.Description = fmt.Sprintf("%s Current score: %.0f/100.", advice.Description, d.value)
	advice.Priority = gate(d.value, t)
	advice.Effort = assessment.EffortHigh
	advice.Timeline = "3-6 months"
	advice.Dimension = d.name
	return advice
}

func playbookTemplate(m assessment.PatternMatch) template {
	actions := m.Actions
	if len(actions) == 0 {
		actions = []string{"Review the matched situation with the leadership team"}
	}
	timeline := m.Outcome.Horizon
	if timeline == "" {
		timeline = "3-6 months"
	}
	return template{
		Title:       fmt.Sprintf("Apply the %q playbook", m.Name),
		Description: fmt.Sprintf("%s (confidence %.0f%%)", m.Description, m.Confidence*100),
		Priority:    assessment.PriorityHigh,
		Effort:      assessment.EffortMedium,
		Timeline:    timeline,
		Actions:     actions,
	}
}
