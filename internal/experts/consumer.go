// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package experts

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
)

var churnPoints = []struct {
	atMost float64
	points float64
}{
	{5, 100},
	{10, 80},
	{20, 60},
	{30, 40},
}

// ConsumerBehaviorExpert judges satisfaction, loyalty and how well the
// business understands its customers.
type ConsumerBehaviorExpert struct {
	base
}

// NewConsumerBehaviorExpert creates the consumer behavior expert.
func NewConsumerBehaviorExpert() *ConsumerBehaviorExpert {
	return &ConsumerBehaviorExpert{base{
		profile: Profile{
			ID:             IDConsumerBehavior,
			Name:           "Consumer Behavior Expert",
			Role:           "Explains why customers buy, stay and leave",
			Expertise:      []string{"customer satisfaction", "retention", "segmentation"},
			DecisionWeight: 0.7,
			Contributes:    assessment.ScoreCustomer,
		},
		fields: []string{
			assessment.FieldCustomerSatisfaction, assessment.FieldCustomerChurn,
			assessment.FieldNPS, assessment.FieldTargetAudienceClarity,
		},
		advice: map[string]advice{
			"satisfaction": {
				label:    "Customer satisfaction",
				weak:     "Customers are not satisfied enough to stay or recommend.",
				strong:   "Customers are highly satisfied.",
				action:   "Close the loop on customer feedback",
				detail:   "Collect feedback after every purchase and fix the top recurring complaint each month.",
				steps:    []string{"Send a post-purchase survey", "Tag complaints by theme", "Fix the top theme monthly"},
				effort:   assessment.EffortLow,
				timeline: "2 months",
				impact:   "Higher satisfaction and referrals",
			},
			"loyalty": {
				label:    "Customer loyalty",
				weak:     "Customers leave quickly and rarely promote the brand.",
				strong:   "Customers stay and recommend the business.",
				action:   "Launch a retention and referral programme",
				detail:   "Reward repeat purchases and referrals and contact at-risk customers before they churn.",
				steps:    []string{"Identify at-risk customers", "Offer a loyalty reward", "Add a referral incentive"},
				effort:   assessment.EffortMedium,
				timeline: "3 months",
				impact:   "Lower churn, higher lifetime value",
			},
			"audience_understanding": {
				label:    "Audience understanding",
				weak:     "The business does not know its target customers well.",
				strong:   "The target customers are well understood.",
				action:   "Build customer personas from real data",
				detail:   "Combine purchase data and interviews into two or three personas that drive targeting.",
				steps:    []string{"Interview ten customers", "Cluster purchase data", "Write two personas"},
				effort:   assessment.EffortLow,
				timeline: "1 month",
				impact:   "Sharper targeting",
			},
		},
	}}
}

// Analyze implements Expert.
func (e *ConsumerBehaviorExpert) Analyze(in *Input) *Analysis {
	a := in.Answers

	churn := assessment.ScoreMidpoint
	if c, ok := a.Float(assessment.FieldCustomerChurn); ok {
		churn = 15
		for _, step := range churnPoints {
			if c <= step.atMost {
				churn = step.points
				break
			}
		}
	}
	nps := assessment.ScoreMidpoint
	if n, ok := a.Float(assessment.FieldNPS); ok {
		nps = assessment.Clamp((n+100)/2, 0, 100)
	}

	return e.finish(in, []SubScore{
		{Name: "satisfaction", Value: scale10(a, assessment.FieldCustomerSatisfaction), Weight: 0.35},
		{Name: "loyalty", Value: 0.5*churn + 0.5*nps, Weight: 0.40},
		{Name: "audience_understanding", Value: scale10(a, assessment.FieldTargetAudienceClarity), Weight: 0.25},
	}, nil)
}
