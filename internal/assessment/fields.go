// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package assessment

// Semantic answer field names. Questionnaire front ends map their question
// identifiers onto these keys before the engine runs.
const (
	// Digital presence
	FieldHasWebsite                = "has_website"
	FieldWebsiteMobileFriendly     = "website_mobile_friendly"
	FieldWebsiteSEO                = "website_seo"
	FieldWebsiteSpeed              = "website_speed"
	FieldWebsiteConversionTracking = "website_conversion_tracking"
	FieldSocialPlatforms           = "social_platforms"
	FieldSocialPostingFrequency    = "social_posting_frequency"
	FieldSocialEngagement          = "social_engagement"
	FieldUsesPaidAds               = "uses_paid_ads"
	FieldAdPlatforms               = "ad_platforms"
	FieldAdsROITracking            = "ads_roi_tracking"
	FieldAdPerformance             = "ad_performance"
	FieldHasEmailList              = "has_email_list"
	FieldEmailListSize             = "email_list_size"
	FieldEmailFrequency            = "email_frequency"
	FieldEmailAutomation           = "email_automation"
	FieldUsesAnalytics             = "uses_analytics"
	FieldAnalyticsTools            = "analytics_tools"
	FieldTracksKPIs                = "tracks_kpis"
	FieldDataDrivenDecisions       = "data_driven_decisions"

	// Marketing practice
	FieldHasMarketingStrategy    = "has_marketing_strategy"
	FieldHasDocumentedPlan       = "has_documented_plan"
	FieldTargetAudienceClarity   = "target_audience_clarity"
	FieldBrandPositioningClarity = "brand_positioning_clarity"
	FieldCampaignConsistency     = "campaign_consistency"
	FieldContentQuality          = "content_quality"
	FieldChannelCount            = "channel_count"
	FieldHasContentCalendar      = "has_content_calendar"
	FieldMeasuresROI             = "measures_roi"
	FieldKPIReviewFrequency      = "kpi_review_frequency"
	FieldAttributionModel        = "attribution_model"

	// Organization
	FieldMarketingTeamSize    = "marketing_team_size"
	FieldTeamSkillLevel       = "team_skill_level"
	FieldUsesAgency           = "uses_agency"
	FieldMarketingBudget      = "marketing_budget"
	FieldAnnualRevenue        = "annual_revenue"
	FieldEmployeeCount        = "employee_count"
	FieldLeadershipSupport    = "leadership_support"
	FieldProcessDocumentation = "process_documentation"
	FieldHasApprovalWorkflow  = "has_approval_workflow"
	FieldBudgetUtilization    = "budget_utilization"

	// Risk and market
	FieldRevenueTrend            = "revenue_trend"
	FieldProfitMargin            = "profit_margin"
	FieldCashFlow                = "cash_flow"
	FieldCustomerChurn           = "customer_churn"
	FieldCompetitionLevel        = "competition_level"
	FieldCompetitorCount         = "competitor_count"
	FieldDifferentiation         = "differentiation"
	FieldMarketTrend             = "market_trend"
	FieldMarketGrowthRate        = "market_growth_rate"
	FieldExecutionCapacity       = "execution_capacity"
	FieldSingleChannelDependency = "single_channel_dependency"

	// Customer and brand
	FieldCustomerSatisfaction   = "customer_satisfaction"
	FieldNPS                    = "nps"
	FieldBrandAwareness         = "brand_awareness"
	FieldUniqueValueProposition = "unique_value_proposition"
	FieldInnovationLevel        = "innovation_level"
	FieldRunsExperiments        = "runs_experiments"

	// Unit economics
	FieldCAC          = "cac"
	FieldLTV          = "ltv"
	FieldMarketingROI = "marketing_roi"

	// Self-reported claims
	FieldClaimsGrowth = "claims_growth"
)
