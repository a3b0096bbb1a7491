package pipeline

// Stage -
type Stage string

const (
	// NEW -
	NEW Stage = "new"

	// CONTACTED -
	CONTACTED Stage = "contacted"

	// QUALIFIED -
	QUALIFIED Stage = "qualified"

	// OPPORTUNITY -
	OPPORTUNITY Stage = "opportunity"

	// PROPOSAL -
	PROPOSAL Stage = "proposal"

	// NEGOTIATION -
	NEGOTIATION Stage = "negotiation"

	// CLOSEDWON -
	CLOSEDWON Stage = "closed_won"

	// CLOSEDLOST -
	CLOSEDLOST Stage = "closed_lost"
)

// Classification -
type Classification string

const (
	// COLD -
	COLD Classification = "cold_lead"

	// WARM -
	WARM Classification = "warm_prospect"

	// HOT -
	HOT Classification = "hot_lead"

	// VIP -
	VIP Classification = "vip_client"
)

// Agent names as they appear in the interactions log
const (
	// LeadIntelligence -
	LeadIntelligence = "LEAD_INTELLIGENCE_AGENT"

	// Voice -
	Voice = "VOICE_AGENT"

	// Email -
	Email = "EMAIL_ORCHESTRATION_AGENT"

	// Document -
	Document = "DOCUMENT_GENERATION_AGENT"

	// Analytics -
	Analytics = "CRM_ANALYTICS_AGENT"

	// Automation -
	Automation = "WORKFLOW_AUTOMATION_AGENT"

	// SalesManager -
	SalesManager = "SALES_MANAGER"
)
