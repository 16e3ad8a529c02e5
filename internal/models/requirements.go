// ABOUTME: RequirementSet and ScenarioOutput types for the recommendation pipeline
// ABOUTME: ScenarioOutput mirrors the decision-optimization tool's export format
package models

// Urgency is the implementation urgency derived from a scenario's payback
// period. The thresholds (<=2 high, <=4 medium, else low) feed directly into
// scoring bonuses downstream.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// ScenarioOutput is the structured output of a decision-optimization run:
// the scenario narrative plus recommended actions and estimated benefits.
// It is the input the recommendation pipeline analyzes.
type ScenarioOutput struct {
	Source             string           `json:"source,omitempty"`
	ScenarioTitle      string           `json:"scenario_title"`
	ScenarioDescription string          `json:"scenario_description"`
	RecommendedActions []string         `json:"recommended_actions"`
	EstimatedBenefits  EstimatedSavings `json:"estimated_benefits"`
}

// RequirementSet is the structured requirement extraction from a
// ScenarioOutput. Produced deterministically by keyword matching; consumed
// only by the scorer. Category slices keep rule-table order.
type RequirementSet struct {
	PrimaryFocus          []string `json:"primary_focus"`
	TechnicalCapabilities []string `json:"technical_capabilities"`
	SustainabilityGoals   []string `json:"sustainability_goals"`
	Urgency               Urgency  `json:"urgency"`
	BusinessPriorities    []string `json:"business_priorities"`
}
