// ABOUTME: Scenario records for decision-optimization use cases
// ABOUTME: Base fields come from the static source list; derived fields are computed at load time
package models

// SavingsMetric is one named benefit from a scenario's savings estimate,
// expressed as a percentage-style string ("15-30%").
type SavingsMetric struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EstimatedSavings holds a scenario's expected benefits. PaybackYears is
// always present and positive; the remaining metrics keep source order.
type EstimatedSavings struct {
	PaybackYears float64         `json:"payback_period_years"`
	Metrics      []SavingsMetric `json:"metrics"`
}

// FinancialAnalysis is the derived financial view of a scenario.
type FinancialAnalysis struct {
	InvestmentRange    string   `json:"investment_range"`
	AnnualSavings      string   `json:"annual_savings"`
	PaybackPeriod      string   `json:"payback_period"`
	InternalRateReturn string   `json:"internal_rate_return"`
	RiskLevel          string   `json:"risk_level"`
	FinancingOptions   []string `json:"financing_options"`
	TaxIncentives      []string `json:"tax_incentives"`
}

// ImplementationTimeline breaks an implementation into phases.
type ImplementationTimeline struct {
	PlanningPhase string `json:"planning_phase"`
	Procurement   string `json:"procurement"`
	Installation  string `json:"installation"`
	Testing       string `json:"testing"`
	Optimization  string `json:"optimization"`
	TotalDuration string `json:"total_duration"`
}

// MappedProduct is a vendor product associated with a scenario at load time.
type MappedProduct struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	KeyFeatures    []string `json:"key_features"`
	TypicalSavings string   `json:"typical_savings"`
}

// SustainabilityMetric is one trackable environmental-impact metric.
type SustainabilityMetric struct {
	Metric              string `json:"metric"`
	Improvement         string `json:"improvement"`
	Category            string `json:"category"`
	MeasurementType     string `json:"measurement_type"`
	ReportingStandard   string `json:"reporting_standard"`
	MonitoringFrequency string `json:"monitoring_frequency"`
}

// MarketContext captures market trends relevant to a scenario.
type MarketContext struct {
	MarketTrends         []string `json:"market_trends"`
	CompetitiveAdvantage string   `json:"competitive_advantage"`
}

// RegulatoryContext captures the compliance framing of a scenario.
type RegulatoryContext struct {
	CurrentRegulations []string `json:"current_regulations"`
	ComplianceBenefits []string `json:"compliance_benefits"`
}

// ScenarioSource is a raw scenario record as loaded from the static source
// list, before enhancement.
type ScenarioSource struct {
	Title           string
	Description     string
	Recommendations []string
	Savings         EstimatedSavings
}

// ScenarioEntry is a fully enhanced decision-optimization scenario. Entries
// are created once at startup and immutable thereafter; persona-specific
// views are computed on read and never written back.
type ScenarioEntry struct {
	ID                  string                 `json:"id"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	Industry            string                 `json:"industry"`
	CompanySize         string                 `json:"company_size"`
	Complexity          string                 `json:"complexity"`
	ImplementationSteps []string               `json:"implementation_steps"`
	EstimatedSavings    EstimatedSavings       `json:"estimated_savings"`
	FinancialAnalysis   FinancialAnalysis      `json:"financial_analysis"`
	Timeline            ImplementationTimeline `json:"timeline"`
	MappedProducts      []MappedProduct        `json:"mapped_products"`
	Metrics             []SustainabilityMetric `json:"sustainability_metrics"`
	RiskFactors         []string               `json:"risk_factors"`
	SuccessIndicators   []string               `json:"success_indicators"`
	Market              MarketContext          `json:"market_context"`
	Regulatory          RegulatoryContext      `json:"regulatory_compliance"`
}

// EnhancedScenario is a per-request view of a scenario with persona-specific
// insights layered on top. The underlying entry is shared and read-only.
type EnhancedScenario struct {
	ScenarioEntry
	PersonaInsights        string   `json:"persona_insights"`
	PersonaRecommendations []string `json:"persona_recommendations"`
	ConfidenceScore        float64  `json:"confidence_score"`
}

// ScenarioSummary is the compact listing form of a scenario.
type ScenarioSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Industry     string   `json:"industry"`
	CompanySize  string   `json:"company_size,omitempty"`
	Complexity   string   `json:"complexity"`
	PaybackYears float64  `json:"payback_period_years"`
	KeyBenefits  []string `json:"key_benefits,omitempty"`
}
