// ABOUTME: Recommendation records produced by the scorer and assembler
// ABOUTME: ScoreBreakdown keeps the additive components visible for auditability
package models

// RankedMatch is one semantic search hit. Score is cosine similarity in
// [-1, 1]; it is not comparable to the additive recommendation score.
type RankedMatch struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
	Title string  `json:"title"`
}

// DocumentMatch is one grounded document-search hit above the confidence
// threshold.
type DocumentMatch struct {
	Content    string  `json:"content"`
	Source     string  `json:"source"`
	Section    string  `json:"section"`
	Similarity float64 `json:"similarity"`
	Kind       string  `json:"kind"`
}

// ScoreBreakdown itemizes the additive components of a recommendation score.
type ScoreBreakdown struct {
	BaseScore        float64 `json:"base_score"`
	ProficiencyBonus float64 `json:"proficiency_bonus"`
	ComplianceBonus  float64 `json:"compliance_bonus"`
	TimelineBonus    float64 `json:"timeline_bonus"`
}

// ScoredProduct is an eligible product with its multi-factor score.
type ScoredProduct struct {
	ProductID            string         `json:"product_id"`
	FinalScore           float64        `json:"final_score"`
	MatchingCapabilities []string       `json:"matching_capabilities"`
	Breakdown            ScoreBreakdown `json:"score_breakdown"`
}

// ProficiencyGuidance describes how a recommendation should be framed for
// the user's proficiency and preferences.
type ProficiencyGuidance struct {
	SustainabilityApproach string `json:"sustainability_approach"`
	TechnologicalApproach  string `json:"technological_approach"`
	CommunicationStyle     string `json:"communication_style"`
	ComplianceFocus        string `json:"compliance_focus"`
}

// Recommendation is a fully assembled product recommendation.
type Recommendation struct {
	ProductID                string              `json:"product_id"`
	ProductName              string              `json:"product_name"`
	ProductCategory          string              `json:"product_category"`
	MarketplaceURL           string              `json:"marketplace_url,omitempty"`
	RelevanceScore           float64             `json:"relevance_score"`
	ImplementationComplexity string              `json:"implementation_complexity"`
	EstimatedTimeline        string              `json:"estimated_timeline"`
	EstimatedInvestment      string              `json:"estimated_investment"`
	ExpectedROITimeline      string              `json:"expected_roi_timeline"`
	FinancingOptions         []string            `json:"financing_options"`
	ProficiencyMatch         ProficiencyGuidance `json:"proficiency_match"`
	ImplementationSupport    []string            `json:"implementation_support"`
	EcosystemBenefits        []string            `json:"ecosystem_benefits"`
}
