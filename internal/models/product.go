// ABOUTME: ProductEntry describes one vendor offering from the marketplace catalog
// ABOUTME: Static records loaded once at startup, never mutated afterward
package models

// ProficiencyRequirements is the minimum proficiency pair a product expects
// of its adopters.
type ProficiencyRequirements struct {
	Sustainability ProficiencyLevel `json:"sustainability"`
	Technological  ProficiencyLevel `json:"technological"`
}

// SustainabilityImpact maps impact dimensions to headline figures
// ("energy_savings" -> "15-30%").
type SustainabilityImpact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductEntry is one offering in the vendor product catalog.
type ProductEntry struct {
	ID                       string                  `json:"id"`
	Name                     string                  `json:"name"`
	Category                 string                  `json:"category"`
	Subcategory              string                  `json:"subcategory"`
	MarketplaceURL           string                  `json:"marketplace_url"`
	Description              string                  `json:"description"`
	KeyCapabilities          []string                `json:"key_capabilities"`
	SustainabilityImpact     []SustainabilityImpact  `json:"sustainability_impact"`
	ImplementationComplexity string                  `json:"implementation_complexity"`
	TypicalTimeline          string                  `json:"typical_timeline"`
	TargetCompanySize        []string                `json:"target_company_size"`
	Proficiency              ProficiencyRequirements `json:"proficiency_requirements"`
	FinancingAvailable       bool                    `json:"financing_available"`
	VendorSupport            []string                `json:"vendor_support"`
}
