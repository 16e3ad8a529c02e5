// ABOUTME: UserProfile captures per-request proficiency and preference inputs
// ABOUTME: Validated before any filtering or scoring happens (fail fast)
package models

import "fmt"

// InvalidProfileError is returned when a UserProfile is missing or carries
// malformed required fields. Profiles are rejected before the recommendation
// pipeline starts, never partway through scoring.
type InvalidProfileError struct {
	Field  string
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}

// UserProfile holds the proficiency assessment and business context for one
// request. Profiles are transient: constructed per request, never persisted
// by the core.
type UserProfile struct {
	SustainabilityProficiency ProficiencyLevel   `json:"sustainability_proficiency"`
	TechnologicalProficiency  ProficiencyLevel   `json:"technological_proficiency"`
	CommunicationStyle        CommunicationStyle `json:"communication_style"`
	ComplianceImportance      ComplianceImportance `json:"regulatory_compliance_importance"`

	// Optional company context
	CompanySize    string `json:"company_size,omitempty"`
	IndustrySector string `json:"industry_sector,omitempty"`
	BudgetPriority string `json:"budget_priority,omitempty"`
}

// Validate checks that the required proficiency fields are present and known.
func (p *UserProfile) Validate() error {
	if !p.SustainabilityProficiency.Valid() {
		return &InvalidProfileError{Field: "sustainability_proficiency", Reason: fmt.Sprintf("unknown level %q", p.SustainabilityProficiency)}
	}
	if !p.TechnologicalProficiency.Valid() {
		return &InvalidProfileError{Field: "technological_proficiency", Reason: fmt.Sprintf("unknown level %q", p.TechnologicalProficiency)}
	}
	switch p.ComplianceImportance {
	case ComplianceLow, ComplianceMedium, ComplianceHigh, ComplianceCritical:
	case "":
		return &InvalidProfileError{Field: "regulatory_compliance_importance", Reason: "is required"}
	default:
		return &InvalidProfileError{Field: "regulatory_compliance_importance", Reason: fmt.Sprintf("unknown value %q", p.ComplianceImportance)}
	}
	return nil
}
