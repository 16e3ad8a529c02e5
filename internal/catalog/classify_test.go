// ABOUTME: Tests for the industry, company-size, and complexity classifiers
// ABOUTME: Verifies rule ordering and score thresholds against fixed inputs

package catalog

import "testing"

func TestClassifyIndustry(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"manufacturing facility", "A mid-sized manufacturing facility wants to cut costs", "Manufacturing"},
		{"beverage without plant", "A beverage bottler wants to cut water use", "Food & Beverage"},
		{"fleet operator", "A regional fleet operator plans electrification", "Logistics & Transportation"},
		{"municipal buildings", "A municipal office building portfolio seeks retrofits", "Government & Public Sector"},
		{"recycler", "An industrial recycler wants better sorting", "Waste Management"},
		{"retail group", "A retail group wants supplier tracking", "Retail"},
		{"grid operator", "A grid operator integrating renewable power", "Energy & Utilities"},
		{"no triggers", "An organization with unusual needs", "General Industry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyIndustry(tt.description); got != tt.want {
				t.Errorf("classifyIndustry(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestClassifyIndustry_FirstRuleWins(t *testing.T) {
	// "plant" matches the manufacturing rule before the beverage rule fires.
	got := classifyIndustry("A beverage processing plant needs to reduce water consumption")
	if got != "Manufacturing" {
		t.Errorf("classifyIndustry() = %q, want Manufacturing", got)
	}
}

func TestDetermineCompanySize(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"mid-sized", "A mid-sized manufacturing facility", "Medium (50-500 employees)"},
		{"sme", "A cluster of SMEs wants shared monitoring", "Small (10-50 employees)"},
		{"municipal", "A municipal office building portfolio", "Government/Public Sector"},
		{"default", "A retail group wants supplier tracking", "Small to Medium (10-500 employees)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineCompanySize(tt.description); got != tt.want {
				t.Errorf("determineCompanySize(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestAssessComplexity(t *testing.T) {
	tests := []struct {
		name            string
		recommendations []string
		want            string
	}{
		{
			"no indicators",
			[]string{"Upgrade to high-efficiency LED lighting"},
			"Low to Medium",
		},
		{
			"two medium hits",
			[]string{"Install IoT sensors", "Add analytics dashboards"},
			"Medium",
		},
		{
			"high indicator counts double",
			[]string{"Create a digital twin of the process", "Deploy predictive analytics", "Add smart controls"},
			"High",
		},
		{
			"single medium hit stays low",
			[]string{"Install IoT sensors"},
			"Low to Medium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assessComplexity(tt.recommendations); got != tt.want {
				t.Errorf("assessComplexity() = %q, want %q", got, tt.want)
			}
		})
	}
}
