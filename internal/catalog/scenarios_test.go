// ABOUTME: Tests for the scenario catalog: enhancement, persona views, search
// ABOUTME: Exercises derived fields, confidence scoring, and payback-ordered search

package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

func TestScenarioID(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Energy Optimization", "energy_optimization"},
		{"Remote Energy Monitoring for SMEs", "remote_energy_monitoring_for_smes"},
		{"Fleet-Electrification Planning", "fleet_electrification_planning"},
	}

	for _, tt := range tests {
		if got := ScenarioID(tt.title); got != tt.want {
			t.Errorf("ScenarioID(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestNewScenarioCatalog_KnownScenarios(t *testing.T) {
	c := NewScenarioCatalog()

	if c.Len() != 7 {
		t.Errorf("Len() = %d, want 7", c.Len())
	}

	for _, id := range []string{"energy_optimization", "smart_building_retrofitting", "remote_energy_monitoring_for_smes"} {
		if _, err := c.Get(id); err != nil {
			t.Errorf("Get(%q) error = %v", id, err)
		}
	}
}

func TestGet_UnknownScenario(t *testing.T) {
	c := NewScenarioCatalog()

	_, err := c.Get("nonexistent")
	if err == nil {
		t.Fatal("Get() expected error for unknown id")
	}

	var unknownErr *UnknownEntityError
	if !errors.As(err, &unknownErr) {
		t.Errorf("Get() error type = %T, want *UnknownEntityError", err)
	}
	if unknownErr.Kind != "scenario" {
		t.Errorf("Kind = %q, want scenario", unknownErr.Kind)
	}
}

func TestEnhancement_EnergyOptimization(t *testing.T) {
	c := NewScenarioCatalog()

	entry, err := c.Get("energy_optimization")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if entry.Industry != "Manufacturing" {
		t.Errorf("Industry = %q, want Manufacturing", entry.Industry)
	}
	if entry.CompanySize != "Medium (50-500 employees)" {
		t.Errorf("CompanySize = %q", entry.CompanySize)
	}
	if entry.FinancialAnalysis.RiskLevel != "Low to Medium" {
		t.Errorf("RiskLevel = %q, want Low to Medium for 2.5-year payback", entry.FinancialAnalysis.RiskLevel)
	}
	if entry.Timeline.TotalDuration != "5-8 months" {
		t.Errorf("TotalDuration = %q, want 5-8 months", entry.Timeline.TotalDuration)
	}

	// Production downtime risk applies to manufacturing scenarios.
	foundDowntime := false
	for _, risk := range entry.RiskFactors {
		if strings.Contains(risk, "Production downtime") {
			foundDowntime = true
		}
	}
	if !foundDowntime {
		t.Error("RiskFactors missing production downtime entry")
	}

	// Umbrella platform is always the last mapped product.
	if len(entry.MappedProducts) == 0 {
		t.Fatal("MappedProducts is empty")
	}
	last := entry.MappedProducts[len(entry.MappedProducts)-1]
	if last.Name != "Xcelerator Marketplace" {
		t.Errorf("last mapped product = %q, want Xcelerator Marketplace", last.Name)
	}
}

func TestEnhancement_ComplexityFromKeywordHits(t *testing.T) {
	c := newScenarioCatalog([]models.ScenarioSource{{
		Title:       "Energy Efficiency Optimization for Manufacturing SME",
		Description: "A manufacturing SME wants to improve energy efficiency across its site.",
		Recommendations: []string{
			"Install IoT sensors for energy monitoring",
			"Review energy analytics monthly",
		},
		Savings: models.EstimatedSavings{
			PaybackYears: 2.5,
			Metrics:      []models.SavingsMetric{{Name: "energy_savings", Value: "20-30%"}},
		},
	}})

	entry, err := c.Get("energy_efficiency_optimization_for_manufacturing_sme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if entry.Complexity != "Medium" {
		t.Errorf("Complexity = %q, want Medium for two medium-tier keyword hits", entry.Complexity)
	}
}

func TestEnhanced_PersonaViews(t *testing.T) {
	c := NewScenarioCatalog()

	amina, err := c.Enhanced("energy_optimization", "amina")
	if err != nil {
		t.Fatalf("Enhanced() error = %v", err)
	}
	if !strings.Contains(amina.PersonaInsights, "2.5-year payback") {
		t.Errorf("amina insight = %q, want payback mention", amina.PersonaInsights)
	}
	if len(amina.PersonaRecommendations) != len(amina.ImplementationSteps)+2 {
		t.Errorf("PersonaRecommendations len = %d, want base+2", len(amina.PersonaRecommendations))
	}

	// Unknown personas get the base steps and generic framing.
	general, err := c.Enhanced("energy_optimization", "stranger")
	if err != nil {
		t.Fatalf("Enhanced() error = %v", err)
	}
	if len(general.PersonaRecommendations) != len(general.ImplementationSteps) {
		t.Errorf("general PersonaRecommendations len = %d, want %d", len(general.PersonaRecommendations), len(general.ImplementationSteps))
	}
}

func TestEnhanced_DoesNotMutateEntry(t *testing.T) {
	c := NewScenarioCatalog()

	before, _ := c.Get("energy_optimization")
	stepsBefore := len(before.ImplementationSteps)

	if _, err := c.Enhanced("energy_optimization", "zuri"); err != nil {
		t.Fatalf("Enhanced() error = %v", err)
	}

	after, _ := c.Get("energy_optimization")
	if len(after.ImplementationSteps) != stepsBefore {
		t.Errorf("ImplementationSteps len changed from %d to %d", stepsBefore, len(after.ImplementationSteps))
	}
}

func TestConfidenceScore(t *testing.T) {
	c := NewScenarioCatalog()

	tests := []struct {
		name    string
		id      string
		persona string
		want    float64
	}{
		// 4 steps, payback 2.5, trained persona: 0.8+0.05+0.05+0.05 capped at 0.95.
		{"all bonuses", "energy_optimization", "amina", 0.95},
		// 4 steps, payback 2.5, unknown persona.
		{"unknown persona", "energy_optimization", "stranger", 0.9},
		// 3 steps, payback 5.0, unknown persona: base only.
		{"base only", "supply_chain_carbon_transparency", "stranger", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enhanced, err := c.Enhanced(tt.id, tt.persona)
			if err != nil {
				t.Fatalf("Enhanced() error = %v", err)
			}
			// Bonuses accumulate in floating point; compare with tolerance.
			if math.Abs(enhanced.ConfidenceScore-tt.want) > 1e-9 {
				t.Errorf("ConfidenceScore = %v, want %v", enhanced.ConfidenceScore, tt.want)
			}
		})
	}
}

func TestSearch_SortedByPaybackAscending(t *testing.T) {
	c := NewScenarioCatalog()

	results := c.Search("energy")
	if len(results) < 3 {
		t.Fatalf("Search(energy) returned %d results, want at least 3", len(results))
	}

	if results[0].ID != "remote_energy_monitoring_for_smes" {
		t.Errorf("first result = %q, want remote_energy_monitoring_for_smes", results[0].ID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].PaybackYears < results[i-1].PaybackYears {
			t.Errorf("results not sorted by payback: %v before %v", results[i-1].PaybackYears, results[i].PaybackYears)
		}
	}
}

func TestSearch_NoMatches(t *testing.T) {
	c := NewScenarioCatalog()

	if results := c.Search("quantum cryptography"); len(results) != 0 {
		t.Errorf("Search() = %d results, want 0", len(results))
	}
}

func TestSummaries(t *testing.T) {
	c := NewScenarioCatalog()

	summaries := c.Summaries()
	if len(summaries) != c.Len() {
		t.Fatalf("Summaries() len = %d, want %d", len(summaries), c.Len())
	}

	for _, s := range summaries {
		if len(s.Description) > summaryDescriptionLimit+3 {
			t.Errorf("summary %q description too long: %d", s.ID, len(s.Description))
		}
		if len(s.KeyBenefits) == 0 || s.KeyBenefits[0] != "payback_period_years" {
			t.Errorf("summary %q key benefits = %v", s.ID, s.KeyBenefits)
		}
		if len(s.KeyBenefits) > 3 {
			t.Errorf("summary %q has %d key benefits, want at most 3", s.ID, len(s.KeyBenefits))
		}
	}
}

func TestOutput(t *testing.T) {
	c := NewScenarioCatalog()

	out, err := c.Output("energy_optimization")
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if out.ScenarioTitle != "Energy Optimization" {
		t.Errorf("ScenarioTitle = %q", out.ScenarioTitle)
	}
	if len(out.RecommendedActions) != 4 {
		t.Errorf("RecommendedActions len = %d, want 4", len(out.RecommendedActions))
	}
	if out.EstimatedBenefits.PaybackYears != 2.5 {
		t.Errorf("PaybackYears = %v, want 2.5", out.EstimatedBenefits.PaybackYears)
	}

	if _, err := c.Output("nonexistent"); err == nil {
		t.Error("Output() expected error for unknown id")
	}
}
