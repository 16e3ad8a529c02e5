// ABOUTME: Tests for the multi-factor product scorer
// ABOUTME: Pins the scoring constants and verifies ordering and truncation

package core

import (
	"testing"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

func fullRequirements() models.RequirementSet {
	return models.RequirementSet{
		PrimaryFocus:          []string{"energy_management"},
		TechnicalCapabilities: []string{"iot_monitoring", "data_analytics"},
		SustainabilityGoals:   []string{"energy_efficiency", "carbon_reduction"},
		Urgency:               models.UrgencyMedium,
	}
}

func TestScore_Breakdown(t *testing.T) {
	s := NewScorer(catalog.NewProductCatalog())
	profile := profileWith(models.Intermediate, models.Intermediate)
	profile.ComplianceImportance = models.ComplianceHigh

	eligible := []string{"desigo_cc", "sigreen", "building_x", catalog.FinancingProductID}
	scored := s.Score(fullRequirements(), eligible, profile, 2.5)

	byID := make(map[string]models.ScoredProduct)
	for _, sp := range scored {
		byID[sp.ProductID] = sp
	}

	// desigo_cc: focus 2.0 + iot 1.5 + energy_efficiency 1.0 + carbon 1.0 = 5.5
	// base, +0.5+0.5 proficiency, +0.5 compliance, no timeline bonus at 2.5y.
	desigo, ok := byID["desigo_cc"]
	if !ok {
		t.Fatal("desigo_cc missing from scored results")
	}
	if desigo.Breakdown.BaseScore != 5.5 {
		t.Errorf("desigo_cc BaseScore = %v, want 5.5", desigo.Breakdown.BaseScore)
	}
	if desigo.Breakdown.ProficiencyBonus != 1.0 {
		t.Errorf("desigo_cc ProficiencyBonus = %v, want 1.0", desigo.Breakdown.ProficiencyBonus)
	}
	if desigo.Breakdown.ComplianceBonus != 0.5 {
		t.Errorf("desigo_cc ComplianceBonus = %v, want 0.5", desigo.Breakdown.ComplianceBonus)
	}
	if desigo.Breakdown.TimelineBonus != 0 {
		t.Errorf("desigo_cc TimelineBonus = %v, want 0", desigo.Breakdown.TimelineBonus)
	}
	if desigo.FinalScore != 7.0 {
		t.Errorf("desigo_cc FinalScore = %v, want 7.0", desigo.FinalScore)
	}

	// sigreen: data_analytics 1.5 + carbon 1.0 = 2.5 base.
	sigreen := byID["sigreen"]
	if sigreen.Breakdown.BaseScore != 2.5 {
		t.Errorf("sigreen BaseScore = %v, want 2.5", sigreen.Breakdown.BaseScore)
	}
}

func TestScore_FinancingPinnedBase(t *testing.T) {
	s := NewScorer(catalog.NewProductCatalog())
	profile := profileWith(models.Beginner, models.Beginner)

	// Base is pinned at 0.8 even with no requirement matches; the bonuses
	// still apply. Beginner/beginner meets financing's requirements (+1.0)
	// and payback 3 earns no timeline bonus.
	scored := s.Score(models.RequirementSet{}, []string{catalog.FinancingProductID}, profile, 3)
	if len(scored) != 1 {
		t.Fatalf("Score() = %d products, want 1", len(scored))
	}
	if scored[0].Breakdown.BaseScore != 0.8 {
		t.Errorf("financing BaseScore = %v, want 0.8", scored[0].Breakdown.BaseScore)
	}
	if scored[0].Breakdown.ProficiencyBonus != 1.0 {
		t.Errorf("financing ProficiencyBonus = %v, want 1.0", scored[0].Breakdown.ProficiencyBonus)
	}
	if scored[0].FinalScore != 1.8 {
		t.Errorf("financing FinalScore = %v, want 1.8", scored[0].FinalScore)
	}
	if len(scored[0].MatchingCapabilities) != 1 || scored[0].MatchingCapabilities[0] != "financing" {
		t.Errorf("financing MatchingCapabilities = %v, want [financing]", scored[0].MatchingCapabilities)
	}
}

func TestScore_FinancingOutranksWeakMatch(t *testing.T) {
	s := NewScorer(catalog.NewProductCatalog())
	profile := profileWith(models.Intermediate, models.Intermediate)

	// Urgent payback: financing's fast timeline earns +0.5 on top of
	// 0.8 base and +1.0 proficiency, for 2.3. mindsphere matches only one
	// goal (1.0 base, +0.3 proficiency, slow timeline) for 1.3.
	req := models.RequirementSet{SustainabilityGoals: []string{"waste_reduction"}}
	scored := s.Score(req, []string{"mindsphere", catalog.FinancingProductID}, profile, 1.5)

	if len(scored) != 2 {
		t.Fatalf("Score() = %d products, want 2", len(scored))
	}
	if scored[0].ProductID != catalog.FinancingProductID {
		t.Errorf("top product = %s, want %s", scored[0].ProductID, catalog.FinancingProductID)
	}
	if scored[0].FinalScore != 2.3 {
		t.Errorf("financing FinalScore = %v, want 2.3", scored[0].FinalScore)
	}
	if scored[1].FinalScore != 1.3 {
		t.Errorf("mindsphere FinalScore = %v, want 1.3", scored[1].FinalScore)
	}
}

func TestScore_ZeroBaseDropped(t *testing.T) {
	s := NewScorer(catalog.NewProductCatalog())
	profile := profileWith(models.Expert, models.Expert)

	// water_conservation is served by simatic_pcs7 and building_x only.
	req := models.RequirementSet{SustainabilityGoals: []string{"water_conservation"}}
	scored := s.Score(req, []string{"desigo_cc", "simatic_pcs7"}, profile, 3)

	if len(scored) != 1 || scored[0].ProductID != "simatic_pcs7" {
		t.Errorf("Score() = %+v, want only simatic_pcs7", scored)
	}
}

func TestScore_ProficiencyPenalty(t *testing.T) {
	s := NewScorer(catalog.NewProductCatalog())

	// Beginner user scoring mindsphere (requires intermediate/advanced):
	// both dimensions below requirement, -0.2 each.
	profile := profileWith(models.Beginner, models.Beginner)
	req := models.RequirementSet{TechnicalCapabilities: []string{"iot_monitoring"}}

	scored := s.Score(req, []string{"mindsphere"}, profile, 3)
	if len(scored) != 1 {
		t.Fatalf("Score() = %d products, want 1", len(scored))
	}
	if scored[0].Breakdown.ProficiencyBonus != -0.4 {
		t.Errorf("ProficiencyBonus = %v, want -0.4", scored[0].Breakdown.ProficiencyBonus)
	}
}

func TestScore_TimelineBonus(t *testing.T) {
	s := NewScorer(catalog.NewProductCatalog())
	profile := profileWith(models.Expert, models.Expert)
	req := models.RequirementSet{PrimaryFocus: []string{"energy_management"}}

	// Urgent payback + fast product (desigo_cc, 3-6 months -> 5): +0.5.
	scored := s.Score(req, []string{"desigo_cc"}, profile, 1.5)
	if scored[0].Breakdown.TimelineBonus != 0.5 {
		t.Errorf("urgent TimelineBonus = %v, want 0.5", scored[0].Breakdown.TimelineBonus)
	}

	// Long-horizon payback + long product (simatic_pcs7, 8-18 months -> 10): +0.3.
	scored = s.Score(req, []string{"simatic_pcs7"}, profile, 4.5)
	if scored[0].Breakdown.TimelineBonus != 0.3 {
		t.Errorf("long-horizon TimelineBonus = %v, want 0.3", scored[0].Breakdown.TimelineBonus)
	}

	// Mid-range payback earns no timeline bonus.
	scored = s.Score(req, []string{"desigo_cc"}, profile, 2.5)
	if scored[0].Breakdown.TimelineBonus != 0 {
		t.Errorf("mid-range TimelineBonus = %v, want 0", scored[0].Breakdown.TimelineBonus)
	}
}

func TestScore_SortedWithStableTies(t *testing.T) {
	products := catalog.NewProductCatalog()
	s := NewScorer(products)
	profile := profileWith(models.Intermediate, models.Intermediate)
	profile.ComplianceImportance = models.ComplianceHigh

	eligible := []string{"desigo_cc", "sigreen", "building_x", catalog.FinancingProductID}
	scored := s.Score(fullRequirements(), eligible, profile, 2.5)

	for i := 1; i < len(scored); i++ {
		if scored[i].FinalScore > scored[i-1].FinalScore {
			t.Fatalf("results not sorted descending: %+v", scored)
		}
		if scored[i].FinalScore == scored[i-1].FinalScore &&
			products.Order(scored[i].ProductID) < products.Order(scored[i-1].ProductID) {
			t.Fatalf("tie not broken by catalog order: %+v", scored)
		}
	}

	// desigo_cc and building_x tie at 7.0; catalog order puts desigo_cc first.
	if scored[0].ProductID != "desigo_cc" || scored[1].ProductID != "building_x" {
		t.Errorf("tie order = [%s, %s], want [desigo_cc, building_x]", scored[0].ProductID, scored[1].ProductID)
	}
}

func TestScore_TopFiveCap(t *testing.T) {
	s := NewScorer(catalog.NewProductCatalog())
	profile := profileWith(models.Expert, models.Expert)

	req := models.RequirementSet{
		PrimaryFocus: []string{
			"energy_management", "resource_management", "building_optimization",
			"waste_management", "supply_chain", "industrial_processes",
		},
	}
	eligible := []string{
		"desigo_cc", "mindsphere", "sigreen", "sicam_gridedge",
		"simatic_pcs7", "building_x", catalog.FinancingProductID,
	}

	scored := s.Score(req, eligible, profile, 3)
	if len(scored) != 5 {
		t.Errorf("Score() = %d products, want top 5", len(scored))
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := NewScorer(catalog.NewProductCatalog())
	profile := profileWith(models.Intermediate, models.Intermediate)
	eligible := []string{"desigo_cc", "sigreen", "building_x", catalog.FinancingProductID}

	first := s.Score(fullRequirements(), eligible, profile, 2.5)
	for i := 0; i < 5; i++ {
		again := s.Score(fullRequirements(), eligible, profile, 2.5)
		if len(again) != len(first) {
			t.Fatal("Score() not deterministic in length")
		}
		for j := range again {
			if again[j].ProductID != first[j].ProductID || again[j].FinalScore != first[j].FinalScore {
				t.Fatalf("Score() not deterministic at %d: %+v vs %+v", j, again[j], first[j])
			}
		}
	}
}
