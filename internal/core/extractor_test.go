// ABOUTME: Tests for requirement extraction from scenario output
// ABOUTME: Verifies trigger tables, urgency thresholds, and determinism

package core

import (
	"reflect"
	"testing"

	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

func manufacturingScenario() *models.ScenarioOutput {
	return &models.ScenarioOutput{
		ScenarioTitle:       "Energy Optimization",
		ScenarioDescription: "A mid-sized manufacturing facility wants to reduce energy costs.",
		RecommendedActions: []string{
			"Install IoT sensors for real-time energy monitoring",
			"Deploy smart HVAC controls with occupancy-based automation",
			"Implement predictive analytics for peak-load management",
		},
		EstimatedBenefits: models.EstimatedSavings{
			PaybackYears: 2.5,
			Metrics: []models.SavingsMetric{
				{Name: "energy_savings", Value: "20-30%"},
				{Name: "carbon_reduction", Value: "15-25%"},
			},
		},
	}
}

func TestExtract_FocusAreas(t *testing.T) {
	e := NewExtractor()

	req := e.Extract(manufacturingScenario())
	want := []string{"energy_management", "industrial_processes"}
	if !reflect.DeepEqual(req.PrimaryFocus, want) {
		t.Errorf("PrimaryFocus = %v, want %v", req.PrimaryFocus, want)
	}
}

func TestExtract_Capabilities(t *testing.T) {
	e := NewExtractor()

	req := e.Extract(manufacturingScenario())
	want := []string{"iot_monitoring", "data_analytics", "automation_control"}
	if !reflect.DeepEqual(req.TechnicalCapabilities, want) {
		t.Errorf("TechnicalCapabilities = %v, want %v", req.TechnicalCapabilities, want)
	}
}

func TestExtract_GoalsFromMetrics(t *testing.T) {
	e := NewExtractor()

	req := e.Extract(manufacturingScenario())
	want := []string{"energy_efficiency", "carbon_reduction"}
	if !reflect.DeepEqual(req.SustainabilityGoals, want) {
		t.Errorf("SustainabilityGoals = %v, want %v", req.SustainabilityGoals, want)
	}
}

func TestExtract_GoalsDeduplicated(t *testing.T) {
	e := NewExtractor()

	out := &models.ScenarioOutput{
		ScenarioTitle: "Test",
		EstimatedBenefits: models.EstimatedSavings{
			PaybackYears: 3,
			Metrics: []models.SavingsMetric{
				{Name: "energy_savings", Value: "10%"},
				{Name: "energy_cost_reduction", Value: "15%"},
			},
		},
	}

	req := e.Extract(out)
	count := 0
	for _, goal := range req.SustainabilityGoals {
		if goal == "energy_efficiency" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("energy_efficiency appears %d times, want 1", count)
	}
}

func TestExtract_Urgency(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		payback      float64
		wantUrgency  models.Urgency
		wantPriority string
	}{
		{1.5, models.UrgencyHigh, "quick_roi"},
		{2.0, models.UrgencyHigh, "quick_roi"},
		{2.5, models.UrgencyMedium, "balanced_approach"},
		{4.0, models.UrgencyMedium, "balanced_approach"},
		{4.5, models.UrgencyLow, "long_term_investment"},
	}

	for _, tt := range tests {
		out := &models.ScenarioOutput{
			EstimatedBenefits: models.EstimatedSavings{PaybackYears: tt.payback},
		}
		req := e.Extract(out)
		if req.Urgency != tt.wantUrgency {
			t.Errorf("payback %v: Urgency = %q, want %q", tt.payback, req.Urgency, tt.wantUrgency)
		}
		if len(req.BusinessPriorities) != 1 || req.BusinessPriorities[0] != tt.wantPriority {
			t.Errorf("payback %v: BusinessPriorities = %v, want [%s]", tt.payback, req.BusinessPriorities, tt.wantPriority)
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := NewExtractor()

	first := e.Extract(manufacturingScenario())
	for i := 0; i < 10; i++ {
		if got := e.Extract(manufacturingScenario()); !reflect.DeepEqual(got, first) {
			t.Fatalf("Extract() not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestExtract_EmptyScenario(t *testing.T) {
	e := NewExtractor()

	req := e.Extract(&models.ScenarioOutput{EstimatedBenefits: models.EstimatedSavings{PaybackYears: 5}})
	if len(req.PrimaryFocus) != 0 || len(req.TechnicalCapabilities) != 0 || len(req.SustainabilityGoals) != 0 {
		t.Errorf("empty scenario produced requirements: %+v", req)
	}
	if req.Urgency != models.UrgencyLow {
		t.Errorf("Urgency = %q, want low", req.Urgency)
	}
}
