// ABOUTME: Requirement extraction from decision-optimization scenario output
// ABOUTME: Deterministic keyword matching against fixed trigger tables, no hidden state
package core

import (
	"strings"

	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

// triggerRule maps a requirement category to its trigger substrings.
type triggerRule struct {
	Category string
	Triggers []string
}

// Focus areas are matched against the scenario title and description.
var focusRules = []triggerRule{
	{"energy_management", []string{"energy"}},
	{"resource_management", []string{"water"}},
	{"building_optimization", []string{"building"}},
	{"waste_management", []string{"waste"}},
	{"supply_chain", []string{"supply", "logistics"}},
	{"industrial_processes", []string{"manufacturing"}},
}

// Technical capabilities are matched against the recommended actions.
var capabilityRules = []triggerRule{
	{"iot_monitoring", []string{"iot", "sensors", "monitoring"}},
	{"data_analytics", []string{"analytics", "data", "intelligence"}},
	{"automation_control", []string{"automation", "control", "smart"}},
	{"sustainability_reporting", []string{"tracking", "reporting", "carbon"}},
}

// Sustainability goals are matched against the savings metric names.
var goalRules = []triggerRule{
	{"energy_efficiency", []string{"energy"}},
	{"carbon_reduction", []string{"carbon", "emission"}},
	{"water_conservation", []string{"water"}},
	{"waste_reduction", []string{"waste"}},
}

// Extractor turns scenario output into a structured requirement set. The
// rule tables are data so they stay independently testable.
type Extractor struct {
	focus        []triggerRule
	capabilities []triggerRule
	goals        []triggerRule
}

// NewExtractor returns an extractor with the standard rule tables.
func NewExtractor() *Extractor {
	return &Extractor{
		focus:        focusRules,
		capabilities: capabilityRules,
		goals:        goalRules,
	}
}

// Extract derives the requirement set from a scenario output. Pure and
// deterministic: identical input always yields an identical result.
func (e *Extractor) Extract(out *models.ScenarioOutput) models.RequirementSet {
	req := models.RequirementSet{}

	scenarioText := strings.ToLower(out.ScenarioTitle + " " + out.ScenarioDescription)
	for _, rule := range e.focus {
		if containsAny(scenarioText, rule.Triggers) {
			req.PrimaryFocus = append(req.PrimaryFocus, rule.Category)
		}
	}

	actionsText := strings.ToLower(strings.Join(out.RecommendedActions, " "))
	for _, rule := range e.capabilities {
		if containsAny(actionsText, rule.Triggers) {
			req.TechnicalCapabilities = append(req.TechnicalCapabilities, rule.Category)
		}
	}

	// Goals come from the savings metric names; a category triggered by
	// several metrics counts once.
	seen := make(map[string]bool)
	for _, metric := range out.EstimatedBenefits.Metrics {
		name := strings.ToLower(metric.Name)
		for _, rule := range e.goals {
			if !seen[rule.Category] && containsAny(name, rule.Triggers) {
				seen[rule.Category] = true
				req.SustainabilityGoals = append(req.SustainabilityGoals, rule.Category)
			}
		}
	}

	req.Urgency, req.BusinessPriorities = deriveUrgency(out.EstimatedBenefits.PaybackYears)
	return req
}

// deriveUrgency maps payback years to urgency. The thresholds feed the
// scorer's timeline bonus and must stay exactly as given: <=2 high,
// <=4 medium, else low.
func deriveUrgency(paybackYears float64) (models.Urgency, []string) {
	switch {
	case paybackYears <= 2:
		return models.UrgencyHigh, []string{"quick_roi"}
	case paybackYears <= 4:
		return models.UrgencyMedium, []string{"balanced_approach"}
	default:
		return models.UrgencyLow, []string{"long_term_investment"}
	}
}

// containsAny reports whether text contains any of the trigger substrings.
func containsAny(text string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(text, trigger) {
			return true
		}
	}
	return false
}
