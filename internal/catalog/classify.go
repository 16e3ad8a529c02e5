// ABOUTME: Keyword rule tables for industry, company-size, and complexity classification
// ABOUTME: Rules are plain data so the classifiers stay deterministic and independently testable
package catalog

import "strings"

// industryRule pairs an industry label with its trigger substrings.
type industryRule struct {
	Industry string
	Triggers []string
}

// industryRules is checked in order; first rule with any trigger present wins.
var industryRules = []industryRule{
	{"Manufacturing", []string{"manufacturing", "facility", "production", "factory", "plant"}},
	{"Food & Beverage", []string{"beverage", "food", "restaurant", "kitchen", "processing"}},
	{"Logistics & Transportation", []string{"logistics", "fleet", "transport", "shipping", "supply chain"}},
	{"Government & Public Sector", []string{"municipal", "government", "public", "city", "office building"}},
	{"Waste Management", []string{"recycler", "waste", "sorting", "recycling", "circular"}},
	{"Retail", []string{"retail", "smes", "small business", "store", "commercial"}},
	{"Energy & Utilities", []string{"energy", "grid", "utilities", "power", "renewable"}},
}

const defaultIndustry = "General Industry"

// classifyIndustry returns the industry label for a scenario description.
func classifyIndustry(description string) string {
	text := strings.ToLower(description)
	for _, rule := range industryRules {
		if containsAny(text, rule.Triggers) {
			return rule.Industry
		}
	}
	return defaultIndustry
}

// determineCompanySize derives the company-size label from a description.
func determineCompanySize(description string) string {
	text := strings.ToLower(description)
	switch {
	case strings.Contains(text, "mid-sized"):
		return "Medium (50-500 employees)"
	case strings.Contains(text, "sme") || strings.Contains(text, "cluster"):
		return "Small (10-50 employees)"
	case strings.Contains(text, "municipal"):
		return "Government/Public Sector"
	default:
		return "Small to Medium (10-500 employees)"
	}
}

// Complexity indicator tables. High-tier hits score 2, medium-tier hits 1;
// a total of >=4 is High, >=2 Medium, otherwise Low to Medium.
var (
	highComplexityIndicators   = []string{"digital twin", "blockchain", "machine vision", "ai-based"}
	mediumComplexityIndicators = []string{"iot", "smart", "analytics", "automation", "predictive"}
)

// assessComplexity classifies implementation complexity from the
// recommendation texts.
func assessComplexity(recommendations []string) string {
	text := strings.ToLower(strings.Join(recommendations, " "))

	total := 0
	for _, indicator := range highComplexityIndicators {
		if strings.Contains(text, indicator) {
			total += 2
		}
	}
	for _, indicator := range mediumComplexityIndicators {
		if strings.Contains(text, indicator) {
			total++
		}
	}

	switch {
	case total >= 4:
		return "High"
	case total >= 2:
		return "Medium"
	default:
		return "Low to Medium"
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
