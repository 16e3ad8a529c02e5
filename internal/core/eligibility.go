// ABOUTME: Proficiency-based eligibility filter over the product catalog
// ABOUTME: Hard gate applied before scoring; ineligible products are never ranked
package core

import (
	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

// EligibilityFilter reduces the product catalog to what a user can
// realistically adopt given their proficiency profile.
type EligibilityFilter struct {
	products *catalog.ProductCatalog
}

// NewEligibilityFilter creates a filter over the given product catalog.
func NewEligibilityFilter(products *catalog.ProductCatalog) *EligibilityFilter {
	return &EligibilityFilter{products: products}
}

// Eligible returns the ids of products the profile qualifies for, in
// catalog insertion order. A product passes only when both gates hold:
// it is in the recommended set for the user's sustainability proficiency
// (or is the always-relevant financing offering), and its implementation
// complexity sits inside the band the user's technological proficiency
// unlocks ("Low" complexity is allowed at every level).
func (f *EligibilityFilter) Eligible(profile *models.UserProfile) []string {
	recommended := make(map[string]bool)
	for _, id := range f.products.RecommendedFor(profile.SustainabilityProficiency) {
		recommended[id] = true
	}

	band := make(map[string]bool)
	for _, complexity := range f.products.ComplexityBand(profile.TechnologicalProficiency) {
		band[complexity] = true
	}

	var eligible []string
	for _, product := range f.products.All() {
		if !recommended[product.ID] && product.ID != catalog.FinancingProductID {
			continue
		}
		if !band[product.ImplementationComplexity] && product.ImplementationComplexity != "Low" {
			continue
		}
		eligible = append(eligible, product.ID)
	}
	return eligible
}
