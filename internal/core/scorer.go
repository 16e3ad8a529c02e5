// ABOUTME: Multi-factor scoring of eligible products against extracted requirements
// ABOUTME: The scoring constants are tuned values and must not change
package core

import (
	"sort"
	"strings"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

// Scoring weights. These are empirically tuned; recommendation ordering
// depends on them bit-for-bit.
const (
	focusWeight      = 2.0
	capabilityWeight = 1.5
	goalWeight       = 1.0

	financingPinnedScore = 0.8

	proficiencyMetBonus   = 0.5
	proficiencyGapPenalty = -0.2

	complianceCriticalBonus = 1.0
	complianceHighBonus     = 0.5

	urgentTimelineBonus   = 0.5
	longHorizonBonus      = 0.3
	urgentTimelineMonths  = 6
	longHorizonPaybackCut = 3.0
)

// maxRecommendations caps how many scored products reach the assembler.
const maxRecommendations = 5

// Scorer ranks eligible products by fusing requirement match, proficiency
// alignment, compliance importance, and timeline fit into one additive
// score. Deterministic: identical inputs yield identical rankings.
type Scorer struct {
	products *catalog.ProductCatalog
}

// NewScorer creates a scorer over the given product catalog.
func NewScorer(products *catalog.ProductCatalog) *Scorer {
	return &Scorer{products: products}
}

// Score ranks the eligible products. Products matching no requirement
// category are dropped, except the financing offering whose base score is
// pinned at 0.8; the proficiency, compliance, and timeline bonuses still
// apply to it. Results are sorted by score descending with catalog
// insertion order breaking ties, truncated to the top 5.
func (s *Scorer) Score(req models.RequirementSet, eligible []string, profile *models.UserProfile, paybackYears float64) []models.ScoredProduct {
	var scored []models.ScoredProduct

	for _, id := range eligible {
		product, err := s.products.Get(id)
		if err != nil {
			continue
		}

		base, matching := s.baseScore(req, id)
		if id == catalog.FinancingProductID {
			base = financingPinnedScore
			matching = []string{"financing"}
		} else if base == 0 {
			continue
		}

		breakdown := models.ScoreBreakdown{
			BaseScore:        base,
			ProficiencyBonus: proficiencyBonus(product, profile),
			ComplianceBonus:  s.complianceBonus(id, profile),
			TimelineBonus:    timelineBonus(product, paybackYears),
		}

		scored = append(scored, models.ScoredProduct{
			ProductID:            id,
			FinalScore:           breakdown.BaseScore + breakdown.ProficiencyBonus + breakdown.ComplianceBonus + breakdown.TimelineBonus,
			MatchingCapabilities: matching,
			Breakdown:            breakdown,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].FinalScore != scored[j].FinalScore {
			return scored[i].FinalScore > scored[j].FinalScore
		}
		return s.products.Order(scored[i].ProductID) < s.products.Order(scored[j].ProductID)
	})

	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	return scored
}

// baseScore sums the requirement-match weights: +2.0 per served focus area,
// +1.5 per technical capability, +1.0 per sustainability goal.
func (s *Scorer) baseScore(req models.RequirementSet, productID string) (float64, []string) {
	var score float64
	var matching []string

	for _, focus := range req.PrimaryFocus {
		if s.products.ServesCapability(productID, focus) {
			score += focusWeight
			matching = append(matching, focus)
		}
	}
	for _, capability := range req.TechnicalCapabilities {
		if s.products.ServesCapability(productID, capability) {
			score += capabilityWeight
			matching = append(matching, capability)
		}
	}
	for _, goal := range req.SustainabilityGoals {
		if s.products.ServesCapability(productID, goal) {
			score += goalWeight
			matching = append(matching, goal)
		}
	}
	return score, matching
}

// proficiencyBonus rewards meeting each required proficiency with +0.5 and
// penalizes a gap with -0.2, independently per dimension.
func proficiencyBonus(product *models.ProductEntry, profile *models.UserProfile) float64 {
	var bonus float64

	if profile.SustainabilityProficiency.AtLeast(product.Proficiency.Sustainability) {
		bonus += proficiencyMetBonus
	} else {
		bonus += proficiencyGapPenalty
	}

	if profile.TechnologicalProficiency.AtLeast(product.Proficiency.Technological) {
		bonus += proficiencyMetBonus
	} else {
		bonus += proficiencyGapPenalty
	}
	return bonus
}

// complianceBonus rewards compliance-relevant products when compliance
// matters to the user.
func (s *Scorer) complianceBonus(productID string, profile *models.UserProfile) float64 {
	if !s.products.ComplianceRelevant(productID) {
		return 0
	}
	switch profile.ComplianceImportance {
	case models.ComplianceCritical:
		return complianceCriticalBonus
	case models.ComplianceHigh:
		return complianceHighBonus
	default:
		return 0
	}
}

// timelineBonus aligns the product's implementation timeline with the
// scenario's urgency: fast products for urgent paybacks, long timelines for
// long-horizon projects.
func timelineBonus(product *models.ProductEntry, paybackYears float64) float64 {
	months := timelineMonths(product.TypicalTimeline)

	if paybackYears <= 2 && months <= urgentTimelineMonths {
		return urgentTimelineBonus
	}
	if paybackYears > longHorizonPaybackCut && months > urgentTimelineMonths {
		return longHorizonBonus
	}
	return 0
}

// timelineMonths resolves a free-text timeline range to a representative
// month count. The bucket boundaries are fixed tuning values.
func timelineMonths(timeline string) int {
	switch {
	case strings.Contains(timeline, "2-4") || strings.Contains(timeline, "2-6"):
		return 3
	case strings.Contains(timeline, "3-6") || strings.Contains(timeline, "4-8"):
		return 5
	case strings.Contains(timeline, "6-12") || strings.Contains(timeline, "8-18"):
		return 10
	default:
		return 6
	}
}
