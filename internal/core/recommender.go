// ABOUTME: Recommendation pipeline: validate, extract, filter, score, assemble
// ABOUTME: Fully deterministic; every stage is an injectable component for testing
package core

import (
	"fmt"
	"log"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

// Recommender runs the full product recommendation pipeline over a
// decision-optimization scenario output and a user profile.
type Recommender struct {
	extractor   *Extractor
	eligibility *EligibilityFilter
	scorer      *Scorer
	assembler   *Assembler
}

// NewRecommender wires the pipeline stages over a shared product catalog.
func NewRecommender(products *catalog.ProductCatalog) *Recommender {
	return &Recommender{
		extractor:   NewExtractor(),
		eligibility: NewEligibilityFilter(products),
		scorer:      NewScorer(products),
		assembler:   NewAssembler(products),
	}
}

// Recommend validates the profile, then extracts requirements, filters for
// eligibility, scores, and assembles the top recommendations. An invalid
// profile fails before any pipeline stage runs. An empty result (nothing
// eligible or nothing matching) is a valid outcome, not an error.
func (r *Recommender) Recommend(out *models.ScenarioOutput, profile *models.UserProfile) ([]models.Recommendation, error) {
	if out == nil {
		return nil, fmt.Errorf("recommend: scenario output is nil")
	}
	if profile == nil {
		return nil, fmt.Errorf("recommend: user profile is nil")
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	log.Printf("Analyzing scenario output: %s", out.ScenarioTitle)
	log.Printf("User proficiency: %s/%s", profile.SustainabilityProficiency, profile.TechnologicalProficiency)

	requirements := r.extractor.Extract(out)
	eligible := r.eligibility.Eligible(profile)
	scored := r.scorer.Score(requirements, eligible, profile, out.EstimatedBenefits.PaybackYears)
	recommendations := r.assembler.Assemble(scored, profile)

	log.Printf("Generated %d recommendations", len(recommendations))
	return recommendations, nil
}

// Requirements exposes the extraction stage on its own, for callers that
// want to inspect the derived requirement set without running the full
// pipeline.
func (r *Recommender) Requirements(out *models.ScenarioOutput) models.RequirementSet {
	return r.extractor.Extract(out)
}
