// ABOUTME: CLI command for profile-aware product recommendations
// ABOUTME: Runs the extract-filter-score-assemble pipeline for one scenario
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/core"
	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

var (
	recSustainability string
	recTechnological  string
	recStyle          string
	recCompliance     string
	recCompanySize    string
	recIndustry       string
)

// NewRecommendCmd creates the recommend command
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <scenario-id>",
		Short: "Recommend products for a scenario and proficiency profile",
		Long: `Recommend marketplace products for a scenario.

Products are filtered to the user's proficiency band, scored against
the scenario's extracted requirements, and assembled with investment,
timeline, and financing guidance. Financing is always included.

Examples:
  navigator recommend energy_optimization \
    --sustainability intermediate --technological intermediate --compliance high
  navigator recommend carbon_footprint_tracking \
    --sustainability beginner --technological beginner --compliance critical \
    --style simple_explanations --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runRecommend,
	}

	cmd.Flags().StringVar(&recSustainability, "sustainability", "", "Sustainability proficiency: beginner, intermediate, advanced, expert")
	cmd.Flags().StringVar(&recTechnological, "technological", "", "Technological proficiency: beginner, intermediate, advanced, expert")
	cmd.Flags().StringVar(&recStyle, "style", "comprehensive", "Communication style: technical, business_focused, simple_explanations, comprehensive")
	cmd.Flags().StringVar(&recCompliance, "compliance", "", "Regulatory compliance importance: low, medium, high, critical")
	cmd.Flags().StringVar(&recCompanySize, "company-size", "", "Company size description")
	cmd.Flags().StringVar(&recIndustry, "industry", "", "Industry sector")

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	profile := &models.UserProfile{
		SustainabilityProficiency: models.ProficiencyLevel(recSustainability),
		TechnologicalProficiency:  models.ProficiencyLevel(recTechnological),
		CommunicationStyle:        models.CommunicationStyle(recStyle),
		ComplianceImportance:      models.ComplianceImportance(recCompliance),
		CompanySize:               recCompanySize,
		IndustrySector:            recIndustry,
	}

	scenarios := catalog.NewScenarioCatalog()
	output, err := scenarios.Output(args[0])
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	recommender := core.NewRecommender(catalog.NewProductCatalog())
	recommendations, err := recommender.Recommend(output, profile)
	if err != nil {
		return fmt.Errorf("recommending: %w", err)
	}

	if outputFormat == "json" {
		return printJSON(cmd, recommendations)
	}

	out := cmd.OutOrStdout()
	for i, rec := range recommendations {
		fmt.Fprintf(out, "%d. %s (%s)\n", i+1, rec.ProductName, rec.ProductCategory)
		fmt.Fprintf(out, "   Relevance:  %.2f\n", rec.RelevanceScore)
		fmt.Fprintf(out, "   Investment: %s\n", rec.EstimatedInvestment)
		fmt.Fprintf(out, "   ROI:        %s\n", rec.ExpectedROITimeline)
		if verbose {
			fmt.Fprintf(out, "   Approach:   %s\n", rec.ProficiencyMatch.SustainabilityApproach)
			for _, option := range rec.FinancingOptions {
				fmt.Fprintf(out, "   Financing:  %s\n", option)
			}
		}
		fmt.Fprintln(out)
	}

	if !quiet {
		fmt.Fprintf(out, "Total: %d recommendation(s)\n", len(recommendations))
	}
	return nil
}
