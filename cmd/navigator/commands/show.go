// ABOUTME: CLI command to show the enhanced view of one scenario
// ABOUTME: Supports persona-specific insights via the --persona flag
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
)

var showPersona string

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <scenario-id>",
		Short: "Show the enhanced view of one scenario",
		Long: `Show the full enhanced view of a scenario: financial analysis,
implementation timeline, mapped products, risks, and success indicators.

With --persona, adds tailored insights for one of the trained
stakeholder profiles (zuri, amina, bjorn, arjun).

Examples:
  navigator show energy_optimization
  navigator show energy_optimization --persona amina
  navigator show smart_building_retrofitting --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().StringVar(&showPersona, "persona", "", "Persona key for tailored insights")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	scenarios := catalog.NewScenarioCatalog()

	enhanced, err := scenarios.Enhanced(args[0], showPersona)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	if outputFormat == "json" {
		return printJSON(cmd, enhanced)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n%s\n\n", enhanced.Title, strings.Repeat("=", len(enhanced.Title)))
	fmt.Fprintf(out, "Industry:    %s\n", enhanced.Industry)
	fmt.Fprintf(out, "Complexity:  %s\n", enhanced.Complexity)
	fmt.Fprintf(out, "Payback:     %.1f years\n", enhanced.EstimatedSavings.PaybackYears)
	fmt.Fprintf(out, "Timeline:    %s\n\n", enhanced.Timeline.TotalDuration)
	fmt.Fprintf(out, "%s\n\n", enhanced.Description)

	if len(enhanced.ImplementationSteps) > 0 {
		fmt.Fprintln(out, "Implementation steps:")
		for _, step := range enhanced.ImplementationSteps {
			fmt.Fprintf(out, "  - %s\n", step)
		}
		fmt.Fprintln(out)
	}

	if enhanced.PersonaInsights != "" {
		fmt.Fprintf(out, "Persona insights (confidence %.2f):\n  %s\n", enhanced.ConfidenceScore, enhanced.PersonaInsights)
		for _, rec := range enhanced.PersonaRecommendations {
			fmt.Fprintf(out, "  - %s\n", rec)
		}
	}
	return nil
}
