// ABOUTME: CLI command to list decision-optimization scenarios
// ABOUTME: Keyword filtering and table or JSON output
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

var listQuery string

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List decision-optimization scenarios",
		Long: `List the decision-optimization scenario catalog.

Without a filter, shows every scenario. With --match, shows only
scenarios whose title or description contains the keyword, ordered
by payback period.

Examples:
  navigator list
  navigator list --match energy
  navigator list --format json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listQuery, "match", "", "Keyword filter for title and description")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	scenarios := catalog.NewScenarioCatalog()

	var summaries []models.ScenarioSummary
	if listQuery != "" {
		summaries = scenarios.Search(listQuery)
	} else {
		summaries = scenarios.Summaries()
	}

	if len(summaries) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No scenarios match: %s\n", listQuery)
		}
		return nil
	}

	if outputFormat == "json" {
		return printJSON(cmd, summaries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTITLE\tINDUSTRY\tCOMPLEXITY\tPAYBACK\n")
	fmt.Fprintf(w, "--\t-----\t--------\t----------\t-------\n")
	for _, summary := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1fy\n",
			truncate(summary.ID, 45),
			truncate(summary.Title, 40),
			summary.Industry,
			summary.Complexity,
			summary.PaybackYears)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d scenario(s)\n", len(summaries))
	}
	return nil
}
