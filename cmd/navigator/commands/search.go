// ABOUTME: CLI command for semantic search over scenarios, products, and docs
// ABOUTME: Embeds the query via OpenAI and ranks against the in-memory indexes
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

var (
	searchKind      string
	searchLimit     int
	searchThreshold float64
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Semantic search over scenarios, products, or documents",
		Long: `Search the catalogs semantically using OpenAI embeddings.

The --kind flag selects the corpus: scenarios (default), products, or
documents. Document search only returns passages above the similarity
threshold, so unrelated queries yield no results rather than noise.

Examples:
  navigator search "reduce factory energy costs"
  navigator search --kind products "carbon footprint tracking"
  navigator search --kind documents "what is the decision optimizer"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVar(&searchKind, "kind", "scenarios", "Corpus to search: scenarios, products, documents")
	cmd.Flags().IntVar(&searchLimit, "limit", 3, "Maximum results to return")
	cmd.Flags().Float64Var(&searchThreshold, "threshold", 0.7, "Minimum similarity for document results")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}
	query := args[0]

	svc, err := buildServices(cmd.Context())
	if err != nil {
		return err
	}

	switch searchKind {
	case "scenarios":
		matches, err := svc.engine.RankScenarios(cmd.Context(), query, searchLimit)
		if err != nil {
			return fmt.Errorf("searching scenarios: %w", err)
		}
		if outputFormat == "json" {
			return printJSON(cmd, matches)
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "SCORE\tID\tTITLE\n")
		for _, match := range matches {
			fmt.Fprintf(w, "%.2f\t%s\t%s\n", match.Score, match.ID, truncate(match.Title, 50))
		}
		w.Flush()

	case "products":
		matches, err := svc.engine.RankProducts(cmd.Context(), query, searchLimit)
		if err != nil {
			return fmt.Errorf("searching products: %w", err)
		}
		if outputFormat == "json" {
			return printJSON(cmd, matches)
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "SCORE\tID\tNAME\n")
		for _, match := range matches {
			fmt.Fprintf(w, "%.2f\t%s\t%s\n", match.Score, match.ID, truncate(match.Title, 50))
		}
		w.Flush()

	case "documents":
		matches, err := svc.engine.SearchDocuments(cmd.Context(), query, searchLimit, searchThreshold)
		if err != nil {
			return fmt.Errorf("searching documents: %w", err)
		}
		if len(matches) == 0 {
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "No passages above threshold %.2f for: %s\n", searchThreshold, query)
			}
			return nil
		}
		if outputFormat == "json" {
			return printJSON(cmd, matches)
		}
		for _, match := range matches {
			fmt.Fprintf(cmd.OutOrStdout(), "[%.2f] %s\n%s\n\n", match.Similarity, match.Source, match.Content)
		}

	default:
		return fmt.Errorf("unknown kind %q: want scenarios, products, or documents", searchKind)
	}
	return nil
}
