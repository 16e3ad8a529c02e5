// ABOUTME: CLI command for conversational questions to the navigator agent
// ABOUTME: Wires the agent with session persistence and prints the structured answer
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"

	"github.com/hasansarfraz/sustainability-navigator/internal/core"
	"github.com/hasansarfraz/sustainability-navigator/internal/models"
	"github.com/hasansarfraz/sustainability-navigator/internal/storage"
)

var (
	askPersona string
	askSession string
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the navigator a sustainability question",
		Long: `Ask the conversational navigator a question.

The agent plans research actions over the scenario and product catalogs,
then answers in the voice matching the selected persona. Pass --session
to continue a previous conversation with its history.

Examples:
  navigator ask "How can I cut energy costs in my factory?"
  navigator ask --persona amina "What financing options exist?"
  navigator ask --session 6a1f... "Tell me more about the second option"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askPersona, "persona", "general", "Persona key (zuri, amina, bjorn, arjun)")
	cmd.Flags().StringVar(&askSession, "session", "", "Session ID to continue")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	message := args[0]

	svc, err := buildServices(cmd.Context())
	if err != nil {
		return err
	}

	dbPath := svc.cfg.SessionDBPath
	if dbPath == "" {
		dbPath = storage.DefaultDBPath()
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer db.Close()
	sessions := storage.NewSessionStore(db)

	memory := core.NewConversationMemory(svc.cfg.HistoryLimit)
	if err := sessions.Hydrate(memory); err != nil {
		return fmt.Errorf("loading session history: %w", err)
	}

	sessionID := askSession
	if sessionID == "" {
		sessionID, err = sessions.Create(askPersona)
		if err != nil {
			return fmt.Errorf("starting session: %w", err)
		}
	}

	cache := core.NewResponseCache(svc.cfg.ResponseCacheTTL, nil)
	agent := core.NewAgent(svc.client, svc.engine, svc.scenarios, svc.products, cache, memory)

	response, err := agent.Process(cmd.Context(), message, askPersona, sessionID, nil)
	if err != nil {
		return fmt.Errorf("processing message: %w", err)
	}

	turn := models.ConversationTurn{User: message, Assistant: response.Response}
	if err := sessions.AppendTurn(sessionID, turn); err != nil {
		return fmt.Errorf("saving turn: %w", err)
	}

	if outputFormat == "json" {
		return printJSON(cmd, map[string]interface{}{
			"session_id": sessionID,
			"answer":     response,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", response.Response)

	if len(response.ScenarioSuggestions) > 0 {
		fmt.Fprintln(out, "\nRelated scenarios:")
		for _, id := range response.ScenarioSuggestions {
			fmt.Fprintf(out, "  - %s\n", id)
		}
	}
	if len(response.Recommendations) > 0 {
		fmt.Fprintln(out, "\nSuggested products:")
		for _, rec := range response.Recommendations {
			fmt.Fprintf(out, "  - %s (%s)\n", rec.Name, rec.Category)
		}
	}
	if !quiet {
		fmt.Fprintf(out, "\nSession: %s (confidence %.2f)\n", sessionID, response.ConfidenceScore)
	}
	return nil
}
