// ABOUTME: CLI command to list and delete persisted conversation sessions
// ABOUTME: Reads the SQLite session store directly, no API access required
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hasansarfraz/sustainability-navigator/internal/config"
	"github.com/hasansarfraz/sustainability-navigator/internal/storage"
)

var sessionsDelete string

// NewSessionsCmd creates the sessions command
func NewSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List or delete conversation sessions",
		Long: `List persisted conversation sessions, most recent first.

Use --delete to remove a session and all of its turns.

Examples:
  navigator sessions
  navigator sessions --format json
  navigator sessions --delete 6a1f...`,
		Args: cobra.NoArgs,
		RunE: runSessions,
	}

	cmd.Flags().StringVar(&sessionsDelete, "delete", "", "Session ID to delete")

	return cmd
}

func runSessions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	dbPath := cfg.SessionDBPath
	if dbPath == "" {
		dbPath = storage.DefaultDBPath()
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer db.Close()
	store := storage.NewSessionStore(db)

	if sessionsDelete != "" {
		if err := store.Delete(sessionsDelete); err != nil {
			return fmt.Errorf("deleting session: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", sessionsDelete)
		}
		return nil
	}

	sessions, err := store.List()
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	if len(sessions) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No sessions found")
		}
		return nil
	}

	if outputFormat == "json" {
		return printJSON(cmd, sessions)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tPERSONA\tTURNS\tUPDATED\n")
	fmt.Fprintf(w, "--\t-------\t-----\t-------\n")
	for _, session := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			truncate(session.ID, 36),
			session.Persona,
			session.TurnCount,
			formatTime(session.UpdatedAt))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d session(s)\n", len(sessions))
	}
	return nil
}
