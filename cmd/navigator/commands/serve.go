// ABOUTME: Serve command starts the Model Context Protocol server
// ABOUTME: Exposes catalogs, search, recommendations, and the agent over stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hasansarfraz/sustainability-navigator/internal/core"
	"github.com/hasansarfraz/sustainability-navigator/internal/mcp"
	"github.com/hasansarfraz/sustainability-navigator/internal/storage"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server for LLM agents",
		Long: `Start the navigator as an MCP (Model Context Protocol) server,
exposing scenario search, product recommendations, document search, and
the conversational agent over stdio.`,
		RunE: runServe,
		Example: `  # Start MCP server (typically called by an MCP client)
  navigator serve

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "navigator": {
  #       "command": "navigator",
  #       "args": ["serve"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runServe starts the MCP server
func runServe(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - search and agent features will not work")
	}

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
	sessions := storage.NewSessionStore(db)

	memory := core.NewConversationMemory(svc.cfg.HistoryLimit)
	if err := sessions.Hydrate(memory); err != nil {
		return fmt.Errorf("loading session history: %w", err)
	}
	if verbose {
		log.Println("Session history hydrated")
	}

	cache := core.NewResponseCache(svc.cfg.ResponseCacheTTL, nil)
	agent := core.NewAgent(svc.client, svc.engine, svc.scenarios, svc.products, cache, memory)
	recommender := core.NewRecommender(svc.products)

	server := mcpserver.NewMCPServer(
		"Sustainability Navigator",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, svc.scenarios, svc.products, svc.engine, recommender, agent, sessions)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Navigator MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}
		if err := db.Close(); err != nil {
			log.Printf("Warning: Error closing session store: %v", err)
		}
		if !quiet {
			log.Println("Shutdown complete")
		}

	case err := <-serverErr:
		_ = db.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
