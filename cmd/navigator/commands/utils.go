// ABOUTME: Shared utility functions and service wiring for CLI commands
// ABOUTME: Consolidates duplicate code from list, search, recommend, ask commands
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/config"
	"github.com/hasansarfraz/sustainability-navigator/internal/core"
	"github.com/hasansarfraz/sustainability-navigator/internal/llm"
)

// services bundles the wired components a command needs.
type services struct {
	cfg       *config.Config
	client    *llm.Client
	scenarios *catalog.ScenarioCatalog
	products  *catalog.ProductCatalog
	engine    *core.SearchEngine
}

// buildServices loads configuration, connects the OpenAI client, and indexes
// the catalogs for semantic search. Commands that only read catalog data
// should use the catalogs directly instead.
func buildServices(ctx context.Context) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	client, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}

	scenarios := catalog.NewScenarioCatalog()
	products := catalog.NewProductCatalog()

	engine := core.NewSearchEngine(client, scenarios, products)
	if err := engine.Init(ctx); err != nil {
		return nil, fmt.Errorf("indexing catalogs: %w", err)
	}

	return &services{
		cfg:       cfg,
		client:    client,
		scenarios: scenarios,
		products:  products,
		engine:    engine,
	}, nil
}

// printJSON writes an indented JSON representation to the command's stdout
func printJSON(cmd *cobra.Command, payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	return nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatTime formats a time for display
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		return fmt.Sprintf("%dh ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("2006-01-02")
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
