// ABOUTME: Main entry point for the navigator MCP server with stdio transport
// ABOUTME: Initializes catalogs, search engine, agent, and session storage
package main

import (
	"context"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/config"
	"github.com/hasansarfraz/sustainability-navigator/internal/core"
	"github.com/hasansarfraz/sustainability-navigator/internal/llm"
	"github.com/hasansarfraz/sustainability-navigator/internal/mcp"
	"github.com/hasansarfraz/sustainability-navigator/internal/storage"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - search and agent features will not work")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
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
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
	}

	scenarios := catalog.NewScenarioCatalog()
	products := catalog.NewProductCatalog()

	engine := core.NewSearchEngine(client, scenarios, products)
	if err := engine.Init(context.Background()); err != nil {
		log.Fatalf("Failed to index catalogs: %v", err)
	}

	dbPath := cfg.SessionDBPath
	if dbPath == "" {
		dbPath = storage.DefaultDBPath()
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer db.Close()
	sessions := storage.NewSessionStore(db)

	memory := core.NewConversationMemory(cfg.HistoryLimit)
	if err := sessions.Hydrate(memory); err != nil {
		log.Fatalf("Failed to load session history: %v", err)
	}

	cache := core.NewResponseCache(cfg.ResponseCacheTTL, nil)
	agent := core.NewAgent(client, engine, scenarios, products, cache, memory)
	recommender := core.NewRecommender(products)

	server := mcpserver.NewMCPServer(
		"Sustainability Navigator",
		"0.1.0",
	)
	mcp.RegisterTools(server, scenarios, products, engine, recommender, agent, sessions)

	log.Println("Navigator MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
