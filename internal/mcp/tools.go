// ABOUTME: MCP tool definitions and registration for the navigator server
// ABOUTME: Defines JSON schemas for all 7 tools exposed over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/core"
	"github.com/hasansarfraz/sustainability-navigator/internal/storage"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, scenarios *catalog.ScenarioCatalog, products *catalog.ProductCatalog, search *core.SearchEngine, recommender *core.Recommender, agent *core.Agent, sessions *storage.SessionStore) *Handlers {
	handlers := &Handlers{
		scenarios:   scenarios,
		products:    products,
		search:      search,
		recommender: recommender,
		agent:       agent,
		sessions:    sessions,
	}

	// 1. list_scenarios - Browse the decision-optimization scenario catalog
	server.AddTool(mcp.Tool{
		Name:        "list_scenarios",
		Description: "List all decision-optimization scenarios with payback periods and key metrics.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListScenarios)

	// 2. search_scenarios - Semantic search over the scenario catalog
	server.AddTool(mcp.Tool{
		Name:        "search_scenarios",
		Description: "Find decision-optimization scenarios semantically related to a query.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query describing the sustainability challenge",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 3)",
					"default":     3,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchScenarios)

	// 3. get_scenario_details - Persona-enhanced view of one scenario
	server.AddTool(mcp.Tool{
		Name:        "get_scenario_details",
		Description: "Get the full enhanced view of one scenario, including financial analysis, timeline, and persona-specific insights.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"scenario_id": map[string]interface{}{
					"type":        "string",
					"description": "Scenario ID, e.g. energy_optimization",
				},
				"persona": map[string]interface{}{
					"type":        "string",
					"description": "Optional persona key (zuri, amina, bjorn, arjun) for tailored insights",
				},
			},
			Required: []string{"scenario_id"},
		},
	}, handlers.GetScenarioDetails)

	// 4. search_products - Semantic search over the product catalog
	server.AddTool(mcp.Tool{
		Name:        "search_products",
		Description: "Find marketplace products semantically related to a query.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query describing the needed capability",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 3)",
					"default":     3,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchProducts)

	// 5. recommend_products - Profile-aware product recommendations for a scenario
	server.AddTool(mcp.Tool{
		Name:        "recommend_products",
		Description: "Recommend marketplace products for a scenario, filtered and scored against the user's proficiency profile.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"scenario_id": map[string]interface{}{
					"type":        "string",
					"description": "Scenario ID the recommendations are for",
				},
				"sustainability_proficiency": map[string]interface{}{
					"type":        "string",
					"description": "One of: beginner, intermediate, advanced, expert",
				},
				"technological_proficiency": map[string]interface{}{
					"type":        "string",
					"description": "One of: beginner, intermediate, advanced, expert",
				},
				"communication_style": map[string]interface{}{
					"type":        "string",
					"description": "One of: technical, business_focused, simple_explanations, comprehensive (default: comprehensive)",
				},
				"regulatory_compliance_importance": map[string]interface{}{
					"type":        "string",
					"description": "One of: low, medium, high, critical",
				},
				"company_size": map[string]interface{}{
					"type":        "string",
					"description": "Optional company size description",
				},
				"industry_sector": map[string]interface{}{
					"type":        "string",
					"description": "Optional industry sector",
				},
			},
			Required: []string{"scenario_id", "sustainability_proficiency", "technological_proficiency", "regulatory_compliance_importance"},
		},
	}, handlers.RecommendProducts)

	// 6. search_documents - Grounded search over glossary and manual content
	server.AddTool(mcp.Tool{
		Name:        "search_documents",
		Description: "Search official glossary and user-manual content. Returns only passages above the confidence threshold.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Question or term to look up",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of passages to return (default: 3)",
					"default":     3,
				},
				"threshold": map[string]interface{}{
					"type":        "number",
					"description": "Minimum similarity score for a passage to qualify (default: 0.7)",
					"default":     0.7,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchDocuments)

	// 7. ask - Conversational agent with session memory
	server.AddTool(mcp.Tool{
		Name:        "ask",
		Description: "Ask the sustainability navigator a question. Maintains per-session conversation history and returns structured suggestions alongside the answer.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message": map[string]interface{}{
					"type":        "string",
					"description": "User message",
				},
				"persona": map[string]interface{}{
					"type":        "string",
					"description": "Optional persona key (zuri, amina, bjorn, arjun)",
				},
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session to continue; omit to start a new session",
				},
			},
			Required: []string{"message"},
		},
	}, handlers.Ask)

	return handlers
}
