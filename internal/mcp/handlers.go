// ABOUTME: MCP tool handler implementations for the navigator server
// ABOUTME: Validates arguments, delegates to core services, returns JSON results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/core"
	"github.com/hasansarfraz/sustainability-navigator/internal/models"
	"github.com/hasansarfraz/sustainability-navigator/internal/storage"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	scenarios   *catalog.ScenarioCatalog
	products    *catalog.ProductCatalog
	search      *core.SearchEngine
	recommender *core.Recommender
	agent       *core.Agent
	sessions    *storage.SessionStore // nil disables persistence
}

// ListScenarios handles the list_scenarios tool
func (h *Handlers) ListScenarios(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]interface{}{
		"scenarios": h.scenarios.Summaries(),
		"count":     h.scenarios.Len(),
	})
}

// SearchScenarios handles the search_scenarios tool
func (h *Handlers) SearchScenarios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	maxResults := request.GetInt("max_results", 3)

	matches, err := h.search.RankScenarios(ctx, query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scenario search failed: %v", err)), nil
	}

	results := make([]map[string]interface{}, 0, len(matches))
	for _, match := range matches {
		entry, err := h.scenarios.Get(match.ID)
		if err != nil {
			continue
		}
		results = append(results, map[string]interface{}{
			"scenario_id":          match.ID,
			"title":                entry.Title,
			"industry":             entry.Industry,
			"payback_period_years": entry.EstimatedSavings.PaybackYears,
			"score":                match.Score,
		})
	}
	return jsonResult(map[string]interface{}{"results": results, "query": query})
}

// GetScenarioDetails handles the get_scenario_details tool
func (h *Handlers) GetScenarioDetails(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := request.RequireString("scenario_id")
	if err != nil {
		return mcp.NewToolResultError("scenario_id argument is required and must be a string"), nil
	}
	persona := request.GetString("persona", "")

	enhanced, err := h.scenarios.Enhanced(scenarioID, persona)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scenario lookup failed: %v", err)), nil
	}
	return jsonResult(enhanced)
}

// SearchProducts handles the search_products tool
func (h *Handlers) SearchProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	maxResults := request.GetInt("max_results", 3)

	matches, err := h.search.RankProducts(ctx, query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("product search failed: %v", err)), nil
	}

	results := make([]map[string]interface{}, 0, len(matches))
	for _, match := range matches {
		product, err := h.products.Get(match.ID)
		if err != nil {
			continue
		}
		results = append(results, map[string]interface{}{
			"product_id": product.ID,
			"name":       product.Name,
			"category":   product.Category,
			"score":      match.Score,
		})
	}
	return jsonResult(map[string]interface{}{"results": results, "query": query})
}

// RecommendProducts handles the recommend_products tool
func (h *Handlers) RecommendProducts(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := request.RequireString("scenario_id")
	if err != nil {
		return mcp.NewToolResultError("scenario_id argument is required and must be a string"), nil
	}

	profile := &models.UserProfile{
		SustainabilityProficiency: models.ProficiencyLevel(request.GetString("sustainability_proficiency", "")),
		TechnologicalProficiency:  models.ProficiencyLevel(request.GetString("technological_proficiency", "")),
		CommunicationStyle:        models.CommunicationStyle(request.GetString("communication_style", string(models.StyleComprehensive))),
		ComplianceImportance:      models.ComplianceImportance(request.GetString("regulatory_compliance_importance", "")),
		CompanySize:               request.GetString("company_size", ""),
		IndustrySector:            request.GetString("industry_sector", ""),
	}

	output, err := h.scenarios.Output(scenarioID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scenario lookup failed: %v", err)), nil
	}

	recommendations, err := h.recommender.Recommend(output, profile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"scenario_id":     scenarioID,
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}

// SearchDocuments handles the search_documents tool
func (h *Handlers) SearchDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	maxResults := request.GetInt("max_results", 3)
	threshold := request.GetFloat("threshold", 0.7)

	matches, err := h.search.SearchDocuments(ctx, query, maxResults, threshold)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("document search failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"results":   matches,
		"query":     query,
		"threshold": threshold,
	})
}

// Ask handles the ask tool
func (h *Handlers) Ask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}
	persona := request.GetString("persona", "general")

	sessionID := request.GetString("session_id", "")
	if sessionID == "" {
		sessionID, err = h.newSession(persona)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to start session: %v", err)), nil
		}
	}

	response, err := h.agent.Process(ctx, message, persona, sessionID, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("agent failed: %v", err)), nil
	}

	if h.sessions != nil {
		turn := models.ConversationTurn{User: message, Assistant: response.Response, Timestamp: time.Now().UTC()}
		if err := h.sessions.AppendTurn(sessionID, turn); err != nil {
			// Persistence is best effort; the in-memory history already has the turn.
			log.Printf("Warning: failed to persist turn: %v", err)
		}
	}

	return jsonResult(map[string]interface{}{
		"session_id": sessionID,
		"answer":     response,
	})
}

func (h *Handlers) newSession(persona string) (string, error) {
	if h.sessions != nil {
		return h.sessions.Create(persona)
	}
	return uuid.New().String(), nil
}

func jsonResult(payload interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
