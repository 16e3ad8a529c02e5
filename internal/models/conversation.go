// ABOUTME: Conversation turns, agent thoughts, and structured agent responses
// ABOUTME: AgentAction names the tools the reasoning loop may invoke
package models

import "time"

// ConversationTurn is one user/assistant exchange in a session.
type ConversationTurn struct {
	User      string    `json:"user"`
	Assistant string    `json:"assistant"`
	Timestamp time.Time `json:"timestamp"`
}

// AgentAction is one of the tools the reasoning loop can plan.
type AgentAction string

const (
	ActionSearchScenarios AgentAction = "SEARCH_DBO"
	ActionScenarioDetails AgentAction = "GET_DBO_DETAILS"
	ActionSearchProducts  AgentAction = "SEARCH_PRODUCTS"
	ActionRecommend       AgentAction = "RECOMMEND"
	ActionClarify         AgentAction = "CLARIFY"
	ActionAnswer          AgentAction = "ANSWER"
)

// ParseAgentAction maps an action name to its AgentAction. Unknown names
// fall back to ANSWER so a malformed plan still produces a response.
func ParseAgentAction(name string) AgentAction {
	switch AgentAction(name) {
	case ActionSearchScenarios, ActionScenarioDetails, ActionSearchProducts,
		ActionRecommend, ActionClarify, ActionAnswer:
		return AgentAction(name)
	}
	return ActionAnswer
}

// AgentThought is one step of the reasoning loop: the model's thought, the
// planned action with its input, and the observation gathered by running it.
type AgentThought struct {
	Thought     string            `json:"thought"`
	Action      AgentAction       `json:"action"`
	ActionInput map[string]string `json:"action_input"`
	Observation string            `json:"observation,omitempty"`
}

// ProductSuggestion is a compact product reference surfaced by the agent.
type ProductSuggestion struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	RelevanceScore float64 `json:"relevance_score"`
}

// SuggestedAction is a follow-up the user interface can offer.
type SuggestedAction struct {
	ActionID    string            `json:"action_id"`
	ActionType  string            `json:"action_type"`
	ActionLabel string            `json:"action_label"`
	ActionData  map[string]string `json:"action_data"`
}

// AgentResponse is the structured result of processing one user message.
type AgentResponse struct {
	Response            string              `json:"response"`
	Recommendations     []ProductSuggestion `json:"recommendations"`
	ScenarioSuggestions []string            `json:"dbo_suggestions"`
	Actions             []SuggestedAction   `json:"actions"`
	ConfidenceScore     float64             `json:"confidence_score"`
}
