// ABOUTME: In-memory conversation history with a per-session turn cap
// ABOUTME: Sessions are isolated; appending to one never affects another
package core

import (
	"sync"
	"time"

	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

// defaultHistoryLimit is how many turns each session keeps. Older turns are
// dropped from the front.
const defaultHistoryLimit = 10

// ConversationMemory keeps recent turns per session id. Safe for
// concurrent use.
type ConversationMemory struct {
	mu       sync.Mutex
	sessions map[string][]models.ConversationTurn
	limit    int
}

// NewConversationMemory creates a memory keeping up to limit turns per
// session. A non-positive limit uses the default of 10.
func NewConversationMemory(limit int) *ConversationMemory {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &ConversationMemory{
		sessions: make(map[string][]models.ConversationTurn),
		limit:    limit,
	}
}

// Append records one user/assistant exchange for the session, evicting the
// oldest turn once the session is at its limit.
func (m *ConversationMemory) Append(sessionID, userMessage, assistantResponse string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := append(m.sessions[sessionID], models.ConversationTurn{
		User:      userMessage,
		Assistant: assistantResponse,
		Timestamp: time.Now(),
	})
	if len(turns) > m.limit {
		turns = turns[len(turns)-m.limit:]
	}
	m.sessions[sessionID] = turns
}

// History returns a copy of the session's turns, oldest first. An unknown
// session yields an empty slice.
func (m *ConversationMemory) History(sessionID string) []models.ConversationTurn {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := m.sessions[sessionID]
	out := make([]models.ConversationTurn, len(turns))
	copy(out, turns)
	return out
}

// Clear removes all turns for the session.
func (m *ConversationMemory) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Sessions returns how many sessions currently hold history.
func (m *ConversationMemory) Sessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
