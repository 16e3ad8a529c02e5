// ABOUTME: Session persistence for the conversational navigator
// ABOUTME: Stores chat sessions and their turns, and rehydrates working memory
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

// ErrSessionNotFound is returned when a session ID does not exist.
var ErrSessionNotFound = errors.New("session not found")

// Session is one persisted conversation.
type Session struct {
	ID        string
	Persona   string
	CreatedAt time.Time
	UpdatedAt time.Time
	TurnCount int
}

// SessionStore handles session and turn persistence
type SessionStore struct {
	db *DB
}

// NewSessionStore creates a new SessionStore
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create starts a new session for a persona and returns its ID.
func (s *SessionStore) Create(persona string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.Exec(`
		INSERT INTO sessions (id, persona, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, id, persona, now, now)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// Get returns one session with its turn count.
func (s *SessionStore) Get(sessionID string) (*Session, error) {
	var session Session
	err := s.db.QueryRow(`
		SELECT s.id, s.persona, s.created_at, s.updated_at, COUNT(t.id)
		FROM sessions s
		LEFT JOIN turns t ON t.session_id = s.id
		WHERE s.id = ?
		GROUP BY s.id
	`, sessionID).Scan(&session.ID, &session.Persona, &session.CreatedAt, &session.UpdatedAt, &session.TurnCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// AppendTurn records one user/assistant exchange and bumps the session's
// updated_at. The session must already exist.
func (s *SessionStore) AppendTurn(sessionID string, turn models.ConversationTurn) error {
	if _, err := s.Get(sessionID); err != nil {
		return err
	}

	timestamp := turn.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO turns (session_id, user_message, ai_response, created_at)
		VALUES (?, ?, ?, ?)
	`, sessionID, turn.User, turn.Assistant, timestamp)
	if err != nil {
		return fmt.Errorf("failed to save turn: %w", err)
	}

	_, err = s.db.Exec(`UPDATE sessions SET updated_at = ? WHERE id = ?`, time.Now().UTC(), sessionID)
	return err
}

// Turns retrieves all turns for a session in chronological order.
func (s *SessionStore) Turns(sessionID string) ([]models.ConversationTurn, error) {
	rows, err := s.db.Query(`
		SELECT user_message, ai_response, created_at
		FROM turns
		WHERE session_id = ?
		ORDER BY id ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var turns []models.ConversationTurn
	for rows.Next() {
		var turn models.ConversationTurn
		if err := rows.Scan(&turn.User, &turn.Assistant, &turn.Timestamp); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}

// List returns all sessions, most recently updated first.
func (s *SessionStore) List() ([]Session, error) {
	rows, err := s.db.Query(`
		SELECT s.id, s.persona, s.created_at, s.updated_at, COUNT(t.id)
		FROM sessions s
		LEFT JOIN turns t ON t.session_id = s.id
		GROUP BY s.id
		ORDER BY s.updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sessions []Session
	for rows.Next() {
		var session Session
		if err := rows.Scan(&session.ID, &session.Persona, &session.CreatedAt, &session.UpdatedAt, &session.TurnCount); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// Delete removes a session and, via the foreign key, its turns.
func (s *SessionStore) Delete(sessionID string) error {
	result, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, sessionID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Memory is the in-process conversation store hydrated at startup.
// Satisfied by core.ConversationMemory.
type Memory interface {
	Append(sessionID, user, assistant string)
}

// Hydrate replays every persisted session into working memory. The memory's
// own history cap keeps only the most recent turns per session.
func (s *SessionStore) Hydrate(memory Memory) error {
	sessions, err := s.List()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	for _, session := range sessions {
		turns, err := s.Turns(session.ID)
		if err != nil {
			return fmt.Errorf("failed to load turns for %s: %w", session.ID, err)
		}
		for _, turn := range turns {
			memory.Append(session.ID, turn.User, turn.Assistant)
		}
	}
	return nil
}
