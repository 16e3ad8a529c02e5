// ABOUTME: Tests for session persistence against an in-memory database
// ABOUTME: Covers CRUD, cascade deletion, and memory rehydration

package storage

import (
	"errors"
	"testing"

	"github.com/hasansarfraz/sustainability-navigator/internal/models"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()

	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSessionStore(db)
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Create("amina")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Fatal("Create() returned empty ID")
	}

	session, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if session.Persona != "amina" {
		t.Errorf("Persona = %q, want %q", session.Persona, "amina")
	}
	if session.TurnCount != 0 {
		t.Errorf("TurnCount = %d, want 0", session.TurnCount)
	}
	if session.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestSessionStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionStore_AppendAndTurns(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Create("zuri")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exchanges := []models.ConversationTurn{
		{User: "How do I cut energy costs?", Assistant: "Start with monitoring."},
		{User: "What about financing?", Assistant: "Leasing is available."},
	}
	for _, turn := range exchanges {
		if err := store.AppendTurn(id, turn); err != nil {
			t.Fatalf("AppendTurn() error = %v", err)
		}
	}

	turns, err := store.Turns(id)
	if err != nil {
		t.Fatalf("Turns() error = %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("len(turns) = %d, want 2", len(turns))
	}
	if turns[0].User != "How do I cut energy costs?" || turns[1].Assistant != "Leasing is available." {
		t.Errorf("turns out of order: %+v", turns)
	}
	if turns[0].Timestamp.IsZero() {
		t.Error("stored turn has zero timestamp")
	}

	session, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if session.TurnCount != 2 {
		t.Errorf("TurnCount = %d, want 2", session.TurnCount)
	}
}

func TestSessionStore_AppendToMissingSession(t *testing.T) {
	store := newTestStore(t)

	err := store.AppendTurn("nope", models.ConversationTurn{User: "hi", Assistant: "hello"})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("AppendTurn() error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionStore_List(t *testing.T) {
	store := newTestStore(t)

	first, _ := store.Create("amina")
	second, _ := store.Create("stefan")

	// Touching the first session makes it the most recently updated.
	if err := store.AppendTurn(first, models.ConversationTurn{User: "hi", Assistant: "hello"}); err != nil {
		t.Fatalf("AppendTurn() error = %v", err)
	}

	sessions, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(sessions))
	}
	if sessions[0].ID != first {
		t.Errorf("sessions[0].ID = %q, want most recently updated %q", sessions[0].ID, first)
	}
	if sessions[1].ID != second {
		t.Errorf("sessions[1].ID = %q, want %q", sessions[1].ID, second)
	}
}

func TestSessionStore_DeleteCascades(t *testing.T) {
	store := newTestStore(t)

	id, _ := store.Create("amina")
	if err := store.AppendTurn(id, models.ConversationTurn{User: "hi", Assistant: "hello"}); err != nil {
		t.Fatalf("AppendTurn() error = %v", err)
	}

	if err := store.Delete(id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrSessionNotFound", err)
	}

	turns, err := store.Turns(id)
	if err != nil {
		t.Fatalf("Turns() error = %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("len(turns) = %d after cascade delete, want 0", len(turns))
	}

	if err := store.Delete(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Delete() error = %v, want ErrSessionNotFound", err)
	}
}

// recordingMemory captures Append calls for hydration tests.
type recordingMemory struct {
	entries map[string][]string
}

func (m *recordingMemory) Append(sessionID, user, _ string) {
	if m.entries == nil {
		m.entries = map[string][]string{}
	}
	m.entries[sessionID] = append(m.entries[sessionID], user)
}

func TestSessionStore_Hydrate(t *testing.T) {
	store := newTestStore(t)

	first, _ := store.Create("amina")
	second, _ := store.Create("zuri")
	for i, msg := range []string{"one", "two", "three"} {
		target := first
		if i == 2 {
			target = second
		}
		if err := store.AppendTurn(target, models.ConversationTurn{User: msg, Assistant: "ok"}); err != nil {
			t.Fatalf("AppendTurn() error = %v", err)
		}
	}

	memory := &recordingMemory{}
	if err := store.Hydrate(memory); err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}

	if got := memory.entries[first]; len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("hydrated %v for first session, want [one two]", got)
	}
	if got := memory.entries[second]; len(got) != 1 || got[0] != "three" {
		t.Errorf("hydrated %v for second session, want [three]", got)
	}
}
