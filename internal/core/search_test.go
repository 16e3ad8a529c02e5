// ABOUTME: Tests for the semantic search engine with a stub embedder
// ABOUTME: Covers index building, ranking, failure propagation, and the inclusive threshold

package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/vector"
)

// stubEmbedder returns fixed vectors for texts matched by prefix, a default
// vector otherwise, and an error once failAfter calls have been made.
type stubEmbedder struct {
	vectors   map[string][]float64
	fallback  []float64
	calls     int
	failAfter int
}

func newStubEmbedder() *stubEmbedder {
	return &stubEmbedder{
		vectors:   make(map[string][]float64),
		fallback:  []float64{4, -3},
		failAfter: -1,
	}
}

func (s *stubEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float64, error) {
	s.calls++
	if s.failAfter >= 0 && s.calls > s.failAfter {
		return nil, errors.New("embedding provider down")
	}
	for prefix, vec := range s.vectors {
		if strings.HasPrefix(text, prefix) {
			return vec, nil
		}
	}
	return s.fallback, nil
}

func newTestEngine(t *testing.T, embedder *stubEmbedder) *SearchEngine {
	t.Helper()

	engine := NewSearchEngine(embedder, catalog.NewScenarioCatalog(), catalog.NewProductCatalog())
	if err := engine.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return engine
}

func TestInit_FailureAborts(t *testing.T) {
	embedder := newStubEmbedder()
	embedder.failAfter = 3

	engine := NewSearchEngine(embedder, catalog.NewScenarioCatalog(), catalog.NewProductCatalog())
	if err := engine.Init(context.Background()); err == nil {
		t.Fatal("Init() expected error when embedding fails mid-build")
	}
}

func TestRankScenarios(t *testing.T) {
	embedder := newStubEmbedder()
	// Fallback-vector entries are orthogonal to the query and score 0.
	embedder.vectors["Energy Optimization\n"] = []float64{3, 4}
	embedder.vectors["Smart Building Retrofitting\n"] = []float64{4, 3}
	embedder.vectors["what should I do about energy?"] = []float64{3, 4}

	engine := newTestEngine(t, embedder)

	matches, err := engine.RankScenarios(context.Background(), "what should I do about energy?", 2)
	if err != nil {
		t.Fatalf("RankScenarios() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("RankScenarios() = %d matches, want 2", len(matches))
	}
	if matches[0].ID != "energy_optimization" {
		t.Errorf("top match = %q, want energy_optimization", matches[0].ID)
	}
	if matches[0].Title != "Energy Optimization" {
		t.Errorf("top match title = %q", matches[0].Title)
	}
	if matches[1].ID != "smart_building_retrofitting" {
		t.Errorf("second match = %q, want smart_building_retrofitting", matches[1].ID)
	}
}

func TestRankProducts(t *testing.T) {
	embedder := newStubEmbedder()
	embedder.vectors["SiGREEN\n"] = []float64{0, 1}
	embedder.vectors["carbon tracking"] = []float64{0, 1}

	engine := newTestEngine(t, embedder)

	matches, err := engine.RankProducts(context.Background(), "carbon tracking", 1)
	if err != nil {
		t.Fatalf("RankProducts() error = %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "sigreen" {
		t.Errorf("RankProducts() = %+v, want sigreen", matches)
	}
}

func TestRank_QueryEmbeddingFailure(t *testing.T) {
	embedder := newStubEmbedder()
	engine := newTestEngine(t, embedder)

	// Fail every call from now on.
	embedder.failAfter = embedder.calls

	if _, err := engine.RankScenarios(context.Background(), "energy", 3); err == nil {
		t.Error("RankScenarios() expected error when query embedding fails")
	}
}

func TestSearchDocuments_InclusiveThreshold(t *testing.T) {
	embedder := newStubEmbedder()
	// The glossary chunk content starts with its term.
	embedder.vectors["Digital Business Optimizer (DBO)\n"] = []float64{1, 0}
	embedder.vectors["what is the decision optimizer tool"] = []float64{3, 4}

	engine := newTestEngine(t, embedder)

	// Compute the exact score the engine will see, then use it as the
	// threshold: an exactly-at-threshold match must be returned.
	exact := vector.CosineSimilarity([]float64{3, 4}, []float64{1, 0})

	results, err := engine.SearchDocuments(context.Background(), "what is the decision optimizer tool", 3, exact)
	if err != nil {
		t.Fatalf("SearchDocuments() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("SearchDocuments() = %d results, want exactly the boundary match", len(results))
	}
	if results[0].Section != "Digital Business Optimizer (DBO)" {
		t.Errorf("Section = %q", results[0].Section)
	}
	if results[0].Similarity != exact {
		t.Errorf("Similarity = %v, want %v", results[0].Similarity, exact)
	}
	if results[0].Kind != "glossary" {
		t.Errorf("Kind = %q, want glossary", results[0].Kind)
	}

	// Nudging the threshold above the score excludes the match.
	above, err := engine.SearchDocuments(context.Background(), "what is the decision optimizer tool", 3, exact+1e-9)
	if err != nil {
		t.Fatalf("SearchDocuments() error = %v", err)
	}
	if len(above) != 0 {
		t.Errorf("SearchDocuments() above threshold = %d results, want 0", len(above))
	}
}

func TestSearchDocuments_NoMatchesBelowThreshold(t *testing.T) {
	embedder := newStubEmbedder()
	embedder.vectors["completely unrelated question"] = []float64{3, 4}

	engine := newTestEngine(t, embedder)

	// Every chunk got the fallback vector (4, -3), orthogonal to (3, 4).
	results, err := engine.SearchDocuments(context.Background(), "completely unrelated question", 3, 0.7)
	if err != nil {
		t.Fatalf("SearchDocuments() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("SearchDocuments() = %d results, want 0", len(results))
	}
}

func TestDocumentCorpus_Shape(t *testing.T) {
	chunks := DocumentCorpus()
	if len(chunks) != 6 {
		t.Fatalf("DocumentCorpus() = %d chunks, want 4 glossary + 2 manual", len(chunks))
	}

	glossary, manual := 0, 0
	for _, chunk := range chunks {
		switch chunk.Kind {
		case "glossary":
			glossary++
		case "manual":
			manual++
		default:
			t.Errorf("unexpected chunk kind %q", chunk.Kind)
		}
		if chunk.Content == "" || chunk.Source == "" || chunk.Section == "" {
			t.Errorf("incomplete chunk: %+v", chunk)
		}
	}
	if glossary != 4 || manual != 2 {
		t.Errorf("corpus split = %d glossary, %d manual; want 4 and 2", glossary, manual)
	}
}
