// ABOUTME: Semantic search engine over scenarios, products, and documents
// ABOUTME: Indices are built once at startup; queries embed then rank by cosine
package core

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hasansarfraz/sustainability-navigator/internal/catalog"
	"github.com/hasansarfraz/sustainability-navigator/internal/models"
	"github.com/hasansarfraz/sustainability-navigator/internal/vector"
)

// Embedder produces embedding vectors for text. Satisfied by llm.Client.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float64, error)
}

// SearchEngine answers semantic queries against three corpora: the scenario
// catalog, the product catalog, and the official document chunks. Each
// corpus has its own vector index. Build the engine once with Init, then
// share it across goroutines; it is read-only after initialization.
type SearchEngine struct {
	embedder  Embedder
	scenarios *catalog.ScenarioCatalog
	products  *catalog.ProductCatalog

	scenarioIndex *vector.Index
	productIndex  *vector.Index
	documentIndex *vector.Index
	chunks        map[string]DocumentChunk
}

// NewSearchEngine creates an engine over the given catalogs. Call Init
// before searching.
func NewSearchEngine(embedder Embedder, scenarios *catalog.ScenarioCatalog, products *catalog.ProductCatalog) *SearchEngine {
	return &SearchEngine{
		embedder:      embedder,
		scenarios:     scenarios,
		products:      products,
		scenarioIndex: vector.New(),
		productIndex:  vector.New(),
		documentIndex: vector.New(),
		chunks:        make(map[string]DocumentChunk),
	}
}

// Init embeds every scenario, product, and document chunk and builds the
// indices. Any embedding failure aborts initialization; a partially built
// index would silently drop corpus entries from every later search.
func (e *SearchEngine) Init(ctx context.Context) error {
	for _, entry := range e.scenarios.All() {
		vec, err := e.embedder.GenerateEmbedding(ctx, scenarioText(entry))
		if err != nil {
			return fmt.Errorf("embed scenario %s: %w", entry.ID, err)
		}
		if err := e.scenarioIndex.Upsert(entry.ID, vec, map[string]string{"title": entry.Title}); err != nil {
			return fmt.Errorf("index scenario %s: %w", entry.ID, err)
		}
	}

	for _, product := range e.products.All() {
		vec, err := e.embedder.GenerateEmbedding(ctx, productText(product))
		if err != nil {
			return fmt.Errorf("embed product %s: %w", product.ID, err)
		}
		if err := e.productIndex.Upsert(product.ID, vec, map[string]string{"title": product.Name}); err != nil {
			return fmt.Errorf("index product %s: %w", product.ID, err)
		}
	}

	for _, chunk := range DocumentCorpus() {
		vec, err := e.embedder.GenerateEmbedding(ctx, chunk.Content)
		if err != nil {
			return fmt.Errorf("embed document %s: %w", chunk.ID, err)
		}
		if err := e.documentIndex.Upsert(chunk.ID, vec, nil); err != nil {
			return fmt.Errorf("index document %s: %w", chunk.ID, err)
		}
		e.chunks[chunk.ID] = chunk
	}

	log.Printf("Search engine initialized: %d scenarios, %d products, %d document chunks",
		e.scenarioIndex.Len(), e.productIndex.Len(), e.documentIndex.Len())
	return nil
}

// RankScenarios returns the topK scenarios most similar to the query, best
// first. No similarity threshold is applied; callers filter if they care.
func (e *SearchEngine) RankScenarios(ctx context.Context, query string, topK int) ([]models.RankedMatch, error) {
	return e.rank(ctx, e.scenarioIndex, query, topK)
}

// RankProducts returns the topK products most similar to the query.
func (e *SearchEngine) RankProducts(ctx context.Context, query string, topK int) ([]models.RankedMatch, error) {
	return e.rank(ctx, e.productIndex, query, topK)
}

func (e *SearchEngine) rank(ctx context.Context, index *vector.Index, query string, topK int) ([]models.RankedMatch, error) {
	queryVec, err := e.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	matches := index.Search(queryVec, topK)
	ranked := make([]models.RankedMatch, 0, len(matches))
	for _, match := range matches {
		ranked = append(ranked, models.RankedMatch{
			ID:    match.ID,
			Score: match.Score,
			Title: match.Metadata["title"],
		})
	}
	return ranked, nil
}

// SearchDocuments returns document chunks with similarity at or above
// threshold, best first, at most topK. The threshold comparison is
// inclusive: a chunk scoring exactly the threshold is returned.
func (e *SearchEngine) SearchDocuments(ctx context.Context, query string, topK int, threshold float64) ([]models.DocumentMatch, error) {
	queryVec, err := e.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	var results []models.DocumentMatch
	for _, match := range e.documentIndex.Search(queryVec, topK) {
		if match.Score < threshold {
			continue
		}
		chunk := e.chunks[match.ID]
		results = append(results, models.DocumentMatch{
			Content:    chunk.Content,
			Source:     chunk.Source,
			Section:    chunk.Section,
			Similarity: match.Score,
			Kind:       chunk.Kind,
		})
	}
	return results, nil
}

// scenarioText renders the searchable representation of a scenario.
func scenarioText(entry *models.ScenarioEntry) string {
	parts := []string{entry.Title, entry.Description, entry.Industry}
	parts = append(parts, entry.ImplementationSteps...)
	return strings.Join(parts, "\n")
}

// productText renders the searchable representation of a product.
func productText(product *models.ProductEntry) string {
	parts := []string{product.Name, product.Category, product.Description}
	parts = append(parts, product.KeyCapabilities...)
	return strings.Join(parts, "\n")
}
