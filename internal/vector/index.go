// ABOUTME: In-memory vector index with cosine similarity search
// ABOUTME: Records are immutable after startup; searches are read-only and lock-free
package vector

import (
	"fmt"
	"math"
	"sort"
)

// Record is one indexed embedding with its source metadata.
type Record struct {
	ID       string
	Vector   []float64
	Metadata map[string]string
}

// Match is one search hit with its cosine similarity score.
type Match struct {
	ID       string
	Score    float64
	Metadata map[string]string
}

// Index is an append-mostly in-memory vector index. All records must share
// one embedding dimensionality; mixing dimensions is a contract violation.
// Build it fully at startup, then share freely across goroutines.
type Index struct {
	records []Record
	byID    map[string]int
	dim     int
}

// New returns an empty index.
func New() *Index {
	return &Index{byID: make(map[string]int)}
}

// Len returns the number of indexed records.
func (ix *Index) Len() int { return len(ix.records) }

// Upsert adds a record or replaces the record with the same id. The first
// record fixes the index dimensionality.
func (ix *Index) Upsert(id string, vector []float64, metadata map[string]string) error {
	if len(vector) == 0 {
		return fmt.Errorf("empty embedding for %q", id)
	}
	if ix.dim == 0 {
		ix.dim = len(vector)
	} else if len(vector) != ix.dim {
		return fmt.Errorf("embedding dimension mismatch for %q: index has %d, got %d", id, ix.dim, len(vector))
	}

	record := Record{ID: id, Vector: vector, Metadata: metadata}
	if pos, ok := ix.byID[id]; ok {
		ix.records[pos] = record
		return nil
	}
	ix.byID[id] = len(ix.records)
	ix.records = append(ix.records, record)
	return nil
}

// Search returns the topK records with the highest cosine similarity to the
// query, in descending score order. Ties keep insertion order. Searching an
// empty index returns an empty slice, never an error. A query whose length
// differs from the index dimensionality violates the index contract and
// returns nil rather than all-zero rankings. Confidence filtering is the
// caller's job; Search always returns up to topK regardless of score.
func (ix *Index) Search(query []float64, topK int) []Match {
	if topK <= 0 || len(ix.records) == 0 || len(query) != ix.dim {
		return nil
	}

	matches := make([]Match, 0, len(ix.records))
	for _, record := range ix.records {
		matches = append(matches, Match{
			ID:       record.ID,
			Score:    CosineSimilarity(query, record.Vector),
			Metadata: record.Metadata,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// CosineSimilarity computes dot(a,b) / (|a|*|b|). Mismatched lengths or a
// zero-norm vector yield 0.0 rather than an error.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
