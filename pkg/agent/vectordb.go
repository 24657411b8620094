package agent

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// ErrIndexNotFound indicates a search or upsert against an index that was
// never created (or was deleted).
var ErrIndexNotFound = errors.New("vector index not found")

type vectorEntry struct {
	id       string
	vector   []float32
	metadata map[string]string
}

// MemoryVectorDB is the reference ManagedVectorDB: an in-process cosine
// similarity index. Good enough for entity matching on semantic models of
// realistic size; swap in a hosted index behind the same interface for
// larger corpora.
type MemoryVectorDB struct {
	mu      sync.RWMutex
	dim     int
	entries []vectorEntry
}

var _ ManagedVectorDB = (*MemoryVectorDB)(nil)

func NewMemoryVectorDB() *MemoryVectorDB {
	return &MemoryVectorDB{}
}

// CreateIndex fixes the index dimensionality. Re-creating resets contents.
func (m *MemoryVectorDB) CreateIndex(_ context.Context, dim int) error {
	if dim <= 0 {
		return fmt.Errorf("%w: dimension %d", ErrVectorDimension, dim)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dim = dim
	m.entries = nil
	return nil
}

// UpsertVectors stores vectors with parallel metadata. An entry carrying an
// "id" metadata key replaces any prior entry with the same id.
func (m *MemoryVectorDB) UpsertVectors(_ context.Context, vectors [][]float32, metadata []map[string]string) error {
	if len(vectors) != len(metadata) {
		return fmt.Errorf("vectors/metadata length mismatch: %d vs %d", len(vectors), len(metadata))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dim == 0 {
		return ErrIndexNotFound
	}
	for i, v := range vectors {
		if len(v) != m.dim {
			return fmt.Errorf("%w: got %d, index is %d", ErrVectorDimension, len(v), m.dim)
		}
		id := metadata[i]["id"]
		if id == "" {
			id = uuid.NewString()
		}
		entry := vectorEntry{id: id, vector: v, metadata: metadata[i]}
		replaced := false
		for j := range m.entries {
			if m.entries[j].id == id {
				m.entries[j] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			m.entries = append(m.entries, entry)
		}
	}
	return nil
}

// Search returns the topK nearest entries by cosine similarity, filtered by
// exact metadata match. Results are ordered by descending score.
func (m *MemoryVectorDB) Search(_ context.Context, vector []float32, topK int, filters map[string]string) ([]VectorMatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.dim == 0 {
		return nil, ErrIndexNotFound
	}
	if len(vector) != m.dim {
		return nil, fmt.Errorf("%w: got %d, index is %d", ErrVectorDimension, len(vector), m.dim)
	}
	if topK <= 0 {
		topK = 10
	}

	matches := make([]VectorMatch, 0, topK)
	for _, e := range m.entries {
		if !metadataMatches(e.metadata, filters) {
			continue
		}
		matches = append(matches, VectorMatch{
			ID:       e.id,
			Score:    cosineSimilarity(vector, e.vector),
			Metadata: e.metadata,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// DeleteIndex drops all entries and unfixes the dimensionality.
func (m *MemoryVectorDB) DeleteIndex(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dim = 0
	m.entries = nil
	return nil
}

func (m *MemoryVectorDB) TestConnection(_ context.Context) error {
	return nil
}

func metadataMatches(metadata, filters map[string]string) bool {
	for k, want := range filters {
		if metadata[k] != want {
			return false
		}
	}
	return true
}

func cosineSimilarity(a, b []float32) float32 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
