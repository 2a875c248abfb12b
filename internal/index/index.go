package index

import (
	"context"
	"fmt"
	"sort"

	"github.com/recetario-ai/recetario/internal/domain"
	"github.com/recetario-ai/recetario/internal/embedding"
)

// Index is an exact nearest-neighbour structure over document embeddings.
// It is built once during corpus build and never mutated afterwards, so
// concurrent searches need no locking.
type Index struct {
	embedder embedding.Embedder
	entries  []entry // insertion order, used as the deterministic tie-break
}

type entry struct {
	doc    Document
	vector []float32 // unit-normalized
}

// Build embeds every document's content and assembles the index. Embeddings
// are requested in batches; construction cost is O(N) embeddings and must
// complete before any search is served.
func Build(ctx context.Context, embedder embedding.Embedder, docs []Document, batchSize int) (*Index, error) {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectors, err := embedder.EmbedBatch(ctx, texts, batchSize)
	if err != nil {
		return nil, domain.EmbeddingError("embed documents", err)
	}
	if len(vectors) != len(docs) {
		return nil, domain.EmbeddingError(
			fmt.Sprintf("embedded %d of %d documents", len(vectors), len(docs)), nil)
	}

	ix := &Index{
		embedder: embedder,
		entries:  make([]entry, len(docs)),
	}
	for i, vec := range vectors {
		ix.entries[i] = entry{doc: docs[i], vector: embedding.Normalize(vec)}
	}

	return ix, nil
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Search returns the k documents nearest to the query by cosine similarity,
// most similar first. Ties keep insertion order, making results deterministic
// for a fixed index and query. The index is not mutated.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]Document, error) {
	if k <= 0 || len(ix.entries) == 0 {
		return nil, nil
	}

	vec, err := ix.embedder.EmbedSingle(ctx, query)
	if err != nil {
		return nil, domain.EmbeddingError("embed query", err)
	}
	qv := embedding.Normalize(vec)

	type scored struct {
		pos   int
		score float32
	}
	results := make([]scored, len(ix.entries))
	for i, e := range ix.entries {
		results[i] = scored{pos: i, score: dot(qv, e.vector)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if k > len(results) {
		k = len(results)
	}

	out := make([]Document, k)
	for i := 0; i < k; i++ {
		out[i] = ix.entries[results[i].pos].doc
	}
	return out, nil
}

// dot computes the dot product of two equal-length unit vectors, which for
// normalized vectors equals their cosine similarity.
func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
