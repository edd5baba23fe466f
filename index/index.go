package index

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/askdesk/askdesk/embedding"
	"github.com/askdesk/askdesk/knowledge"
)

// Match is one nearest-neighbor result: the knowledge entry position and its
// cosine similarity to the query, in [-1, 1].
type Match struct {
	EntryIndex int
	Similarity float64
}

// Index holds one pre-computed vector per knowledge entry, indexed by entry
// position. Immutable after Build; replace the whole Index to rebuild.
type Index struct {
	embedder embedding.Embedder
	vectors  [][]float32
	norms    []float64
}

// Build embeds every question of the base and constructs the index. A failing
// embedder makes the whole build fail: no matching can proceed without vectors.
func Build(ctx context.Context, embedder embedding.Embedder, base *knowledge.Base) (*Index, error) {
	questions := base.Questions()
	vectors, err := embedder.EmbedBatch(ctx, questions)
	if err != nil {
		return nil, fmt.Errorf("embed knowledge questions: %w", err)
	}
	if len(vectors) != len(questions) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d questions", len(vectors), len(questions))
	}

	norms := make([]float64, len(vectors))
	for i, vec := range vectors {
		norms[i] = vectorNorm(vec)
	}
	return &Index{embedder: embedder, vectors: vectors, norms: norms}, nil
}

// Len returns the number of indexed entries.
func (x *Index) Len() int { return len(x.vectors) }

// Query embeds the text once and returns the k highest-similarity entries in
// descending similarity order, ties broken by lower entry index. An empty
// index yields an empty result rather than an error.
func (x *Index) Query(ctx context.Context, text string, k int) ([]Match, error) {
	if k <= 0 || len(x.vectors) == 0 {
		return nil, nil
	}
	query, err := x.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	queryNorm := vectorNorm(query)

	matches := make([]Match, len(x.vectors))
	for i, vec := range x.vectors {
		matches[i] = Match{EntryIndex: i, Similarity: cosine(query, queryNorm, vec, x.norms[i])}
	}
	// Stable sort keeps ascending entry order among equal similarities.
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Similarity > matches[j].Similarity })

	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k], nil
}

func cosine(a []float32, aNorm float64, b []float32, bNorm float64) float64 {
	if len(a) != len(b) || aNorm == 0 || bNorm == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (aNorm * bNorm)
}

func vectorNorm(v []float32) float64 {
	var sum float64
	for _, c := range v {
		sum += float64(c) * float64(c)
	}
	return math.Sqrt(sum)
}
