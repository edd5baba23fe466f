package embedding

import (
	"context"
	"hash/fnv"
	"math"
)

// Mock is a deterministic embedder for tests. It derives a fixed-dimension
// unit vector from the text hash so the same text always gets the same
// embedding, while unrelated texts end up nearly orthogonal.
type Mock struct {
	dimensions int
}

// NewMock returns an embedder producing deterministic embeddings of the given
// dimension (default 384 when non-positive).
func NewMock(dimensions int) *Mock {
	if dimensions <= 0 {
		dimensions = 384
	}
	return &Mock{dimensions: dimensions}
}

// Embed returns a deterministic embedding based on the text hash.
func (e *Mock) Embed(_ context.Context, text string) ([]float32, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	seed := h.Sum64()

	vec := make([]float32, e.dimensions)
	for i := range vec {
		vec[i] = float32(math.Sin(float64(seed%104729) * float64(i+1)))
	}

	// Normalize to unit length so dot product equals cosine similarity.
	var sum float64
	for _, v := range vec {
		sum += float64(v * v)
	}
	if sum > 0 {
		norm := float32(1.0 / math.Sqrt(sum))
		for i := range vec {
			vec[i] *= norm
		}
	}
	return vec, nil
}

// EmbedBatch calls Embed for each text.
func (e *Mock) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// Dimensions returns the embedding dimension.
func (e *Mock) Dimensions() int { return e.dimensions }
