package index

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdesk/askdesk/embedding"
	"github.com/askdesk/askdesk/knowledge"
)

// stubEmbedder maps texts to fixed vectors so similarity orderings are
// controllable from the test table.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 1}, nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := s.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func mustBase(t *testing.T, questions ...string) *knowledge.Base {
	t.Helper()
	entries := make([]knowledge.Entry, len(questions))
	for i, q := range questions {
		entries[i] = knowledge.Entry{Question: q, Answer: "réponse " + q}
	}
	base, err := knowledge.New(entries)
	require.NoError(t, err)
	return base
}

func TestQueryOrderingAndBounds(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{
		"a":     {1, 0, 0},
		"b":     {0.9, 0.1, 0},
		"c":     {0, 1, 0},
		"query": {1, 0, 0},
	}}
	idx, err := Build(context.Background(), emb, mustBase(t, "a", "b", "c"))
	require.NoError(t, err)
	require.Equal(t, 3, idx.Len())

	matches, err := idx.Query(context.Background(), "query", 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, 0, matches[0].EntryIndex)
	assert.InDelta(t, 1.0, matches[0].Similarity, 1e-9)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Similarity, matches[i].Similarity)
	}
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.Similarity, -1.0)
		assert.LessOrEqual(t, m.Similarity, 1.0)
	}
}

func TestQueryReturnsAtMostK(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{}}
	idx, err := Build(context.Background(), emb, mustBase(t, "a", "b", "c", "d"))
	require.NoError(t, err)

	matches, err := idx.Query(context.Background(), "query", 2)
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	// k larger than the index size caps at the index size.
	matches, err = idx.Query(context.Background(), "query", 10)
	require.NoError(t, err)
	assert.Len(t, matches, 4)
}

func TestQueryTiesBrokenByEntryIndex(t *testing.T) {
	same := []float32{0, 1, 0}
	emb := &stubEmbedder{vectors: map[string][]float32{
		"a":     same,
		"b":     same,
		"c":     same,
		"query": same,
	}}
	idx, err := Build(context.Background(), emb, mustBase(t, "a", "b", "c"))
	require.NoError(t, err)

	matches, err := idx.Query(context.Background(), "query", 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{matches[0].EntryIndex, matches[1].EntryIndex, matches[2].EntryIndex})
}

func TestQueryEmptyIndex(t *testing.T) {
	idx := &Index{}
	matches, err := idx.Query(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestBuildFailsWhenEmbedderFails(t *testing.T) {
	emb := &stubEmbedder{err: errors.New("provider unavailable")}
	_, err := Build(context.Background(), emb, mustBase(t, "a"))
	assert.Error(t, err)
}

func TestBuildWithMockEmbedderSelfSimilarity(t *testing.T) {
	emb := embedding.NewMock(96)
	base := mustBase(t, "Quels sont vos horaires d'ouverture ?", "Comment puis-je vous contacter ?")
	idx, err := Build(context.Background(), emb, base)
	require.NoError(t, err)

	matches, err := idx.Query(context.Background(), "Quels sont vos horaires d'ouverture ?", 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].EntryIndex)
	assert.InDelta(t, 1.0, matches[0].Similarity, 1e-5)
}
