package embedding

import "context"

// Embedder generates vector embeddings for text. Implementations must be
// deterministic for identical input and return vectors of a fixed dimension.
type Embedder interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
