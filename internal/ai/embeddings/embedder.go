// Package embeddings turns free text into fixed-length vectors for semantic ranking.
package embeddings

import (
	"context"
	"math"
)

// Embedder generates embedding vectors for text.
//
// Behavior for empty input is implementation-defined and documented per
// implementation: the local embedder returns the zero vector (which ranks as
// similarity 0.0), the OpenAI embedder substitutes a single space because the
// API rejects empty strings. Neither fails on it.
type Embedder interface {
	// Embed creates an embedding vector for a single text
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch creates embedding vectors for multiple texts.
	// The result has one vector per input, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Model identifies the underlying embedding model. All vectors compared
	// within one ranking call must come from the same model.
	Model() string
}

// NormalizeL2 scales a vector to unit length in place.
// The zero vector is left untouched.
func NormalizeL2(vector []float32) {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}

	if sumSquares == 0 {
		return
	}

	magnitude := math.Sqrt(sumSquares)
	for i := range vector {
		vector[i] = float32(float64(vector[i]) / magnitude)
	}
}
