package embeddings

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"
)

const localDimension = 256

// LocalEmbedder is a deterministic, dependency-free embedder built on the
// feature-hashing trick: each token is hashed into one of a fixed number of
// buckets with a hash-derived sign, counts are accumulated, and the vector is
// L2-normalized. Texts sharing vocabulary land in the same buckets and score
// a higher cosine, which is enough for offline ranking and tests.
//
// Empty or token-less input yields the zero vector.
type LocalEmbedder struct {
	dimension int
}

// NewLocalEmbedder creates a local embedder with the default dimension
func NewLocalEmbedder() *LocalEmbedder {
	return &LocalEmbedder{dimension: localDimension}
}

// NewLocalEmbedderWithDimension creates a local embedder with a custom dimension
func NewLocalEmbedderWithDimension(dimension int) *LocalEmbedder {
	if dimension <= 0 {
		dimension = localDimension
	}
	return &LocalEmbedder{dimension: dimension}
}

// Model implements Embedder
func (e *LocalEmbedder) Model() string {
	return "local-hashing-v1"
}

// Embed implements Embedder
func (e *LocalEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.encode(text), nil
}

// EmbedBatch implements Embedder
func (e *LocalEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = e.encode(text)
	}
	return vectors, nil
}

func (e *LocalEmbedder) encode(text string) []float32 {
	vector := make([]float32, e.dimension)

	for _, token := range tokenize(text) {
		h := fnv.New64a()
		h.Write([]byte(token))
		sum := h.Sum64()

		bucket := int(sum % uint64(e.dimension))
		// One hash bit decides the sign, which keeps colliding tokens from
		// systematically inflating similarity
		if sum&(1<<63) != 0 {
			vector[bucket] -= 1
		} else {
			vector[bucket] += 1
		}
	}

	NormalizeL2(vector)
	return vector
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

var _ Embedder = (*LocalEmbedder)(nil)
