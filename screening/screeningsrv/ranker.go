package screeningsrv

import (
	"context"
	"math"
	"sort"

	"github.com/siftworks/talentsift/internal/ai/embeddings"
	"github.com/siftworks/talentsift/screening"
)

// Ranker orders candidates by cosine similarity between their resume text
// and the job description. One embedder instance serves a whole call, so
// every vector compared comes from the same model.
type Ranker struct {
	embedder embeddings.Embedder
}

// NewRanker creates a ranker on top of an embedder
func NewRanker(embedder embeddings.Embedder) *Ranker {
	return &Ranker{embedder: embedder}
}

// Rank embeds the job description and every candidate resume, scores each
// candidate by cosine similarity and returns entries sorted descending.
// Ties keep their input order. No candidates yields an empty result, not an
// error. Empty job text is allowed; its similarity is whatever the embedder
// assigns to an empty string (the local embedder produces the zero vector,
// which scores every candidate 0.0).
//
// Rank has no side effects: identical inputs produce identical output as
// long as the embedder is deterministic.
func (r *Ranker) Rank(ctx context.Context, jobText string, candidates []screening.Candidate) ([]screening.RankedEntry, error) {
	if len(candidates) == 0 {
		return []screening.RankedEntry{}, nil
	}

	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, jobText)
	for _, c := range candidates {
		texts = append(texts, c.ResumeText)
	}

	vectors, err := r.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, screening.ErrRegistry.NewWithCause(screening.CodeEmbeddingFailed, err).
			WithDetail("model", r.embedder.Model())
	}

	jobVector := vectors[0]
	entries := make([]screening.RankedEntry, 0, len(candidates))
	for i, c := range candidates {
		resumeVector := vectors[i+1]
		if len(resumeVector) != len(jobVector) {
			return nil, screening.ErrDimensionMismatch().
				WithDetail("job_dimension", len(jobVector)).
				WithDetail("resume_dimension", len(resumeVector)).
				WithDetail("filename", c.Filename)
		}

		entries = append(entries, screening.RankedEntry{
			Name:     c.Name,
			Filename: c.Filename,
			Score:    cosineSimilarity(jobVector, resumeVector),
			Index:    i,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return entries, nil
}

// cosineSimilarity computes (a·b)/(‖a‖·‖b‖) with float64 accumulation.
// A zero-norm vector scores 0.0, the degenerate-text guard.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
