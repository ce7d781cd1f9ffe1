package screeningsrv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftworks/talentsift/internal/ai/embeddings"
	"github.com/siftworks/talentsift/pkg/errx"
	"github.com/siftworks/talentsift/screening"
)

// raggedEmbedder returns vectors of decreasing length to trigger the
// dimension check
type raggedEmbedder struct{}

func (raggedEmbedder) Model() string { return "ragged" }

func (raggedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1}, nil
}

func (e raggedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = make([]float32, 4-i)
	}
	return vectors, nil
}

func candidate(name, text string) screening.Candidate {
	return screening.Candidate{Name: name, Filename: name + ".txt", ResumeText: text}
}

func TestRanker_Rank(t *testing.T) {
	ctx := context.Background()
	ranker := NewRanker(embeddings.NewLocalEmbedder())

	jobText := "Senior Python developer with machine learning experience. " +
		"Must know pandas, numpy and scikit-learn, and have built data pipelines in production."

	t.Run("identical text scores near one", func(t *testing.T) {
		entries, err := ranker.Rank(ctx, jobText, []screening.Candidate{
			candidate("Exact", jobText),
		})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.InDelta(t, 1.0, entries[0].Score, 1e-6)
	})

	t.Run("orders by vocabulary overlap", func(t *testing.T) {
		python := candidate("Python Dev", "Python developer, five years of machine learning. "+
			"Daily work with pandas, numpy, scikit-learn. Designed and ran production data pipelines.")
		react := candidate("React Dev", "Frontend engineer focused on React and TypeScript. "+
			"Component libraries, CSS architecture, webpack tooling and browser performance.")

		entries, err := ranker.Rank(ctx, jobText, []screening.Candidate{react, python})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Python Dev", entries[0].Name)
		assert.Equal(t, 1, entries[0].Index)
		assert.Equal(t, 0, entries[1].Index)
		assert.Greater(t, entries[0].Score, entries[1].Score)
	})

	t.Run("is deterministic", func(t *testing.T) {
		candidates := []screening.Candidate{
			candidate("One", "golang microservices kubernetes"),
			candidate("Two", "java spring hibernate"),
		}

		first, err := ranker.Rank(ctx, jobText, candidates)
		require.NoError(t, err)
		second, err := ranker.Rank(ctx, jobText, candidates)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		// Same resume text twice scores identically; stable sort keeps order
		text := "golang developer with grpc experience"
		entries, err := ranker.Rank(ctx, jobText, []screening.Candidate{
			candidate("First", text),
			candidate("Second", text),
		})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "First", entries[0].Name)
		assert.Equal(t, "Second", entries[1].Name)
	})

	t.Run("no candidates yields empty result", func(t *testing.T) {
		entries, err := ranker.Rank(ctx, jobText, nil)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("empty job text scores everyone zero", func(t *testing.T) {
		entries, err := ranker.Rank(ctx, "", []screening.Candidate{
			candidate("Anyone", "python developer"),
		})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Zero(t, entries[0].Score)
	})

	t.Run("rejects mismatched dimensions", func(t *testing.T) {
		ragged := NewRanker(raggedEmbedder{})
		_, err := ragged.Rank(ctx, jobText, []screening.Candidate{
			candidate("Broken", "anything"),
		})
		require.Error(t, err)

		xerr, ok := err.(*errx.Error)
		require.True(t, ok)
		assert.Equal(t, screening.CodeDimensionMismatch, xerr.Code)
	})
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("orthogonal vectors score zero", func(t *testing.T) {
		assert.Zero(t, cosineSimilarity([]float32{1, 0}, []float32{0, 1}))
	})

	t.Run("parallel vectors score one", func(t *testing.T) {
		assert.InDelta(t, 1.0, cosineSimilarity([]float32{2, 2}, []float32{5, 5}), 1e-9)
	})

	t.Run("zero vector scores zero", func(t *testing.T) {
		assert.Zero(t, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	})

	t.Run("is symmetric", func(t *testing.T) {
		a := []float32{0.3, 0.7, 0.1}
		b := []float32{0.9, 0.2, 0.4}
		assert.Equal(t, cosineSimilarity(a, b), cosineSimilarity(b, a))
	})
}
