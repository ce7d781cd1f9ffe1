package insightsrv

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftworks/talentsift/insight"
	"github.com/siftworks/talentsift/pkg/kernel"
	"github.com/siftworks/talentsift/screening"
)

const genSession = kernel.SessionID("gen-session")

func rankedCandidates(names ...string) []screening.Candidate {
	out := make([]screening.Candidate, len(names))
	for i, name := range names {
		out[i] = screening.Candidate{
			Name:       name,
			Filename:   name + ".txt",
			ResumeText: "resume of " + name,
		}
	}
	return out
}

func configuredStore(t *testing.T, p insight.Provider) *Store {
	t.Helper()
	store := NewStoreWithFactory(stubFactory(p))
	require.NoError(t, store.Store(genSession, insight.ProviderConfig{Provider: insight.ProviderOllama}))
	return store
}

func TestGenerator_GenerateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("no provider falls back without network calls", func(t *testing.T) {
		stub := &stubProvider{}
		gen := NewGenerator(NewStoreWithFactory(stubFactory(stub)))

		out, stats := gen.GenerateBatch(ctx, "unconfigured", "job", rankedCandidates("Ada", "Grace"), 5)

		require.Len(t, out, 2)
		for _, c := range out {
			assert.Equal(t, insight.FallbackSummary(c.Name), c.AISummary)
			assert.Equal(t, insight.FallbackProviderLabel, c.AIProvider)
			assert.False(t, c.AIGenerated)
		}
		assert.Equal(t, 2, stats.TotalCandidates)
		assert.Equal(t, 2, stats.SummariesGenerated)
		assert.Zero(t, stats.EstimatedCost)
		assert.Nil(t, stats.ProviderInfo)
		assert.Zero(t, atomic.LoadInt64(&stub.calls))
	})

	t.Run("annotates only the selected prefix", func(t *testing.T) {
		stub := &stubProvider{}
		gen := NewGenerator(configuredStore(t, stub))

		candidates := rankedCandidates("A", "B", "C", "D", "E")
		out, stats := gen.GenerateBatch(ctx, genSession, "job", candidates, 3)

		require.Len(t, out, 3)
		assert.Equal(t, 5, stats.TotalCandidates)
		assert.Equal(t, 3, stats.SummariesGenerated)
		assert.EqualValues(t, 3, atomic.LoadInt64(&stub.calls))
	})

	t.Run("zero max summaries uses the default", func(t *testing.T) {
		stub := &stubProvider{}
		gen := NewGenerator(configuredStore(t, stub))

		out, _ := gen.GenerateBatch(ctx, genSession, "job", rankedCandidates("A", "B", "C", "D", "E", "F", "G"), 0)
		assert.Len(t, out, DefaultMaxSummaries)
	})

	t.Run("keeps ranked order regardless of completion order", func(t *testing.T) {
		// The first dispatched call finishes last
		stub := &stubProvider{
			generate: func(_ context.Context, name string) (string, error) {
				if name == "First" {
					time.Sleep(50 * time.Millisecond)
				}
				return "summary for " + name, nil
			},
		}
		gen := NewGenerator(configuredStore(t, stub))

		out, _ := gen.GenerateBatch(ctx, genSession, "job", rankedCandidates("First", "Second", "Third"), 3)

		require.Len(t, out, 3)
		assert.Equal(t, "First", out[0].Name)
		assert.Equal(t, "summary for First", out[0].AISummary)
		assert.Equal(t, "Second", out[1].Name)
		assert.Equal(t, "Third", out[2].Name)
	})

	t.Run("caps in-flight calls at the pool size", func(t *testing.T) {
		var inFlight, peak int64
		stub := &stubProvider{
			generate: func(_ context.Context, name string) (string, error) {
				n := atomic.AddInt64(&inFlight, 1)
				for {
					p := atomic.LoadInt64(&peak)
					if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				atomic.AddInt64(&inFlight, -1)
				return "summary for " + name, nil
			},
		}
		gen := NewGenerator(configuredStore(t, stub))

		names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
		out, _ := gen.GenerateBatch(ctx, genSession, "job", rankedCandidates(names...), len(names))

		require.Len(t, out, len(names))
		for _, c := range out {
			assert.True(t, c.AIGenerated)
		}
		assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(maxWorkers))
		assert.EqualValues(t, len(names), atomic.LoadInt64(&stub.calls))
	})

	t.Run("per-call timeout cuts off a stuck provider", func(t *testing.T) {
		stub := &stubProvider{
			timeout: 30 * time.Millisecond,
			generate: func(callCtx context.Context, name string) (string, error) {
				if name == "Stuck" {
					<-callCtx.Done()
					return "", &insight.CallError{Category: insight.CategoryTimeout, Message: "request timed out"}
				}
				return "summary for " + name, nil
			},
		}
		gen := NewGenerator(configuredStore(t, stub))

		out, _ := gen.GenerateBatch(ctx, genSession, "job", rankedCandidates("Quick", "Stuck", "Steady"), 3)
		require.Len(t, out, 3)

		assert.True(t, out[0].AIGenerated)
		assert.True(t, out[2].AIGenerated)

		assert.False(t, out[1].AIGenerated)
		assert.Equal(t, insight.ErrorProviderLabel, out[1].AIProvider)
		assert.Contains(t, out[1].AISummary, "Unable to generate AI summary")
	})

	t.Run("one failure never aborts the batch", func(t *testing.T) {
		stub := &stubProvider{
			generate: func(_ context.Context, name string) (string, error) {
				if name == "Broken" {
					return "", errors.New("timeout: request timed out")
				}
				return "summary for " + name, nil
			},
		}
		gen := NewGenerator(configuredStore(t, stub))

		out, _ := gen.GenerateBatch(ctx, genSession, "job", rankedCandidates("Good", "Broken", "Fine", "Solid", "Last"), 5)
		require.Len(t, out, 5)

		assert.True(t, out[0].AIGenerated)
		assert.Equal(t, stub.DisplayLabel(), out[0].AIProvider)

		assert.False(t, out[1].AIGenerated)
		assert.Equal(t, insight.ErrorProviderLabel, out[1].AIProvider)
		assert.Equal(t, "Unable to generate AI summary: timeout: request timed out", out[1].AISummary)

		errored := 0
		for _, c := range out {
			if c.AIProvider == insight.ErrorProviderLabel {
				errored++
			} else {
				assert.True(t, c.AIGenerated)
			}
		}
		assert.Equal(t, 1, errored)
	})

	t.Run("stats carry provider info and cost", func(t *testing.T) {
		stub := &stubProvider{pricePer1K: 0.002}
		gen := NewGenerator(configuredStore(t, stub))

		job := "job description text"
		candidates := rankedCandidates("A", "B")
		_, stats := gen.GenerateBatch(ctx, genSession, job, candidates, 2)

		require.NotNil(t, stats.ProviderInfo)
		assert.Equal(t, "stub", stats.ProviderInfo.Provider)

		textLength := len(job)*2 + len(candidates[0].ResumeText) + len(candidates[1].ResumeText)
		assert.InDelta(t, stub.CostEstimate(textLength), stats.EstimatedCost, 1e-12)
	})
}
