package insightsrv

import (
	"context"
	"sync"

	"github.com/siftworks/talentsift/insight"
	"github.com/siftworks/talentsift/pkg/kernel"
	"github.com/siftworks/talentsift/pkg/logx"
	"github.com/siftworks/talentsift/screening"
)

const (
	// maxWorkers caps simultaneous in-flight provider calls per batch
	maxWorkers = 3
	// DefaultMaxSummaries is used when a request omits max_summaries
	DefaultMaxSummaries = 5
)

// Generator fans generation calls out over the session's provider for the
// top-ranked candidates and merges the results back in ranked order.
type Generator struct {
	store *Store
}

// NewGenerator creates a batch generator over a session store
func NewGenerator(store *Store) *Generator {
	return &Generator{store: store}
}

// GenerateBatch annotates the first maxSummaries candidates of the
// already-ranked input. With no provider configured every selected
// candidate gets the deterministic fallback summary and no network call is
// made. With a provider, calls run under a worker pool of three with a
// per-call timeout; one candidate's failure never aborts the others, and
// the output keeps the input order no matter which calls finish first.
// Stats are returned on every path.
func (g *Generator) GenerateBatch(ctx context.Context, sessionID kernel.SessionID, jobDescription string, candidates []screening.Candidate, maxSummaries int) ([]screening.Candidate, insight.Stats) {
	if maxSummaries <= 0 {
		maxSummaries = DefaultMaxSummaries
	}

	selected := candidates
	if len(selected) > maxSummaries {
		selected = selected[:maxSummaries]
	}

	provider, ok := g.store.Provider(sessionID)
	if !ok {
		return g.fallback(selected, len(candidates))
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)
	summaries := make([]string, len(selected))
	failures := make([]error, len(selected))

	for i := range selected {
		// Acquiring before spawning keeps dispatch in ranked order
		sem <- struct{}{}
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			callCtx, cancel := context.WithTimeout(ctx, provider.Timeout())
			defer cancel()

			summaries[i], failures[i] = provider.GenerateSummary(
				callCtx,
				jobDescription,
				selected[i].ResumeText,
				selected[i].Name,
			)
		}(i)
	}

	wg.Wait()

	// Results are indexed by candidate position, so completion order is irrelevant
	generated := 0
	for i := range selected {
		if failures[i] != nil {
			logx.Errorf("Summary generation failed for %s: %v", selected[i].Name, failures[i])
			selected[i].AISummary = "Unable to generate AI summary: " + failures[i].Error()
			selected[i].AIProvider = insight.ErrorProviderLabel
			selected[i].AIGenerated = false
			continue
		}
		selected[i].AISummary = summaries[i]
		selected[i].AIProvider = provider.DisplayLabel()
		selected[i].AIGenerated = true
		generated++
	}

	logx.Infof("Generated %d/%d summaries via %s", generated, len(selected), provider.DisplayLabel())

	info := provider.Info()
	return selected, insight.Stats{
		TotalCandidates:    len(candidates),
		SummariesGenerated: len(selected),
		ProviderInfo:       &info,
		EstimatedCost:      provider.CostEstimate(batchTextLength(jobDescription, selected)),
	}
}

// fallback annotates every selected candidate identically without touching
// the network
func (g *Generator) fallback(selected []screening.Candidate, total int) ([]screening.Candidate, insight.Stats) {
	for i := range selected {
		selected[i].AISummary = insight.FallbackSummary(selected[i].Name)
		selected[i].AIProvider = insight.FallbackProviderLabel
		selected[i].AIGenerated = false
	}

	return selected, insight.Stats{
		TotalCandidates:    total,
		SummariesGenerated: len(selected),
		EstimatedCost:      0,
	}
}

// batchTextLength counts the job description once per selected candidate
// plus each selected resume, mirroring what the prompts will carry
func batchTextLength(jobDescription string, selected []screening.Candidate) int {
	total := len(jobDescription) * len(selected)
	for _, c := range selected {
		total += len(c.ResumeText)
	}
	return total
}
