package insightsrv

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/siftworks/talentsift/insight"
)

// stubProvider is a scriptable insight.Provider for service-level tests
type stubProvider struct {
	label      string
	timeout    time.Duration
	pricePer1K float64

	generate func(ctx context.Context, candidateName string) (string, error)
	testErr  error

	calls int64
}

func (s *stubProvider) GenerateSummary(ctx context.Context, jobDescription, resumeText, candidateName string) (string, error) {
	atomic.AddInt64(&s.calls, 1)
	if s.generate != nil {
		return s.generate(ctx, candidateName)
	}
	return "summary for " + candidateName, nil
}

func (s *stubProvider) TestConnection(ctx context.Context) error {
	return s.testErr
}

func (s *stubProvider) CostEstimate(textLength int) float64 {
	return float64(textLength/4) / 1000 * s.pricePer1K
}

func (s *stubProvider) Info() insight.ProviderInfo {
	return insight.ProviderInfo{
		Provider:   "stub",
		Model:      "stub-model",
		Endpoint:   "default",
		Configured: true,
	}
}

func (s *stubProvider) DisplayLabel() string {
	if s.label == "" {
		return "Stub (stub-model)"
	}
	return s.label
}

func (s *stubProvider) Timeout() time.Duration {
	if s.timeout == 0 {
		return time.Second
	}
	return s.timeout
}

var _ insight.Provider = (*stubProvider)(nil)

// stubFactory always hands out the given provider
func stubFactory(p insight.Provider) ProviderFactory {
	return func(insight.ProviderConfig) (insight.Provider, error) {
		return p, nil
	}
}
