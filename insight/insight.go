package insight

import "github.com/siftworks/talentsift/pkg/kernel"

const (
	// DefaultTemperature is applied when a config omits temperature
	DefaultTemperature = 0.7
	// DefaultMaxTokens is applied when a config omits max_tokens
	DefaultMaxTokens = 200

	// FallbackProviderLabel marks candidates annotated without any AI call
	FallbackProviderLabel = "Fallback (No AI Configured)"
	// ErrorProviderLabel marks candidates whose generation call failed
	ErrorProviderLabel = "Error"
)

// ProviderConfig is the per-session provider selection, validated as a unit
// against the registry before any network call is made.
type ProviderConfig struct {
	Provider       kernel.ProviderID `json:"provider"`
	Model          kernel.ModelID    `json:"model"`
	APIKey         string            `json:"api_key"`
	CustomEndpoint string            `json:"custom_endpoint,omitempty"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens"`
}

// ProviderInfo describes the active provider of a session
type ProviderInfo struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Endpoint   string `json:"endpoint"`
	Configured bool   `json:"configured"`
}

// Stats summarizes one insight batch. Derived per request, never persisted.
type Stats struct {
	TotalCandidates    int           `json:"total_candidates"`
	SummariesGenerated int           `json:"summaries_generated"`
	ProviderInfo       *ProviderInfo `json:"provider_info,omitempty"`
	EstimatedCost      float64       `json:"estimated_cost"`
}

// FallbackSummary is the deterministic annotation used when no provider is
// configured. Wording is part of the UI contract.
func FallbackSummary(candidateName string) string {
	if candidateName == "" {
		candidateName = "This candidate"
	}
	return candidateName + " shows relevant experience and skills " +
		"that align with the job requirements based on their background and qualifications. " +
		"Configure an AI provider to get detailed analysis of candidate fit."
}
