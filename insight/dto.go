package insight

import "github.com/siftworks/talentsift/screening"

// ConfigureRequest is the body of the configure endpoint. Model is optional;
// the provider's default is substituted when omitted.
type ConfigureRequest struct {
	Provider       string  `json:"provider"`
	Model          string  `json:"model,omitempty"`
	APIKey         string  `json:"api_key"`
	CustomEndpoint string  `json:"custom_endpoint,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
	MaxTokens      int     `json:"max_tokens,omitempty"`
}

// ConfigureResponse reports the outcome of a configure-and-verify attempt
type ConfigureResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	ProviderInfo *ProviderInfo `json:"provider_info,omitempty"`
}

// TestConnectionResponse reports a connection test result
type TestConnectionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatusResponse reports whether the session has an active provider
type StatusResponse struct {
	Configured   bool          `json:"configured"`
	ProviderInfo *ProviderInfo `json:"provider_info,omitempty"`
}

// ProvidersResponse lists every known provider and its models
type ProvidersResponse struct {
	Providers map[string][]string `json:"providers"`
}

// GenerateRequest asks for summaries over already-ranked candidates
type GenerateRequest struct {
	JobDescription string                `json:"job_description"`
	Candidates     []screening.Candidate `json:"candidates"`
	MaxSummaries   int                   `json:"max_summaries,omitempty"`
}

// GenerateResponse carries the annotated candidates plus batch statistics
type GenerateResponse struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Candidates []screening.Candidate `json:"candidates"`
	Stats      *Stats                `json:"stats,omitempty"`
}
