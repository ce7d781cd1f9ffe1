package insight

import (
	"context"
	"fmt"
	"time"
)

// CallCategory classifies a failed provider call. Classification happens
// once at the adapter boundary and is reused by both the connection-test
// and batch-generation paths.
type CallCategory string

const (
	CategoryUnauthorized       CallCategory = "unauthorized"
	CategoryNotFound           CallCategory = "not_found"
	CategoryBadRequest         CallCategory = "bad_request"
	CategoryRateLimited        CallCategory = "rate_limited"
	CategoryForbidden          CallCategory = "forbidden"
	CategoryServerUnavailable  CallCategory = "server_unavailable"
	CategoryNetworkUnreachable CallCategory = "network_unreachable"
	CategoryTimeout            CallCategory = "timeout"
	CategoryUnknown            CallCategory = "unknown"
)

// CallError is the categorized failure of one provider call
type CallError struct {
	Category   CallCategory
	StatusCode int
	Message    string
}

func (e *CallError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Category, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Provider is the capability every text-generation backend implements.
// One adapter exists per backend; all five are resolved once at
// configuration time through the registry, never by name mid-request.
type Provider interface {
	// GenerateSummary builds the provider-specific prompt from capped
	// excerpts and issues one synchronous generation request. Failures are
	// returned as *CallError; the caller decides how to surface them.
	GenerateSummary(ctx context.Context, jobDescription, resumeText, candidateName string) (string, error)

	// TestConnection issues a minimal low-token request to validate
	// reachability and credentials. nil means the backend answered; a
	// failure comes back as *CallError so callers can branch on the
	// category without parsing prose.
	TestConnection(ctx context.Context) error

	// CostEstimate approximates the cost of processing textLength
	// characters: (textLength/4)/1000 * price-per-1K-tokens. Free and
	// local backends return 0 regardless of length.
	CostEstimate(textLength int) float64

	// Info returns the provider id, model and endpoint of this adapter
	Info() ProviderInfo

	// DisplayLabel is the "<DisplayName> (<model>)" attribution stamped on
	// successfully annotated candidates
	DisplayLabel() string

	// Timeout is the per-generation-call deadline for this backend
	Timeout() time.Duration
}
