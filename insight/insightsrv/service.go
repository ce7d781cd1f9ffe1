package insightsrv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/siftworks/talentsift/insight"
	"github.com/siftworks/talentsift/pkg/kernel"
	"github.com/siftworks/talentsift/pkg/logx"
	"github.com/siftworks/talentsift/screening"
)

// Service is the insight entry point: session configuration with
// verification, connection testing, and batch generation.
type Service struct {
	store     *Store
	generator *Generator
}

// NewService creates an insight service over a session store
func NewService(store *Store) *Service {
	return &Service{
		store:     store,
		generator: NewGenerator(store),
	}
}

// ConfigureAI runs the configure-and-verify protocol: validate and store the
// config, test the provider once, and clear the session again if the test
// fails so a session never retains a config known not to work. Business
// failures come back as success=false with a remediation message, not as
// errors.
func (s *Service) ConfigureAI(ctx context.Context, sessionID kernel.SessionID, req insight.ConfigureRequest) *insight.ConfigureResponse {
	providerID := kernel.ProviderID(strings.TrimSpace(req.Provider))
	if providerID.IsEmpty() {
		return &insight.ConfigureResponse{Success: false, Message: "Please select an AI provider"}
	}

	entry, ok := insight.Lookup(providerID)
	if !ok {
		return &insight.ConfigureResponse{
			Success: false,
			Message: fmt.Sprintf("Unsupported provider '%s'", providerID),
		}
	}

	apiKey := strings.TrimSpace(req.APIKey)
	if entry.RequiresKey && len(apiKey) < 3 {
		return &insight.ConfigureResponse{Success: false, Message: "Please enter a valid API key"}
	}

	modelID := kernel.ModelID(strings.TrimSpace(req.Model))
	if modelID.IsEmpty() {
		modelID = entry.DefaultModel
	}
	if !insight.Validate(providerID, modelID) {
		return &insight.ConfigureResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid model '%s' for provider '%s'", modelID, providerID),
		}
	}

	cfg := insight.ProviderConfig{
		Provider:       providerID,
		Model:          modelID,
		APIKey:         apiKey,
		CustomEndpoint: strings.TrimSpace(req.CustomEndpoint),
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
	}

	if err := s.store.Store(sessionID, cfg); err != nil {
		logx.Warnf("Failed to store AI config for session %s: %v", sessionID, err)
		return &insight.ConfigureResponse{
			Success: false,
			Message: "Failed to save configuration. Please check all fields and try again.",
		}
	}

	provider, _ := s.store.Provider(sessionID)
	if err := provider.TestConnection(ctx); err != nil {
		// Never leave a config in place that is known not to work
		s.store.Clear(sessionID)
		return &insight.ConfigureResponse{
			Success: false,
			Message: remediation(entry.DisplayName, providerID, modelID, err),
		}
	}

	logx.Infof("Session %s configured with %s (%s)", sessionID, entry.DisplayName, modelID)

	info := s.Status(sessionID)
	return &insight.ConfigureResponse{
		Success:      true,
		Message:      fmt.Sprintf("%s configured successfully with %s", entry.DisplayName, modelID),
		ProviderInfo: info,
	}
}

// TestConnection exercises the session's configured provider once and
// reports the outcome as a user-facing message
func (s *Service) TestConnection(ctx context.Context, sessionID kernel.SessionID) (bool, string) {
	provider, ok := s.store.Provider(sessionID)
	if !ok {
		return false, "No provider configured"
	}
	if err := provider.TestConnection(ctx); err != nil {
		return false, "Connection failed: " + err.Error()
	}
	return true, "Connection successful"
}

// Status returns the session's provider info, nil when unconfigured
func (s *Service) Status(sessionID kernel.SessionID) *insight.ProviderInfo {
	provider, ok := s.store.Provider(sessionID)
	if !ok {
		return nil
	}
	info := provider.Info()
	return &info
}

// ClearConfig drops the session's provider configuration
func (s *Service) ClearConfig(sessionID kernel.SessionID) {
	s.store.Clear(sessionID)
}

// GenerateInsights annotates the top-ranked candidates with provider
// summaries (or the fallback) and returns the batch statistics
func (s *Service) GenerateInsights(ctx context.Context, sessionID kernel.SessionID, jobDescription string, candidates []screening.Candidate, maxSummaries int) ([]screening.Candidate, insight.Stats) {
	return s.generator.GenerateBatch(ctx, sessionID, jobDescription, candidates, maxSummaries)
}

// remediation turns a classified connection-test failure into the hint a
// user can act on, keyed on the call category the adapter assigned
func remediation(displayName string, providerID kernel.ProviderID, modelID kernel.ModelID, err error) string {
	var callErr *insight.CallError
	if !errors.As(err, &callErr) {
		return "Configuration test failed: " + err.Error()
	}

	switch callErr.Category {
	case insight.CategoryUnauthorized:
		return fmt.Sprintf("Invalid API key for %s. Please check your API key and try again.", displayName)
	case insight.CategoryNotFound:
		return fmt.Sprintf("API endpoint not found. Please verify the model '%s' is available for %s.", modelID, displayName)
	case insight.CategoryBadRequest:
		if providerID == insight.ProviderGroq {
			return fmt.Sprintf("Model '%s' not accessible with your Groq API key. Llama3-8B should work with standard Groq keys.", modelID)
		}
		return fmt.Sprintf("Invalid request for %s. The model '%s' may not be accessible with your API key.", displayName, modelID)
	case insight.CategoryRateLimited:
		return fmt.Sprintf("Rate limit exceeded for %s. Please wait a moment and try again, or try a different provider like Groq (free with high limits).", displayName)
	case insight.CategoryForbidden:
		return fmt.Sprintf("Access forbidden for %s. Your API key may not have permission for this model, or you may need to add billing information.", displayName)
	case insight.CategoryServerUnavailable:
		return fmt.Sprintf("%s service temporarily unavailable. Please try again in a few minutes or use a different provider.", displayName)
	case insight.CategoryNetworkUnreachable, insight.CategoryTimeout:
		if providerID == insight.ProviderOllama {
			return "Ollama not running. Please start the Ollama service: 'ollama serve'"
		}
		return "Network error. Please check your internet connection and try again."
	default:
		return "Configuration test failed: " + callErr.Message
	}
}
