// Package insightinfra implements the provider adapters behind the
// insight.Provider capability, one per external text-generation backend.
package insightinfra

import (
	"github.com/siftworks/talentsift/insight"
)

// NewProvider validates the config against the registry and constructs the
// matching adapter. Unknown providers and foreign models are configuration
// errors caught here, before any network call.
func NewProvider(cfg insight.ProviderConfig) (insight.Provider, error) {
	entry, ok := insight.Lookup(cfg.Provider)
	if !ok {
		return nil, insight.ErrUnknownProvider().
			WithDetail("provider", cfg.Provider.String())
	}

	if !insight.Validate(cfg.Provider, cfg.Model) {
		return nil, insight.ErrInvalidModel().
			WithDetail("provider", cfg.Provider.String()).
			WithDetail("model", cfg.Model.String())
	}

	switch cfg.Provider {
	case insight.ProviderOpenAI:
		return NewOpenAIProvider(cfg, entry), nil
	case insight.ProviderAnthropic:
		return NewAnthropicProvider(cfg, entry), nil
	case insight.ProviderGoogle:
		return NewGoogleProvider(cfg, entry)
	case insight.ProviderGroq:
		return NewGroqProvider(cfg, entry), nil
	case insight.ProviderOllama:
		return NewOllamaProvider(cfg, entry), nil
	default:
		// Registry and switch are maintained together; reaching this means
		// a row was added without an adapter
		return nil, insight.ErrUnknownProvider().
			WithDetail("provider", cfg.Provider.String())
	}
}
