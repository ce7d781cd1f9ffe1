package insight

import (
	"time"

	"github.com/siftworks/talentsift/pkg/kernel"
)

// Provider identifiers, the closed set of supported backends
const (
	ProviderOpenAI    = kernel.ProviderID("openai")
	ProviderAnthropic = kernel.ProviderID("anthropic")
	ProviderGoogle    = kernel.ProviderID("google")
	ProviderGroq      = kernel.ProviderID("groq")
	ProviderOllama    = kernel.ProviderID("ollama")
)

// RegistryEntry is one row of the static provider table. Adding a backend
// means adding one row here plus one adapter; nothing else changes.
type RegistryEntry struct {
	DisplayName     string
	Models          []kernel.ModelID
	DefaultModel    kernel.ModelID
	PricePer1K      float64
	DefaultEndpoint string
	Timeout         time.Duration
	RequiresKey     bool
}

// registry is the static provider table. Order matters only for the
// providers listing endpoint.
var registry = map[kernel.ProviderID]RegistryEntry{
	ProviderOpenAI: {
		DisplayName:     "OpenAI",
		Models:          []kernel.ModelID{"gpt-4", "gpt-3.5-turbo", "gpt-4-turbo-preview"},
		DefaultModel:    "gpt-3.5-turbo",
		PricePer1K:      0.002,
		DefaultEndpoint: "https://api.openai.com/v1",
		Timeout:         30 * time.Second,
		RequiresKey:     true,
	},
	ProviderAnthropic: {
		DisplayName:     "Anthropic",
		Models:          []kernel.ModelID{"claude-3-sonnet-20240229", "claude-3-haiku-20240307"},
		DefaultModel:    "claude-3-haiku-20240307",
		PricePer1K:      0.003,
		DefaultEndpoint: "https://api.anthropic.com/v1",
		Timeout:         30 * time.Second,
		RequiresKey:     true,
	},
	ProviderGoogle: {
		DisplayName:     "Google",
		Models:          []kernel.ModelID{"gemini-pro", "gemini-pro-vision"},
		DefaultModel:    "gemini-pro",
		PricePer1K:      0.001,
		DefaultEndpoint: "https://generativelanguage.googleapis.com/v1",
		Timeout:         30 * time.Second,
		RequiresKey:     true,
	},
	ProviderGroq: {
		DisplayName:     "Groq",
		Models:          []kernel.ModelID{"llama3-8b-8192", "mixtral-8x7b-32768", "gemma-7b-it"},
		DefaultModel:    "llama3-8b-8192",
		PricePer1K:      0,
		DefaultEndpoint: "https://api.groq.com/openai/v1",
		Timeout:         30 * time.Second,
		RequiresKey:     true,
	},
	ProviderOllama: {
		DisplayName:     "Ollama",
		Models:          []kernel.ModelID{"llama2", "mistral", "codellama", "vicuna"},
		DefaultModel:    "llama2",
		PricePer1K:      0,
		DefaultEndpoint: "http://localhost:11434",
		// Local models may be slower
		Timeout:     60 * time.Second,
		RequiresKey: false,
	},
}

// Lookup returns the registry entry for a provider
func Lookup(provider kernel.ProviderID) (RegistryEntry, bool) {
	entry, ok := registry[provider]
	return entry, ok
}

// Validate reports whether the provider exists and the model belongs to it
func Validate(provider kernel.ProviderID, model kernel.ModelID) bool {
	entry, ok := registry[provider]
	if !ok {
		return false
	}
	for _, m := range entry.Models {
		if m == model {
			return true
		}
	}
	return false
}

// DefaultModel returns the provider's default model, empty if unknown
func DefaultModel(provider kernel.ProviderID) kernel.ModelID {
	return registry[provider].DefaultModel
}

// Available lists every provider with its known models, for the providers
// discovery endpoint
func Available() map[string][]string {
	out := make(map[string][]string, len(registry))
	for id, entry := range registry {
		models := make([]string, len(entry.Models))
		for i, m := range entry.Models {
			models[i] = m.String()
		}
		out[id.String()] = models
	}
	return out
}
