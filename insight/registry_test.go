package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftworks/talentsift/pkg/kernel"
)

func TestLookup(t *testing.T) {
	t.Run("finds known providers", func(t *testing.T) {
		entry, ok := Lookup(ProviderOpenAI)
		require.True(t, ok)
		assert.Equal(t, "OpenAI", entry.DisplayName)
		assert.Equal(t, kernel.ModelID("gpt-3.5-turbo"), entry.DefaultModel)
		assert.True(t, entry.RequiresKey)
	})

	t.Run("unknown provider misses", func(t *testing.T) {
		_, ok := Lookup("cohere")
		assert.False(t, ok)
	})

	t.Run("ollama needs no key and gets a longer timeout", func(t *testing.T) {
		entry, ok := Lookup(ProviderOllama)
		require.True(t, ok)
		assert.False(t, entry.RequiresKey)
		assert.Equal(t, 60*time.Second, entry.Timeout)
		assert.Equal(t, "http://localhost:11434", entry.DefaultEndpoint)
	})

	t.Run("groq and ollama are free", func(t *testing.T) {
		for _, id := range []kernel.ProviderID{ProviderGroq, ProviderOllama} {
			entry, ok := Lookup(id)
			require.True(t, ok)
			assert.Zero(t, entry.PricePer1K)
		}
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		provider kernel.ProviderID
		model    kernel.ModelID
		want     bool
	}{
		{"openai default model", ProviderOpenAI, "gpt-3.5-turbo", true},
		{"openai gpt-4", ProviderOpenAI, "gpt-4", true},
		{"anthropic haiku", ProviderAnthropic, "claude-3-haiku-20240307", true},
		{"google gemini", ProviderGoogle, "gemini-pro", true},
		{"groq llama3", ProviderGroq, "llama3-8b-8192", true},
		{"ollama mistral", ProviderOllama, "mistral", true},
		{"model from another provider", ProviderOpenAI, "claude-3-haiku-20240307", false},
		{"made-up model", ProviderGroq, "llama4-900b", false},
		{"unknown provider", "cohere", "command-r", false},
		{"empty model", ProviderOpenAI, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Validate(tc.provider, tc.model))
		})
	}
}

func TestDefaultModel(t *testing.T) {
	assert.Equal(t, kernel.ModelID("llama2"), DefaultModel(ProviderOllama))
	assert.Empty(t, DefaultModel("cohere"))
}

func TestAvailable(t *testing.T) {
	available := Available()

	require.Len(t, available, 5)
	assert.Contains(t, available, "openai")
	assert.Contains(t, available, "anthropic")
	assert.Contains(t, available, "google")
	assert.Contains(t, available, "groq")
	assert.Contains(t, available, "ollama")
	assert.Contains(t, available["groq"], "mixtral-8x7b-32768")
}

func TestFallbackSummary(t *testing.T) {
	t.Run("names the candidate", func(t *testing.T) {
		s := FallbackSummary("Jane Doe")
		assert.Contains(t, s, "Jane Doe shows relevant experience")
		assert.Contains(t, s, "Configure an AI provider")
	})

	t.Run("handles a missing name", func(t *testing.T) {
		assert.Contains(t, FallbackSummary(""), "This candidate shows relevant experience")
	})
}
