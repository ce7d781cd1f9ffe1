package insightsrv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftworks/talentsift/insight"
	"github.com/siftworks/talentsift/pkg/errx"
	"github.com/siftworks/talentsift/pkg/kernel"
)

func TestStore_Store(t *testing.T) {
	session := kernel.SessionID("session-1")

	t.Run("requires a session id", func(t *testing.T) {
		store := NewStoreWithFactory(stubFactory(&stubProvider{}))
		err := store.Store("", insight.ProviderConfig{Provider: insight.ProviderOllama})
		require.Error(t, err)

		xerr, ok := err.(*errx.Error)
		require.True(t, ok)
		assert.Equal(t, insight.CodeSessionRequired, xerr.Code)
	})

	t.Run("rejects unknown providers untouched", func(t *testing.T) {
		store := NewStoreWithFactory(stubFactory(&stubProvider{}))
		err := store.Store(session, insight.ProviderConfig{Provider: "cohere"})
		require.Error(t, err)

		_, ok := store.Config(session)
		assert.False(t, ok)
	})

	t.Run("rejects short api keys and leaves the session absent", func(t *testing.T) {
		store := NewStoreWithFactory(stubFactory(&stubProvider{}))
		err := store.Store(session, insight.ProviderConfig{
			Provider: insight.ProviderOpenAI,
			APIKey:   "  ab ",
		})
		require.Error(t, err)

		xerr, ok := err.(*errx.Error)
		require.True(t, ok)
		assert.Equal(t, insight.CodeInvalidAPIKey, xerr.Code)

		_, ok = store.Config(session)
		assert.False(t, ok)
		_, ok = store.Provider(session)
		assert.False(t, ok)
	})

	t.Run("substitutes the default model", func(t *testing.T) {
		store := NewStoreWithFactory(stubFactory(&stubProvider{}))
		err := store.Store(session, insight.ProviderConfig{
			Provider: insight.ProviderGroq,
			APIKey:   "gsk_test",
		})
		require.NoError(t, err)

		cfg, ok := store.Config(session)
		require.True(t, ok)
		assert.Equal(t, kernel.ModelID("llama3-8b-8192"), cfg.Model)
	})

	t.Run("keyless providers get a placeholder key", func(t *testing.T) {
		store := NewStoreWithFactory(stubFactory(&stubProvider{}))
		err := store.Store(session, insight.ProviderConfig{Provider: insight.ProviderOllama})
		require.NoError(t, err)

		cfg, ok := store.Config(session)
		require.True(t, ok)
		assert.Equal(t, "local", cfg.APIKey)
	})

	t.Run("applies generation defaults", func(t *testing.T) {
		store := NewStoreWithFactory(stubFactory(&stubProvider{}))
		err := store.Store(session, insight.ProviderConfig{Provider: insight.ProviderOllama})
		require.NoError(t, err)

		cfg, _ := store.Config(session)
		assert.Equal(t, insight.DefaultTemperature, cfg.Temperature)
		assert.Equal(t, insight.DefaultMaxTokens, cfg.MaxTokens)
	})

	t.Run("replaces config and adapter together", func(t *testing.T) {
		first := &stubProvider{label: "First"}
		second := &stubProvider{label: "Second"}

		providers := []insight.Provider{first, second}
		i := 0
		store := NewStoreWithFactory(func(insight.ProviderConfig) (insight.Provider, error) {
			p := providers[i]
			i++
			return p, nil
		})

		require.NoError(t, store.Store(session, insight.ProviderConfig{Provider: insight.ProviderOllama, Model: "llama2"}))
		require.NoError(t, store.Store(session, insight.ProviderConfig{Provider: insight.ProviderOllama, Model: "mistral"}))

		cfg, ok := store.Config(session)
		require.True(t, ok)
		assert.Equal(t, kernel.ModelID("mistral"), cfg.Model)

		p, ok := store.Provider(session)
		require.True(t, ok)
		assert.Equal(t, "Second", p.DisplayLabel())
	})

	t.Run("sessions are independent", func(t *testing.T) {
		store := NewStoreWithFactory(stubFactory(&stubProvider{}))
		require.NoError(t, store.Store("s1", insight.ProviderConfig{Provider: insight.ProviderOllama}))

		_, ok := store.Provider("s2")
		assert.False(t, ok)
	})
}

func TestStore_Clear(t *testing.T) {
	store := NewStoreWithFactory(stubFactory(&stubProvider{}))
	session := kernel.SessionID("session-1")

	require.NoError(t, store.Store(session, insight.ProviderConfig{Provider: insight.ProviderOllama}))

	store.Clear(session)
	_, ok := store.Config(session)
	assert.False(t, ok)

	// Clearing again is a no-op
	store.Clear(session)
}
