package insightsrv

import (
	"strings"
	"sync"

	"github.com/siftworks/talentsift/insight"
	"github.com/siftworks/talentsift/insight/insightinfra"
	"github.com/siftworks/talentsift/pkg/kernel"
)

// localAPIKey is stored for backends that authenticate nothing
const localAPIKey = "local"

// ProviderFactory builds an adapter from a validated config
type ProviderFactory func(insight.ProviderConfig) (insight.Provider, error)

// Store holds each session's provider configuration and its live adapter.
// Sessions are independent; the only shared state is the map itself. A
// stored (config, adapter) pair is replaced atomically, so readers never
// observe one without the other.
type Store struct {
	factory ProviderFactory

	mu       sync.RWMutex
	sessions map[kernel.SessionID]*sessionEntry
}

type sessionEntry struct {
	config   insight.ProviderConfig
	provider insight.Provider
}

// NewStore creates a session store backed by the real adapter factory
func NewStore() *Store {
	return NewStoreWithFactory(insightinfra.NewProvider)
}

// NewStoreWithFactory creates a session store with a custom adapter factory
func NewStoreWithFactory(factory ProviderFactory) *Store {
	return &Store{
		factory:  factory,
		sessions: make(map[kernel.SessionID]*sessionEntry),
	}
}

// Store validates the config, builds its adapter and installs both for the
// session, replacing any previous pair. Validation failures leave the
// session untouched.
func (s *Store) Store(sessionID kernel.SessionID, cfg insight.ProviderConfig) error {
	if sessionID.IsEmpty() {
		return insight.ErrSessionRequired()
	}
	if cfg.Provider.IsEmpty() {
		return insight.ErrProviderRequired()
	}

	entry, ok := insight.Lookup(cfg.Provider)
	if !ok {
		return insight.ErrUnknownProvider().
			WithDetail("provider", cfg.Provider.String())
	}

	if cfg.Model.IsEmpty() {
		cfg.Model = entry.DefaultModel
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if entry.RequiresKey {
		if len(cfg.APIKey) < 3 {
			return insight.ErrInvalidAPIKey().
				WithDetail("provider", cfg.Provider.String())
		}
	} else if cfg.APIKey == "" {
		cfg.APIKey = localAPIKey
	}

	if cfg.Temperature == 0 {
		cfg.Temperature = insight.DefaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = insight.DefaultMaxTokens
	}

	provider, err := s.factory(cfg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sessions[sessionID] = &sessionEntry{config: cfg, provider: provider}
	s.mu.Unlock()

	return nil
}

// Config returns the stored configuration for a session
func (s *Store) Config(sessionID kernel.SessionID) (insight.ProviderConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return insight.ProviderConfig{}, false
	}
	return entry.config, true
}

// Provider returns the live adapter for a session
func (s *Store) Provider(sessionID kernel.SessionID) (insight.Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	return entry.provider, true
}

// Clear removes a session's config and adapter. Idempotent.
func (s *Store) Clear(sessionID kernel.SessionID) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}
