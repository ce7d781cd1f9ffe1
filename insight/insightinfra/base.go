package insightinfra

import (
	"time"

	"github.com/siftworks/talentsift/insight"
)

// testConnectionTimeout bounds the minimal connection-test request; local backends
// get longer because model load may dominate the first call
const (
	testConnectionTimeout      = 10 * time.Second
	localTestConnectionTimeout = 30 * time.Second
)

// base carries the pieces every adapter shares: the validated config, its
// registry entry, and the resolved endpoint.
type base struct {
	cfg      insight.ProviderConfig
	entry    insight.RegistryEntry
	endpoint string
}

func newBase(cfg insight.ProviderConfig, entry insight.RegistryEntry) base {
	endpoint := cfg.CustomEndpoint
	if endpoint == "" {
		endpoint = entry.DefaultEndpoint
	}
	return base{cfg: cfg, entry: entry, endpoint: endpoint}
}

// CostEstimate implements insight.Provider: 4 characters approximate one token
func (b base) CostEstimate(textLength int) float64 {
	if textLength < 0 {
		textLength = 0
	}
	estimatedTokens := textLength / 4
	return float64(estimatedTokens) / 1000 * b.entry.PricePer1K
}

// Info implements insight.Provider
func (b base) Info() insight.ProviderInfo {
	endpoint := "default"
	if b.cfg.CustomEndpoint != "" {
		endpoint = b.cfg.CustomEndpoint
	}
	return insight.ProviderInfo{
		Provider:   b.cfg.Provider.String(),
		Model:      b.cfg.Model.String(),
		Endpoint:   endpoint,
		Configured: true,
	}
}

// Timeout implements insight.Provider
func (b base) Timeout() time.Duration {
	return b.entry.Timeout
}

// DisplayLabel is the "<DisplayName> (<model>)" attribution shown on
// successfully annotated candidates
func (b base) DisplayLabel() string {
	return b.entry.DisplayName + " (" + b.cfg.Model.String() + ")"
}

// temperature returns the configured sampling temperature with the default applied
func (b base) temperature() float64 {
	if b.cfg.Temperature == 0 {
		return insight.DefaultTemperature
	}
	return b.cfg.Temperature
}

// maxTokens returns the configured completion budget with the default applied
func (b base) maxTokens() int {
	if b.cfg.MaxTokens <= 0 {
		return insight.DefaultMaxTokens
	}
	return b.cfg.MaxTokens
}
