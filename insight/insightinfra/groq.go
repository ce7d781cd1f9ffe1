package insightinfra

import (
	"context"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/siftworks/talentsift/insight"
)

// GroqProvider talks to Groq's OpenAI-compatible chat API. The wire format
// is the OpenAI one, only the endpoint, prompt and pricing differ.
type GroqProvider struct {
	base
	client *openai.Client
}

// NewGroqProvider creates the Groq adapter
func NewGroqProvider(cfg insight.ProviderConfig, entry insight.RegistryEntry) *GroqProvider {
	b := newBase(cfg, entry)
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(b.endpoint),
	)

	return &GroqProvider{base: b, client: &client}
}

// GenerateSummary implements insight.Provider
func (p *GroqProvider) GenerateSummary(ctx context.Context, jobDescription, resumeText, candidateName string) (string, error) {
	return completeChat(ctx, p.client, chatParams{
		model:       p.cfg.Model.String(),
		system:      groqSystemPrompt,
		user:        groqPrompt(jobDescription, resumeText),
		temperature: p.temperature(),
		maxTokens:   p.maxTokens(),
	})
}

// TestConnection implements insight.Provider
func (p *GroqProvider) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, testConnectionTimeout)
	defer cancel()

	_, err := completeChat(ctx, p.client, chatParams{
		model:     p.cfg.Model.String(),
		user:      "Test",
		maxTokens: 5,
	})
	return err
}

var _ insight.Provider = (*GroqProvider)(nil)
