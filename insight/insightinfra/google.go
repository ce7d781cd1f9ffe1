package insightinfra

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/siftworks/talentsift/insight"
)

// GoogleProvider generates fit summaries through the Gemini API via the
// Google Gen AI SDK.
type GoogleProvider struct {
	base
	client *genai.Client
}

// NewGoogleProvider creates the Google adapter
func NewGoogleProvider(cfg insight.ProviderConfig, entry insight.RegistryEntry) (*GoogleProvider, error) {
	b := newBase(cfg, entry)

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.CustomEndpoint != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.CustomEndpoint}
	}

	// Client construction performs no network I/O
	client, err := genai.NewClient(context.Background(), clientCfg)
	if err != nil {
		return nil, insight.ErrRegistry.NewWithCause(insight.CodeUnknownProvider, err).
			WithDetail("provider", cfg.Provider.String())
	}

	return &GoogleProvider{base: b, client: client}, nil
}

// GenerateSummary implements insight.Provider
func (p *GoogleProvider) GenerateSummary(ctx context.Context, jobDescription, resumeText, candidateName string) (string, error) {
	return p.generate(ctx, googlePrompt(jobDescription, resumeText), p.maxTokens(), p.temperature())
}

// TestConnection implements insight.Provider
func (p *GoogleProvider) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, testConnectionTimeout)
	defer cancel()

	_, err := p.generate(ctx, "Test", 5, 0)
	return err
}

func (p *GoogleProvider) generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}
	if temperature > 0 {
		temp := float32(temperature)
		genCfg.Temperature = &temp
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := p.client.Models.GenerateContent(ctx, p.cfg.Model.String(), contents, genCfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", statusError(apiErr.Code, apiErr.Message)
		}
		return "", transportError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &insight.CallError{
			Category: insight.CategoryUnknown,
			Message:  "empty response from model",
		}
	}

	return text, nil
}

var _ insight.Provider = (*GoogleProvider)(nil)
