package insightinfra

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/siftworks/talentsift/insight"
)

// OpenAIProvider generates fit summaries through the OpenAI chat API
type OpenAIProvider struct {
	base
	client *openai.Client
}

// NewOpenAIProvider creates the OpenAI adapter
func NewOpenAIProvider(cfg insight.ProviderConfig, entry insight.RegistryEntry) *OpenAIProvider {
	b := newBase(cfg, entry)
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(b.endpoint),
	)

	return &OpenAIProvider{base: b, client: &client}
}

// GenerateSummary implements insight.Provider
func (p *OpenAIProvider) GenerateSummary(ctx context.Context, jobDescription, resumeText, candidateName string) (string, error) {
	return completeChat(ctx, p.client, chatParams{
		model:       p.cfg.Model.String(),
		system:      openAISystemPrompt,
		user:        openAIUserPrompt(jobDescription, resumeText),
		temperature: p.temperature(),
		maxTokens:   p.maxTokens(),
	})
}

// TestConnection implements insight.Provider
func (p *OpenAIProvider) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, testConnectionTimeout)
	defer cancel()

	_, err := completeChat(ctx, p.client, chatParams{
		model:     p.cfg.Model.String(),
		user:      "Test",
		maxTokens: 5,
	})
	return err
}

var _ insight.Provider = (*OpenAIProvider)(nil)

// chatParams is one chat-completion request against an OpenAI-compatible API
type chatParams struct {
	model       string
	system      string
	user        string
	temperature float64
	maxTokens   int
}

// completeChat issues the request and returns the first choice's text.
// All failures come back as categorized *insight.CallError.
func completeChat(ctx context.Context, client *openai.Client, params chatParams) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if params.system != "" {
		messages = append(messages, openai.SystemMessage(params.system))
	}
	messages = append(messages, openai.UserMessage(params.user))

	req := openai.ChatCompletionNewParams{
		Messages:  messages,
		Model:     openai.ChatModel(params.model),
		MaxTokens: openai.Int(int64(params.maxTokens)),
	}
	if params.temperature > 0 {
		req.Temperature = openai.Float(params.temperature)
	}

	completion, err := client.Chat.Completions.New(ctx, req)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", statusError(apiErr.StatusCode, apiErr.Message)
		}
		return "", transportError(err)
	}

	if len(completion.Choices) == 0 {
		return "", &insight.CallError{
			Category: insight.CategoryUnknown,
			Message:  "no completion choices returned",
		}
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
