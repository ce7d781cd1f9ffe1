package insightinfra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/siftworks/talentsift/insight"
)

const anthropicVersion = "2023-06-01"

// AnthropicProvider generates fit summaries through the Anthropic messages
// API. No SDK is used; the wire shapes are small enough for a plain JSON
// client.
type AnthropicProvider struct {
	base
	httpClient *http.Client
}

// NewAnthropicProvider creates the Anthropic adapter
func NewAnthropicProvider(cfg insight.ProviderConfig, entry insight.RegistryEntry) *AnthropicProvider {
	b := newBase(cfg, entry)
	return &AnthropicProvider{
		base:       b,
		httpClient: &http.Client{Timeout: entry.Timeout},
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature,omitempty"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicErrorBody struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateSummary implements insight.Provider
func (p *AnthropicProvider) GenerateSummary(ctx context.Context, jobDescription, resumeText, candidateName string) (string, error) {
	return p.message(ctx, anthropicRequest{
		Model:       p.cfg.Model.String(),
		MaxTokens:   p.maxTokens(),
		Messages:    []anthropicMessage{{Role: "user", Content: anthropicPrompt(jobDescription, resumeText)}},
		Temperature: p.temperature(),
	})
}

// TestConnection implements insight.Provider
func (p *AnthropicProvider) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, testConnectionTimeout)
	defer cancel()

	_, err := p.message(ctx, anthropicRequest{
		Model:     p.cfg.Model.String(),
		MaxTokens: 5,
		Messages:  []anthropicMessage{{Role: "user", Content: "Test"}},
	})
	return err
}

func (p *AnthropicProvider) message(ctx context.Context, reqBody anthropicRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &insight.CallError{Category: insight.CategoryUnknown, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+"/messages", bytes.NewReader(payload))
	if err != nil {
		return "", &insight.CallError{Category: insight.CategoryUnknown, Message: err.Error()}
	}
	req.Header.Set("x-api-key", p.cfg.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		message := http.StatusText(resp.StatusCode)
		var errBody anthropicErrorBody
		if json.Unmarshal(body, &errBody) == nil && errBody.Error.Message != "" {
			message = errBody.Error.Message
		}
		return "", statusError(resp.StatusCode, message)
	}

	var msgResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return "", &insight.CallError{
			Category: insight.CategoryUnknown,
			Message:  fmt.Sprintf("failed to decode response: %v", err),
		}
	}

	if len(msgResp.Content) == 0 {
		return "", &insight.CallError{
			Category: insight.CategoryUnknown,
			Message:  "empty response content",
		}
	}

	return strings.TrimSpace(msgResp.Content[0].Text), nil
}

var _ insight.Provider = (*AnthropicProvider)(nil)
