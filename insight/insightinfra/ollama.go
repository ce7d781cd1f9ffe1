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

// OllamaProvider generates fit summaries through a local Ollama server.
// Free to run, but slower than hosted backends, hence the longer timeout.
type OllamaProvider struct {
	base
	httpClient *http.Client
}

// NewOllamaProvider creates the Ollama adapter
func NewOllamaProvider(cfg insight.ProviderConfig, entry insight.RegistryEntry) *OllamaProvider {
	b := newBase(cfg, entry)
	return &OllamaProvider{
		base:       b,
		httpClient: &http.Client{Timeout: entry.Timeout},
	}
}

type ollamaOptions struct {
	NumPredict  int     `json:"num_predict"`
	Temperature float64 `json:"temperature,omitempty"`
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// GenerateSummary implements insight.Provider
func (p *OllamaProvider) GenerateSummary(ctx context.Context, jobDescription, resumeText, candidateName string) (string, error) {
	return p.generate(ctx, ollamaRequest{
		Model:  p.cfg.Model.String(),
		Prompt: ollamaPrompt(jobDescription, resumeText),
		Stream: false,
		Options: ollamaOptions{
			NumPredict:  p.maxTokens(),
			Temperature: p.temperature(),
		},
	})
}

// TestConnection implements insight.Provider
func (p *OllamaProvider) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, localTestConnectionTimeout)
	defer cancel()

	_, err := p.generate(ctx, ollamaRequest{
		Model:   p.cfg.Model.String(),
		Prompt:  "Test",
		Stream:  false,
		Options: ollamaOptions{NumPredict: 5},
	})
	return err
}

func (p *OllamaProvider) generate(ctx context.Context, reqBody ollamaRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &insight.CallError{Category: insight.CategoryUnknown, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", &insight.CallError{Category: insight.CategoryUnknown, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		message := http.StatusText(resp.StatusCode)
		if len(body) > 0 {
			message = string(body)
		}
		return "", statusError(resp.StatusCode, message)
	}

	var genResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", &insight.CallError{
			Category: insight.CategoryUnknown,
			Message:  fmt.Sprintf("failed to decode response: %v", err),
		}
	}

	return strings.TrimSpace(genResp.Response), nil
}

var _ insight.Provider = (*OllamaProvider)(nil)
