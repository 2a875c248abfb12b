package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/recetario-ai/recetario/internal/domain"
)

// OllamaClient talks to a locally hosted model through the Ollama generate API.
type OllamaClient struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
}

// OllamaConfig holds local-backend configuration.
type OllamaConfig struct {
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// NewOllamaClient creates a local generation client.
func NewOllamaClient(cfg OllamaConfig) *OllamaClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}

	if cfg.Model == "" {
		cfg.Model = "phi"
	}

	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 512
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	return &OllamaClient{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// Generate completes the prompt with the local model, non-streaming.
func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: c.temperature,
			NumPredict:  c.maxTokens,
		},
	})
	if err != nil {
		return "", domain.GenerationError("marshal request", err)
	}

	resp, err := doWithRetry(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/generate", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}

		req.Header.Set("Content-Type", "application/json")

		return c.httpClient.Do(req)
	})
	if err != nil {
		return "", domain.GenerationError("send request", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.GenerationError("read response", err)
	}

	var out ollamaResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", domain.GenerationError("unmarshal response", err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", domain.GenerationError("API error: "+out.Error, nil)
		}
		return "", domain.GenerationError(fmt.Sprintf("API returned status %d", resp.StatusCode), nil)
	}

	return out.Response, nil
}

// Model returns the model being used.
func (c *OllamaClient) Model() string {
	return c.model
}

var _ Generator = (*OllamaClient)(nil)
