package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/product-narrator/internal/logger"
	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// OpenAIOption configures the OpenAI generator.
type OpenAIOption func(*OpenAI)

// WithModel overrides the default model name.
func WithModel(model string) OpenAIOption {
	return func(c *OpenAI) { c.model = model }
}

// WithHTTPTimeout sets the per-request HTTP timeout.
func WithHTTPTimeout(d time.Duration) OpenAIOption {
	return func(c *OpenAI) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// OpenAI talks to an OpenAI-compatible chat-completions endpoint.
type OpenAI struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
	logger   logger.Logger
}

// NewOpenAI creates a chat-completions generator.
func NewOpenAI(endpoint, apiKey string, log logger.Logger, opts ...OpenAIOption) *OpenAI {
	c := &OpenAI{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    "gpt-4o-mini",
		http:     &http.Client{Timeout: 60 * time.Second},
		logger:   log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Generate sends prompt as a single user message and returns the first choice's content.
func (c *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug(ctx, "openai: POST %s (%d bytes)", c.endpoint, len(body))

	resp, err := c.http.Do(req)
	if err != nil {
		return "", models.NetworkError("openai", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", models.NetworkError("openai: read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &models.APIError{Service: "openai", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("openai: unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response (no choices)")
	}

	return result.Choices[0].Message.Content, nil
}
