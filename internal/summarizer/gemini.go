package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/product-narrator/internal/logger"
)

// Gemini generates text with the Gemini API, rotating through API keys on quota errors.
type Gemini struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	baseURL    string
	logger     logger.Logger
}

// GeminiOption configures the Gemini generator.
type GeminiOption func(*Gemini)

// WithGeminiBaseURL points the client at another API host.
func WithGeminiBaseURL(u string) GeminiOption {
	return func(g *Gemini) { g.baseURL = u }
}

// NewGemini creates a Gemini generator. At least one key is required.
func NewGemini(apiKeys []string, model string, log logger.Logger, opts ...GeminiOption) (*Gemini, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("gemini: no API keys configured")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	g := &Gemini{apiKeys: apiKeys, model: model, logger: log}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate tries each key at most once, moving on when a key is rate limited.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for range len(g.apiKeys) {
		idx, key := g.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      key,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotate(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "gemini: key %d rate limited, rotating", idx+1)
				g.rotate(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("gemini: generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part != nil && part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			return text.String(), nil
		}

		return "", fmt.Errorf("gemini: empty response")
	}

	return "", fmt.Errorf("gemini: all API keys exhausted: %w", lastErr)
}

func (g *Gemini) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotate advances past idx unless another caller already did
func (g *Gemini) rotate(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
