package narrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nguyentantai21042004/product-narrator/internal/logger"
	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

// Defaults for the ElevenLabs voice service.
const (
	DefaultBaseURL = "https://api.elevenlabs.io"
	DefaultVoiceID = "EXAVITQu4vr4xnSDxMaL"
	DefaultModelID = "eleven_monolingual_v1"
)

type speechRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// ElevenLabsOption configures the ElevenLabs client.
type ElevenLabsOption func(*ElevenLabs)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) ElevenLabsOption {
	return func(c *ElevenLabs) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithVoice sets the voice id.
func WithVoice(voiceID string) ElevenLabsOption {
	return func(c *ElevenLabs) { c.voiceID = voiceID }
}

// WithModelID sets the synthesis model.
func WithModelID(modelID string) ElevenLabsOption {
	return func(c *ElevenLabs) { c.modelID = modelID }
}

// WithHTTPTimeout sets the HTTP client timeout for synthesis requests.
func WithHTTPTimeout(d time.Duration) ElevenLabsOption {
	return func(c *ElevenLabs) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// ElevenLabs synthesizes speech through the ElevenLabs text-to-speech API.
type ElevenLabs struct {
	apiKey     string
	baseURL    string
	voiceID    string
	modelID    string
	httpClient *http.Client
	log        logger.Logger
}

// NewElevenLabs creates a client with the given API key.
func NewElevenLabs(apiKey string, log logger.Logger, opts ...ElevenLabsOption) *ElevenLabs {
	c := &ElevenLabs{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		voiceID:    DefaultVoiceID,
		modelID:    DefaultModelID,
		httpClient: &http.Client{Timeout: 90 * time.Second},
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Synthesize returns the raw audio body for text.
func (c *ElevenLabs) Synthesize(ctx context.Context, text string) ([]byte, error) {
	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, c.voiceID)

	body, err := json.Marshal(speechRequest{Text: text, ModelID: c.modelID})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	c.log.Debug(ctx, "tts: synthesizing %d chars with voice %s", len(text), c.voiceID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NetworkError("tts request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &models.APIError{Service: "tts", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NetworkError("tts read audio", err)
	}
	if len(audio) == 0 {
		return nil, &models.APIError{Service: "tts", StatusCode: resp.StatusCode, Body: "empty audio body"}
	}

	c.log.Debug(ctx, "tts: got %d bytes of audio", len(audio))
	return audio, nil
}
