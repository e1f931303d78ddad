package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/product-narrator/internal/config"
	"github.com/nguyentantai21042004/product-narrator/internal/logger"
)

type implSummarizer struct {
	generator     Generator
	logger        logger.Logger
	maxConcurrent int
	fallbackWords int
}

// New creates a Summarizer over the given generator
func New(gen Generator, cfg config.SummarizerConfig, log logger.Logger) Summarizer {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	fallbackWords := cfg.FallbackWords
	if fallbackWords <= 0 {
		fallbackWords = 12
	}

	return &implSummarizer{
		generator:     gen,
		logger:        log,
		maxConcurrent: maxConcurrent,
		fallbackWords: fallbackWords,
	}
}

// NewGenerator builds the generator selected by cfg.Summarizer.Provider
func NewGenerator(cfg *config.Config, log logger.Logger) (Generator, error) {
	switch cfg.Summarizer.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.Summarizer.Endpoint, cfg.Summarizer.OpenAIKey, log,
			WithModel(cfg.Summarizer.Model),
			WithHTTPTimeout(cfg.SummarizerTimeout()),
		), nil
	case config.ProviderGemini:
		var opts []GeminiOption
		if cfg.Summarizer.Endpoint != "" {
			opts = append(opts, WithGeminiBaseURL(cfg.Summarizer.Endpoint))
		}
		gen, err := NewGemini(cfg.Summarizer.GeminiKeys, cfg.Summarizer.Model, log, opts...)
		if err != nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Summarizer.Provider)
	}
}
