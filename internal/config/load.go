package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Env var names for API credentials.
const (
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvGeminiKeys    = "GEMINI_API_KEYS"
	EnvElevenLabsKey = "ELEVENLABS_API_KEY"
)

// Load reads the yaml file at path, applies credentials from the environment and validates.
// An empty path skips the file and uses defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Summarizer.OpenAIKey = strings.TrimSpace(os.Getenv(EnvOpenAIKey))
	cfg.Narrator.APIKey = strings.TrimSpace(os.Getenv(EnvElevenLabsKey))

	cfg.Summarizer.GeminiKeys = nil
	for _, k := range strings.Split(os.Getenv(EnvGeminiKeys), ",") {
		if k = strings.TrimSpace(k); k != "" {
			cfg.Summarizer.GeminiKeys = append(cfg.Summarizer.GeminiKeys, k)
		}
	}
}
