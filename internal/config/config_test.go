package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "defaults with narrator key",
			config:  Config{Narrator: NarratorConfig{APIKey: "xi"}},
			wantErr: false,
		},
		{
			name:    "missing narrator key",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "gemini provider",
			config: Config{
				Summarizer: SummarizerConfig{Provider: ProviderGemini},
				Narrator:   NarratorConfig{APIKey: "xi"},
			},
			wantErr: false,
		},
		{
			name: "unknown provider",
			config: Config{
				Summarizer: SummarizerConfig{Provider: "llama"},
				Narrator:   NarratorConfig{APIKey: "xi"},
			},
			wantErr: true,
		},
		{
			name: "negative expected count",
			config: Config{
				Source:   SourceConfig{ExpectedCount: -1},
				Narrator: NarratorConfig{APIKey: "xi"},
			},
			wantErr: true,
		},
		{
			name: "negative concurrency",
			config: Config{
				Summarizer: SummarizerConfig{MaxConcurrent: -2},
				Narrator:   NarratorConfig{APIKey: "xi"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Narrator: NarratorConfig{APIKey: "xi"}}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.Source.ExpectedCount)
	assert.Equal(t, 30, cfg.Source.TimeoutSec)
	assert.Equal(t, ".product-tuple-listing", cfg.Source.ProductSelector)
	assert.Equal(t, "gpt-4o-mini", cfg.Summarizer.Model)
	assert.Equal(t, 1, cfg.Summarizer.MaxConcurrent)
	assert.Equal(t, 12, cfg.Summarizer.FallbackWords)
	assert.Equal(t, "eleven_monolingual_v1", cfg.Narrator.ModelID)
	assert.Equal(t, "mp3", cfg.Narrator.Extension)
	assert.Equal(t, filepath.Join("data", "products.json"), cfg.ProductsPath())
	assert.Equal(t, filepath.Join("data", "summaries.docx"), cfg.ReportPath())
	assert.Equal(t, "30s", cfg.SourceTimeout().String())
}

func TestReportOff(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Report: ReportOff}, Narrator: NarratorConfig{APIKey: "xi"}}
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.ReportPath())
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvElevenLabsKey, "xi-key")
	t.Setenv(EnvOpenAIKey, " sk-test ")
	t.Setenv(EnvGeminiKeys, "k1, k2,,")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
source:
  url: "http://localhost:8080/laptops"
  expected_count: 3

paths:
  data: "out/data"
  audio: "out/audio"

summarizer:
  provider: "gemini"
  max_concurrent: 2

narrator:
  voice_id: "voice-1"

logging:
  level: "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/laptops", cfg.Source.URL)
	assert.Equal(t, 3, cfg.Source.ExpectedCount)
	assert.Equal(t, filepath.Join("out/data", "products.json"), cfg.ProductsPath())
	assert.Equal(t, "gemini-2.5-flash", cfg.Summarizer.Model)
	assert.Equal(t, 2, cfg.Summarizer.MaxConcurrent)
	assert.Equal(t, "voice-1", cfg.Narrator.VoiceID)
	assert.Equal(t, "debug", cfg.Logging.Level)

	assert.Equal(t, "xi-key", cfg.Narrator.APIKey)
	assert.Equal(t, "sk-test", cfg.Summarizer.OpenAIKey)
	assert.Equal(t, []string{"k1", "k2"}, cfg.Summarizer.GeminiKeys)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv(EnvElevenLabsKey, "xi-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://www.snapdeal.com/products/computers-laptops", cfg.Source.URL)
}

func TestLoadIgnoresCredentialsInYAML(t *testing.T) {
	t.Setenv(EnvElevenLabsKey, "from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("narrator:\n  api_key: from-file\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Narrator.APIKey)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Setenv(EnvElevenLabsKey, "xi-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
