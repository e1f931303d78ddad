package config

import (
	"fmt"
	"path/filepath"
	"time"
)

type Config struct {
	Source     SourceConfig     `yaml:"source"`
	Paths      PathsConfig      `yaml:"paths"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Narrator   NarratorConfig   `yaml:"narrator"`
	Publish    PublishConfig    `yaml:"publish"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type SourceConfig struct {
	URL                 string `yaml:"url"`
	UserAgent           string `yaml:"user_agent"`
	AcceptLanguage      string `yaml:"accept_language"`
	TimeoutSec          int    `yaml:"timeout_sec"`
	ExpectedCount       int    `yaml:"expected_count"`
	ProductSelector     string `yaml:"product_selector"`
	TitleSelector       string `yaml:"title_selector"`
	DescriptionSelector string `yaml:"description_selector"`
	DefaultDescription  string `yaml:"default_description"`
}

type PathsConfig struct {
	Data     string `yaml:"data"`
	Products string `yaml:"products"`
	Audio    string `yaml:"audio"`
	Report   string `yaml:"report"`
}

type SummarizerConfig struct {
	Provider      string `yaml:"provider"`
	Model         string `yaml:"model"`
	Endpoint      string `yaml:"endpoint"`
	MaxConcurrent int    `yaml:"max_concurrent"`
	FallbackWords int    `yaml:"fallback_words"`
	TimeoutSec    int    `yaml:"timeout_sec"`

	// Credentials come from the environment only.
	OpenAIKey  string   `yaml:"-"`
	GeminiKeys []string `yaml:"-"`
}

type NarratorConfig struct {
	BaseURL    string `yaml:"base_url"`
	VoiceID    string `yaml:"voice_id"`
	ModelID    string `yaml:"model_id"`
	Extension  string `yaml:"extension"`
	TimeoutSec int    `yaml:"timeout_sec"`

	APIKey string `yaml:"-"`
}

type PublishConfig struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Validate fills defaults and rejects unusable settings
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		c.Source.URL = "https://www.snapdeal.com/products/computers-laptops"
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120 Safari/537.36"
	}
	if c.Source.AcceptLanguage == "" {
		c.Source.AcceptLanguage = "en-US,en;q=0.9"
	}
	if c.Source.TimeoutSec == 0 {
		c.Source.TimeoutSec = 30
	}
	if c.Source.ExpectedCount == 0 {
		c.Source.ExpectedCount = 5
	}
	if c.Source.ProductSelector == "" {
		c.Source.ProductSelector = ".product-tuple-listing"
	}
	if c.Source.TitleSelector == "" {
		c.Source.TitleSelector = ".product-title"
	}
	if c.Source.DescriptionSelector == "" {
		c.Source.DescriptionSelector = ".product-desc-rating"
	}
	if c.Source.DefaultDescription == "" {
		c.Source.DefaultDescription = "No description available."
	}

	if c.Paths.Data == "" {
		c.Paths.Data = "data"
	}
	if c.Paths.Products == "" {
		c.Paths.Products = "products.json"
	}
	if c.Paths.Audio == "" {
		c.Paths.Audio = "audio"
	}
	if c.Paths.Report == "" {
		c.Paths.Report = "summaries.docx"
	}

	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderOpenAI
	}
	switch c.Summarizer.Provider {
	case ProviderOpenAI:
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "gpt-4o-mini"
		}
		if c.Summarizer.Endpoint == "" {
			c.Summarizer.Endpoint = "https://api.openai.com/v1/chat/completions"
		}
	case ProviderGemini:
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "gemini-2.5-flash"
		}
	default:
		return fmt.Errorf("summarizer.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Summarizer.Provider)
	}
	if c.Summarizer.MaxConcurrent == 0 {
		c.Summarizer.MaxConcurrent = 1
	}
	if c.Summarizer.FallbackWords == 0 {
		c.Summarizer.FallbackWords = 12
	}
	if c.Summarizer.TimeoutSec == 0 {
		c.Summarizer.TimeoutSec = 60
	}

	if c.Narrator.BaseURL == "" {
		c.Narrator.BaseURL = "https://api.elevenlabs.io"
	}
	if c.Narrator.VoiceID == "" {
		c.Narrator.VoiceID = "EXAVITQu4vr4xnSDxMaL"
	}
	if c.Narrator.ModelID == "" {
		c.Narrator.ModelID = "eleven_monolingual_v1"
	}
	if c.Narrator.Extension == "" {
		c.Narrator.Extension = "mp3"
	}
	if c.Narrator.TimeoutSec == 0 {
		c.Narrator.TimeoutSec = 90
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Source.ExpectedCount < 0 {
		return fmt.Errorf("source.expected_count must be positive")
	}
	if c.Summarizer.MaxConcurrent < 0 {
		return fmt.Errorf("summarizer.max_concurrent must be positive")
	}
	if c.Summarizer.FallbackWords < 0 {
		return fmt.Errorf("summarizer.fallback_words must be positive")
	}
	if c.Narrator.APIKey == "" {
		return fmt.Errorf("%s is required", EnvElevenLabsKey)
	}

	return nil
}

// ReportOff disables the docx report when used as paths.report
const ReportOff = "off"

// ProductsPath is the persisted product file location
func (c *Config) ProductsPath() string {
	return filepath.Join(c.Paths.Data, c.Paths.Products)
}

// ReportPath is the docx report location, or "" when the report is disabled
func (c *Config) ReportPath() string {
	if c.Paths.Report == ReportOff {
		return ""
	}
	return filepath.Join(c.Paths.Data, c.Paths.Report)
}

// SourceTimeout is the page fetch timeout
func (c *Config) SourceTimeout() time.Duration {
	return time.Duration(c.Source.TimeoutSec) * time.Second
}

// SummarizerTimeout bounds each generation request
func (c *Config) SummarizerTimeout() time.Duration {
	return time.Duration(c.Summarizer.TimeoutSec) * time.Second
}

// NarratorTimeout bounds each synthesis request
func (c *Config) NarratorTimeout() time.Duration {
	return time.Duration(c.Narrator.TimeoutSec) * time.Second
}
