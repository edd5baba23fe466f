package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all deployment configuration for an Assistant.
type Config struct {
	KnowledgePath string          `yaml:"knowledge_path"`
	OrdersPath    string          `yaml:"orders_path"`
	Memory        MemoryConfig    `yaml:"memory"`
	Matching      MatchingConfig  `yaml:"matching"`
	Fallback      FallbackConfig  `yaml:"fallback"`
	Embedding     EmbeddingConfig `yaml:"embedding"`
	Logging       LoggingConfig   `yaml:"logging"`
}

// MemoryConfig holds conversation memory settings.
type MemoryConfig struct {
	MaxMessages int `yaml:"max_messages"`
}

// MatchingConfig holds FAQ matching thresholds.
type MatchingConfig struct {
	AcceptThreshold     float64 `yaml:"accept_threshold"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	TopK                int     `yaml:"top_k"`
	SurfaceWeakMatch    bool    `yaml:"surface_weak_match"`
}

// FallbackConfig holds generative fallback settings. An empty provider
// disables the fallback tier entirely.
type FallbackConfig struct {
	Provider       string  `yaml:"provider"` // "openai", "anthropic" or empty
	Model          string  `yaml:"model"`
	Persona        string  `yaml:"persona"`
	Temperature    float64 `yaml:"temperature"`
	MaxTokens      int64   `yaml:"max_tokens"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	HistoryWindow  int     `yaml:"history_window"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	Model string `yaml:"model"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// Default returns the baseline configuration applied before file values.
func Default() Config {
	return Config{
		KnowledgePath: "data/faq.json",
		Memory:        MemoryConfig{MaxMessages: 10},
		Matching: MatchingConfig{
			AcceptThreshold:     0.5,
			ConfidenceThreshold: 0.65,
			TopK:                3,
		},
		Fallback: FallbackConfig{
			Temperature:    0.7,
			MaxTokens:      1024,
			TimeoutSeconds: 30,
			HistoryWindow:  6,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load reads and parses the config file at path, applying defaults for any
// unset field. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration values that cannot work.
func (c *Config) Validate() error {
	if c.KnowledgePath == "" {
		return fmt.Errorf("knowledge_path must not be empty")
	}
	if c.Matching.AcceptThreshold > c.Matching.ConfidenceThreshold {
		return fmt.Errorf("accept_threshold (%v) must not exceed confidence_threshold (%v)",
			c.Matching.AcceptThreshold, c.Matching.ConfidenceThreshold)
	}
	if c.Matching.TopK <= 0 {
		return fmt.Errorf("top_k must be positive")
	}
	switch c.Fallback.Provider {
	case "", "openai", "anthropic":
	default:
		return fmt.Errorf("unknown fallback provider %q", c.Fallback.Provider)
	}
	return nil
}
