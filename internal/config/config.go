// Package config provides unified configuration loading for the recipe service.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the recipe question-answering service.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Source        SourceConfig        `yaml:"source"`
	Embedding     EmbeddingConfig     `yaml:"embedding"`
	Generation    GenerationConfig    `yaml:"generation"`
	Retrieval     RetrievalConfig     `yaml:"retrieval"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

// SourceConfig locates the recipe-book PDF and the page range holding recipes.
// Pages outside the range are front matter and appendices, skipped structurally.
type SourceConfig struct {
	Path      string `yaml:"path"`
	PageStart int    `yaml:"page_start"`
	PageEnd   int    `yaml:"page_end"`
}

// EmbeddingConfig holds embedding backend settings. The same model embeds the
// corpus at build time and every query, so changing it invalidates the index.
type EmbeddingConfig struct {
	BaseURL   string        `yaml:"base_url"`
	APIKeyEnv string        `yaml:"api_key_env"`
	Model     string        `yaml:"model"`
	Dimension int           `yaml:"dimension"`
	BatchSize int           `yaml:"batch_size"`
	Timeout   time.Duration `yaml:"timeout"`
}

// GenerationConfig holds generation backend settings. Backend selects the
// implementation at construction time: "openai" for a hosted chat-completion
// API, "ollama" for a locally hosted model.
type GenerationConfig struct {
	Backend     string        `yaml:"backend"`
	BaseURL     string        `yaml:"base_url"`
	APIKeyEnv   string        `yaml:"api_key_env"`
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
}

// RetrievalConfig holds retrieval settings.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8000,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     120 * time.Second,
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 10 * time.Second,
		},
		Source: SourceConfig{
			Path:      "recipes.pdf",
			PageStart: 13,
			PageEnd:   121,
		},
		Embedding: EmbeddingConfig{
			BaseURL:   "https://api.openai.com/v1",
			APIKeyEnv: "EMBEDDING_API_KEY",
			Model:     "intfloat/multilingual-e5-large",
			Dimension: 1024,
			BatchSize: 32,
			Timeout:   30 * time.Second,
		},
		Generation: GenerationConfig{
			Backend:     "openai",
			BaseURL:     "https://api.openai.com/v1",
			APIKeyEnv:   "OPENAI_API_KEY",
			Model:       "gpt-3.5-turbo",
			Temperature: 0.1,
			MaxTokens:   700,
			Timeout:     60 * time.Second,
		},
		Retrieval: RetrievalConfig{
			TopK: 4,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "json",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Source.Path == "" {
		return fmt.Errorf("source path is required")
	}

	if c.Source.PageStart < 1 {
		return fmt.Errorf("page_start must be at least 1, got %d", c.Source.PageStart)
	}

	if c.Source.PageEnd < c.Source.PageStart {
		return fmt.Errorf("page_end %d precedes page_start %d", c.Source.PageEnd, c.Source.PageStart)
	}

	if c.Generation.Backend != "openai" && c.Generation.Backend != "ollama" {
		return fmt.Errorf("invalid generation backend: %s", c.Generation.Backend)
	}

	if c.Retrieval.TopK < 1 || c.Retrieval.TopK > 20 {
		return fmt.Errorf("top_k must be between 1 and 20")
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("RECIPE_BOOK_PATH"); v != "" {
		cfg.Source.Path = v
	}

	if v := os.Getenv("RECIPE_PAGE_START"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			cfg.Source.PageStart = page
		}
	}

	if v := os.Getenv("RECIPE_PAGE_END"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			cfg.Source.PageEnd = page
		}
	}

	if v := os.Getenv("EMBEDDING_BASE_URL"); v != "" {
		cfg.Embedding.BaseURL = v
	}

	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		cfg.Embedding.Model = v
	}

	if v := os.Getenv("GENERATION_BACKEND"); v != "" {
		cfg.Generation.Backend = v
	}

	if v := os.Getenv("GENERATION_BASE_URL"); v != "" {
		cfg.Generation.BaseURL = v
	}

	if v := os.Getenv("GENERATION_MODEL"); v != "" {
		cfg.Generation.Model = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}
