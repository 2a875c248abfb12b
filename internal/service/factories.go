package service

import (
	"github.com/recetario-ai/recetario/internal/config"
	"github.com/recetario-ai/recetario/internal/domain"
	"github.com/recetario-ai/recetario/internal/embedding"
	"github.com/recetario-ai/recetario/internal/llm"
)

// NewEmbedder constructs the embedding backend from configuration.
func NewEmbedder(cfg *config.Config) (embedding.Embedder, error) {
	return embedding.NewClient(embedding.Config{
		BaseURL:   cfg.Embedding.BaseURL,
		APIKeyEnv: cfg.Embedding.APIKeyEnv,
		Model:     cfg.Embedding.Model,
		Dimension: cfg.Embedding.Dimension,
		Timeout:   cfg.Embedding.Timeout,
	})
}

// NewGenerator constructs the generation backend selected by configuration.
func NewGenerator(cfg *config.Config) (llm.Generator, error) {
	switch cfg.Generation.Backend {
	case "openai":
		return llm.NewOpenAIClient(llm.OpenAIConfig{
			BaseURL:     cfg.Generation.BaseURL,
			APIKeyEnv:   cfg.Generation.APIKeyEnv,
			Model:       cfg.Generation.Model,
			Temperature: cfg.Generation.Temperature,
			MaxTokens:   cfg.Generation.MaxTokens,
			Timeout:     cfg.Generation.Timeout,
		})
	case "ollama":
		return llm.NewOllamaClient(llm.OllamaConfig{
			BaseURL:     cfg.Generation.BaseURL,
			Model:       cfg.Generation.Model,
			Temperature: cfg.Generation.Temperature,
			MaxTokens:   cfg.Generation.MaxTokens,
			Timeout:     cfg.Generation.Timeout,
		}), nil
	default:
		return nil, domain.ConfigError("unknown generation backend "+cfg.Generation.Backend, nil)
	}
}
