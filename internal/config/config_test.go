package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "recipes.pdf", cfg.Source.Path)
	assert.Equal(t, 13, cfg.Source.PageStart)
	assert.Equal(t, 121, cfg.Source.PageEnd)
	assert.Equal(t, "intfloat/multilingual-e5-large", cfg.Embedding.Model)
	assert.Equal(t, "openai", cfg.Generation.Backend)
	assert.InDelta(t, 0.1, cfg.Generation.Temperature, 1e-9)
	assert.Equal(t, 700, cfg.Generation.MaxTokens)
	assert.Equal(t, 4, cfg.Retrieval.TopK)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "invalid server port"},
		{"empty source path", func(c *Config) { c.Source.Path = "" }, "source path is required"},
		{"page start below one", func(c *Config) { c.Source.PageStart = 0 }, "page_start"},
		{"page end before start", func(c *Config) { c.Source.PageStart = 50; c.Source.PageEnd = 40 }, "page_end"},
		{"unknown backend", func(c *Config) { c.Generation.Backend = "anthropic" }, "invalid generation backend"},
		{"zero top_k", func(c *Config) { c.Retrieval.TopK = 0 }, "top_k"},
		{"oversized top_k", func(c *Config) { c.Retrieval.TopK = 21 }, "top_k"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
server:
  port: 9000
source:
  path: book.pdf
  page_start: 10
  page_end: 100
retrieval:
  top_k: 6
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "book.pdf", cfg.Source.Path)
	assert.Equal(t, 10, cfg.Source.PageStart)
	assert.Equal(t, 100, cfg.Source.PageEnd)
	assert.Equal(t, 6, cfg.Retrieval.TopK)
	// Untouched sections keep their defaults.
	assert.Equal(t, "openai", cfg.Generation.Backend)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RECIPE_BOOK_PATH", "/data/book.pdf")
	t.Setenv("RECIPE_PAGE_START", "20")
	t.Setenv("RECIPE_PAGE_END", "90")
	t.Setenv("GENERATION_BACKEND", "ollama")
	t.Setenv("GENERATION_MODEL", "phi")
	t.Setenv("SERVER_PORT", "8080")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/data/book.pdf", cfg.Source.Path)
	assert.Equal(t, 20, cfg.Source.PageStart)
	assert.Equal(t, 90, cfg.Source.PageEnd)
	assert.Equal(t, "ollama", cfg.Generation.Backend)
	assert.Equal(t, "phi", cfg.Generation.Model)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_EnvOverrideFailsValidation(t *testing.T) {
	t.Setenv("GENERATION_BACKEND", "mistral")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid generation backend")
}
