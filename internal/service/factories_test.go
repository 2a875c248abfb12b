package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recetario-ai/recetario/internal/config"
	"github.com/recetario-ai/recetario/internal/domain"
)

func TestNewGenerator_Ollama(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Generation.Backend = "ollama"
	cfg.Generation.Model = "phi"

	gen, err := NewGenerator(cfg)
	require.NoError(t, err)
	assert.Equal(t, "phi", gen.Model())
}

func TestNewGenerator_OpenAIRequiresKey(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Generation.APIKeyEnv = "TEST_GENERATION_KEY"
	t.Setenv("TEST_GENERATION_KEY", "")

	_, err := NewGenerator(cfg)
	require.Error(t, err)

	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.ErrorTypeConfig, derr.Type)
}

func TestNewGenerator_UnknownBackend(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Generation.Backend = "mistral"

	_, err := NewGenerator(cfg)
	require.Error(t, err)

	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.ErrorTypeConfig, derr.Type)
}

func TestNewEmbedder_RequiresKey(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Embedding.APIKeyEnv = "TEST_EMBEDDING_FACTORY_KEY"
	t.Setenv("TEST_EMBEDDING_FACTORY_KEY", "")

	_, err := NewEmbedder(cfg)
	require.Error(t, err)
}

func TestNewEmbedder_UsesConfiguredModel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Embedding.APIKeyEnv = "TEST_EMBEDDING_FACTORY_KEY"
	t.Setenv("TEST_EMBEDDING_FACTORY_KEY", "test-key")

	emb, err := NewEmbedder(cfg)
	require.NoError(t, err)
	assert.Equal(t, "intfloat/multilingual-e5-large", emb.Model())
	assert.Equal(t, 1024, emb.Dimension())
}
