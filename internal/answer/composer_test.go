package answer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recetario-ai/recetario/internal/index"
	"github.com/recetario-ai/recetario/internal/observability"
)

// scriptedGenerator returns a canned response and records the last prompt.
type scriptedGenerator struct {
	response string
	err      error
	prompt   string
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.response, g.err
}

func (g *scriptedGenerator) Model() string { return "scripted" }

func sampleDocs() []index.Document {
	return []index.Document{
		{Content: "RECIPE: Lentil Salad\n\nIngredients:\nLentils\n\nPreparation:\nBoil."},
		{Content: "RECIPE: Tomato Soup\n\nIngredients:\nTomatoes\n\nPreparation:\nSimmer."},
	}
}

func TestBuildPrompt_SubstitutesQuestionAndContext(t *testing.T) {
	docs := sampleDocs()

	prompt := BuildPrompt("how do I make the lentil salad?", docs)

	assert.Contains(t, prompt, "Question: how do I make the lentil salad?")
	assert.Contains(t, prompt, docs[0].Content)
	assert.Contains(t, prompt, docs[1].Content)
	assert.NotContains(t, prompt, "{question}")
	assert.NotContains(t, prompt, "{context}")
}

func TestBuildPrompt_CarriesGroundingRules(t *testing.T) {
	prompt := BuildPrompt("anything", nil)

	assert.Contains(t, prompt, NotFoundSentinel)
	assert.Contains(t, prompt, "based solely on the information in the provided context")
	assert.Contains(t, prompt, "Never invent ingredients")
}

func TestBuildPrompt_ContextKeepsRetrievalOrder(t *testing.T) {
	docs := sampleDocs()

	prompt := BuildPrompt("anything", docs)

	first := strings.Index(prompt, "Lentil Salad")
	second := strings.Index(prompt, "Tomato Soup")
	require.Greater(t, first, -1)
	require.Greater(t, second, -1)
	assert.Less(t, first, second)
	assert.Contains(t, prompt, docs[0].Content+"\n\n---\n\n"+docs[1].Content)
}

func TestComposer_ComposeTrimsOutput(t *testing.T) {
	gen := &scriptedGenerator{response: "  Boil the lentils first.\n"}
	composer := NewComposer(gen, observability.Nop())

	got, err := composer.Compose(context.Background(), "how do I make the lentil salad?", sampleDocs())
	require.NoError(t, err)
	assert.Equal(t, "Boil the lentils first.", got)
	assert.Contains(t, gen.prompt, "how do I make the lentil salad?")
}

func TestComposer_ComposePropagatesBackendError(t *testing.T) {
	backendErr := errors.New("backend unavailable")
	gen := &scriptedGenerator{err: backendErr}
	composer := NewComposer(gen, observability.Nop())

	_, err := composer.Compose(context.Background(), "anything", sampleDocs())
	require.ErrorIs(t, err, backendErr)
}
