package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recetario-ai/recetario/internal/config"
	"github.com/recetario-ai/recetario/internal/domain"
	"github.com/recetario-ai/recetario/internal/embedding"
	"github.com/recetario-ai/recetario/internal/observability"
)

// stubSource serves fixed pages, standing in for the PDF extractor.
type stubSource struct {
	pages []domain.RawPage
	err   error

	gotPath  string
	gotRange domain.PageRange
}

func (s *stubSource) Extract(path string, pageRange domain.PageRange) ([]domain.RawPage, error) {
	s.gotPath = path
	s.gotRange = pageRange
	return s.pages, s.err
}

// recordingGenerator captures the prompt it is asked to complete.
type recordingGenerator struct {
	response string
	prompt   string
}

func (g *recordingGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.response, nil
}

func (g *recordingGenerator) Model() string { return "recording" }

func recipePages() []domain.RawPage {
	return []domain.RawPage{
		{PageNumber: 13, Text: "Lentil Salad\nINGREDIENTS\nLentils, rice\nPREPARATION\nBoil lentils. This recipe is suitable for celiac diets. Author: Jane Doe"},
		{PageNumber: 14, Text: "Salads and legumes"}, // section divider, no markers
		{PageNumber: 15, Text: "Tomato Soup\nINGREDIENTS\nTomatoes\nPREPARATION\nSimmer tomatoes."},
	}
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Source.Path = "testbook.pdf"
	return cfg
}

func TestNew_BuildsCorpusSkippingNonRecipePages(t *testing.T) {
	source := &stubSource{pages: recipePages()}
	gen := &recordingGenerator{response: "ok"}
	cfg := testConfig()

	svc, err := New(context.Background(), cfg, source, embedding.NewMockClient(16), gen, observability.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, svc.CorpusSize())
	assert.Equal(t, "testbook.pdf", source.gotPath)
	assert.Equal(t, domain.PageRange{Start: 13, End: 121}, source.gotRange)
}

func TestNew_ExtractionFailureIsFatal(t *testing.T) {
	source := &stubSource{err: domain.IOError("open testbook.pdf", nil)}
	gen := &recordingGenerator{}

	svc, err := New(context.Background(), testConfig(), source, embedding.NewMockClient(16), gen, observability.Nop())
	require.Error(t, err)
	assert.Nil(t, svc)

	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.ErrorTypeIO, derr.Type)
}

func TestAsk_PromptCarriesRetrievedRecipes(t *testing.T) {
	source := &stubSource{pages: recipePages()}
	gen := &recordingGenerator{response: "Boil the lentils first."}

	svc, err := New(context.Background(), testConfig(), source, embedding.NewMockClient(16), gen, observability.Nop())
	require.NoError(t, err)

	got, err := svc.Ask(context.Background(), "how do I make the lentil salad?")
	require.NoError(t, err)
	assert.Equal(t, "Boil the lentils first.", got)

	assert.Contains(t, gen.prompt, "how do I make the lentil salad?")
	assert.Contains(t, gen.prompt, "RECIPE: Lentil Salad")
	assert.Contains(t, gen.prompt, "RECIPE: Tomato Soup")
}

func TestAsk_Deterministic(t *testing.T) {
	source := &stubSource{pages: recipePages()}
	gen := &recordingGenerator{response: "ok"}

	svc, err := New(context.Background(), testConfig(), source, embedding.NewMockClient(16), gen, observability.Nop())
	require.NoError(t, err)

	_, err = svc.Ask(context.Background(), "how do I make the lentil salad?")
	require.NoError(t, err)
	first := gen.prompt

	_, err = svc.Ask(context.Background(), "how do I make the lentil salad?")
	require.NoError(t, err)

	assert.Equal(t, first, gen.prompt)
}

func TestNew_RebuildYieldsIdenticalPrompts(t *testing.T) {
	buildAndAsk := func() string {
		source := &stubSource{pages: recipePages()}
		gen := &recordingGenerator{response: "ok"}
		svc, err := New(context.Background(), testConfig(), source, embedding.NewMockClient(16), gen, observability.Nop())
		require.NoError(t, err)
		_, err = svc.Ask(context.Background(), "how do I make the lentil salad?")
		require.NoError(t, err)
		return gen.prompt
	}

	assert.Equal(t, buildAndAsk(), buildAndAsk())
}

func TestAsk_OffTopicQuestionStillGrounded(t *testing.T) {
	source := &stubSource{pages: recipePages()}
	gen := &recordingGenerator{response: "I don't know, that's not part of the recipe book"}

	svc, err := New(context.Background(), testConfig(), source, embedding.NewMockClient(16), gen, observability.Nop())
	require.NoError(t, err)

	got, err := svc.Ask(context.Background(), "who won the world cup?")
	require.NoError(t, err)
	assert.Equal(t, "I don't know, that's not part of the recipe book", got)

	// The retrieval step still runs; the refusal comes from the template, not
	// from skipping context.
	assert.True(t, strings.Contains(gen.prompt, "RECIPE:"))
}

func TestNew_EmptyCorpusIsServable(t *testing.T) {
	source := &stubSource{pages: []domain.RawPage{{PageNumber: 13, Text: "Introduction"}}}
	gen := &recordingGenerator{response: "I don't know, that's not part of the recipe book"}

	svc, err := New(context.Background(), testConfig(), source, embedding.NewMockClient(16), gen, observability.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, svc.CorpusSize())

	got, err := svc.Ask(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "I don't know, that's not part of the recipe book", got)
}
