// Package service wires the corpus build and the question-answering pipeline
// into the single public entry point of the system.
package service

import (
	"context"

	"github.com/recetario-ai/recetario/internal/answer"
	"github.com/recetario-ai/recetario/internal/config"
	"github.com/recetario-ai/recetario/internal/domain"
	"github.com/recetario-ai/recetario/internal/embedding"
	"github.com/recetario-ai/recetario/internal/index"
	"github.com/recetario-ai/recetario/internal/llm"
	"github.com/recetario-ai/recetario/internal/observability"
	"github.com/recetario-ai/recetario/internal/recipe"
)

// PageSource produces cleaned pages from the source document within a page
// range. internal/extract provides the PDF implementation.
type PageSource interface {
	Extract(path string, pageRange domain.PageRange) ([]domain.RawPage, error)
}

// QueryService answers cooking questions against the built corpus. The
// corpus and index are assembled once in New and never mutated, so Ask is
// safe for concurrent callers.
type QueryService struct {
	index    *index.Index
	composer *answer.Composer
	topK     int
	logger   *observability.Logger
}

// New builds the whole corpus — extract, segment, document build, embed,
// index — and returns a service ready to answer questions. A missing or
// unreadable source document fails construction; no partial corpus is ever
// served.
func New(ctx context.Context, cfg *config.Config, source PageSource, embedder embedding.Embedder, generator llm.Generator, logger *observability.Logger) (*QueryService, error) {
	log := logger.Component("service")

	pageRange := domain.PageRange{Start: cfg.Source.PageStart, End: cfg.Source.PageEnd}
	pages, err := source.Extract(cfg.Source.Path, pageRange)
	if err != nil {
		return nil, err
	}

	segmenter := recipe.NewSegmenter()
	recipes := make([]domain.Recipe, 0, len(pages))
	skipped := 0
	for _, page := range pages {
		r, ok := segmenter.Segment(page.Text)
		if !ok {
			skipped++
			continue
		}
		recipes = append(recipes, r)
	}

	// Unsegmentable pages are expected (section dividers inside the range)
	// but the count matters for operability.
	log.Info().
		Int("pages", len(pages)).
		Int("recipes", len(recipes)).
		Int("skipped", skipped).
		Msg("Segmented recipe corpus")

	docs := index.BuildDocuments(recipes)

	ix, err := index.Build(ctx, embedder, docs, cfg.Embedding.BatchSize)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("documents", ix.Len()).
		Str("embedding_model", embedder.Model()).
		Msg("Built semantic index")

	return &QueryService{
		index:    ix,
		composer: answer.NewComposer(generator, logger),
		topK:     cfg.Retrieval.TopK,
		logger:   log,
	}, nil
}

// Ask retrieves the most similar recipes for the question and composes a
// grounded answer. No caching, no rate limiting, no per-question state;
// backend failures propagate to the caller.
func (s *QueryService) Ask(ctx context.Context, question string) (string, error) {
	docs, err := s.index.Search(ctx, question, s.topK)
	if err != nil {
		return "", err
	}

	return s.composer.Compose(ctx, question, docs)
}

// CorpusSize returns the number of indexed recipes.
func (s *QueryService) CorpusSize() int {
	return s.index.Len()
}
