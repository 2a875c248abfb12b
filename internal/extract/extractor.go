// Package extract turns the paginated recipe-book PDF into cleaned per-page text.
package extract

import (
	"github.com/gen2brain/go-fitz"

	"github.com/recetario-ai/recetario/internal/domain"
	"github.com/recetario-ai/recetario/internal/observability"
)

// Extractor reads a paginated PDF and produces cleaned RawPages within a
// configured page range.
type Extractor struct {
	logger *observability.Logger
}

// NewExtractor creates a new PDF extractor.
func NewExtractor(logger *observability.Logger) *Extractor {
	return &Extractor{logger: logger.Component("extract")}
}

// Extract opens the document at path and returns one cleaned RawPage per page
// inside the 1-based inclusive range, in page order. Pages outside the range
// are skipped structurally, never by content. If the document cannot be
// opened the whole extraction fails before any page is processed.
func (e *Extractor) Extract(path string, pageRange domain.PageRange) ([]domain.RawPage, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, domain.IOError("open source document "+path, err)
	}
	defer doc.Close()

	var pages []domain.RawPage
	for i := 0; i < doc.NumPage(); i++ {
		pageNumber := i + 1
		if !pageRange.Contains(pageNumber) {
			continue
		}

		text, err := doc.Text(i)
		if err != nil {
			return nil, domain.ExtractionError("read page text", err)
		}

		pages = append(pages, domain.RawPage{
			PageNumber: pageNumber,
			Text:       CleanPage(text),
		})
	}

	e.logger.Info().
		Str("path", path).
		Int("page_start", pageRange.Start).
		Int("page_end", pageRange.End).
		Int("pages", len(pages)).
		Msg("Extracted source pages")

	return pages, nil
}
