// Package index converts normalized recipes into retrievable documents and
// serves semantic similarity search over them.
package index

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/recetario-ai/recetario/internal/domain"
)

// Metadata carries the recipe fields kept alongside the embedded content.
// It is available for filtering but takes no part in similarity scoring.
type Metadata struct {
	Title             string
	DietaryConditions string
	Author            string
}

// Document is a retrievable view of one recipe: the content string is what
// gets embedded and matched, the metadata rides along. Never mutated after
// creation.
type Document struct {
	ID       uuid.UUID
	Content  string
	Metadata Metadata
}

// BuildDocuments derives one Document per Recipe, in order. The content
// template is fixed; building twice from the same recipes yields identical
// content.
func BuildDocuments(recipes []domain.Recipe) []Document {
	docs := make([]Document, len(recipes))
	for i, r := range recipes {
		docs[i] = Document{
			ID:      uuid.New(),
			Content: formatContent(r),
			Metadata: Metadata{
				Title:             r.Title,
				DietaryConditions: r.DietaryConditions,
				Author:            r.Author,
			},
		}
	}
	return docs
}

func formatContent(r domain.Recipe) string {
	return fmt.Sprintf("RECIPE: %s\n\nIngredients:\n%s\n\nPreparation:\n%s",
		r.Title, r.Ingredients, r.Preparation)
}
