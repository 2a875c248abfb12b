// Package answer assembles grounded prompts from retrieved recipes and turns
// generation output into plain answer text.
package answer

import (
	"context"
	"strings"

	"github.com/recetario-ai/recetario/internal/index"
	"github.com/recetario-ai/recetario/internal/llm"
	"github.com/recetario-ai/recetario/internal/observability"
)

// NotFoundSentinel is the exact answer required when the retrieved context
// does not address the question. The instruction template binds the model to
// this string; compliance is probabilistic, not enforced in code.
const NotFoundSentinel = "I don't know, that's not part of the recipe book"

// contextSeparator joins retrieved documents into one context block.
const contextSeparator = "\n\n---\n\n"

// TemplateVersion identifies the instruction template in effect. The template
// is a behavioural contract: grounding, refusal, and tone all live here.
const TemplateVersion = "v1"

const promptTemplate = `You are an assistant specialised in healthy family cooking.
You are given fragments of several recipes. Your task is to identify the recipes relevant to the question and list their titles, ingredients, and steps separately.
Besides providing the recipes, open with a brief comment about the user's question or the recipes provided.
Give a clear, friendly, and useful answer in English. Never mix information from different recipes.
The answer must be based solely on the information in the provided context.
If you do not know the answer because it is not in the provided context fragments, reply with "` + NotFoundSentinel + `" and absolutely nothing else.
Never invent ingredients, steps, or tips that are not present in the recipe book.
Always finish by encouraging the reader to cook as a family, eat healthy, and consult the full recipe book.
Question: {question}
Context:
{context}`

// Composer builds grounded prompts and invokes the generation backend.
type Composer struct {
	generator llm.Generator
	logger    *observability.Logger
}

// NewComposer creates a new answer composer.
func NewComposer(generator llm.Generator, logger *observability.Logger) *Composer {
	return &Composer{
		generator: generator,
		logger:    logger.Component("answer"),
	}
}

// Compose joins the retrieved documents into a context block in retrieval
// order, fills the instruction template, invokes the generation backend, and
// returns the trimmed plain text. Backend failures propagate to the caller.
func (c *Composer) Compose(ctx context.Context, question string, docs []index.Document) (string, error) {
	prompt := BuildPrompt(question, docs)

	c.logger.Debug().
		Str("template_version", TemplateVersion).
		Int("documents", len(docs)).
		Str("model", c.generator.Model()).
		Msg("Invoking generation backend")

	raw, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(raw), nil
}

// BuildPrompt substitutes the question and the joined context into the
// instruction template. Exposed so the template's effect can be tested
// without a generation backend.
func BuildPrompt(question string, docs []index.Document) string {
	return strings.NewReplacer(
		"{question}", question,
		"{context}", formatContext(docs),
	).Replace(promptTemplate)
}

func formatContext(docs []index.Document) string {
	contents := make([]string, len(docs))
	for i, d := range docs {
		contents[i] = d.Content
	}
	return strings.Join(contents, contextSeparator)
}
