// Package llm provides the text-generation backends behind answer composition.
package llm

import "context"

// Generator defines the capability of completing a fully-formed prompt into
// generated text. The backend is chosen by configuration at construction
// time, never at request time.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}
