package quizgen

import "context"

// Generator produces quiz questions using an LLM provider.
type Generator interface {
	// Generate produces a full quiz for the given input context.
	// Returns validated questions or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) ([]Question, error)
}
