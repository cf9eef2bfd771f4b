// ABOUTME: Answer generator over the language-model service boundary
// ABOUTME: Bounded output, low temperature, no automatic retry
package pipeline

import (
	"context"
)

// Completer is the language-model service boundary.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error)
}

// Generator invokes the model on an assembled prompt with fixed sampling
// settings. Low temperature favors citation fidelity over creativity.
type Generator struct {
	completer   Completer
	maxTokens   int
	temperature float32
}

// NewGenerator creates a Generator with the configured output bounds.
func NewGenerator(completer Completer, maxTokens int, temperature float32) *Generator {
	return &Generator{completer: completer, maxTokens: maxTokens, temperature: temperature}
}

// Generate returns the raw model output for the prompt. No post-processing
// and no citation verification happen here.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.completer.Complete(ctx, prompt, g.maxTokens, g.temperature)
}
