package llm

import "context"

// Provider is implemented by language-model clients used to name competitors.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
