package out

import "context"

// Generator completes a prompt with a language model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Random interface {
	IntN(n int) int
}
