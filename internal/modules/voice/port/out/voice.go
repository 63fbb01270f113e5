package out

import "context"

// Actions are the page behaviours a routed command can trigger. Each
// implementation renders its own panels; returned errors are only logged.
type Actions interface {
	StartVR(ctx context.Context, contentID string) error
	GenerateWorkout(ctx context.Context) error
	FocusMood(ctx context.Context) error
	GeneratePlan(ctx context.Context) error
}

// Recognizer captures one spoken phrase.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// Random picks uniformly from [0,n).
type Random interface {
	IntN(n int) int
}
