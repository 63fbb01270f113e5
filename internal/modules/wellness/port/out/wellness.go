package out

import (
	"context"

	"neurowell/internal/modules/wellness/domain"
)

// Backend is the remote wellness API. A non-nil error means the call did
// not produce a decodable envelope; a decoded envelope with Success=false
// is returned without error.
type Backend interface {
	GeneratePlan(ctx context.Context, req domain.PlanRequest) (domain.PlanResult, error)
	AnalyzeFeelings(ctx context.Context, req domain.FeelingsRequest) (domain.AnalysisResult, error)
	LogMood(ctx context.Context, req domain.MoodRequest) (domain.Result, error)
}
