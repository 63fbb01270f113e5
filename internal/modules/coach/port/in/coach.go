package in

import (
	"context"

	"neurowell/internal/modules/coach/dto"
)

type Usecase interface {
	GeneratePlan(ctx context.Context, input dto.PlanInput) (dto.PlanOutput, error)
	AnalyzeFeelings(ctx context.Context, input dto.AnalyzeInput) (dto.AnalysisOutput, error)
	LogMood(ctx context.Context, input dto.MoodInput) (dto.MoodOutput, error)
}
