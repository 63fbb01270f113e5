package in

import (
	"context"

	"neurowell/internal/modules/wellness/dto"
)

type Usecase interface {
	GeneratePlan(ctx context.Context, input dto.PlanInput) (dto.PlanOutput, error)
	AnalyzeFeelings(ctx context.Context, input dto.AnalyzeInput) (dto.AnalyzeOutput, error)
	LogMood(ctx context.Context, input dto.LogMoodInput) (dto.LogMoodOutput, error)
	GenerateWorkout(ctx context.Context) error
	Dictate(ctx context.Context, input dto.DictateInput) (dto.DictateOutput, error)
}
