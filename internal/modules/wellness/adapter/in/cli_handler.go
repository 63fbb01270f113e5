package in

import (
	"context"

	"neurowell/internal/modules/wellness/dto"
	wellnessin "neurowell/internal/modules/wellness/port/in"
)

type CLIHandler struct {
	usecase wellnessin.Usecase
}

func NewCLIHandler(usecase wellnessin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) GeneratePlan(ctx context.Context, mood, stress, energy, feelings string) (dto.PlanOutput, error) {
	return h.usecase.GeneratePlan(ctx, dto.PlanInput{Mood: mood, Stress: stress, Energy: energy, Feelings: feelings})
}

func (h CLIHandler) AnalyzeFeelings(ctx context.Context, feelings string) (dto.AnalyzeOutput, error) {
	return h.usecase.AnalyzeFeelings(ctx, dto.AnalyzeInput{Feelings: feelings})
}

func (h CLIHandler) LogMood(ctx context.Context, mood, stress, energy string) (dto.LogMoodOutput, error) {
	return h.usecase.LogMood(ctx, dto.LogMoodInput{Mood: mood, Stress: stress, Energy: energy})
}

func (h CLIHandler) GenerateWorkout(ctx context.Context) error {
	return h.usecase.GenerateWorkout(ctx)
}

// Dictate returns text with the spoken phrase appended.
func (h CLIHandler) Dictate(ctx context.Context, text, spoken string) (string, error) {
	out, err := h.usecase.Dictate(ctx, dto.DictateInput{Text: text, Spoken: spoken})
	if err != nil {
		return "", err
	}
	return out.Text, nil
}
