package usecase

import (
	"context"

	"neurowell/internal/modules/wellness/domain"
	"neurowell/internal/modules/wellness/dto"
	wellnessin "neurowell/internal/modules/wellness/port/in"
	"neurowell/internal/modules/wellness/service"
)

type Interactor struct {
	svc *service.WellnessService
}

func NewInteractor(svc *service.WellnessService) wellnessin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GeneratePlan(ctx context.Context, input dto.PlanInput) (dto.PlanOutput, error) {
	levels, err := domain.ParseLevels(input.Mood, input.Stress, input.Energy)
	if err != nil {
		return dto.PlanOutput{}, i.svc.Reject(ctx, "❌ AI Generation Failed", err)
	}
	plan, err := i.svc.GeneratePlan(ctx, domain.SessionInput{Levels: levels, Feelings: input.Feelings})
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return dto.PlanOutput{Plan: plan}, nil
}

func (i *Interactor) AnalyzeFeelings(ctx context.Context, input dto.AnalyzeInput) (dto.AnalyzeOutput, error) {
	analysis, err := i.svc.AnalyzeFeelings(ctx, input.Feelings)
	if err != nil {
		return dto.AnalyzeOutput{}, err
	}
	return dto.AnalyzeOutput{Analysis: analysis}, nil
}

func (i *Interactor) LogMood(ctx context.Context, input dto.LogMoodInput) (dto.LogMoodOutput, error) {
	levels, err := domain.ParseLevels(input.Mood, input.Stress, input.Energy)
	if err != nil {
		return dto.LogMoodOutput{}, i.svc.Reject(ctx, "❌ Mood Logging Failed", err)
	}
	msg, err := i.svc.LogMood(ctx, levels)
	if err != nil {
		return dto.LogMoodOutput{}, err
	}
	return dto.LogMoodOutput{Message: msg}, nil
}

func (i *Interactor) GenerateWorkout(ctx context.Context) error {
	i.svc.GenerateWorkout(ctx)
	return nil
}

func (i *Interactor) Dictate(_ context.Context, input dto.DictateInput) (dto.DictateOutput, error) {
	return dto.DictateOutput{Text: domain.AppendTranscript(input.Text, input.Spoken)}, nil
}
