package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"neurowell/internal/modules/coach/domain"
	"neurowell/internal/modules/coach/dto"
	coachin "neurowell/internal/modules/coach/port/in"
	"neurowell/internal/modules/coach/service"
	"neurowell/internal/platform/clock"
	apperrors "neurowell/internal/platform/errors"
	"neurowell/internal/platform/id"
)

// defaultLevel stands in for a level the client did not send.
const defaultLevel = 50

type Interactor struct {
	svc   *service.CoachService
	clock clock.Clock
	ids   id.Generator
	log   *zap.Logger
}

func NewInteractor(svc *service.CoachService, clk clock.Clock, ids id.Generator, log *zap.Logger) coachin.Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interactor{svc: svc, clock: clk, ids: ids, log: log}
}

func (i *Interactor) GeneratePlan(ctx context.Context, input dto.PlanInput) (dto.PlanOutput, error) {
	mood, err := level("mood_score", input.MoodScore, true)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	stress, err := level("stress_level", input.StressLevel, true)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	energy, err := level("energy_level", input.EnergyLevel, true)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	feelings := strings.TrimSpace(input.FeelingsDescription)
	plan, generated := i.svc.GeneratePlan(ctx, domain.NewReading(mood, stress, energy), feelings)
	return dto.PlanOutput{
		MentalHealth:         plan.MentalHealth,
		Fitness:              plan.Fitness,
		Nutrition:            plan.Nutrition,
		PersonalizedInsights: plan.PersonalizedInsights,
		MotivationMessage:    plan.MotivationMessage,
		Generated:            generated,
	}, nil
}

func (i *Interactor) AnalyzeFeelings(ctx context.Context, input dto.AnalyzeInput) (dto.AnalysisOutput, error) {
	feelings := strings.TrimSpace(input.FeelingsText)
	if feelings == "" {
		return dto.AnalysisOutput{}, fmt.Errorf("%w: feelings_text is required", apperrors.ErrInvalidInput)
	}
	a, generated := i.svc.AnalyzeFeelings(ctx, feelings)
	return dto.AnalysisOutput{
		EmotionalState:        a.EmotionalState,
		StressIndicators:      a.StressIndicators,
		RecommendedFocusAreas: a.RecommendedFocusAreas,
		EmpathyMessage:        a.EmpathyMessage,
		Generated:             generated,
	}, nil
}

// LogMood acknowledges the entry. Nothing is stored.
func (i *Interactor) LogMood(_ context.Context, input dto.MoodInput) (dto.MoodOutput, error) {
	mood, err := level("mood_score", input.MoodScore, false)
	if err != nil {
		return dto.MoodOutput{}, err
	}
	stress, err := level("stress_level", input.StressLevel, false)
	if err != nil {
		return dto.MoodOutput{}, err
	}
	energy, err := level("energy_level", input.EnergyLevel, false)
	if err != nil {
		return dto.MoodOutput{}, err
	}
	out := dto.MoodOutput{ID: i.ids.New(), LoggedAt: i.clock.Now(), Message: "Mood logged successfully!"}
	i.log.Info("mood logged",
		zap.String("id", out.ID),
		zap.Int("mood", mood), zap.Int("stress", stress), zap.Int("energy", energy),
		zap.String("notes", input.Notes),
	)
	return out, nil
}

func level(name string, v *int, optional bool) (int, error) {
	if v == nil {
		if optional {
			return defaultLevel, nil
		}
		return 0, fmt.Errorf("%w: %s is required", apperrors.ErrInvalidInput, name)
	}
	if *v < 0 || *v > 100 {
		return 0, fmt.Errorf("%w: %s %d outside [0,100]", apperrors.ErrInvalidInput, name, *v)
	}
	return *v, nil
}
