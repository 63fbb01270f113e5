package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"neurowell/internal/modules/wellness/domain"
	wellnessout "neurowell/internal/modules/wellness/port/out"
	"neurowell/internal/platform/clock"
	apperrors "neurowell/internal/platform/errors"
	"neurowell/internal/platform/panel"
)

const WorkoutDelay = 2 * time.Second

// WellnessService performs the backend calls behind the dashboard actions.
// Every call shows a loading panel first and always ends in exactly one
// result or failure panel.
type WellnessService struct {
	display      panel.Display
	backend      wellnessout.Backend
	scheduler    clock.Scheduler
	workoutDelay time.Duration
	log          *zap.Logger
}

func NewWellnessService(display panel.Display, backend wellnessout.Backend, scheduler clock.Scheduler, workoutDelay time.Duration, log *zap.Logger) *WellnessService {
	if log == nil {
		log = zap.NewNop()
	}
	return &WellnessService{display: display, backend: backend, scheduler: scheduler, workoutDelay: workoutDelay, log: log}
}

// Reject reports input that never reached the backend.
func (s *WellnessService) Reject(ctx context.Context, title string, err error) error {
	s.display.Show(ctx, panel.Failure(title, err.Error()))
	return err
}

func (s *WellnessService) GeneratePlan(ctx context.Context, in domain.SessionInput) (panel.Plan, error) {
	if err := in.Levels.Validate(); err != nil {
		return panel.Plan{}, s.Reject(ctx, "❌ AI Generation Failed", err)
	}
	s.display.Show(ctx, panel.Status("🤖 AI Processing...", "Advanced neural networks analyzing your personal data and feelings..."))

	res, err := s.backend.GeneratePlan(ctx, domain.NewPlanRequest(in))
	if err != nil {
		s.log.Warn("generate plan", zap.Error(err))
		s.display.Show(ctx, panel.Failure("❌ Error", "Failed to generate AI plan. Please try again."))
		return panel.Plan{}, fmt.Errorf("%w: generate plan: %w", apperrors.ErrBackend, err)
	}
	if !res.Success {
		msg := res.ErrorOr("Please try again")
		s.display.Show(ctx, panel.Failure("❌ AI Generation Failed", msg))
		return panel.Plan{}, fmt.Errorf("%w: generate plan: %s", apperrors.ErrBackend, msg)
	}
	s.display.Show(ctx, panel.ForPlan("🤖 AI Wellness Plan Generated!", res.Plan))
	return res.Plan, nil
}

func (s *WellnessService) AnalyzeFeelings(ctx context.Context, feelings string) (panel.Analysis, error) {
	if strings.TrimSpace(feelings) == "" {
		s.display.Show(ctx, panel.Failure("❌ No Feelings Text", "Please describe your feelings first."))
		return panel.Analysis{}, fmt.Errorf("%w: feelings text is empty", apperrors.ErrInvalidInput)
	}
	s.display.Show(ctx, panel.Status("🤖 AI Analyzing...", "Advanced emotion AI processing your feelings..."))

	res, err := s.backend.AnalyzeFeelings(ctx, domain.FeelingsRequest{FeelingsText: feelings})
	if err != nil {
		s.log.Warn("analyze feelings", zap.Error(err))
		s.display.Show(ctx, panel.Failure("❌ Error", "Failed to analyze feelings. Please try again."))
		return panel.Analysis{}, fmt.Errorf("%w: analyze feelings: %w", apperrors.ErrBackend, err)
	}
	if !res.Success {
		msg := res.ErrorOr("Please try again")
		s.display.Show(ctx, panel.Failure("❌ Analysis Failed", msg))
		return panel.Analysis{}, fmt.Errorf("%w: analyze feelings: %s", apperrors.ErrBackend, msg)
	}
	s.display.Show(ctx, panel.ForAnalysis("🧠 Feelings Analysis Complete!", res.Analysis))
	return res.Analysis, nil
}

func (s *WellnessService) LogMood(ctx context.Context, levels domain.Levels) (string, error) {
	if err := levels.Validate(); err != nil {
		return "", s.Reject(ctx, "❌ Mood Logging Failed", err)
	}
	s.display.Show(ctx, panel.Status("📊 Logging Mood...", "Recording your neural data..."))

	res, err := s.backend.LogMood(ctx, domain.NewMoodRequest(levels))
	if err == nil && !res.Success {
		err = errors.New(res.ErrorOr("Unknown error"))
	}
	if err != nil {
		s.log.Warn("log mood", zap.Error(err))
		s.display.Show(ctx, panel.Failure("❌ Mood Logging Failed", "Could not save mood data. Please try again."))
		return "", fmt.Errorf("%w: log mood: %w", apperrors.ErrBackend, err)
	}
	s.display.Show(ctx, panel.Status("✅ Neural Data Logged Successfully!", res.Message))
	return res.Message, nil
}

// GenerateWorkout is local only: an activation panel, then the generated
// session after the workout delay.
func (s *WellnessService) GenerateWorkout(ctx context.Context) {
	s.display.Show(ctx, panel.Status("💪 Holographic Trainer Activated!", "Personalizing workout based on your biometric data and fitness goals..."))
	later := context.WithoutCancel(ctx)
	s.scheduler.AfterFunc(s.workoutDelay, func() {
		s.display.Show(later, panel.Status("💪 Custom Workout Generated!", "Your holographic trainer has prepared a 30-minute session with neural-feedback form correction."))
	})
}
