package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"neurowell/internal/modules/coach/domain"
	coachout "neurowell/internal/modules/coach/port/out"
)

var errNoJSON = errors.New("reply contains no JSON object")

// CoachService asks the generator for plans and analyses and falls back
// to the rule-based answers whenever generation fails. It never returns
// an error for a well-formed request.
type CoachService struct {
	generator coachout.Generator
	random    coachout.Random
	log       *zap.Logger
}

// NewCoachService builds the service. A nil generator always uses the
// fallbacks.
func NewCoachService(generator coachout.Generator, random coachout.Random, log *zap.Logger) *CoachService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CoachService{generator: generator, random: random, log: log}
}

// GeneratePlan reports whether the plan came from the generator.
func (s *CoachService) GeneratePlan(ctx context.Context, r domain.Reading, feelings string) (domain.Plan, bool) {
	if s.generator != nil {
		var plan domain.Plan
		err := s.generate(ctx, domain.PlanPrompt(r, feelings), &plan)
		if err == nil && plan.Complete() {
			return plan, true
		}
		if err == nil {
			err = errors.New("plan is missing sections")
		}
		s.log.Warn("plan generation failed, using fallback", zap.Error(err))
	}
	return domain.FallbackPlan(r, feelings, s.random.IntN(len(domain.MotivationMessages))), false
}

func (s *CoachService) AnalyzeFeelings(ctx context.Context, feelings string) (domain.Analysis, bool) {
	if s.generator != nil {
		var analysis domain.Analysis
		err := s.generate(ctx, domain.AnalysisPrompt(feelings), &analysis)
		if err == nil && analysis.Complete() {
			return analysis, true
		}
		if err == nil {
			err = errors.New("analysis is missing fields")
		}
		s.log.Warn("feelings analysis failed, using fallback", zap.Error(err))
	}
	return domain.FallbackAnalysis(), false
}

func (s *CoachService) generate(ctx context.Context, prompt string, into any) error {
	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return err
	}
	raw, ok := domain.ExtractJSON(reply)
	if !ok {
		return errNoJSON
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	return nil
}
