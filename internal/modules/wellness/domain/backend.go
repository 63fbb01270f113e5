package domain

import "neurowell/internal/platform/panel"

const (
	PathGeneratePlan    = "/api/generate-ai-wellness-plan"
	PathAnalyzeFeelings = "/api/analyze-feelings"
	PathLogMood         = "/api/log-mood"
)

type PlanRequest struct {
	MoodScore           int    `json:"mood_score"`
	StressLevel         int    `json:"stress_level"`
	EnergyLevel         int    `json:"energy_level"`
	FeelingsDescription string `json:"feelings_description"`
}

type FeelingsRequest struct {
	FeelingsText string `json:"feelings_text"`
}

type MoodRequest struct {
	MoodScore   int    `json:"mood_score"`
	StressLevel int    `json:"stress_level"`
	EnergyLevel int    `json:"energy_level"`
	Notes       string `json:"notes"`
}

func NewPlanRequest(in SessionInput) PlanRequest {
	return PlanRequest{
		MoodScore:           in.Levels.Mood,
		StressLevel:         in.Levels.Stress,
		EnergyLevel:         in.Levels.Energy,
		FeelingsDescription: in.Feelings,
	}
}

func NewMoodRequest(l Levels) MoodRequest {
	return MoodRequest{MoodScore: l.Mood, StressLevel: l.Stress, EnergyLevel: l.Energy, Notes: MoodNotes}
}

// Result is the envelope every endpoint answers with.
type Result struct {
	Success bool
	Error   string
	Message string
}

// ErrorOr returns the server-provided error, or fallback when it sent none.
func (r Result) ErrorOr(fallback string) string {
	if r.Error != "" {
		return r.Error
	}
	return fallback
}

type PlanResult struct {
	Result
	Plan panel.Plan
}

type AnalysisResult struct {
	Result
	Analysis panel.Analysis
}
