package dto

import "time"

// Request bodies as the client posts them; levels are on the 0-100 scale.
type PlanInput struct {
	MoodScore           *int   `json:"mood_score"`
	StressLevel         *int   `json:"stress_level"`
	EnergyLevel         *int   `json:"energy_level"`
	FeelingsDescription string `json:"feelings_description"`
}

type AnalyzeInput struct {
	FeelingsText string `json:"feelings_text"`
}

type MoodInput struct {
	MoodScore   *int   `json:"mood_score"`
	StressLevel *int   `json:"stress_level"`
	EnergyLevel *int   `json:"energy_level"`
	Notes       string `json:"notes"`
}

type PlanOutput struct {
	MentalHealth         []string `json:"mental_health"`
	Fitness              []string `json:"fitness"`
	Nutrition            []string `json:"nutrition"`
	PersonalizedInsights string   `json:"personalized_insights,omitempty"`
	MotivationMessage    string   `json:"motivation_message,omitempty"`
	Generated            bool     `json:"-"`
}

type AnalysisOutput struct {
	EmotionalState        string   `json:"emotional_state"`
	StressIndicators      []string `json:"stress_indicators"`
	RecommendedFocusAreas []string `json:"recommended_focus_areas"`
	EmpathyMessage        string   `json:"empathy_message"`
	Generated             bool     `json:"-"`
}

type MoodOutput struct {
	ID       string
	LoggedAt time.Time
	Message  string
}
