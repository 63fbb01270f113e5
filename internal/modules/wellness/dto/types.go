package dto

import "neurowell/internal/platform/panel"

// PlanInput carries raw form values; levels are parsed by the usecase.
type PlanInput struct {
	Mood     string
	Stress   string
	Energy   string
	Feelings string
}

type PlanOutput struct {
	Plan panel.Plan
}

type AnalyzeInput struct {
	Feelings string
}

type AnalyzeOutput struct {
	Analysis panel.Analysis
}

type LogMoodInput struct {
	Mood   string
	Stress string
	Energy string
}

type LogMoodOutput struct {
	Message string
}

// DictateInput appends one recognized phrase to the feelings text.
type DictateInput struct {
	Text   string
	Spoken string
}

type DictateOutput struct {
	Text string
}
