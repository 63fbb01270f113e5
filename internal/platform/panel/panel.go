// Package panel models the status panel that every interaction renders
// into, and the displays that present it.
package panel

import "context"

type Kind string

const (
	KindStatus   Kind = "status"
	KindFailure  Kind = "failure"
	KindPlan     Kind = "plan"
	KindAnalysis Kind = "analysis"
)

// Plan is the wellness plan as rendered; list fields are always present,
// the two text fields are optional.
type Plan struct {
	MentalHealth         []string
	Fitness              []string
	Nutrition            []string
	PersonalizedInsights string
	MotivationMessage    string
}

type Analysis struct {
	EmotionalState        string
	StressIndicators      []string
	RecommendedFocusAreas []string
	EmpathyMessage        string
}

type Panel struct {
	Kind     Kind
	Title    string
	Message  string
	Plan     *Plan
	Analysis *Analysis
}

// Display presents panels. Implementations are called from timer and
// scheduler goroutines and must be safe for concurrent use.
type Display interface {
	Show(ctx context.Context, p Panel)
}

func Status(title, message string) Panel {
	return Panel{Kind: KindStatus, Title: title, Message: message}
}

func Failure(title, message string) Panel {
	return Panel{Kind: KindFailure, Title: title, Message: message}
}

func ForPlan(title string, plan Plan) Panel {
	return Panel{Kind: KindPlan, Title: title, Plan: &plan}
}

func ForAnalysis(title string, analysis Analysis) Panel {
	return Panel{Kind: KindAnalysis, Title: title, Analysis: &analysis}
}
