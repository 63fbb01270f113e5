package panel

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders p for terminal surfaces.
func RenderMarkdown(p Panel) string {
	var b strings.Builder
	heading := "###"
	if p.Kind == KindFailure {
		heading = "### ✖"
	}
	fmt.Fprintf(&b, "%s %s\n\n", heading, p.Title)

	switch {
	case p.Kind == KindPlan && p.Plan != nil:
		plan := p.Plan
		if plan.PersonalizedInsights != "" {
			fmt.Fprintf(&b, "**🔍 AI Insights:** %s\n\n", plan.PersonalizedInsights)
		}
		writeList(&b, "🧘 Mental Health", plan.MentalHealth)
		writeList(&b, "💪 Fitness", plan.Fitness)
		writeList(&b, "🥗 Nutrition", plan.Nutrition)
		if plan.MotivationMessage != "" {
			fmt.Fprintf(&b, "> 💪 Your AI Coach Says: *%s*\n", plan.MotivationMessage)
		}
	case p.Kind == KindAnalysis && p.Analysis != nil:
		a := p.Analysis
		fmt.Fprintf(&b, "**🎭 Emotional State:** %s\n\n", a.EmotionalState)
		writeList(&b, "⚠️ Stress Indicators", a.StressIndicators)
		writeList(&b, "🎯 Focus Areas", a.RecommendedFocusAreas)
		if a.EmpathyMessage != "" {
			fmt.Fprintf(&b, "> 💙 *%s*\n", a.EmpathyMessage)
		}
	default:
		b.WriteString(p.Message)
		b.WriteString("\n")
	}
	return b.String()
}

func writeList(b *strings.Builder, label string, items []string) {
	fmt.Fprintf(b, "**%s:**\n\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
