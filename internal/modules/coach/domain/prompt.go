package domain

import (
	"fmt"
	"strings"
)

func PlanPrompt(r Reading, feelings string) string {
	return fmt.Sprintf(`You are an AI wellness coach from the year 2070 with access to cutting-edge health technology.
Create a personalized wellness plan for this user.

CURRENT STATE:
- Mood Score: %d/10
- Stress Level: %d/10
- Energy Level: %d/10

FEELINGS DESCRIPTION:
%q

Respond with ONLY a JSON object of this shape:
{
  "mental_health": ["recommendation", "recommendation", "recommendation"],
  "fitness": ["recommendation", "recommendation", "recommendation"],
  "nutrition": ["recommendation", "recommendation", "recommendation"],
  "personalized_insights": "a paragraph of insights based on their feelings and current state",
  "motivation_message": "an encouraging message tailored to their situation"
}

Include futuristic elements such as neural-feedback systems, holographic trainers, biometric monitoring, smart nutrition and VR therapy environments.`,
		r.Mood, r.Stress, r.Energy, feelings)
}

func AnalysisPrompt(feelings string) string {
	return fmt.Sprintf(`As an AI emotional wellness analyzer from 2070, analyze these feelings.

USER FEELINGS: %q

Respond with ONLY a JSON object of this shape:
{
  "emotional_state": "primary emotion detected",
  "stress_indicators": ["indicator", "indicator"],
  "recommended_focus_areas": ["area", "area", "area"],
  "empathy_message": "an empathetic response to their feelings"
}`, feelings)
}

// ExtractJSON returns the span from the first '{' to the last '}' of a
// model reply, which drops code fences and surrounding prose.
func ExtractJSON(reply string) (string, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return "", false
	}
	return reply[start : end+1], true
}
