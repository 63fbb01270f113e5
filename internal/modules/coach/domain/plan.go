package domain

import "fmt"

// Reading is the user's state on the coach's 0-10 scale.
type Reading struct {
	Mood   int
	Stress int
	Energy int
}

// ScaleLevel maps a 0-100 slider level onto 0-10, rounding half up.
func ScaleLevel(level int) int {
	if level <= 0 {
		return 0
	}
	if level >= 100 {
		return 10
	}
	return (level + 5) / 10
}

func NewReading(mood, stress, energy int) Reading {
	return Reading{Mood: ScaleLevel(mood), Stress: ScaleLevel(stress), Energy: ScaleLevel(energy)}
}

type Plan struct {
	MentalHealth         []string `json:"mental_health"`
	Fitness              []string `json:"fitness"`
	Nutrition            []string `json:"nutrition"`
	PersonalizedInsights string   `json:"personalized_insights,omitempty"`
	MotivationMessage    string   `json:"motivation_message,omitempty"`
}

// Complete reports whether every section a client renders is present.
func (p Plan) Complete() bool {
	return len(p.MentalHealth) > 0 && len(p.Fitness) > 0 && len(p.Nutrition) > 0
}

type Analysis struct {
	EmotionalState        string   `json:"emotional_state"`
	StressIndicators      []string `json:"stress_indicators"`
	RecommendedFocusAreas []string `json:"recommended_focus_areas"`
	EmpathyMessage        string   `json:"empathy_message"`
}

func (a Analysis) Complete() bool {
	return a.EmotionalState != "" && a.EmpathyMessage != ""
}

var MotivationMessages = []string{
	"Your wellness journey is unique, and our quantum-enhanced AI is here to support every step forward!",
	"Every day is an opportunity to optimize your well-being with cutting-edge 2070 technology at your service.",
	"Your commitment to wellness activates our most advanced algorithms - together we'll achieve optimal health!",
	"Neural patterns show great potential for growth - let's unlock your wellness achievements together!",
}

// FallbackPlan builds a rule-based plan from the reading. motivation
// indexes MotivationMessages modulo its length.
func FallbackPlan(r Reading, feelings string, motivation int) Plan {
	var p Plan
	switch {
	case r.Stress >= 7:
		p.MentalHealth = []string{
			"Daily neural-feedback meditation with VR forest environment",
			"AI-guided deep breathing exercises with biometric monitoring",
			"Virtual therapy sessions with holographic wellness counselor",
		}
	case r.Mood <= 4:
		p.MentalHealth = []string{
			"Mood-enhancing light therapy with circadian rhythm optimization",
			"AI-powered journaling with sentiment analysis feedback",
			"Brain-wave entrainment sessions for emotional balance",
		}
	default:
		p.MentalHealth = []string{
			"Daily mindfulness practice with augmented reality guides",
			"Neural interface meditation for optimal brain-wave patterns",
			"Personalized affirmation therapy via AI voice synthesis",
		}
	}

	switch {
	case r.Energy <= 3:
		p.Fitness = []string{
			"Gentle movement therapy with robotic assistance",
			"Energy-building exercises with real-time biometric feedback",
			"Restorative yoga with holographic instructor adaptation",
		}
	case r.Energy >= 8:
		p.Fitness = []string{
			"High-intensity quantum-enhanced training protocols",
			"Advanced biometric optimization with AI form correction",
			"Competitive VR fitness challenges with neural reward systems",
		}
	default:
		p.Fitness = []string{
			"Personalized workout routines with holographic personal trainer",
			"Smart recovery protocols using nanotechnology sensors",
			"Mixed-reality fitness games for sustained motivation",
		}
	}

	if r.Stress >= 6 {
		p.Nutrition = []string{
			"Stress-reducing adaptogenic meal plans via molecular gastronomy",
			"Real-time cortisol monitoring with smart nutrition adjustments",
			"AI-optimized gut microbiome restoration protocols",
		}
	} else {
		p.Nutrition = []string{
			"Personalized meal optimization based on genetic markers",
			"Smart hydration monitoring with electrolyte balance tracking",
			"3D-printed custom supplements delivered via drone network",
		}
	}

	p.PersonalizedInsights = insights(r, feelings)
	if motivation < 0 {
		motivation = -motivation
	}
	p.MotivationMessage = MotivationMessages[motivation%len(MotivationMessages)]
	return p
}

func insights(r Reading, feelings string) string {
	text := fmt.Sprintf("Based on your mood score of %d/10, stress level of %d/10, and energy level of %d/10, ", r.Mood, r.Stress, r.Energy)
	if feelings == "" {
		text += "our 2070 wellness algorithms recommend a balanced approach to your mental, physical, and nutritional needs. "
	} else {
		text += "along with your personal feelings description, our advanced AI has detected patterns that suggest focusing on "
		switch {
		case r.Stress >= 6:
			text += "stress management and emotional regulation. "
		case r.Energy <= 4:
			text += "energy restoration and gentle activation. "
		default:
			text += "maintaining balance while optimizing your wellness journey. "
		}
	}
	return text + "Your plan adapts in real-time based on your biometric feedback and neural patterns."
}

func FallbackAnalysis() Analysis {
	return Analysis{
		EmotionalState:        "complex emotions detected",
		StressIndicators:      []string{"Multiple stressors identified", "Emotional processing needed"},
		RecommendedFocusAreas: []string{"Mental wellness", "Stress management", "Self-care"},
		EmpathyMessage:        "I understand you're going through something challenging. Let's work together to improve your wellness step by step.",
	}
}
