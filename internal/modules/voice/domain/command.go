package domain

import (
	"fmt"
	"strings"
)

type Action string

const (
	ActionVR          Action = "vr"
	ActionWorkout     Action = "workout"
	ActionMood        Action = "mood"
	ActionPlan        Action = "plan"
	ActionAcknowledge Action = "acknowledge"
)

// DefaultVRContent is the session a spoken meditation request launches.
const DefaultVRContent = "1"

type rule struct {
	action   Action
	keywords []string
	title    string
	message  string
}

// rules are evaluated in order; the first rule with a matching keyword wins.
var rules = []rule{
	{ActionVR, []string{"meditation", "vr"}, "🎤 Voice Action: VR Meditation", "Launching Neural Calm Forest session..."},
	{ActionWorkout, []string{"workout", "fitness"}, "🎤 Voice Action: Workout", "Activating holographic personal trainer..."},
	{ActionMood, []string{"mood", "track"}, "🎤 Voice Action: Mood Tracking", "Opening neural mood analysis interface..."},
	{ActionPlan, []string{"plan", "generate"}, "🎤 Voice Action: Generate Plan", "Generating personalized wellness plan..."},
}

// Route is what a command resolves to: the panel to show and the single
// action to run afterwards.
type Route struct {
	Command   string
	Action    Action
	ContentID string
	Title     string
	Message   string
}

func Normalize(command string) string {
	return strings.ToLower(strings.TrimSpace(command))
}

func Classify(command string) Action {
	return Resolve(command).Action
}

// Resolve matches the normalized command against the keyword table by
// substring. Commands matching nothing are acknowledged without action.
func Resolve(command string) Route {
	cmd := Normalize(command)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(cmd, kw) {
				route := Route{Command: cmd, Action: r.action, Title: r.title, Message: r.message}
				if r.action == ActionVR {
					route.ContentID = DefaultVRContent
				}
				return route
			}
		}
	}
	return Route{
		Command: cmd,
		Action:  ActionAcknowledge,
		Title:   "🎤 Voice Command Processed",
		Message: fmt.Sprintf("Command %q received and processed by AI", cmd),
	}
}

// Samples are the commands simulation mode picks from.
func Samples() []string {
	return []string{
		"generate wellness plan",
		"start meditation",
		"begin workout",
		"track my mood",
		"show vr content",
	}
}
