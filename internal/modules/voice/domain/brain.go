package domain

import (
	"fmt"
	"strings"
)

// BrainState is one reading of the simulated brain interface and the
// action it triggers.
type BrainState struct {
	Name      string
	Effect    string
	Action    Action
	ContentID string
}

var brainStates = []BrainState{
	{Name: "relaxed", Effect: "Starting calm meditation mode", Action: ActionVR, ContentID: "1"},
	{Name: "focused", Effect: "Optimizing productivity settings", Action: ActionPlan},
	{Name: "stressed", Effect: "Activating stress relief protocol", Action: ActionVR, ContentID: "2"},
	{Name: "energetic", Effect: "Preparing dynamic workout plan", Action: ActionWorkout},
}

func BrainStates() []BrainState {
	out := make([]BrainState, len(brainStates))
	copy(out, brainStates)
	return out
}

func ScanningTitle() string   { return "🧠 Brain Interface Scanning..." }
func ScanningMessage() string { return "Reading neural patterns... Please remain still." }

func (s BrainState) Title() string {
	return fmt.Sprintf("🧠 Neural State: %s", strings.ToUpper(s.Name))
}
