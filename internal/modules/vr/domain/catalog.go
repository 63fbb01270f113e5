package domain

import "fmt"

// Descriptor is the static metadata a simulated session needs.
type Descriptor struct {
	Name            string
	DurationMinutes int
}

type Entry struct {
	ID          string
	Descriptor  Descriptor
	ContentType string
	Description string
	Difficulty  string
}

var catalog = []Entry{
	{
		ID:          "1",
		Descriptor:  Descriptor{Name: "Neural Calm Forest", DurationMinutes: 15},
		ContentType: "meditation",
		Description: "Forest meditation with biometric feedback",
		Difficulty:  "beginner",
	},
	{
		ID:          "2",
		Descriptor:  Descriptor{Name: "Quantum Mindfulness Space", DurationMinutes: 30},
		ContentType: "therapy",
		Description: "Quantum-rendered therapy environment",
		Difficulty:  "advanced",
	},
	{
		ID:          "3",
		Descriptor:  Descriptor{Name: "Holographic Yoga Studio", DurationMinutes: 45},
		ContentType: "exercise",
		Description: "AI-guided yoga with neural form correction",
		Difficulty:  "intermediate",
	},
}

// Unknown is used for any identifier outside the catalog.
var Unknown = Descriptor{Name: "Unknown Content", DurationMinutes: 10}

func Lookup(id string) Descriptor {
	for _, e := range catalog {
		if e.ID == id {
			return e.Descriptor
		}
	}
	return Unknown
}

func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// RemainingMinutes rounds up, matching the countdown shown during a session.
func RemainingMinutes(d Descriptor, progress int) int {
	if progress >= 100 {
		return 0
	}
	rest := d.DurationMinutes * (100 - progress)
	return (rest + 99) / 100
}

func Points(d Descriptor) int {
	return d.DurationMinutes * 2
}

// Steps is the number of progress updates before completion.
func Steps(step int) int {
	return (100 + step - 1) / step
}

func LoadingTitle() string { return "🥽 VR Initialization" }

func LoadingMessage(d Descriptor) string {
	return fmt.Sprintf("Loading %s... Neural feedback calibrating.", d.Name)
}

func ProgressTitle(d Descriptor, progress int) string {
	return fmt.Sprintf("🥽 %s - %d%%", d.Name, progress)
}

func ProgressMessage(d Descriptor, progress int) string {
	return fmt.Sprintf("Session in progress... Biometric monitoring active. Time remaining: %d minutes.", RemainingMinutes(d, progress))
}

func CompleteTitle() string { return "🥽 VR Session Complete! ✅" }

func CompleteMessage(d Descriptor) string {
	return fmt.Sprintf("%s completed successfully! Wellness data updated. Neural points earned: +%d", d.Name, Points(d))
}
