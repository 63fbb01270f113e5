package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "neurowell/internal/platform/errors"
)

const (
	MinLevel = 0
	MaxLevel = 100

	// MoodNotes accompanies every mood log sent from the dashboard.
	MoodNotes = "Auto-logged via neural interface"
)

// Levels are the three slider readings, always whole numbers in [0,100].
type Levels struct {
	Mood   int
	Stress int
	Energy int
}

type SessionInput struct {
	Levels   Levels
	Feelings string
}

func (l Levels) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{{"mood", l.Mood}, {"stress", l.Stress}, {"energy", l.Energy}} {
		if f.value < MinLevel || f.value > MaxLevel {
			return fmt.Errorf("%w: %s %d outside [%d,%d]", apperrors.ErrInvalidInput, f.name, f.value, MinLevel, MaxLevel)
		}
	}
	return nil
}

// ParseLevel converts a slider or flag value to an integer level.
func ParseLevel(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a whole number", apperrors.ErrInvalidInput, name, raw)
	}
	if v < MinLevel || v > MaxLevel {
		return 0, fmt.Errorf("%w: %s %d outside [%d,%d]", apperrors.ErrInvalidInput, name, v, MinLevel, MaxLevel)
	}
	return v, nil
}

func ParseLevels(mood, stress, energy string) (Levels, error) {
	var l Levels
	var err error
	if l.Mood, err = ParseLevel("mood", mood); err != nil {
		return Levels{}, err
	}
	if l.Stress, err = ParseLevel("stress", stress); err != nil {
		return Levels{}, err
	}
	if l.Energy, err = ParseLevel("energy", energy); err != nil {
		return Levels{}, err
	}
	return l, nil
}

// AppendTranscript adds a dictated phrase to the feelings text, leaving a
// trailing space so the next phrase can follow directly.
func AppendTranscript(text, spoken string) string {
	return strings.TrimSpace(text+" "+spoken) + " "
}
