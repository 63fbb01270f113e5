package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"neurowell/internal/ui/theme"
)

const (
	sliderMin   = 0
	sliderMax   = 100
	sliderWidth = 20
)

// Slider is a 0-100 range input moved with the arrow keys.
type Slider struct {
	Label   string
	value   int
	step    int
	focused bool
}

func NewSlider(label string, value, step int) Slider {
	if step <= 0 {
		step = 5
	}
	s := Slider{Label: label, step: step}
	s.SetValue(value)
	return s
}

func (s Slider) Value() int { return s.value }

// String is the value as a form would submit it.
func (s Slider) String() string { return strconv.Itoa(s.value) }

func (s *Slider) SetValue(v int) {
	s.value = min(max(v, sliderMin), sliderMax)
}

func (s *Slider) Focus()       { s.focused = true }
func (s *Slider) Blur()        { s.focused = false }
func (s Slider) Focused() bool { return s.focused }

func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h":
			s.SetValue(s.value - s.step)
		case "right", "l":
			s.SetValue(s.value + s.step)
		case "home":
			s.SetValue(sliderMin)
		case "end":
			s.SetValue(sliderMax)
		}
	}
	return s, nil
}

func (s Slider) View() string {
	filled := s.value * sliderWidth / sliderMax
	bar := theme.SliderFill.Render(strings.Repeat("█", filled)) +
		theme.SliderTrack.Render(strings.Repeat("░", sliderWidth-filled))
	label := theme.Muted.Render(fmt.Sprintf("%-7s", s.Label))
	if s.focused {
		label = theme.Hot.Render(fmt.Sprintf("%-7s", s.Label))
	}
	return fmt.Sprintf("%s %s %3d", label, bar, s.value)
}
