package app

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	wellnessdto "neurowell/internal/modules/wellness/dto"
	"neurowell/internal/platform/panel"
)

const panelBuffer = 64

type panelMsg struct{ panel panel.Panel }

type focusMoodMsg struct{}

// Bridge carries state between the use cases, which run on timer and
// scheduler goroutines, and the Bubble Tea loop. The model publishes
// the form values into it; use cases publish panels and focus requests.
type Bridge struct {
	panels *panel.Channel
	focus  chan struct{}

	mu    sync.Mutex
	input wellnessdto.PlanInput
}

func NewBridge() *Bridge {
	return &Bridge{
		panels: panel.NewChannel(panelBuffer),
		focus:  make(chan struct{}, 1),
		input:  wellnessdto.PlanInput{Mood: "50", Stress: "50", Energy: "50"},
	}
}

func (b *Bridge) Display() panel.Display { return b.panels }

// Inputs returns the latest form values.
func (b *Bridge) Inputs() wellnessdto.PlanInput {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.input
}

func (b *Bridge) setInputs(in wellnessdto.PlanInput) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.input = in
}

// FocusMood asks the dashboard to focus the mood slider. Requests made
// while one is pending are coalesced.
func (b *Bridge) FocusMood(context.Context) error {
	select {
	case b.focus <- struct{}{}:
	default:
	}
	return nil
}

func (b *Bridge) waitPanel() tea.Cmd {
	return func() tea.Msg { return panelMsg{panel: <-b.panels.Panels()} }
}

func (b *Bridge) waitFocus() tea.Cmd {
	return func() tea.Msg {
		<-b.focus
		return focusMoodMsg{}
	}
}
