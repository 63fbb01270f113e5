package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"neurowell/internal/ui/theme"
)

// PaletteMode selects what a submitted phrase is used for.
type PaletteMode int

const (
	// ModeCommand routes the phrase as a spoken command.
	ModeCommand PaletteMode = iota
	// ModeDictate appends the phrase to the feelings text.
	ModeDictate
)

// PaletteSubmitMsg is emitted when the user confirms a phrase.
type PaletteSubmitMsg struct {
	Mode  PaletteMode
	Input string
}

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// Palette is the typed stand-in for the microphone, backed by
// bubbles/textinput.
type Palette struct {
	input   textinput.Model
	hints   []string
	mode    PaletteMode
	visible bool
	width   int
}

// NewPalette creates an inactive Palette; hints are suggested in command
// mode.
func NewPalette(hints []string) Palette {
	ti := textinput.New()
	ti.CharLimit = 256
	return Palette{input: ti, hints: hints}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette in mode and returns the focus command.
func (p *Palette) Open(mode PaletteMode) tea.Cmd {
	p.visible = true
	p.mode = mode
	p.input.SetValue("")
	if mode == ModeDictate {
		p.input.Placeholder = "describe how you feel…"
	} else {
		p.input.Placeholder = "say a command…"
	}
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			submit := PaletteSubmitMsg{Mode: p.mode, Input: strings.TrimSpace(p.input.Value())}
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return submit }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	title := "🎤 Voice Command"
	if p.mode == ModeDictate {
		title = "🎤 Dictate Feelings"
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + "\n")
	sb.WriteString("> " + p.input.View() + "\n")
	if p.mode == ModeCommand {
		prefix := strings.ToLower(p.input.Value())
		var matching []string
		for _, h := range p.hints {
			if prefix == "" || strings.HasPrefix(h, prefix) {
				matching = append(matching, h)
			}
		}
		if len(matching) > 0 {
			sb.WriteString("\n")
			for _, h := range matching {
				sb.WriteString(hintStyle.Render("  "+h) + "\n")
			}
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
