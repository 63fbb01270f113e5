package response

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"neurowell/internal/platform/panel"
	"neurowell/internal/ui/theme"
)

// Model is the response area: it shows the latest panel rendered through
// glamour and spins while that panel announces work in progress.
type Model struct {
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	current  panel.Panel
	has      bool
	width    int
	height   int
}

func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		viewport: viewport.New(0, 0),
		spinner:  sp,
		renderer: newRenderer(0),
	}
}

func newRenderer(width int) *glamour.TermRenderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	return r
}

// Show replaces the current panel.
func (m *Model) Show(p panel.Panel) tea.Cmd {
	m.current = p
	m.has = true
	m.viewport.SetContent(m.render())
	m.viewport.GotoTop()
	if m.Loading() {
		return m.spinner.Tick
	}
	return nil
}

// Loading reports whether the current panel is an in-progress notice,
// such as "🤖 AI Processing...".
func (m Model) Loading() bool {
	return m.has && m.current.Kind == panel.KindStatus && strings.HasSuffix(m.current.Title, "...")
}

func (m Model) Current() (panel.Panel, bool) { return m.current, m.has }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 0)
		m.viewport.Height = max(msg.Height-3, 0)
		m.renderer = newRenderer(m.viewport.Width)
		if m.has {
			m.viewport.SetContent(m.render())
		}
		return m, nil
	case spinner.TickMsg:
		if !m.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	style := theme.Pane
	if m.has && m.current.Kind == panel.KindFailure {
		style = theme.PanelFailure
	}
	header := theme.Title.Render("Response")
	if m.Loading() {
		header += " " + m.spinner.View()
	}
	body := theme.Muted.Render("Use a key below or speak a command to begin.")
	if m.has {
		body = m.viewport.View()
	}
	return style.Width(max(m.width-2, 0)).Render(header + "\n" + body)
}

func (m Model) render() string {
	md := panel.RenderMarkdown(m.current)
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
