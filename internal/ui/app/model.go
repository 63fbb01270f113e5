package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	voicedomain "neurowell/internal/modules/voice/domain"
	voicedto "neurowell/internal/modules/voice/dto"
	vrdto "neurowell/internal/modules/vr/dto"
	wellnessdto "neurowell/internal/modules/wellness/dto"
	apperrors "neurowell/internal/platform/errors"
	"neurowell/internal/ui/components"
	"neurowell/internal/ui/theme"
	"neurowell/internal/ui/views/response"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type wellnessPort interface {
	GeneratePlan(ctx context.Context, mood, stress, energy, feelings string) (wellnessdto.PlanOutput, error)
	AnalyzeFeelings(ctx context.Context, feelings string) (wellnessdto.AnalyzeOutput, error)
	LogMood(ctx context.Context, mood, stress, energy string) (wellnessdto.LogMoodOutput, error)
	GenerateWorkout(ctx context.Context) error
	Dictate(ctx context.Context, text, spoken string) (string, error)
}

type voicePort interface {
	Command(ctx context.Context, words []string) (voicedto.RouteOutput, error)
	Listen(ctx context.Context) error
	ScanBrain(ctx context.Context) (voicedto.ScanOutput, error)
}

type vrPort interface {
	Start(ctx context.Context, contentID string) (vrdto.StartOutput, error)
}

// ─── focus ───────────────────────────────────────────────────────────────────

type focusID int

const (
	focusMood focusID = iota
	focusStress
	focusEnergy
	focusFeelings
	focusCount
)

// ─── async messages ──────────────────────────────────────────────────────────

type actionDoneMsg struct {
	label string
	note  string
	err   error
}

type dictatedMsg struct {
	text string
	err  error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Next    key.Binding
	Adjust  key.Binding
	Plan    key.Binding
	Analyze key.Binding
	Mood    key.Binding
	Workout key.Binding
	Listen  key.Binding
	Command key.Binding
	Dictate key.Binding
	Brain   key.Binding
	VR      key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next input")),
		Adjust:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "adjust slider")),
		Plan:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "AI plan")),
		Analyze: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analyze feelings")),
		Mood:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "log mood")),
		Workout: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "workout")),
		Listen:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "voice")),
		Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "type command")),
		Dictate: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dictate")),
		Brain:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "brain scan")),
		VR:      key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "VR session")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Plan, k.Listen, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Adjust},
		{k.Plan, k.Analyze, k.Mood, k.Workout},
		{k.Listen, k.Command, k.Dictate, k.Brain, k.VR},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the dashboard: three sliders, the feelings text, and the
// response pane. Use cases run in commands; their panels arrive through
// the bridge.
type Model struct {
	wellness wellnessPort
	voice    voicePort
	vr       vrPort
	bridge   *Bridge

	sliders  [3]components.Slider
	feelings textarea.Model
	focus    focusID
	response response.Model
	palette  components.Palette

	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	statusErr bool
	width     int
	height    int
}

func NewModel(wellness wellnessPort, voice voicePort, vr vrPort, bridge *Bridge) Model {
	ta := textarea.New()
	ta.Placeholder = "Describe how you're feeling today…"
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.CharLimit = 2000

	in := bridge.Inputs()
	m := Model{
		wellness: wellness,
		voice:    voice,
		vr:       vr,
		bridge:   bridge,
		sliders: [3]components.Slider{
			components.NewSlider("Mood", atoiOr(in.Mood, 50), 5),
			components.NewSlider("Stress", atoiOr(in.Stress, 50), 5),
			components.NewSlider("Energy", atoiOr(in.Energy, 50), 5),
		},
		feelings: ta,
		response: response.New(),
		palette:  components.NewPalette(voicedomain.Samples()),
		keys:     defaultKeys(),
		help:     help.New(),
		status:   "ready",
	}
	m.feelings.SetValue(in.Feelings)
	m.setFocus(focusMood)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.bridge.waitPanel(), m.bridge.waitFocus())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.publish()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case panelMsg:
		return m, tea.Batch(m.response.Show(msg.panel), m.bridge.waitPanel())

	case focusMoodMsg:
		m.setFocus(focusMood)
		m.status = "mood sliders focused"
		return m, m.bridge.waitFocus()

	case actionDoneMsg:
		m.statusErr = msg.err != nil
		switch {
		case errors.Is(msg.err, apperrors.ErrSessionActive):
			m.status = msg.label + ": a VR session is already running"
		case msg.err != nil:
			m.status = msg.label + ": " + msg.err.Error()
		case msg.note != "":
			m.status = msg.label + ": " + msg.note
		default:
			m.status = msg.label + " done"
		}
		return m, nil

	case dictatedMsg:
		m.statusErr = msg.err != nil
		if msg.err != nil {
			m.status = "dictation: " + msg.err.Error()
			return m, nil
		}
		m.feelings.SetValue(msg.text)
		m.status = "dictation added"
		return m, nil

	case components.PaletteSubmitMsg:
		return m.submitPalette(msg)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.feelings.SetWidth(max(m.width-6, 20))
		var cmd tea.Cmd
		m.response, cmd = m.response.Update(tea.WindowSizeMsg{Width: m.width, Height: max(m.height-15, 5)})
		return m, cmd
	}

	if m.palette.Visible() {
		var paletteCmd, responseCmd tea.Cmd
		m.palette, paletteCmd = m.palette.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			m.response, responseCmd = m.response.Update(msg)
		}
		return m, tea.Batch(paletteCmd, responseCmd)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.response, cmd = m.response.Update(msg)
		return m, cmd
	}
	return m.handleKey(keyMsg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	}

	if m.focus == focusFeelings {
		if msg.String() == "esc" {
			m.setFocus(focusMood)
			return m, nil
		}
		var cmd tea.Cmd
		m.feelings, cmd = m.feelings.Update(msg)
		return m, cmd
	}

	ctx := context.Background()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "p":
		in := m.inputs()
		return m, m.run("AI plan", func() (string, error) {
			_, err := m.wellness.GeneratePlan(ctx, in.Mood, in.Stress, in.Energy, in.Feelings)
			return "", err
		})
	case "a":
		feelings := m.feelings.Value()
		return m, m.run("analysis", func() (string, error) {
			_, err := m.wellness.AnalyzeFeelings(ctx, feelings)
			return "", err
		})
	case "m":
		in := m.inputs()
		return m, m.run("mood log", func() (string, error) {
			out, err := m.wellness.LogMood(ctx, in.Mood, in.Stress, in.Energy)
			return out.Message, err
		})
	case "w":
		return m, m.run("workout", func() (string, error) {
			return "", m.wellness.GenerateWorkout(ctx)
		})
	case "v":
		return m, m.run("voice", func() (string, error) {
			return "", m.voice.Listen(ctx)
		})
	case ":":
		return m, m.palette.Open(components.ModeCommand)
	case "d":
		return m, m.palette.Open(components.ModeDictate)
	case "b":
		return m, m.run("brain scan", func() (string, error) {
			out, err := m.voice.ScanBrain(ctx)
			return "reading " + out.State, err
		})
	case "1", "2", "3":
		id := msg.String()
		return m, m.run("VR", func() (string, error) {
			out, err := m.vr.Start(ctx, id)
			return out.Name, err
		})
	}

	if m.focus <= focusEnergy {
		m.sliders[m.focus], _ = m.sliders[m.focus].Update(msg)
	}
	return m, nil
}

func (m Model) submitPalette(msg components.PaletteSubmitMsg) (Model, tea.Cmd) {
	if msg.Input == "" {
		m.status = "ready"
		return m, nil
	}
	ctx := context.Background()
	if msg.Mode == components.ModeDictate {
		text := m.feelings.Value()
		return m, func() tea.Msg {
			out, err := m.wellness.Dictate(ctx, text, msg.Input)
			return dictatedMsg{text: out, err: err}
		}
	}
	words := strings.Fields(msg.Input)
	return m, m.run("voice", func() (string, error) {
		out, err := m.voice.Command(ctx, words)
		return fmt.Sprintf("%q → %s", out.Command, out.Action), err
	})
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).
		Render(theme.Title.Render("🧠 neurowell") + theme.Muted.Render("  neural wellness dashboard"))

	var content string
	switch {
	case m.showHelp:
		content = m.help.View(m.keys)
	case m.palette.Visible():
		content = lipgloss.Place(m.width, max(m.height-4, 1), lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = lipgloss.JoinVertical(lipgloss.Left, m.renderInputs(), m.response.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, m.renderStatusBar())
}

func (m Model) renderInputs() string {
	rows := make([]string, 0, 5)
	for _, s := range m.sliders {
		rows = append(rows, s.View())
	}
	label := theme.Muted.Render("Feelings")
	if m.focus == focusFeelings {
		label = theme.Hot.Render("Feelings")
	}
	rows = append(rows, label, m.feelings.View())
	style := theme.Pane
	if m.focus == focusFeelings {
		style = theme.PaneActive
	}
	return style.Width(max(m.width-2, 0)).Render(strings.Join(rows, "\n"))
}

func (m Model) renderStatusBar() string {
	left := theme.Muted.Render(m.status)
	if m.statusErr {
		left = theme.Error.Render(m.status)
	}
	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).
		Render(left + strings.Repeat(" ", gap) + right)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) setFocus(f focusID) {
	m.focus = f
	for i := range m.sliders {
		if focusID(i) == f {
			m.sliders[i].Focus()
		} else {
			m.sliders[i].Blur()
		}
	}
	if f == focusFeelings {
		m.feelings.Focus()
	} else {
		m.feelings.Blur()
	}
}

func (m Model) inputs() wellnessdto.PlanInput {
	return wellnessdto.PlanInput{
		Mood:     m.sliders[focusMood].String(),
		Stress:   m.sliders[focusStress].String(),
		Energy:   m.sliders[focusEnergy].String(),
		Feelings: m.feelings.Value(),
	}
}

// publish keeps the bridge in step with the form so voice actions read
// the values on screen.
func (m Model) publish() {
	m.bridge.setInputs(m.inputs())
}

func (m Model) run(label string, fn func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		note, err := fn()
		return actionDoneMsg{label: label, note: note, err: err}
	}
}

func atoiOr(raw string, fallback int) int {
	var v int
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return fallback
	}
	return v
}
