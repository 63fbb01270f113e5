package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	voicedto "neurowell/internal/modules/voice/dto"
	vrdto "neurowell/internal/modules/vr/dto"
	wellnessdto "neurowell/internal/modules/wellness/dto"
	"neurowell/internal/platform/panel"
	"neurowell/internal/ui/components"
)

type fakeWellness struct {
	plan wellnessdto.PlanInput
}

func (f *fakeWellness) GeneratePlan(_ context.Context, mood, stress, energy, feelings string) (wellnessdto.PlanOutput, error) {
	f.plan = wellnessdto.PlanInput{Mood: mood, Stress: stress, Energy: energy, Feelings: feelings}
	return wellnessdto.PlanOutput{}, nil
}

func (f *fakeWellness) AnalyzeFeelings(context.Context, string) (wellnessdto.AnalyzeOutput, error) {
	return wellnessdto.AnalyzeOutput{}, nil
}

func (f *fakeWellness) LogMood(context.Context, string, string, string) (wellnessdto.LogMoodOutput, error) {
	return wellnessdto.LogMoodOutput{Message: "saved"}, nil
}

func (f *fakeWellness) GenerateWorkout(context.Context) error { return nil }

func (f *fakeWellness) Dictate(_ context.Context, text, spoken string) (string, error) {
	return text + spoken + " ", nil
}

type fakeVoice struct{}

func (fakeVoice) Command(_ context.Context, words []string) (voicedto.RouteOutput, error) {
	return voicedto.RouteOutput{Command: words[0], Action: "vr"}, nil
}
func (fakeVoice) Listen(context.Context) error { return nil }
func (fakeVoice) ScanBrain(context.Context) (voicedto.ScanOutput, error) {
	return voicedto.ScanOutput{State: "relaxed"}, nil
}

type fakeVR struct{}

func (fakeVR) Start(_ context.Context, id string) (vrdto.StartOutput, error) {
	return vrdto.StartOutput{ContentID: id}, nil
}

func newTestModel() (Model, *fakeWellness, *Bridge) {
	w := &fakeWellness{}
	b := NewBridge()
	return NewModel(w, fakeVoice{}, fakeVR{}, b), w, b
}

func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSliderChangesReachPlanAndBridge(t *testing.T) {
	m, w, b := newTestModel()

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyLeft})
	if got := b.Inputs(); got.Mood != "55" || got.Stress != "45" || got.Energy != "50" {
		t.Fatalf("bridge inputs not published: %+v", got)
	}

	_, cmd := press(m, runes("p"))
	if cmd == nil {
		t.Fatalf("expected plan command")
	}
	msg := cmd()
	if done, ok := msg.(actionDoneMsg); !ok || done.err != nil {
		t.Fatalf("unexpected result %#v", msg)
	}
	if w.plan.Mood != "55" || w.plan.Stress != "45" {
		t.Fatalf("plan used stale inputs: %+v", w.plan)
	}
}

func TestFocusRequestSelectsMoodSlider(t *testing.T) {
	m, _, _ := newTestModel()
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusFeelings {
		t.Fatalf("expected feelings focus, got %d", m.focus)
	}

	next, _ := m.Update(focusMoodMsg{})
	m = next.(Model)
	if m.focus != focusMood || !m.sliders[focusMood].Focused() {
		t.Fatalf("mood slider not focused")
	}
}

func TestActionKeysAreTextWhileTypingFeelings(t *testing.T) {
	m, w, _ := newTestModel()
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("p"))
	if m.feelings.Value() != "p" {
		t.Fatalf("expected typed text, got %q", m.feelings.Value())
	}
	if w.plan != (wellnessdto.PlanInput{}) {
		t.Fatalf("plan must not run while typing")
	}
}

func TestPanelsFromBridgeReachResponsePane(t *testing.T) {
	m, _, b := newTestModel()
	b.Display().Show(context.Background(), panel.Status("🤖 AI Processing...", "working"))

	msg := b.waitPanel()()
	next, _ := m.Update(msg)
	m = next.(Model)
	got, ok := m.response.Current()
	if !ok || got.Title != "🤖 AI Processing..." {
		t.Fatalf("unexpected current panel %+v", got)
	}
}

func TestDictationAppendsToFeelings(t *testing.T) {
	m, _, _ := newTestModel()
	m.feelings.SetValue("tired ")

	next, cmd := m.Update(componentsSubmit("and restless"))
	m = next.(Model)
	next, _ = m.Update(cmd())
	m = next.(Model)
	if m.feelings.Value() != "tired and restless " {
		t.Fatalf("unexpected feelings %q", m.feelings.Value())
	}
}

func componentsSubmit(input string) components.PaletteSubmitMsg {
	return components.PaletteSubmitMsg{Mode: components.ModeDictate, Input: input}
}
