package response

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"neurowell/internal/platform/panel"
)

func TestLoadingFollowsCurrentPanel(t *testing.T) {
	m := New()
	if m.Loading() {
		t.Fatalf("empty view must not be loading")
	}
	if cmd := m.Show(panel.Status("🤖 AI Processing...", "working")); cmd == nil {
		t.Fatalf("expected spinner tick while loading")
	}
	if !m.Loading() {
		t.Fatalf("expected loading state")
	}
	m.Show(panel.Failure("❌ Error", "Failed to generate AI plan. Please try again."))
	if m.Loading() {
		t.Fatalf("failure panel must end loading")
	}
	got, ok := m.Current()
	if !ok || got.Kind != panel.KindFailure {
		t.Fatalf("unexpected current panel %+v", got)
	}
}

func TestViewRendersPanelText(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m.Show(panel.Status("🥽 VR Initialization", "Loading Neural Calm Forest... Neural feedback calibrating."))
	if view := m.View(); !strings.Contains(view, "Neural Calm Forest") {
		t.Fatalf("view does not contain panel text:\n%s", view)
	}
}
