package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurowell/internal/modules/voice/domain"
	voiceout "neurowell/internal/modules/voice/port/out"
	"neurowell/internal/modules/voice/service"
	"neurowell/internal/platform/panel"
)

type pending struct {
	delay time.Duration
	fn    func()
}

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	mu    sync.Mutex
	queue []pending
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, pending{delay: d, fn: fn})
	return func() bool { return false }
}

// fireNext runs the oldest queued callback and returns its delay.
func (s *manualScheduler) fireNext(t *testing.T) time.Duration {
	t.Helper()
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		t.Fatalf("no scheduled callback")
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	s.mu.Unlock()
	next.fn()
	return next.delay
}

func (s *manualScheduler) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

type fakeActions struct {
	calls []string
	err   error
}

func (a *fakeActions) StartVR(_ context.Context, contentID string) error {
	a.calls = append(a.calls, "vr:"+contentID)
	return a.err
}

func (a *fakeActions) GenerateWorkout(context.Context) error {
	a.calls = append(a.calls, "workout")
	return a.err
}

func (a *fakeActions) FocusMood(context.Context) error {
	a.calls = append(a.calls, "mood")
	return a.err
}

func (a *fakeActions) GeneratePlan(context.Context) error {
	a.calls = append(a.calls, "plan")
	return a.err
}

type fixedRandom int

func (f fixedRandom) IntN(n int) int { return int(f) % n }

type fakeRecognizer struct {
	text string
	err  error
}

func (f fakeRecognizer) Recognize(context.Context) (string, error) { return f.text, f.err }

type fixture struct {
	rec     *panel.Recorder
	sched   *manualScheduler
	actions *fakeActions
}

func newRouter(recognizer voiceout.Recognizer, pick int) (*service.Router, fixture) {
	f := fixture{rec: &panel.Recorder{}, sched: &manualScheduler{}, actions: &fakeActions{}}
	r := service.NewRouter(f.rec, f.actions, recognizer, f.sched, fixedRandom(pick), service.DefaultDelays(), nil)
	return r, f
}

func panelTitles(rec *panel.Recorder) []string {
	var out []string
	for _, p := range rec.Panels() {
		out = append(out, p.Title)
	}
	return out
}

func TestDispatchShowsPanelBeforeSchedulingOneAction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		command string
		call    string
		title   string
	}{
		{"start meditation", "vr:1", "🎤 Voice Action: VR Meditation"},
		{"begin workout", "workout", "🎤 Voice Action: Workout"},
		{"track my mood", "mood", "🎤 Voice Action: Mood Tracking"},
		{"generate wellness plan", "plan", "🎤 Voice Action: Generate Plan"},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			r, f := newRouter(nil, 0)
			r.Dispatch(context.Background(), tt.command)

			require.Equal(t, []string{tt.title}, panelTitles(f.rec))
			require.Empty(t, f.actions.calls, "action must wait for the delay")
			require.Equal(t, 1, f.sched.len())

			assert.Equal(t, service.DefaultActionDelay, f.sched.fireNext(t))
			assert.Equal(t, []string{tt.call}, f.actions.calls)
			assert.Zero(t, f.sched.len())
		})
	}
}

func TestDispatchAcknowledgesUnknownCommandWithoutAction(t *testing.T) {
	t.Parallel()
	r, f := newRouter(nil, 0)
	route := r.Dispatch(context.Background(), "Hello There")

	assert.Equal(t, domain.ActionAcknowledge, route.Action)
	last, _ := f.rec.Last()
	assert.Equal(t, `Command "hello there" received and processed by AI`, last.Message)
	assert.Zero(t, f.sched.len())
}

func TestDispatchCalledTwiceSchedulesTwoIndependentActions(t *testing.T) {
	t.Parallel()
	r, f := newRouter(nil, 0)
	r.Dispatch(context.Background(), "vr")
	r.Dispatch(context.Background(), "plan")
	f.sched.fireNext(t)
	f.sched.fireNext(t)
	assert.Equal(t, []string{"vr:1", "plan"}, f.actions.calls)
}

func TestActionErrorsAreSwallowed(t *testing.T) {
	t.Parallel()
	r, f := newRouter(nil, 0)
	f.actions.err = errors.New("session active")
	r.Dispatch(context.Background(), "show vr content")
	f.sched.fireNext(t)
	assert.Equal(t, []string{"vr:1"}, f.actions.calls)
}

func TestListenWithoutRecognizerFallsBackToSimulation(t *testing.T) {
	t.Parallel()
	r, f := newRouter(nil, 2) // "begin workout"
	require.NoError(t, r.Listen(context.Background()))
	assert.Equal(t, []string{"🎤 Voice Command Activated!"}, panelTitles(f.rec))

	assert.Equal(t, service.DefaultFallbackDelay, f.sched.fireNext(t))
	last, _ := f.rec.Last()
	assert.Equal(t, "🎤 Voice Command Simulated", last.Title)
	assert.Equal(t, `Detected: "begin workout"`, last.Message)

	assert.Equal(t, service.DefaultFallbackDelay, f.sched.fireNext(t))
	assert.Equal(t, service.DefaultActionDelay, f.sched.fireNext(t))
	assert.Equal(t, []string{"workout"}, f.actions.calls)
}

func TestListenDispatchesLowercasedTranscript(t *testing.T) {
	t.Parallel()
	r, f := newRouter(fakeRecognizer{text: "Track My MOOD"}, 0)
	require.NoError(t, r.Listen(context.Background()))

	assert.Equal(t, []string{
		"🎤 Voice Command Activated!",
		"🎤 Listening...",
		"🎤 Voice Action: Mood Tracking",
	}, panelTitles(f.rec))
	f.sched.fireNext(t)
	assert.Equal(t, []string{"mood"}, f.actions.calls)
}

func TestListenRecognizerErrorSwitchesToSimulation(t *testing.T) {
	t.Parallel()
	r, f := newRouter(fakeRecognizer{err: errors.New("no-speech")}, 0)
	require.NoError(t, r.Listen(context.Background()))

	last, _ := f.rec.Last()
	assert.Equal(t, "🎤 Voice Recognition Error", last.Title)
	assert.Equal(t, panel.KindStatus, last.Kind)

	f.sched.fireNext(t)
	last, _ = f.rec.Last()
	assert.Equal(t, "🎤 Voice Command Simulated", last.Title)
}

func TestListenReturnsContextErrorWithoutFallback(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, f := newRouter(fakeRecognizer{err: context.Canceled}, 0)

	err := r.Listen(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, f.sched.len())
}

func TestScanBrainRunsStateAction(t *testing.T) {
	t.Parallel()
	want := map[string]string{
		"relaxed":   "vr:1",
		"focused":   "plan",
		"stressed":  "vr:2",
		"energetic": "workout",
	}
	for i, state := range domain.BrainStates() {
		r, f := newRouter(nil, i)
		got := r.ScanBrain(context.Background())
		require.Equal(t, state.Name, got.Name)
		require.Equal(t, []string{"🧠 Brain Interface Scanning..."}, panelTitles(f.rec))

		assert.Equal(t, service.ScanDelay, f.sched.fireNext(t))
		last, _ := f.rec.Last()
		assert.Equal(t, state.Title(), last.Title)
		assert.Equal(t, state.Effect, last.Message)
		assert.Empty(t, f.actions.calls)

		assert.Equal(t, service.ScanActionDelay, f.sched.fireNext(t))
		assert.Equal(t, []string{want[state.Name]}, f.actions.calls)
	}
}

func TestScheduledActionsOutliveCallerContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	r, f := newRouter(nil, 0)
	r.Dispatch(ctx, "begin workout")
	cancel()
	f.sched.fireNext(t)
	assert.Equal(t, []string{"workout"}, f.actions.calls)
}
