package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"neurowell/internal/modules/voice/domain"
	voiceout "neurowell/internal/modules/voice/port/out"
	"neurowell/internal/platform/clock"
	"neurowell/internal/platform/panel"
)

const (
	DefaultActionDelay   = 1500 * time.Millisecond
	DefaultFallbackDelay = time.Second
	ScanDelay            = 3 * time.Second
	ScanActionDelay      = 2 * time.Second
)

type Delays struct {
	Action   time.Duration
	Fallback time.Duration
	Scan     time.Duration
	Trigger  time.Duration
}

func DefaultDelays() Delays {
	return Delays{Action: DefaultActionDelay, Fallback: DefaultFallbackDelay, Scan: ScanDelay, Trigger: ScanActionDelay}
}

// Router turns voice input into a status panel and one delayed action.
// It keeps no state between commands.
type Router struct {
	display    panel.Display
	actions    voiceout.Actions
	recognizer voiceout.Recognizer
	scheduler  clock.Scheduler
	random     voiceout.Random
	delays     Delays
	log        *zap.Logger
}

// NewRouter builds a router. A nil recognizer means voice capture is
// unavailable and Listen falls back to simulation.
func NewRouter(display panel.Display, actions voiceout.Actions, recognizer voiceout.Recognizer, scheduler clock.Scheduler, random voiceout.Random, delays Delays, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		display:    display,
		actions:    actions,
		recognizer: recognizer,
		scheduler:  scheduler,
		random:     random,
		delays:     delays,
		log:        log,
	}
}

// Dispatch shows the route panel, then schedules its action exactly once.
func (r *Router) Dispatch(ctx context.Context, command string) domain.Route {
	route := domain.Resolve(command)
	r.display.Show(ctx, panel.Status(route.Title, route.Message))
	r.log.Debug("voice command routed", zap.String("command", route.Command), zap.String("action", string(route.Action)))
	if route.Action == domain.ActionAcknowledge {
		return route
	}
	r.after(ctx, r.delays.Action, func(ctx context.Context) {
		r.perform(ctx, route.Action, route.ContentID)
	})
	return route
}

func (r *Router) Listen(ctx context.Context) error {
	r.display.Show(ctx, panel.Status("🎤 Voice Command Activated!", "Neural voice processing activated..."))
	if r.recognizer == nil {
		r.after(ctx, r.delays.Fallback, func(ctx context.Context) { r.Simulate(ctx) })
		return nil
	}

	r.display.Show(ctx, panel.Status("🎤 Listening...", `Speak now! Say "generate plan", "start meditation", or "track mood"`))
	transcript, err := r.recognizer.Recognize(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return err
		}
		r.log.Warn("voice recognition failed", zap.Error(err))
		r.display.Show(ctx, panel.Status("🎤 Voice Recognition Error", "Switching to simulation mode..."))
		r.after(ctx, r.delays.Fallback, func(ctx context.Context) { r.Simulate(ctx) })
		return nil
	}
	r.Dispatch(ctx, transcript)
	return nil
}

// Simulate picks a sample command, announces it and dispatches it after
// the fallback delay.
func (r *Router) Simulate(ctx context.Context) string {
	samples := domain.Samples()
	command := samples[r.random.IntN(len(samples))]
	r.display.Show(ctx, panel.Status("🎤 Voice Command Simulated", `Detected: "`+command+`"`))
	r.after(ctx, r.delays.Fallback, func(ctx context.Context) { r.Dispatch(ctx, command) })
	return command
}

// ScanBrain reads a random brain state, reveals it after the scan delay
// and runs its action after the trigger delay.
func (r *Router) ScanBrain(ctx context.Context) domain.BrainState {
	states := domain.BrainStates()
	state := states[r.random.IntN(len(states))]
	r.display.Show(ctx, panel.Status(domain.ScanningTitle(), domain.ScanningMessage()))
	r.after(ctx, r.delays.Scan, func(ctx context.Context) {
		r.display.Show(ctx, panel.Status(state.Title(), state.Effect))
		r.after(ctx, r.delays.Trigger, func(ctx context.Context) {
			r.perform(ctx, state.Action, state.ContentID)
		})
	})
	return state
}

func (r *Router) after(ctx context.Context, d time.Duration, fn func(context.Context)) {
	later := context.WithoutCancel(ctx)
	r.scheduler.AfterFunc(d, func() { fn(later) })
}

func (r *Router) perform(ctx context.Context, action domain.Action, contentID string) {
	var err error
	switch action {
	case domain.ActionVR:
		err = r.actions.StartVR(ctx, contentID)
	case domain.ActionWorkout:
		err = r.actions.GenerateWorkout(ctx)
	case domain.ActionMood:
		err = r.actions.FocusMood(ctx)
	case domain.ActionPlan:
		err = r.actions.GeneratePlan(ctx)
	default:
		return
	}
	if err != nil {
		r.log.Warn("voice action failed", zap.String("action", string(action)), zap.Error(err))
	}
}
