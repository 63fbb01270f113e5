package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	coachinadapter "neurowell/internal/modules/coach/adapter/in"
	coachoutadapter "neurowell/internal/modules/coach/adapter/out"
	coachout "neurowell/internal/modules/coach/port/out"
	coachservice "neurowell/internal/modules/coach/service"
	coachusecase "neurowell/internal/modules/coach/usecase"
	voiceinadapter "neurowell/internal/modules/voice/adapter/in"
	voiceoutadapter "neurowell/internal/modules/voice/adapter/out"
	voiceout "neurowell/internal/modules/voice/port/out"
	voiceservice "neurowell/internal/modules/voice/service"
	voiceusecase "neurowell/internal/modules/voice/usecase"
	vrinadapter "neurowell/internal/modules/vr/adapter/in"
	vrservice "neurowell/internal/modules/vr/service"
	vrusecase "neurowell/internal/modules/vr/usecase"
	wellnessinadapter "neurowell/internal/modules/wellness/adapter/in"
	wellnessoutadapter "neurowell/internal/modules/wellness/adapter/out"
	wellnessdto "neurowell/internal/modules/wellness/dto"
	wellnessservice "neurowell/internal/modules/wellness/service"
	wellnessusecase "neurowell/internal/modules/wellness/usecase"
	"neurowell/internal/platform/clock"
	"neurowell/internal/platform/config"
	"neurowell/internal/platform/id"
	"neurowell/internal/platform/panel"
	"neurowell/internal/platform/random"
	uiapp "neurowell/internal/ui/app"
)

// Options replace the terminal defaults for surfaces that own the
// display and the form state, such as the dashboard.
type Options struct {
	Out        io.Writer
	Display    panel.Display
	Inputs     voiceoutadapter.InputSource
	Focus      voiceoutadapter.Focuser
	Recognizer voiceout.Recognizer
}

type App struct {
	VoiceCLI    voiceinadapter.CLIHandler
	VRCLI       vrinadapter.CLIHandler
	WellnessCLI wellnessinadapter.CLIHandler
	Log         *zap.Logger

	scheduler *clock.SystemScheduler
	timer     *vrservice.ProgressTimer
}

func New(cfg config.Config, log *zap.Logger, opts Options) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	display := opts.Display
	if display == nil {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		display = panel.NewWriterDisplay(out, cfg.Format == config.FormatMarkdown, log)
	}
	inputs := opts.Inputs
	if inputs == nil {
		inputs = func() wellnessdto.PlanInput {
			return wellnessdto.PlanInput{Mood: "50", Stress: "50", Energy: "50"}
		}
	}

	scheduler := clock.NewSystemScheduler()
	timer := vrservice.NewProgressTimer(display, cfg.VR.Period, cfg.VR.Step, log.Named("vr"))
	vrUC := vrusecase.NewInteractor(timer, id.UUID{})

	wellnessUC := wellnessusecase.NewInteractor(wellnessservice.NewWellnessService(
		display,
		wellnessoutadapter.NewHTTPBackend(cfg.BaseURL, cfg.Timeout, log.Named("backend")),
		scheduler,
		wellnessservice.WorkoutDelay,
		log.Named("wellness"),
	))

	delays := voiceservice.DefaultDelays()
	delays.Action = cfg.Voice.ActionDelay
	delays.Fallback = cfg.Voice.FallbackDelay
	router := voiceservice.NewRouter(
		display,
		voiceoutadapter.NewActionsAdapter(vrUC, wellnessUC, inputs, opts.Focus),
		opts.Recognizer,
		scheduler,
		random.New(cfg.Voice.Seed),
		delays,
		log.Named("voice"),
	)
	voiceUC := voiceusecase.NewInteractor(router)

	return &App{
		VoiceCLI:    voiceinadapter.NewCLIHandler(voiceUC),
		VRCLI:       vrinadapter.NewCLIHandler(vrUC),
		WellnessCLI: wellnessinadapter.NewCLIHandler(wellnessUC),
		Log:         log,
		scheduler:   scheduler,
		timer:       timer,
	}, nil
}

// Settle blocks until every delayed follow-up has run and any VR session
// it started has completed.
func (a *App) Settle(ctx context.Context) error {
	idle := make(chan struct{})
	go func() {
		a.scheduler.Wait()
		close(idle)
	}()
	select {
	case <-idle:
	case <-ctx.Done():
		return ctx.Err()
	}
	return a.VRCLI.Wait(ctx)
}

// Close abandons a running VR session.
func (a *App) Close() {
	a.timer.Stop()
}

// NewCoach builds the reference backend. Without an API key every answer
// comes from the rule-based fallbacks.
func NewCoach(ctx context.Context, cfg config.Config, log *zap.Logger) (coachinadapter.HTTPHandler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var generator coachout.Generator
	if cfg.Coach.GeminiAPIKey != "" {
		g, err := coachoutadapter.NewGeminiGenerator(ctx, cfg.Coach.GeminiAPIKey, cfg.Coach.Model)
		if err != nil {
			return coachinadapter.HTTPHandler{}, fmt.Errorf("new gemini generator: %w", err)
		}
		generator = g
	} else {
		log.Warn("no Gemini API key configured, serving fallback answers")
	}
	svc := coachservice.NewCoachService(generator, random.New(0), log.Named("coach"))
	uc := coachusecase.NewInteractor(svc, clock.SystemClock{}, id.UUID{}, log.Named("coach"))
	return coachinadapter.NewHTTPHandler(uc, log.Named("http")), nil
}

// RunDashboard runs the terminal dashboard until the user quits. bridge
// must be the same one whose display and inputs were passed to New.
func RunDashboard(app *App, bridge *uiapp.Bridge) error {
	model := uiapp.NewModel(app.WellnessCLI, app.VoiceCLI, app.VRCLI, bridge)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	app.Close()
	return err
}
