package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"neurowell/internal/bootstrap"
	voiceoutadapter "neurowell/internal/modules/voice/adapter/out"
	wellnessdto "neurowell/internal/modules/wellness/dto"
	"neurowell/internal/platform/config"
	"neurowell/internal/platform/logging"
	uiapp "neurowell/internal/ui/app"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	baseURL    string
	format     string
	debug      bool
}

// formFlags stand in for the dashboard sliders and feelings field.
type formFlags struct {
	mood     string
	stress   string
	energy   string
	feelings string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mood, "mood", "50", "mood level 0-100")
	cmd.Flags().StringVar(&f.stress, "stress", "50", "stress level 0-100")
	cmd.Flags().StringVar(&f.energy, "energy", "50", "energy level 0-100")
	cmd.Flags().StringVar(&f.feelings, "feelings", "", "free-text feelings description")
}

func (f *formFlags) input() wellnessdto.PlanInput {
	return wellnessdto.PlanInput{Mood: f.mood, Stress: f.stress, Energy: f.energy, Feelings: f.feelings}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "neurowell",
		Short:         "Neural wellness dashboard client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&g.baseURL, "base-url", "", "wellness backend base URL")
	root.PersistentFlags().StringVar(&g.format, "format", "", "panel output: html|markdown")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "debug logging")

	root.AddCommand(newDashboardCmd(g))
	root.AddCommand(newVoiceCmd(g))
	root.AddCommand(newBrainCmd(g))
	root.AddCommand(newVRCmd(g))
	root.AddCommand(newPlanCmd(g))
	root.AddCommand(newAnalyzeCmd(g))
	root.AddCommand(newMoodCmd(g))
	root.AddCommand(newWorkoutCmd(g))
	root.AddCommand(newServeCmd(g))
	return root
}

// loadConfig applies flags over the file and environment, then validates
// the result.
func loadConfig(g *globalFlags) (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if g.baseURL != "" {
		cfg.BaseURL = g.baseURL
	}
	if g.format != "" {
		cfg.Format = g.format
	}
	if g.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func loadApp(g *globalFlags, opts bootstrap.Options) (*bootstrap.App, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return bootstrap.New(cfg, log, opts)
}

// loadDashboard wires the app for the full-screen dashboard. Logs go to
// logFile (or nowhere) since the terminal belongs to the TUI.
func loadDashboard(g *globalFlags, logFile string, bridge *uiapp.Bridge) (*bootstrap.App, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, err
	}
	log, err := logging.NewFile(logFile, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return bootstrap.New(cfg, log, bootstrap.Options{
		Display: bridge.Display(),
		Inputs:  bridge.Inputs,
		Focus:   bridge.FocusMood,
	})
}

// settle waits for delayed follow-ups so one-shot commands print every
// panel they trigger before exiting.
func settle(ctx context.Context, app *bootstrap.App, err error) error {
	defer func() { _ = app.Log.Sync() }()
	if serr := app.Settle(ctx); serr != nil {
		app.Close()
		return errors.Join(err, serr)
	}
	return err
}

func newDashboardCmd(g *globalFlags) *cobra.Command {
	var logFile string
	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Run the terminal dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			bridge := uiapp.NewBridge()
			app, err := loadDashboard(g, logFile, bridge)
			if err != nil {
				return err
			}
			defer func() { _ = app.Log.Sync() }()
			return bootstrap.RunDashboard(app, bridge)
		},
	}
	dashboard.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (default: discard)")
	return dashboard
}

func newVoiceCmd(g *globalFlags) *cobra.Command {
	var form formFlags
	voice := &cobra.Command{
		Use:   "voice [command...]",
		Short: "Route a spoken command, or start voice capture when none is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(g, bootstrap.Options{Out: cmd.OutOrStdout(), Inputs: form.input})
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return settle(cmd.Context(), app, app.VoiceCLI.Listen(cmd.Context()))
			}
			_, err = app.VoiceCLI.Command(cmd.Context(), args)
			return settle(cmd.Context(), app, err)
		},
	}
	form.register(voice)

	var simForm formFlags
	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Pick and run a sample voice command",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g, bootstrap.Options{Out: cmd.OutOrStdout(), Inputs: simForm.input})
			if err != nil {
				return err
			}
			_, err = app.VoiceCLI.Simulate(cmd.Context())
			return settle(cmd.Context(), app, err)
		},
	}
	simForm.register(simulate)

	var listenForm formFlags
	listen := &cobra.Command{
		Use:   "listen",
		Short: "Read one spoken command from stdin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g, bootstrap.Options{
				Out:        cmd.OutOrStdout(),
				Inputs:     listenForm.input,
				Recognizer: voiceoutadapter.NewLineRecognizer(cmd.InOrStdin()),
			})
			if err != nil {
				return err
			}
			return settle(cmd.Context(), app, app.VoiceCLI.Listen(cmd.Context()))
		},
	}
	listenForm.register(listen)

	voice.AddCommand(simulate, listen)
	return voice
}

func newBrainCmd(g *globalFlags) *cobra.Command {
	var form formFlags
	brain := &cobra.Command{
		Use:   "brain",
		Short: "Run a brain interface scan and its triggered action",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g, bootstrap.Options{Out: cmd.OutOrStdout(), Inputs: form.input})
			if err != nil {
				return err
			}
			_, err = app.VoiceCLI.ScanBrain(cmd.Context())
			return settle(cmd.Context(), app, err)
		},
	}
	form.register(brain)
	return brain
}

func newVRCmd(g *globalFlags) *cobra.Command {
	vr := &cobra.Command{Use: "vr", Short: "VR sessions"}

	vr.AddCommand(&cobra.Command{
		Use:   "start <id>",
		Short: "Run a simulated VR session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(g, bootstrap.Options{Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			_, err = app.VRCLI.Start(cmd.Context(), args[0])
			return settle(cmd.Context(), app, err)
		},
	})

	vr.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List VR content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g, bootstrap.Options{Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			entries, err := app.VRCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%dmin\t%s\t%s\n", e.ID, e.Name, e.DurationMinutes, e.ContentType, e.Difficulty)
			}
			return nil
		},
	})
	return vr
}

func newPlanCmd(g *globalFlags) *cobra.Command {
	var form formFlags
	plan := &cobra.Command{
		Use:   "plan",
		Short: "Generate an AI wellness plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g, bootstrap.Options{Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			_, err = app.WellnessCLI.GeneratePlan(cmd.Context(), form.mood, form.stress, form.energy, form.feelings)
			return settle(cmd.Context(), app, err)
		},
	}
	form.register(plan)
	return plan
}

func newAnalyzeCmd(g *globalFlags) *cobra.Command {
	var feelings string
	var dictate bool
	analyze := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a feelings description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g, bootstrap.Options{Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			if dictate {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if phrase := strings.TrimSpace(scanner.Text()); phrase != "" {
						if feelings, err = app.WellnessCLI.Dictate(cmd.Context(), feelings, phrase); err != nil {
							return err
						}
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read dictation: %w", err)
				}
			}
			_, err = app.WellnessCLI.AnalyzeFeelings(cmd.Context(), feelings)
			return settle(cmd.Context(), app, err)
		},
	}
	analyze.Flags().StringVar(&feelings, "feelings", "", "feelings description")
	analyze.Flags().BoolVar(&dictate, "dictate", false, "append phrases read from stdin, one per line")
	return analyze
}

func newMoodCmd(g *globalFlags) *cobra.Command {
	var form formFlags
	mood := &cobra.Command{
		Use:   "mood",
		Short: "Log the current mood, stress and energy levels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g, bootstrap.Options{Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			_, err = app.WellnessCLI.LogMood(cmd.Context(), form.mood, form.stress, form.energy)
			return settle(cmd.Context(), app, err)
		},
	}
	mood.Flags().StringVar(&form.mood, "mood", "50", "mood level 0-100")
	mood.Flags().StringVar(&form.stress, "stress", "50", "stress level 0-100")
	mood.Flags().StringVar(&form.energy, "energy", "50", "energy level 0-100")
	return mood
}

func newWorkoutCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "workout",
		Short: "Activate the holographic trainer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g, bootstrap.Options{Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			return settle(cmd.Context(), app, app.WellnessCLI.GenerateWorkout(cmd.Context()))
		},
	}
}

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the reference wellness backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Debug)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()
			if addr != "" {
				cfg.Coach.Addr = addr
			}
			handler, err := bootstrap.NewCoach(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.Coach.Addr,
				Handler:           handler.Routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			group, ctx := errgroup.WithContext(cmd.Context())
			group.Go(func() error {
				log.Info("coach listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
				return nil
			})
			group.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			return group.Wait()
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return serve
}
