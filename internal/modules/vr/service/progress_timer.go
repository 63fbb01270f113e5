package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"neurowell/internal/modules/vr/domain"
	apperrors "neurowell/internal/platform/errors"
	"neurowell/internal/platform/panel"
)

type timerRun struct {
	id     string
	desc   domain.Descriptor
	cancel context.CancelFunc
	done   chan struct{}
}

// ProgressTimer advances a simulated session from 0 to 100 percent in
// fixed steps, showing a panel per step. Only one session runs at a time.
type ProgressTimer struct {
	display panel.Display
	period  time.Duration
	step    int
	log     *zap.Logger

	mu  sync.Mutex
	run *timerRun
}

func NewProgressTimer(display panel.Display, period time.Duration, step int, log *zap.Logger) *ProgressTimer {
	if step <= 0 || step > 100 {
		step = 20
	}
	if period <= 0 {
		period = time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProgressTimer{display: display, period: period, step: step, log: log}
}

func (t *ProgressTimer) StepSize() int { return t.step }

func (t *ProgressTimer) Start(ctx context.Context, runID string, d domain.Descriptor) error {
	t.mu.Lock()
	if t.run != nil {
		active := t.run.desc.Name
		t.mu.Unlock()
		t.log.Debug("vr start rejected", zap.String("active", active), zap.String("requested", d.Name))
		return apperrors.ErrSessionActive
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	run := &timerRun{id: runID, desc: d, cancel: cancel, done: make(chan struct{})}
	t.run = run
	t.mu.Unlock()

	t.display.Show(runCtx, panel.Status(domain.LoadingTitle(), domain.LoadingMessage(d)))
	t.log.Info("vr session started", zap.String("run", runID), zap.String("content", d.Name))

	go t.loop(runCtx, run)
	return nil
}

func (t *ProgressTimer) loop(ctx context.Context, run *timerRun) {
	ticker := time.NewTicker(t.period)
	// The only place the ticker stops and the run is released.
	defer func() {
		ticker.Stop()
		run.cancel()
		t.mu.Lock()
		if t.run == run {
			t.run = nil
		}
		t.mu.Unlock()
		close(run.done)
	}()

	progress := 0
	for {
		select {
		case <-ctx.Done():
			t.log.Info("vr session stopped", zap.String("run", run.id), zap.Int("progress", progress))
			return
		case <-ticker.C:
			progress += t.step
			if progress > 100 {
				progress = 100
			}
			t.display.Show(ctx, panel.Status(domain.ProgressTitle(run.desc, progress), domain.ProgressMessage(run.desc, progress)))
			if progress == 100 {
				t.display.Show(ctx, panel.Status(domain.CompleteTitle(), domain.CompleteMessage(run.desc)))
				t.log.Info("vr session complete", zap.String("run", run.id), zap.Int("points", domain.Points(run.desc)))
				return
			}
		}
	}
}

func (t *ProgressTimer) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.run != nil
}

// Wait blocks until the running session, if any, has finished.
func (t *ProgressTimer) Wait(ctx context.Context) error {
	t.mu.Lock()
	run := t.run
	t.mu.Unlock()
	if run == nil {
		return nil
	}
	select {
	case <-run.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop abandons the running session without a completion panel. It is
// only used on process shutdown.
func (t *ProgressTimer) Stop() {
	t.mu.Lock()
	run := t.run
	t.mu.Unlock()
	if run == nil {
		return
	}
	run.cancel()
	<-run.done
}
