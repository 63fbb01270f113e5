package clock_test

import (
	"sync/atomic"
	"testing"
	"time"

	"neurowell/internal/platform/clock"
)

func TestSystemSchedulerWaitCoversNestedCallbacks(t *testing.T) {
	s := clock.NewSystemScheduler()
	var fired atomic.Int32

	s.AfterFunc(time.Millisecond, func() {
		fired.Add(1)
		s.AfterFunc(time.Millisecond, func() {
			fired.Add(1)
		})
	})
	s.Wait()

	if got := fired.Load(); got != 2 {
		t.Fatalf("expected both callbacks to fire before Wait returns, got %d", got)
	}
}

func TestSystemSchedulerCancelReleasesWait(t *testing.T) {
	s := clock.NewSystemScheduler()
	var fired atomic.Bool

	cancel := s.AfterFunc(time.Hour, func() { fired.Store(true) })
	if !cancel() {
		t.Fatalf("expected pending callback to be cancelled")
	}
	if cancel() {
		t.Fatalf("second cancel must report false")
	}
	s.Wait()

	if fired.Load() {
		t.Fatalf("cancelled callback fired")
	}
}
