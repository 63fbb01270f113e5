package clock

import (
	"sync"
	"time"
)

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Scheduler runs a callback once after a delay. The returned function
// cancels the callback if it has not fired yet and reports whether it did.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func() bool)
}

// SystemScheduler is backed by time.AfterFunc and tracks pending callbacks
// so short-lived callers (the CLI) can wait for follow-up actions.
type SystemScheduler struct {
	pending sync.WaitGroup
}

func NewSystemScheduler() *SystemScheduler {
	return &SystemScheduler{}
}

func (s *SystemScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.pending.Add(1)
	var once sync.Once
	done := func() { once.Do(s.pending.Done) }
	t := time.AfterFunc(d, func() {
		defer done()
		fn()
	})
	return func() bool {
		stopped := t.Stop()
		if stopped {
			done()
		}
		return stopped
	}
}

// Wait blocks until every scheduled callback has fired or been cancelled,
// including callbacks scheduled by other callbacks.
func (s *SystemScheduler) Wait() {
	s.pending.Wait()
}
