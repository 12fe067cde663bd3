package funcs

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Throttle returns a function that calls f at most once per wait window.
//
// The first call of a window runs f immediately. Calls made while the window
// is open do not run f; they record their argument, and when the window
// closes f runs once more with the latest recorded argument, opening a new
// window. Every call returns the result of the most recently started run of
// f that has completed, or the zero value of R if none has.
func Throttle[A, R any](f func(A) R, wait time.Duration) func(A) R {
	return newThrottler(DefaultConfig(), f, wait).call
}

// ThrottleWith is [Throttle] configured by cfg. cfg.NoLeading defers the
// immediate run at the start of a window and cfg.NoTrailing drops the
// deferred run at its end. Setting both would never run f and returns
// [ErrInvalidOption].
func ThrottleWith[A, R any](cfg Config, f func(A) R, wait time.Duration) (func(A) R, error) {
	if cfg.NoLeading && cfg.NoTrailing {
		return nil, errors.Wrap(ErrInvalidOption, "throttle with neither leading nor trailing runs")
	}
	return newThrottler(cfg, f, wait).call, nil
}

func newThrottler[A, R any](cfg Config, f func(A) R, wait time.Duration) *throttler[A, R] {
	t := &throttler[A, R]{
		f:    f,
		wait: wait,
		cfg:  cfg.withDefaults(),
	}
	t.log = t.cfg.Logger.WithField("wait", wait)
	return t
}

type throttler[A, R any] struct {
	f    func(A) R
	wait time.Duration
	cfg  Config
	log  logrus.FieldLogger

	mu      sync.Mutex
	open    bool // a window is in progress
	pending bool // a trailing run is owed when the window closes
	args    A
	started uint64 // runs started so far
	stored  uint64 // sequence number of the run that produced result
	result  R
}

func (t *throttler[A, R]) call(a A) R {
	t.mu.Lock()
	if t.open {
		if !t.cfg.NoTrailing {
			t.pending, t.args = true, a
			t.log.Debug("funcs: throttled call coalesced into trailing run")
		} else {
			t.log.Debug("funcs: throttled call dropped")
		}
		r := t.result
		t.mu.Unlock()
		return r
	}

	t.open = true
	t.cfg.Scheduler.AfterFunc(t.wait, t.closeWindow)
	if t.cfg.NoLeading {
		t.pending, t.args = true, a
		r := t.result
		t.mu.Unlock()
		return r
	}
	seq := t.next()
	t.mu.Unlock()

	return t.run(a, seq)
}

func (t *throttler[A, R]) closeWindow() {
	t.mu.Lock()
	if !t.pending {
		t.open = false
		t.mu.Unlock()
		return
	}
	a := t.args
	var zero A
	t.pending, t.args = false, zero
	// The trailing run starts a fresh window.
	t.cfg.Scheduler.AfterFunc(t.wait, t.closeWindow)
	seq := t.next()
	t.mu.Unlock()

	t.run(a, seq)
}

// next numbers a run. Callers hold t.mu.
func (t *throttler[A, R]) next() uint64 {
	t.started++
	return t.started
}

// run calls f and keeps its result unless a later-started run already
// stored one.
func (t *throttler[A, R]) run(a A, seq uint64) R {
	r := t.f(a)
	t.mu.Lock()
	if seq > t.stored {
		t.result, t.stored = r, seq
	}
	t.mu.Unlock()
	return r
}
