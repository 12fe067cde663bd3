package funcs

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Timer is a pending callback registered with a [Scheduler].
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, false meaning the callback already ran or was
	// already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay. A callback must not run earlier than
// the requested delay and must run at most once per AfterFunc call.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler is the [Scheduler] backed by [time.AfterFunc].
var SystemScheduler Scheduler = systemScheduler{}

// Config holds the collaborators and switches used by [DelayWith] and
// [ThrottleWith].
//
// The zero value is ready to use and equals [DefaultConfig].
type Config struct {
	// Scheduler runs deferred calls.
	// Defaults to SystemScheduler if nil.
	Scheduler Scheduler

	// Logger receives debug entries about scheduled and coalesced calls.
	// Defaults to a logger that discards everything if nil.
	Logger logrus.FieldLogger

	// NoLeading stops the first call of a throttle window from running
	// immediately; it is deferred to the end of the window instead.
	NoLeading bool

	// NoTrailing drops calls made while a throttle window is open instead of
	// collapsing them into one call, with the latest argument, when the
	// window closes.
	NoTrailing bool
}

// DefaultConfig returns a [Config] populated with sensible defaults:
// the system scheduler, a silent logger, and both throttle edges enabled.
func DefaultConfig() Config {
	return Config{
		Scheduler: SystemScheduler,
		Logger:    discardLogger(),
	}
}

func (c Config) withDefaults() Config {
	if c.Scheduler == nil {
		c.Scheduler = SystemScheduler
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}
	return c
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
