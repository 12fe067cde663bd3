package funcs

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Delay schedules f(args...) to run once, no earlier than wait from now, on
// the system scheduler. The returned [Timer] can stop it before it runs.
//
//	funcs.Delay(func(names ...string) { fmt.Println(names) }, 500*time.Millisecond, "a", "b")
func Delay[A any](f func(...A), wait time.Duration, args ...A) Timer {
	return DelayWith(DefaultConfig(), f, wait, args...)
}

// DelayWith is [Delay] using the scheduler and logger from cfg.
func DelayWith[A any](cfg Config, f func(...A), wait time.Duration, args ...A) Timer {
	cfg = cfg.withDefaults()
	params := make([]A, len(args))
	copy(params, args)

	cfg.Logger.WithFields(logrus.Fields{
		"wait": wait,
		"args": len(params),
	}).Debug("funcs: delayed call scheduled")

	return cfg.Scheduler.AfterFunc(wait, func() { f(params...) })
}
