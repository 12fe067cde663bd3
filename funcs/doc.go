// Package funcs provides function decorators: wrappers that take a function
// and return a new function controlling how, and how often, the original runs.
//
// # Call-count decorators
//
//	init := funcs.Once(loadConfig)       // runs loadConfig on the first call only
//	fib  := funcs.Memoize(slowFib)       // caches results per argument
//
// The state these decorators keep (the called flag and cached result for
// [Once], the cache for [Memoize]) belongs to the returned function alone.
// Two calls to Memoize never share a cache. All returned functions are safe
// for concurrent use.
//
// # Time-based decorators
//
// [Delay] and [Throttle] hand work to a [Scheduler] and return immediately.
// The default scheduler is backed by [time.AfterFunc], so deferred callbacks
// run on their own goroutine. Tests can substitute a manual scheduler through
// [Config]:
//
//	cfg := funcs.DefaultConfig()
//	cfg.Scheduler = myFakeScheduler
//	save, err := funcs.ThrottleWith(cfg, persist, time.Second)
package funcs
