package funcs

import "sync"

// Once returns a function that calls f with the argument of its first
// invocation and caches the result. Every later call returns that result
// whatever argument it is given.
//
// A call in which f panics does not count: the panic reaches that caller and
// the next call runs f again. Concurrent callers wait for the running call.
//
//	connect := funcs.Once(dial)
//	c1 := connect("db-1") // dials
//	c2 := connect("db-2") // returns c1; dial is not called again
func Once[A, R any](f func(A) R) func(A) R {
	var (
		mu     sync.Mutex
		done   bool
		result R
	)
	return func(a A) R {
		mu.Lock()
		defer mu.Unlock()
		if !done {
			result = f(a)
			done = true
		}
		return result
	}
}

// OnceVariadic is [Once] for functions taking a variable number of arguments.
func OnceVariadic[A, R any](f func(...A) R) func(...A) R {
	once := Once(func(args []A) R { return f(args...) })
	return func(args ...A) R { return once(args) }
}
