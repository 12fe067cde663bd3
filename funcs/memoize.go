package funcs

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// Memoize returns a function that caches f's result per argument. The cache
// key is the argument itself, so distinct arguments never share an entry.
//
// f runs outside the cache lock, which lets a memoized function call itself
// recursively. Concurrent first calls with the same argument may each run f;
// the first result stored is the one every later call sees.
//
// An argument that is not equal to itself, such as a float NaN or a struct
// holding one, can never be found again as a map key. Such arguments call f
// every time and are not stored.
func Memoize[A comparable, R any](f func(A) R) func(A) R {
	var (
		mu    sync.Mutex
		cache = make(map[A]R)
	)
	return func(a A) R {
		if !selfEqual(a) {
			return f(a)
		}
		mu.Lock()
		if r, ok := cache[a]; ok {
			mu.Unlock()
			return r
		}
		mu.Unlock()

		r := f(a)

		mu.Lock()
		defer mu.Unlock()
		if prev, ok := cache[a]; ok {
			return prev
		}
		cache[a] = r
		return r
	}
}

// MemoizeLRU is [Memoize] with a cache bounded to size entries; the least
// recently used entry is evicted first. Arguments not equal to themselves are
// not cached. Returns [ErrInvalidOption] if size < 1.
func MemoizeLRU[A comparable, R any](f func(A) R, size int) (func(A) R, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidOption, "memoize cache size %d", size)
	}
	cache, err := lru.New[A, R](size)
	if err != nil {
		return nil, errors.Wrap(err, "funcs: create memoize cache")
	}
	return func(a A) R {
		if !selfEqual(a) {
			return f(a)
		}
		if r, ok := cache.Get(a); ok {
			return r
		}
		r := f(a)
		cache.Add(a, r)
		return r
	}, nil
}

// MemoizeHashed is [Memoize] for argument types that cannot be map keys, such
// as slices, maps or structs containing them.
//
// The key is a BLAKE2b-256 digest of a type-tagged encoding of the argument
// that covers every nested value, unexported struct fields included. Two
// arguments share an entry only when they have the same types throughout and
// equal contents. Pointers are compared by what they point to, and types with
// a MarshalJSON method by their JSON encoding.
//
// Arguments holding funcs or channels, or nested deeper than 64 levels
// (cyclic values among them), return an error wrapping [ErrUnhashableKey]
// and f is not called.
func MemoizeHashed[A, R any](f func(A) R) func(A) (R, error) {
	var (
		mu    sync.Mutex
		cache = make(map[[blake2b.Size256]byte]R)
	)
	return func(a A) (R, error) {
		key, err := digest(a)
		if err != nil {
			var zero R
			return zero, err
		}

		mu.Lock()
		if r, ok := cache[key]; ok {
			mu.Unlock()
			return r, nil
		}
		mu.Unlock()

		r := f(a)

		mu.Lock()
		defer mu.Unlock()
		if prev, ok := cache[key]; ok {
			return prev, nil
		}
		cache[key] = r
		return r, nil
	}
}

// selfEqual is false only for values containing a NaN.
func selfEqual[A comparable](a A) bool {
	b := a
	return a == b
}
