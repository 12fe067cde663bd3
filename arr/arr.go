package arr

import (
	"github.com/hasbyte1/go-underbar/collections"
	"github.com/hasbyte1/go-underbar/objects"
)

// ─────────────────────────────────────────────────────────────────────────────
// Traversal & reduction
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element in index order.
func Each[T any](items []T, fn func(T, int)) {
	collections.Each(collections.Sequence(items), func(v T, i int, _ collections.Collection[int, T]) {
		fn(v, i)
	})
}

// Reduce folds items left to right, starting from initial.
func Reduce[T, U any](items []T, fn func(U, T) U, initial U) U {
	return collections.Reduce(collections.Sequence(items), fn, initial)
}

// ReduceFirst folds items using the first element as the starting value.
// Returns [collections.ErrEmptyReduce] when items is empty.
func ReduceFirst[T any](items []T, fn func(T, T) T) (T, error) {
	return collections.ReduceFirst(collections.Sequence(items), fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements. n <= 0 yields an empty slice
// and n >= len(items) a copy of the whole slice.
func FirstN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	return clone(items[:n])
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements. items is never modified.
func LastN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	return clone(items[len(items)-n:])
}

// Contains reports whether items contains value.
func Contains[T comparable](items []T, value T) bool {
	return collections.Contains(collections.Sequence(items), value)
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	i, ok := collections.IndexOf(collections.Sequence(items), value)
	if !ok {
		return -1
	}
	return i
}

// Every reports whether fn holds for every element; a nil fn tests
// truthiness. Empty input returns true.
func Every[T any](items []T, fn func(T) bool) bool {
	return collections.Every(collections.Sequence(items), fn)
}

// Some reports whether fn holds for at least one element; a nil fn tests
// truthiness. Empty input returns false.
func Some[T any](items []T, fn func(T) bool) bool {
	return collections.Some(collections.Sequence(items), fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T) U) []U {
	return collections.Map(collections.Sequence(items), fn)
}

// Filter returns the elements for which fn returns true.
func Filter[T any](items []T, fn func(T) bool) []T {
	return collections.Filter(collections.Sequence(items), fn)
}

// Reject returns the elements for which fn returns false.
func Reject[T any](items []T, fn func(T) bool) []T {
	return collections.Reject(collections.Sequence(items), fn)
}

// Uniq returns items with duplicates removed, keeping first occurrences.
func Uniq[T comparable](items []T) []T {
	return collections.Uniq(collections.Sequence(items))
}

// Pluck reads prop from every record; missing properties yield the zero value.
func Pluck[P comparable, R any](records []map[P]R, prop P) []R {
	return collections.Pluck(collections.Sequence(records), prop)
}

// PluckPath reads a dot-notation path from every record.
//
//	PluckPath(users, "address.city") // → ["London", "Paris", nil]
func PluckPath(records []map[string]any, path string) []any {
	return Map(records, func(record map[string]any) any { return objects.Get(record, path) })
}

// PluckField reads the named exported struct field from every record.
// See [collections.PluckField] for the error cases.
func PluckField[T any](records []T, field string) ([]any, error) {
	return collections.PluckField(collections.Sequence(records), field)
}

// Invoke calls the named method on every element with args.
// See [collections.Invoke] for how results and errors are reported.
func Invoke[T any](items []T, method string, args ...any) ([]any, error) {
	return collections.Invoke(collections.Sequence(items), method, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
