package collections

import "github.com/pkg/errors"

// Sentinel errors returned by collection operations.
//
// Errors are wrapped with context before being returned; compare with
// errors.Is:
//
//	_, err := collections.ReduceFirst(c, sum)
//	if errors.Is(err, collections.ErrEmptyReduce) {
//	    // c had no elements
//	}
var (
	// ErrEmptyReduce is returned by ReduceFirst when the collection has no
	// element to seed the accumulator with.
	ErrEmptyReduce = errors.New("collections: reduce of empty collection with no initial value")

	// ErrNotCallable is returned by Invoke when an element has no method with
	// the requested name.
	ErrNotCallable = errors.New("collections: value is not callable")

	// ErrNoField is returned by PluckField when an element has no exported
	// struct field with the requested name.
	ErrNoField = errors.New("collections: value has no such field")
)
