package arr

import "fmt"

// Slot is one cell of a [Zip] row. A Slot whose Present field is false is the
// absent marker: the input it came from was shorter than the row index.
//
// The zero Slot is absent.
type Slot[T any] struct {
	Value   T
	Present bool
}

// Filled returns a present Slot holding v.
func Filled[T any](v T) Slot[T] {
	return Slot[T]{Value: v, Present: true}
}

// Get returns the held value and whether it is present.
func (s Slot[T]) Get() (T, bool) { return s.Value, s.Present }

// IsAbsent reports whether s is the absent marker.
func (s Slot[T]) IsAbsent() bool { return !s.Present }

// String returns the value formatted with %v, or "<absent>".
func (s Slot[T]) String() string {
	if !s.Present {
		return "<absent>"
	}
	return fmt.Sprintf("%v", s.Value)
}
