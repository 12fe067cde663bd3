package funcs

import "github.com/pkg/errors"

// Sentinel errors returned by decorator constructors.
var (
	// ErrInvalidOption is returned when a constructor receives a parameter
	// outside its allowed range, such as a cache size below 1.
	ErrInvalidOption = errors.New("funcs: invalid option value")

	// ErrUnhashableKey is returned by a MemoizeHashed function when its
	// argument cannot be turned into a cache key.
	ErrUnhashableKey = errors.New("funcs: argument cannot be used as a cache key")
)
