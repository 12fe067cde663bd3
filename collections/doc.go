// Package collections provides one traversal primitive, one reduction
// primitive and the combinators derived from them, over two collection
// shapes: ordered sequences and key/value mappings.
//
// # Overview
//
// The central type is [Collection][K, V], a tagged union built once at the
// call boundary:
//
//	seq := collections.Sequence([]int{1, 2, 3, 4})       // Collection[int, int]
//	m   := collections.Mapping(map[string]int{"a": 1})   // Collection[string, int]
//	dyn := collections.Of(someValue)                     // Collection[any, any]
//
// [Each] is the only function that visits elements. [Reduce] folds through
// Each, and every other combinator ([Filter], [Reject], [Uniq], [Map],
// [Pluck], [Invoke], [Contains], [Every], [Some]) is a single call into
// Reduce:
//
//	evens := collections.Filter(seq, func(n int) bool { return n%2 == 0 })
//	total := collections.Reduce(seq, func(acc, n int) int { return acc + n }, 0)
//
// # Immutability
//
// No function writes to the storage a Collection wraps. Combinators that
// produce a sequence allocate a fresh slice.
//
// # Mapping order
//
// Mappings built with [Mapping] are enumerated in Go's randomised map order.
// Results of Filter or Map over such a mapping therefore have no defined
// order. Use [SortedMapping] when the order matters.
//
// # Empty reductions
//
// Reduce always takes an initial value. [ReduceFirst] seeds the accumulator
// with the first element instead and returns [ErrEmptyReduce] when there is
// none.
//
// Slice-oriented wrappers and the multi-sequence operators (Zip, Flatten,
// Intersection, Difference, SortBy, Shuffle) live in package arr.
package collections
