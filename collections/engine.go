package collections

import "github.com/pkg/errors"

// Visitor is called by [Each] with the element, its key (the index for a
// sequence) and the collection being traversed.
type Visitor[K comparable, V any] func(value V, key K, c Collection[K, V])

// Each calls visit once for every element of c.
//
// Sequences are visited in index order 0..Len()-1. Mappings are visited in the
// order the mapping's enumerator yields. A [KindNone] collection is visited
// zero times.
//
// Each is the only function in this module that walks a collection; every
// other combinator reaches the elements through it, usually via [Reduce].
func Each[K comparable, V any](c Collection[K, V], visit Visitor[K, V]) {
	for k, v := range c.All() {
		visit(v, k, c)
	}
}

// Reduce folds c into a single value by calling acc = fn(acc, v) for every
// element in traversal order, starting from initial.
//
//	sum := collections.Reduce(collections.Sequence([]int{1, 2, 3}),
//	    func(acc, n int) int { return acc + n }, 0) // 6
func Reduce[K comparable, V, A any](c Collection[K, V], fn func(acc A, v V) A, initial A) A {
	acc := initial
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		acc = fn(acc, v)
	})
	return acc
}

// ReduceFirst folds c using its first visited element as the starting value.
// Returns [ErrEmptyReduce] when c has no elements, so that "no data" cannot be
// mistaken for a genuine result.
func ReduceFirst[K comparable, V any](c Collection[K, V], fn func(acc, v V) V) (V, error) {
	var acc V
	started := false
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		if !started {
			acc, started = v, true
			return
		}
		acc = fn(acc, v)
	})
	if !started {
		return acc, errors.Wrapf(ErrEmptyReduce, "reduce over %s", c.Kind())
	}
	return acc, nil
}
