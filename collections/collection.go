package collections

import (
	"iter"
	"reflect"
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

// Kind tags the shape held by a [Collection].
type Kind uint8

const (
	// KindNone is the zero Kind. Traversing it visits nothing.
	KindNone Kind = iota
	// KindSequence is an ordered, integer-indexed sequence.
	KindSequence
	// KindMapping is an unordered key/value mapping.
	KindMapping
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "none"
	}
}

// Collection is either an ordered sequence or a key/value mapping.
//
// The shape is decided once, when the Collection is built with [Sequence],
// [Mapping], [SortedMapping] or [Of]; every traversal afterwards goes through
// the same enumerator regardless of shape. The zero value is a collection of
// kind [KindNone] and behaves as if it were empty.
//
// A Collection never copies the storage it wraps and no function in this
// package writes to it.
//
// # Laravel equivalents
//
// Laravel's Collection treats lists and associative arrays uniformly; so does
// this type. Callbacks receive (value, key) where key is the index for a
// sequence and the map key for a mapping.
type Collection[K comparable, V any] struct {
	kind Kind
	size int
	all  iter.Seq2[K, V]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Sequence wraps items as an ordered sequence keyed by index.
//
//	c := collections.Sequence([]string{"a", "b", "c"})
func Sequence[V any](items []V) Collection[int, V] {
	return Collection[int, V]{
		kind: KindSequence,
		size: len(items),
		all:  slices.All(items),
	}
}

// Mapping wraps m as a mapping. Enumeration order is whatever Go's map
// iteration yields and must not be relied upon; use [SortedMapping] when a
// deterministic order is required.
func Mapping[K comparable, V any](m map[K]V) Collection[K, V] {
	return Collection[K, V]{
		kind: KindMapping,
		size: len(m),
		all: func(yield func(K, V) bool) {
			for k, v := range m {
				if !yield(k, v) {
					return
				}
			}
		},
	}
}

// SortedMapping wraps m as a mapping enumerated in ascending key order.
// The keys are collected and sorted on every traversal.
func SortedMapping[K constraints.Ordered, V any](m map[K]V) Collection[K, V] {
	return Collection[K, V]{
		kind: KindMapping,
		size: len(m),
		all: func(yield func(K, V) bool) {
			keys := make([]K, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
			for _, k := range keys {
				if !yield(k, m[k]) {
					return
				}
			}
		},
	}
}

// Of inspects v at runtime and wraps it as a Collection[any, any].
//
// Slices and arrays become sequences, maps become mappings. Any other value,
// including nil, yields a [KindNone] collection so that traversing "nothing"
// produces an empty result instead of an error.
//
// Of is the single place where this package probes dynamic types; code that
// knows its element types should prefer [Sequence] and [Mapping].
func Of(v any) Collection[any, any] {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Collection[any, any]{kind: KindSequence}
		}
		return Collection[any, any]{
			kind: KindSequence,
			size: rv.Len(),
			all: func(yield func(any, any) bool) {
				for i := 0; i < rv.Len(); i++ {
					if !yield(i, rv.Index(i).Interface()) {
						return
					}
				}
			},
		}
	case reflect.Map:
		return Collection[any, any]{
			kind: KindMapping,
			size: rv.Len(),
			all: func(yield func(any, any) bool) {
				it := rv.MapRange()
				for it.Next() {
					if !yield(it.Key().Interface(), it.Value().Interface()) {
						return
					}
				}
			},
		}
	default:
		return Collection[any, any]{}
	}
}

// IsSequence reports whether v is a slice or an array.
func IsSequence(v any) bool {
	return Of(v).kind == KindSequence
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Kind returns the shape of the collection.
func (c Collection[K, V]) Kind() Kind { return c.kind }

// Len returns the number of elements.
func (c Collection[K, V]) Len() int { return c.size }

// IsEmpty reports whether the collection has no elements.
func (c Collection[K, V]) IsEmpty() bool { return c.size == 0 }

// All returns the underlying enumerator. It never returns nil.
func (c Collection[K, V]) All() iter.Seq2[K, V] {
	if c.all == nil {
		return func(func(K, V) bool) {}
	}
	return c.all
}
