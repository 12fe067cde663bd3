package arr

import (
	"math/rand"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-underbar/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Multi-sequence operators
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the elements of seqs by index. The result has as many rows as
// the longest input; row i holds seqs[j][i] in column j, or an absent [Slot]
// where seqs[j] is shorter than i+1.
//
//	Zip([]any{"a", "b", "c", "d"}, []any{1, 2, 3})
//	// → [[a 1] [b 2] [c 3] [d <absent>]]
func Zip[T any](seqs ...[]T) [][]Slot[T] {
	longest := Reduce(seqs, func(n int, s []T) int { return max(n, len(s)) }, 0)

	rows := make([][]Slot[T], longest)
	for i := range rows {
		rows[i] = make([]Slot[T], len(seqs))
	}
	Each(seqs, func(s []T, col int) {
		Each(s, func(v T, row int) {
			rows[row][col] = Filled(v)
		})
	})
	return rows
}

// Flatten removes nesting from nested. Any slice or array element counts as a
// nested sequence; maps, strings and other values are leaves.
//
// With shallow set, only one level is removed. Otherwise nested sequences are
// expanded recursively until only leaves remain, in left-to-right order.
//
//	Flatten([]any{1, []any{2}, []any{3, []any{[]any{4}}}}, false) // → [1 2 3 4]
//	Flatten([]any{1, []any{2}, []any{3, []any{[]any{4}}}}, true)  // → [1 2 3 [[4]]]
func Flatten(nested []any, shallow bool) []any {
	out := make([]any, 0, len(nested))
	var walk func(c collections.Collection[any, any], top bool)
	walk = func(c collections.Collection[any, any], top bool) {
		collections.Each(c, func(v any, _ any, _ collections.Collection[any, any]) {
			if inner := collections.Of(v); inner.Kind() == collections.KindSequence && (top || !shallow) {
				walk(inner, false)
				return
			}
			out = append(out, v)
		})
	}
	walk(collections.Of(nested), true)
	return out
}

// Collapse flattens a slice of slices into a single flat slice.
func Collapse[T any](items [][]T) []T {
	return Reduce(items, func(acc []T, chunk []T) []T {
		return append(acc, chunk...)
	}, make([]T, 0, len(items)))
}

// Intersection returns the values present in every one of seqs. Each value
// appears once, in the order of its first occurrence in seqs[0]. With no
// inputs the result is empty.
func Intersection[T comparable](seqs ...[]T) []T {
	first, ok := First(seqs)
	if !ok {
		return []T{}
	}
	sets := Map(seqs[1:], toSet[T])
	return Filter(Uniq(first), func(v T) bool {
		return Every(sets, func(set map[T]struct{}) bool {
			_, found := set[v]
			return found
		})
	})
}

// Difference returns the elements of first that appear in none of others.
// Order and duplicates of first are preserved.
func Difference[T comparable](first []T, others ...[]T) []T {
	exclude := toSet(Collapse(others))
	return Reject(first, func(v T) bool {
		_, found := exclude[v]
		return found
	})
}

func toSet[T comparable](items []T) map[T]struct{} {
	return Reduce(items, func(set map[T]struct{}, v T) map[T]struct{} {
		set[v] = struct{}{}
		return set
	}, make(map[T]struct{}, len(items)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a copy of items ordered by less. Elements that compare equal
// keep their input order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	return pick(items, stableOrder(len(items), func(i, j int) bool { return less(items[i], items[j]) }))
}

// SortBy returns a copy of items in ascending order of key. key is called
// once per element and elements with equal keys keep their input order.
//
//	SortBy(people, func(p Person) int { return p.Age })
func SortBy[T any, K constraints.Ordered](items []T, key func(T) K) []T {
	keys := Map(items, key)
	return pick(items, stableOrder(len(items), func(i, j int) bool { return keys[i] < keys[j] }))
}

// SortByKey sorts records by the value stored under prop. Records without
// prop sort as if they held the zero value.
func SortByKey[P comparable, V constraints.Ordered](records []map[P]V, prop P) []map[P]V {
	return SortBy(records, func(r map[P]V) V { return r[prop] })
}

// stableOrder returns the indexes 0..n-1 stably sorted by less, which
// compares two original indexes.
func stableOrder(n int, less func(i, j int) bool) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return less(order[a], order[b]) })
	return order
}

func pick[T any](items []T, order []int) []T {
	return Map(order, func(i int) T { return items[i] })
}

// Shuffle returns a randomly permuted copy of items.
func Shuffle[T any](items []T) []T {
	return permute(items, len(items), rand.Intn)
}

// ShuffleWith is [Shuffle] drawing from r, for reproducible permutations.
func ShuffleWith[T any](items []T, r *rand.Rand) []T {
	return permute(items, len(items), r.Intn)
}

// Sample returns n items chosen uniformly without replacement, in random
// order. n is clamped to [0, len(items)].
func Sample[T any](items []T, n int) []T {
	return permute(items, clamp(n, len(items)), rand.Intn)
}

// SampleWith is [Sample] drawing from r.
func SampleWith[T any](items []T, n int, r *rand.Rand) []T {
	return permute(items, clamp(n, len(items)), r.Intn)
}

// permute runs the first n steps of a Fisher-Yates shuffle on a copy of items
// and returns the n drawn elements. intn(k) must return a value in [0, k).
func permute[T any](items []T, n int, intn func(int) int) []T {
	out := clone(items)
	for i := 0; i < n; i++ {
		j := i + intn(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:n:n]
}
