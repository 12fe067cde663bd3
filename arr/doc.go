// Package arr provides slice-facing helpers over package collections and the
// operators that work on several sequences at once, inspired by the
// underscore family of JavaScript utilities and Laravel's Arr facade.
//
// # Slice helpers
//
// All helpers are generic and operate on plain []T values. They never modify
// their input and always return a freshly allocated slice:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	total := arr.Reduce([]int{1, 2, 3}, func(acc, n int) int { return acc + n }, 0)
//	names := arr.Pluck(users, "name")
//
// Each of these is a thin wrapper that hands the slice to package collections
// as a sequence, so traversal behaves identically for both packages.
//
// # Structural operators
//
//	arr.Zip([]any{"a", "b"}, []any{1})             // → [[a 1] [b <absent>]]
//	arr.Flatten([]any{1, []any{2, []any{3}}}, false) // → [1 2 3]
//	arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}, []int{3, 4, 5}) // → [3]
//	arr.Difference([]int{1, 2, 3, 4}, []int{2}, []int{4})           // → [1 3]
//
// [Zip] marks missing cells with an absent [Slot] instead of dropping them.
package arr
