package objects

import (
	"reflect"

	"github.com/hasbyte1/go-underbar/collections"
)

// Extend copies every key/value pair of srcs into dst, left to right, so later
// sources overwrite earlier ones and dst's own values. Nil sources are
// skipped. A nil dst is replaced by a new map. Returns dst.
//
//	Extend(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3})
//	// → {"a": 2, "b": 3}
func Extend[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	return merge(dst, srcs, func(map[K]V, K) bool { return true })
}

// Defaults copies pairs from srcs into dst only where dst has no usable value
// for the key: the key is missing or holds a nil pointer, map, slice, func,
// channel or interface. The first source to supply a key wins. Returns dst.
func Defaults[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	return merge(dst, srcs, func(m map[K]V, k K) bool {
		cur, ok := m[k]
		return !ok || isNil(cur)
	})
}

func merge[K comparable, V any](dst map[K]V, srcs []map[K]V, writable func(map[K]V, K) bool) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		collections.Each(collections.Mapping(src), func(v V, k K, _ collections.Collection[K, V]) {
			if writable(dst, k) {
				dst[k] = v
			}
		})
	}
	return dst
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
