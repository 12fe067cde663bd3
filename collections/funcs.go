package collections

import (
	"reflect"

	"github.com/pkg/errors"
)

// This file contains the combinators derived from Reduce. None of them walks a
// collection on its own: traversal order and the sequence/mapping distinction
// live in Each alone.
//
// Combinators that return a slice always return a newly allocated, non-nil
// slice, even for an empty or KindNone input.

// Filter returns the elements for which pred returns true, in traversal order.
//
//	evens := collections.Filter(collections.Sequence([]int{1, 2, 3, 4}),
//	    func(n int) bool { return n%2 == 0 }) // [2 4]
func Filter[K comparable, V any](c Collection[K, V], pred func(V) bool) []V {
	return Reduce(c, func(acc []V, v V) []V {
		if pred(v) {
			acc = append(acc, v)
		}
		return acc
	}, make([]V, 0, c.Len()))
}

// Reject returns the elements for which pred returns false.
// It is the complement of [Filter].
func Reject[K comparable, V any](c Collection[K, V], pred func(V) bool) []V {
	return Filter(c, func(v V) bool { return !pred(v) })
}

// Uniq returns the elements of c with duplicates removed. The first occurrence
// of each value wins and order is preserved.
//
// Membership is tested by scanning the result built so far, which keeps the
// equality rule identical to [Contains].
func Uniq[K comparable, V comparable](c Collection[K, V]) []V {
	return Reduce(c, func(acc []V, v V) []V {
		if !Contains(Sequence(acc), v) {
			acc = append(acc, v)
		}
		return acc
	}, make([]V, 0, c.Len()))
}

// Map returns fn(v) for every element, in traversal order.
// The result has exactly c.Len() elements.
func Map[K comparable, V, U any](c Collection[K, V], fn func(V) U) []U {
	return Reduce(c, func(acc []U, v V) []U {
		return append(acc, fn(v))
	}, make([]U, 0, c.Len()))
}

// Pluck reads prop from every record. Records without prop contribute the zero
// value of R.
//
//	ages := collections.Pluck(collections.Sequence(people), "age")
func Pluck[K comparable, P comparable, R any](c Collection[K, map[P]R], prop P) []R {
	return Map(c, func(record map[P]R) R { return record[prop] })
}

// PluckField reads the exported struct field named field from every element,
// following pointers. Promoted fields of embedded structs are found too.
//
// An element that is nil, is not a struct, or has no exported field of that
// name produces an error wrapping [ErrNoField].
//
//	names, err := collections.PluckField(collections.Sequence(users), "Name")
func PluckField[K comparable, V any](c Collection[K, V], field string) ([]any, error) {
	type state struct {
		out []any
		err error
	}
	st := Reduce(c, func(acc state, v V) state {
		if acc.err != nil {
			return acc
		}
		fv, err := readField(v, field)
		if err != nil {
			acc.err = err
			return acc
		}
		acc.out = append(acc.out, fv)
		return acc
	}, state{out: make([]any, 0, c.Len())})
	if st.err != nil {
		return nil, st.err
	}
	return st.out, nil
}

func readField(record any, name string) (any, error) {
	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, errors.Wrapf(ErrNoField, "field %q on nil %s", name, rv.Type())
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, errors.Wrapf(ErrNoField, "field %q on nil", name)
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.Wrapf(ErrNoField, "field %q on non-struct %s", name, rv.Type())
	}
	sf, ok := rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return nil, errors.Wrapf(ErrNoField, "%s has no exported field %q", rv.Type(), name)
	}
	fv, err := rv.FieldByIndexErr(sf.Index)
	if err != nil || !fv.CanInterface() {
		return nil, errors.Wrapf(ErrNoField, "%s.%s is not reachable", rv.Type(), name)
	}
	return fv.Interface(), nil
}

// InvokeFunc calls fn with each element as its receiver and args as the
// remaining arguments, collecting the results.
func InvokeFunc[K comparable, V, R any](c Collection[K, V], fn func(v V, args ...any) R, args ...any) []R {
	return Map(c, func(v V) R { return fn(v, args...) })
}

// Invoke calls the method named method on every element, passing args, and
// collects the results.
//
// A method returning nothing contributes nil, a method returning one value
// contributes that value, and a method returning several contributes them as
// an []any. When the method's last result is an error and it is non-nil, Invoke
// stops and returns that error unchanged.
//
// Elements without the method, or whose method cannot accept args, produce an
// error wrapping [ErrNotCallable].
func Invoke[K comparable, V any](c Collection[K, V], method string, args ...any) ([]any, error) {
	type state struct {
		out []any
		err error
	}
	st := Reduce(c, func(acc state, v V) state {
		if acc.err != nil {
			return acc
		}
		res, err := callMethod(v, method, args)
		if err != nil {
			acc.err = err
			return acc
		}
		acc.out = append(acc.out, res)
		return acc
	}, state{out: make([]any, 0, c.Len())})
	if st.err != nil {
		return nil, st.err
	}
	return st.out, nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func callMethod(receiver any, name string, args []any) (any, error) {
	rv := reflect.ValueOf(receiver)
	if !rv.IsValid() {
		return nil, errors.Wrapf(ErrNotCallable, "method %q on nil", name)
	}
	m := rv.MethodByName(name)
	if !m.IsValid() && rv.Kind() != reflect.Pointer {
		// Pointer-receiver methods are reachable through a copy.
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		m = ptr.MethodByName(name)
	}
	if !m.IsValid() {
		return nil, errors.Wrapf(ErrNotCallable, "%s has no method %q", rv.Type(), name)
	}

	in, err := methodArgs(m.Type(), args)
	if err != nil {
		return nil, errors.Wrapf(err, "%s.%s", rv.Type(), name)
	}
	out := m.Call(in)

	if n := len(out); n > 0 && m.Type().Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		vals := make([]any, len(out))
		for i, o := range out {
			vals[i] = o.Interface()
		}
		return vals, nil
	}
}

func methodArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, errors.Wrapf(ErrNotCallable, "want at least %d arguments, got %d", fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, errors.Wrapf(ErrNotCallable, "want %d arguments, got %d", fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(fixed).Elem()
		}
		if a == nil {
			switch pt.Kind() {
			case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
				in[i] = reflect.Zero(pt)
				continue
			}
			return nil, errors.Wrapf(ErrNotCallable, "argument %d: nil is not a %s", i, pt)
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return nil, errors.Wrapf(ErrNotCallable, "argument %d: %s is not assignable to %s", i, av.Type(), pt)
		}
		in[i] = av
	}
	return in, nil
}

// Contains reports whether any element equals target.
func Contains[K comparable, V comparable](c Collection[K, V], target V) bool {
	return Reduce(c, func(found bool, v V) bool {
		return found || v == target
	}, false)
}

// IndexOf returns the key of the first element equal to target in traversal
// order, and whether one was found.
//
// The fold signature carries no key, so IndexOf walks the collection with
// [Each] directly.
func IndexOf[K comparable, V comparable](c Collection[K, V], target V) (K, bool) {
	var key K
	found := false
	Each(c, func(v V, k K, _ Collection[K, V]) {
		if !found && v == target {
			key, found = k, true
		}
	})
	return key, found
}

// Every reports whether pred holds for every element. With a nil pred each
// element is tested with [Truthy]. An empty collection returns true.
func Every[K comparable, V any](c Collection[K, V], pred func(V) bool) bool {
	test := predicateOrTruthy(pred)
	return Reduce(c, func(all bool, v V) bool {
		return all && test(v)
	}, true)
}

// Some reports whether pred holds for at least one element. With a nil pred
// each element is tested with [Truthy]. An empty collection returns false.
func Some[K comparable, V any](c Collection[K, V], pred func(V) bool) bool {
	test := predicateOrTruthy(pred)
	return Reduce(c, func(found bool, v V) bool {
		return found || test(v)
	}, false)
}

func predicateOrTruthy[V any](pred func(V) bool) func(V) bool {
	if pred != nil {
		return pred
	}
	return func(v V) bool { return Truthy(v) }
}
