package funcs

import (
	"bytes"
	"encoding/binary"
	"math"
	"reflect"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

const maxKeyDepth = 64

type jsonMarshaler interface {
	MarshalJSON() ([]byte, error)
}

var jsonMarshalerType = reflect.TypeOf((*jsonMarshaler)(nil)).Elem()

// digest returns the cache key for v used by [MemoizeHashed].
//
// Every value is written with its full type (package path included), so
// values of different dynamic types never share a key, including values
// held in interfaces such as []any{1} and []any{1.0}. Unexported struct
// fields are part of the key. Map entries are sorted by their encoding.
// Pointers are followed, so two pointers to equal values share a key.
//
// Types implementing MarshalJSON are keyed by their JSON encoding instead of
// their fields. Funcs, channels and unsafe pointers cannot be keyed, nor can
// values nested deeper than maxKeyDepth, which covers cyclic values.
func digest(v any) ([blake2b.Size256]byte, error) {
	var e keyEncoder
	if err := e.encode(reflect.ValueOf(v), 0); err != nil {
		return [blake2b.Size256]byte{}, errors.Wrapf(err, "funcs: memoize key %T", v)
	}
	return blake2b.Sum256(e.buf), nil
}

type keyEncoder struct {
	buf []byte
}

func (e *keyEncoder) writeUint(n uint64) {
	e.buf = binary.AppendUvarint(e.buf, n)
}

func (e *keyEncoder) writeBytes(b []byte) {
	e.writeUint(uint64(len(b)))
	e.buf = append(e.buf, b...)
}

func (e *keyEncoder) writeString(s string) {
	e.writeUint(uint64(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *keyEncoder) writeType(t reflect.Type) {
	e.writeString(t.PkgPath())
	e.writeString(t.String())
}

func (e *keyEncoder) encode(rv reflect.Value, depth int) error {
	if depth > maxKeyDepth {
		return errors.Wrapf(ErrUnhashableKey, "nested deeper than %d levels", maxKeyDepth)
	}
	if !rv.IsValid() {
		e.writeString("nil")
		return nil
	}
	t := rv.Type()
	e.writeType(t)

	if t.Implements(jsonMarshalerType) && rv.CanInterface() {
		b, err := json.Marshal(rv.Interface())
		if err != nil {
			return errors.Wrapf(ErrUnhashableKey, "encode %s: %v", t, err)
		}
		e.writeBytes(b)
		return nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			e.writeUint(1)
		} else {
			e.writeUint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.writeUint(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.writeUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		e.writeUint(math.Float64bits(rv.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		e.writeUint(math.Float64bits(real(c)))
		e.writeUint(math.Float64bits(imag(c)))
	case reflect.String:
		e.writeString(rv.String())
	case reflect.Slice, reflect.Array:
		e.writeUint(uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			if err := e.encode(rv.Index(i), depth+1); err != nil {
				return err
			}
		}
	case reflect.Map:
		entries := make([][]byte, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			var sub keyEncoder
			if err := sub.encode(it.Key(), depth+1); err != nil {
				return err
			}
			if err := sub.encode(it.Value(), depth+1); err != nil {
				return err
			}
			entries = append(entries, sub.buf)
		}
		sort.Slice(entries, func(i, j int) bool { return bytes.Compare(entries[i], entries[j]) < 0 })
		e.writeUint(uint64(len(entries)))
		for _, entry := range entries {
			e.writeBytes(entry)
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			e.writeString(t.Field(i).Name)
			if err := e.encode(rv.Field(i), depth+1); err != nil {
				return err
			}
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			e.writeUint(0)
			return nil
		}
		e.writeUint(1)
		return e.encode(rv.Elem(), depth+1)
	default:
		return errors.Wrapf(ErrUnhashableKey, "%s values cannot be keyed", rv.Kind())
	}
	return nil
}
