package objects

import (
	"strings"

	"github.com/hasbyte1/go-underbar/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation reads for nested map[string]any
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city")  → "London"
//	Has(m, "user.name")          → true
// ─────────────────────────────────────────────────────────────────────────────

// lookup walks m along path and reports the value found, if any.
func lookup(m map[string]any, path string) (any, bool) {
	type cursor struct {
		val any
		ok  bool
	}
	end := collections.Reduce(collections.Sequence(strings.Split(path, ".")), func(c cursor, seg string) cursor {
		if !c.ok {
			return c
		}
		node, isMap := c.val.(map[string]any)
		if !isMap {
			return cursor{}
		}
		v, found := node[seg]
		return cursor{val: v, ok: found}
	}, cursor{val: m, ok: m != nil})
	return end.val, end.ok
}

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	if v, ok := lookup(m, key); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	_, ok := lookup(m, key)
	return ok
}
