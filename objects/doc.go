// Package objects holds helpers for plain key/value maps: merging sources into
// a target ([Extend], [Defaults]) and reading nested map[string]any values with
// dot-notation paths ([Get], [Has]).
//
//	opts := objects.Defaults(map[string]any{"color": "red"},
//	    map[string]any{"color": "blue", "size": "L"})
//	// → {"color": "red", "size": "L"}
//
//	objects.Get(cfg, "server.tls.cert") // nested lookup
package objects
