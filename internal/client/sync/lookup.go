package sync

import "strings"

// Document is the content document tree as decoded JSON.
type Document = map[string]any

// Lookup resolves a dot-separated path against the document, walking the
// tree key by key. The second return value distinguishes a present value
// (even an explicit empty string, zero or false) from a missing path.
func Lookup(doc Document, path string) (any, bool) {
	if doc == nil || path == "" {
		return nil, false
	}

	var cur any = doc
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Truthy reports whether a resolved value counts as "on" for visibility
// bindings: nil, false, empty string and numeric zero count as off.
func Truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case float64:
		return value != 0
	default:
		return true
	}
}
