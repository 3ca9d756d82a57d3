package extractor

import (
	"encoding/json"
	"strconv"
	"strings"
)

// asMap returns v as a JSON object, if it is one.
func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asSlice returns v as a JSON array, if it is one.
func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// truthy reports whether a decoded JSON value is non-empty in the loose
// sense used by the upstream report producers: null, false, 0, and "" are
// empty; objects and arrays are always non-empty.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// dig walks a chain of object keys and returns the value at the end.
// Any missing key or non-object intermediate yields false.
func dig(v any, keys ...string) (any, bool) {
	cur := v
	for _, key := range keys {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// digMap is dig for callers that need an object at the end of the chain.
func digMap(v any, keys ...string) (map[string]any, bool) {
	got, ok := dig(v, keys...)
	if !ok {
		return nil, false
	}
	return asMap(got)
}

// digSlice is dig for callers that need an array at the end of the chain.
func digSlice(v any, keys ...string) ([]any, bool) {
	got, ok := dig(v, keys...)
	if !ok {
		return nil, false
	}
	return asSlice(got)
}

// toCode coerces a raw remark value to its integer code. Strings are parsed
// numerically; anything non-numeric reports false and is dropped by callers.
func toCode(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// jsonTypeName names a decoded JSON value's type for the metadata block.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	default:
		return "object"
	}
}

// formatScalar renders a scalar the way the report UI displays it. Numbers
// drop their trailing ".0" so completion statuses read "1", not "1.0".
func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// joinPath appends a key to a dotted path, handling the empty prefix.
func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
