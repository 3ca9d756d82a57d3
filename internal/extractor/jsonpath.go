package extractor

import "sort"

// Match is a located value together with the dotted path it was found at.
type Match struct {
	Value any
	Path  string
}

// FindNested searches a decoded JSON tree for the first field whose name is
// in aliases. The current object's own keys are checked against the alias
// list in order; presence wins, even when the value is null. If no alias is
// present, the search descends pre-order into object-typed children (arrays
// are not descended into). Child keys are visited in sorted order so the
// result is deterministic for any input. Returns nil when the input is not
// an object or no alias exists anywhere in the tree.
func FindNested(v any, aliases []string) *Match {
	return findNested(v, aliases, "")
}

func findNested(v any, aliases []string, prefix string) *Match {
	m, ok := asMap(v)
	if !ok {
		return nil
	}

	for _, alias := range aliases {
		if val, present := m[alias]; present {
			return &Match{Value: val, Path: joinPath(prefix, alias)}
		}
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, isMap := asMap(m[k]); !isMap {
			continue
		}
		if found := findNested(m[k], aliases, joinPath(prefix, k)); found != nil {
			return found
		}
	}
	return nil
}
