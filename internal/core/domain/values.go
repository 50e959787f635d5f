package domain

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// scalarString renders a decoded scalar as apt would read it.
// Booleans are not scalars here; callers decide whether they are valid.
func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}

// stringMap normalizes the two map shapes a YAML or JSON decoder produces.
func stringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// joinedString accepts a scalar or a list of scalars and joins lists with sep.
func joinedString(v any, sep string) (string, bool) {
	if s, ok := scalarString(v); ok {
		return s, true
	}
	list, ok := v.([]any)
	if !ok {
		return "", false
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := scalarString(item)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), true
}

// sortedKeys returns the keys of m in lexical order, so validation reports the
// same field on every run.
func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
