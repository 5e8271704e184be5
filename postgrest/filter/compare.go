package filter

import (
	"golang.org/x/exp/constraints"
)

// Value comparison for an untyped row store. Records come out of JSON
// deserialization (float64/string/bool/nil/[]any) while filter arguments are
// caller literals (int, float64, string, ...), so numeric kinds coerce to
// float64 before comparing.

func cmpOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// asFloat coerces every numeric Go kind to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Compare orders two values: -1, 0 or 1. The second return is false when the
// values are of incomparable types (or either is nil); filters treat that as
// no match, sorts treat it as a tie.
func Compare(a, b any) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	if af, ok := asFloat(a); ok {
		bf, ok := asFloat(b)
		if !ok {
			return 0, false
		}
		return cmpOrdered(af, bf), true
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return cmpOrdered(av, bv), true
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case av == bv:
			return 0, true
		case !av: // false sorts before true
			return -1, true
		default:
			return 1, true
		}
	}
	return 0, false
}

// Equal reports loose equality: comparable values that compare as 0, or two
// nils.
func Equal(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	c, ok := Compare(a, b)
	return ok && c == 0
}

// asSlice normalizes array-valued columns and caller-provided sets.
func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []int:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []float64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	}
	return nil, false
}

// containsAll reports whether haystack contains every element of needles.
func containsAll(haystack, needles []any) bool {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if Equal(h, n) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
