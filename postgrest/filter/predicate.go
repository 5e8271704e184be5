// Package filter turns individual filter calls into composable boolean
// predicates over a record. Predicates are pure; they never touch the store.
package filter

import (
	"regexp"
	"strings"

	"github.com/supalite/supalite/postgrest/record"
)

// Predicate decides whether a record belongs to a result set.
type Predicate func(record.Record) bool

// None matches nothing. Malformed filter input degrades to this rather than
// erroring, matching the backend client's behavior.
func None() Predicate {
	return func(record.Record) bool { return false }
}

// And folds predicates into their conjunction. No predicates means match all.
func And(preds []Predicate) Predicate {
	return func(rec record.Record) bool {
		for _, p := range preds {
			if !p(rec) {
				return false
			}
		}
		return true
	}
}

func Eq(column string, value any) Predicate {
	return func(rec record.Record) bool {
		return Equal(rec[column], value)
	}
}

func Neq(column string, value any) Predicate {
	return func(rec record.Record) bool {
		return !Equal(rec[column], value)
	}
}

func Gt(column string, value any) Predicate {
	return cmpPredicate(column, value, func(c int) bool { return c > 0 })
}

func Gte(column string, value any) Predicate {
	return cmpPredicate(column, value, func(c int) bool { return c >= 0 })
}

func Lt(column string, value any) Predicate {
	return cmpPredicate(column, value, func(c int) bool { return c < 0 })
}

func Lte(column string, value any) Predicate {
	return cmpPredicate(column, value, func(c int) bool { return c <= 0 })
}

func cmpPredicate(column string, value any, keep func(int) bool) Predicate {
	return func(rec record.Record) bool {
		c, ok := Compare(rec[column], value)
		return ok && keep(c)
	}
}

// Like matches a SQL-style pattern (% and _ wildcards). Case-insensitive:
// the backend client this mock stands in for has no case-sensitive variant,
// so Like and ILike behave identically.
func Like(column, pattern string) Predicate {
	re, err := compilePattern(pattern)
	if err != nil {
		return None()
	}
	return func(rec record.Record) bool {
		s, ok := rec[column].(string)
		return ok && re.MatchString(s)
	}
}

// ILike is Like. Both names exist for interface parity.
func ILike(column, pattern string) Predicate {
	return Like(column, pattern)
}

// compilePattern translates a SQL wildcard pattern into an anchored,
// case-insensitive regexp.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(pattern)
	quoted = strings.ReplaceAll(quoted, "%", ".*")
	quoted = strings.ReplaceAll(quoted, "_", ".")
	return regexp.Compile("(?i)^" + quoted + "$")
}

// Is matches exactly null or a boolean, like the SQL IS operator.
func Is(column string, value any) Predicate {
	return func(rec record.Record) bool {
		got := rec[column]
		if value == nil {
			return got == nil
		}
		want, ok := value.(bool)
		if !ok {
			return false
		}
		b, ok := got.(bool)
		return ok && b == want
	}
}

// In tests membership of the column value in the provided set.
func In(column string, values []any) Predicate {
	return func(rec record.Record) bool {
		got := rec[column]
		for _, v := range values {
			if Equal(got, v) {
				return true
			}
		}
		return false
	}
}

// Contains matches array columns that are a superset of the provided values.
func Contains(column string, values []any) Predicate {
	return func(rec record.Record) bool {
		col, ok := asSlice(rec[column])
		return ok && containsAll(col, values)
	}
}

// ContainedBy matches array columns that are a subset of the provided values.
func ContainedBy(column string, values []any) Predicate {
	return func(rec record.Record) bool {
		col, ok := asSlice(rec[column])
		return ok && containsAll(values, col)
	}
}
