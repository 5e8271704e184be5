package pgsdk

import (
	"github.com/supalite/supalite/postgrest/filter"
)

// Every filter method appends exactly one predicate. All predicates are
// ANDed at execution, so filter order never changes the result set.

func (b *Builder) Eq(column string, value any) *Builder {
	return b.where(filter.Eq(column, value))
}

func (b *Builder) Neq(column string, value any) *Builder {
	return b.where(filter.Neq(column, value))
}

func (b *Builder) Gt(column string, value any) *Builder {
	return b.where(filter.Gt(column, value))
}

func (b *Builder) Gte(column string, value any) *Builder {
	return b.where(filter.Gte(column, value))
}

func (b *Builder) Lt(column string, value any) *Builder {
	return b.where(filter.Lt(column, value))
}

func (b *Builder) Lte(column string, value any) *Builder {
	return b.where(filter.Lte(column, value))
}

// Like matches a SQL-style % pattern, case-insensitively.
func (b *Builder) Like(column, pattern string) *Builder {
	return b.where(filter.Like(column, pattern))
}

// ILike behaves exactly like Like; there is no case-sensitive form.
func (b *Builder) ILike(column, pattern string) *Builder {
	return b.where(filter.ILike(column, pattern))
}

// Is matches exactly null or a boolean.
func (b *Builder) Is(column string, value any) *Builder {
	return b.where(filter.Is(column, value))
}

// In tests membership against a value set.
func (b *Builder) In(column string, values []any) *Builder {
	return b.where(filter.In(column, values))
}

// Contains matches array columns containing every given value.
func (b *Builder) Contains(column string, values []any) *Builder {
	return b.where(filter.Contains(column, values))
}

// ContainedBy matches array columns whose every element is in values.
func (b *Builder) ContainedBy(column string, values []any) *Builder {
	return b.where(filter.ContainedBy(column, values))
}

// Or parses a comma-separated "column.op.value" list (eq/neq only) into one
// predicate that is the logical OR of its terms. A malformed term evaluates
// to false rather than erroring.
func (b *Builder) Or(dsl string) *Builder {
	return b.where(filter.ParseOr(dsl).Predicate())
}

func (b *Builder) where(p filter.Predicate) *Builder {
	b.preds = append(b.preds, p)
	return b
}
