package pgsdk

import (
	"strings"

	"github.com/supalite/supalite/postgrest/filter"
	"github.com/supalite/supalite/postgrest/record"
)

type opKind string

const (
	opSelect opKind = "select"
	opInsert opKind = "insert"
	opUpdate opKind = "update"
	opDelete opKind = "delete"
	opUpsert opKind = "upsert"
)

// Builder accumulates one declarative query: an operation, its AND-combined
// filters, at most one ordering key, and a pagination window. Chaining does
// no I/O; everything is deferred to Exec. A built query is single-use:
// executing the same builder twice re-runs the operation, including
// mutations.
type Builder struct {
	client *Client
	table  string

	op      opKind
	preds   []filter.Predicate
	orderBy *ordering
	limit   *int
	offset  *int
	payload []record.Record
	single  bool

	// columns is accepted for interface parity with the real client's
	// select(columns); the mock returns whole records regardless.
	columns string
}

type ordering struct {
	column    string
	ascending bool
}

// OrderOpts mirrors the real client's ordering options.
type OrderOpts struct {
	Ascending bool
}

// Select makes this a read. The column list is recorded but not enforced.
func (b *Builder) Select(columns ...string) *Builder {
	b.op = opSelect
	b.columns = strings.Join(columns, ",")
	return b
}

// Insert makes this a write of new records. Missing ids and timestamps are
// synthesized at execution; caller-supplied values win.
func (b *Builder) Insert(recs ...record.Record) *Builder {
	b.op = opInsert
	b.payload = recs
	return b
}

// Update makes this a merge of changes into every record matching the
// accumulated filters. Matching zero records is success with empty data.
func (b *Builder) Update(changes record.Record) *Builder {
	b.op = opUpdate
	b.payload = []record.Record{changes}
	return b
}

// Delete makes this a removal of every record matching the accumulated
// filters. The result carries the pre-deletion snapshot of removed records.
func (b *Builder) Delete() *Builder {
	b.op = opDelete
	return b
}

// Upsert resolves each record independently by id: merge in place when the
// id exists, insert otherwise. A batch may mix both.
func (b *Builder) Upsert(recs ...record.Record) *Builder {
	b.op = opUpsert
	b.payload = recs
	return b
}

// Order sets the single ordering key. Calling it again overwrites the
// previous ordering; there is no multi-column sort.
func (b *Builder) Order(column string, opts OrderOpts) *Builder {
	b.orderBy = &ordering{column: column, ascending: opts.Ascending}
	return b
}

// Limit caps the number of returned rows.
func (b *Builder) Limit(n int) *Builder {
	b.limit = &n
	return b
}

// Range selects rows from sorted position from to position to, inclusive on
// both ends. Pagination always applies after filtering and ordering.
func (b *Builder) Range(from, to int) *Builder {
	n := to - from + 1
	b.offset = &from
	b.limit = &n
	return b
}

// Single reduces a select to its first row. Note the real client would
// error when more than one row matches; the mock does not enforce that, so
// Single and MaybeSingle behave identically here.
func (b *Builder) Single() *Builder {
	b.single = true
	return b
}

// MaybeSingle reduces a select to its first row, or nil when none match.
func (b *Builder) MaybeSingle() *Builder {
	b.single = true
	return b
}
