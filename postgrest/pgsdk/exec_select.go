package pgsdk

import (
	"sort"

	"github.com/supalite/supalite/postgrest/filter"
	"github.com/supalite/supalite/postgrest/record"
)

// execSelect reads a snapshot, filters, orders, then paginates, strictly in
// that sequence. Count is the filtered length, recorded before pagination.
func (b *Builder) execSelect() Result {
	filtered, err := b.matchingRecords()
	if err != nil {
		return Result{Err: err}
	}

	b.applyOrder(filtered)

	count := len(filtered)
	data := paginate(filtered, b.offset, b.limit)
	if b.single {
		// First row or nothing. Multiple matches are not an error, even
		// for Single; the exactly-one expectation is not enforced.
		if len(data) > 1 {
			data = data[:1]
		}
	}
	return Result{Data: data, Count: &count}
}

// matchingRecords snapshots the table and keeps rows matching the AND of
// all accumulated predicates.
func (b *Builder) matchingRecords() ([]record.Record, error) {
	recs, err := b.client.store.GetAll(b.table)
	if err != nil {
		return nil, err
	}
	pred := filter.And(b.preds)
	filtered := make([]record.Record, 0, len(recs))
	for _, rec := range recs {
		if pred(rec) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// applyOrder sorts in place on the single ordering key. The sort is stable
// so ties keep their relative order, and null values sort last regardless
// of direction.
func (b *Builder) applyOrder(recs []record.Record) {
	if b.orderBy == nil {
		return
	}
	column, ascending := b.orderBy.column, b.orderBy.ascending
	sort.SliceStable(recs, func(i, j int) bool {
		av, bv := recs[i][column], recs[j][column]
		if av == nil {
			return false
		}
		if bv == nil {
			return true
		}
		c, ok := filter.Compare(av, bv)
		if !ok {
			return false
		}
		if ascending {
			return c < 0
		}
		return c > 0
	})
}

// paginate applies offset then limit to an already-ordered set.
func paginate(recs []record.Record, offset, limit *int) []record.Record {
	out := recs
	if offset != nil {
		skip := *offset
		if skip < 0 {
			skip = 0
		}
		if skip > len(out) {
			skip = len(out)
		}
		out = out[skip:]
	}
	if limit != nil {
		n := *limit
		if n < 0 {
			n = 0
		}
		if n < len(out) {
			out = out[:n]
		}
	}
	return out
}
