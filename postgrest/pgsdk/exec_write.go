package pgsdk

import (
	"errors"
	"fmt"

	"github.com/supalite/supalite/postgrest/pgstore"
	"github.com/supalite/supalite/postgrest/record"
)

// execInsert persists each payload record with synthesized identity and
// timestamps (caller-supplied fields win) and returns them in submission
// order. An explicit id that already exists overwrites silently.
func (b *Builder) execInsert() Result {
	out := make([]record.Record, 0, len(b.payload))
	for _, rec := range b.payload {
		if err := rec.CheckID(); err != nil {
			return Result{Err: fmt.Errorf("insert into %s: %w", b.table, err)}
		}
		persisted := record.Normalize(rec, b.client.opts.clock)
		if err := b.client.store.Insert(b.table, persisted); err != nil {
			return Result{Err: err}
		}
		out = append(out, persisted)
	}
	return Result{Data: out}
}

// execUpdate re-applies the predicate list as a WHERE clause, then shallow-
// merges the changes plus a refreshed updated_at into every match. Zero
// matches is success with empty data, never an error.
func (b *Builder) execUpdate() Result {
	if len(b.payload) == 0 {
		return Result{Err: fmt.Errorf("update on %s: no changes given", b.table)}
	}
	changes := b.payload[0]

	matches, err := b.matchingRecords()
	if err != nil {
		return Result{Err: err}
	}

	out := make([]record.Record, 0, len(matches))
	for _, existing := range matches {
		merged := record.Touch(existing.Merge(changes), b.client.opts.clock)
		// The row keeps its identity even if the changes carry an id. The
		// stored field must agree with the storage key, or the row becomes
		// unreachable by id-keyed mutation.
		merged[record.FieldID] = existing.ID()
		if err := b.client.store.Update(b.table, existing.ID(), merged); err != nil {
			return Result{Err: err}
		}
		out = append(out, merged)
	}
	return Result{Data: out}
}

// execDelete removes every record matching the predicate list and returns
// the pre-deletion snapshot, so callers can inspect what was removed. With
// no filters it empties the table.
func (b *Builder) execDelete() Result {
	matches, err := b.matchingRecords()
	if err != nil {
		return Result{Err: err}
	}
	for _, rec := range matches {
		if err := b.client.store.Delete(b.table, rec.ID()); err != nil {
			return Result{Err: err}
		}
	}
	return Result{Data: matches}
}

// execUpsert resolves each payload record independently by id: an existing
// id is merged in place with a refreshed updated_at, anything else becomes
// an insert with synthesized identity. One batch may mix both.
func (b *Builder) execUpsert() Result {
	out := make([]record.Record, 0, len(b.payload))
	for _, rec := range b.payload {
		persisted, err := b.upsertOne(rec)
		if err != nil {
			return Result{Err: err}
		}
		out = append(out, persisted)
	}
	return Result{Data: out}
}

func (b *Builder) upsertOne(rec record.Record) (record.Record, error) {
	if err := rec.CheckID(); err != nil {
		return nil, fmt.Errorf("upsert into %s: %w", b.table, err)
	}
	if id := rec.ID(); id != "" {
		existing, err := b.client.store.Get(b.table, id)
		if err == nil {
			merged := record.Touch(existing.Merge(rec), b.client.opts.clock)
			return merged, b.client.store.Update(b.table, id, merged)
		}
		if !errors.Is(err, pgstore.ErrNotFound) {
			return nil, err
		}
	}
	persisted := record.Normalize(rec, b.client.opts.clock)
	return persisted, b.client.store.Insert(b.table, persisted)
}
