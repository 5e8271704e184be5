package pgsdk

import (
	"github.com/supalite/supalite/postgrest/record"
)

// Result is the uniform envelope every execution path returns. Callers
// inspect Err; they never need to recover around a query. Not-found
// conditions are empty successes, not errors.
type Result struct {
	// Data holds the operation's records: matched rows for select, the
	// persisted records for insert/update/upsert, the pre-deletion
	// snapshot for delete. At most one element in single mode.
	Data []record.Record
	// Count is set for selects only: the number of matching rows before
	// pagination.
	Count *int
	// Err is any internal failure, converted at the execution boundary.
	Err error
}

// First returns the first record, or nil when the result is empty.
func (r Result) First() record.Record {
	if len(r.Data) == 0 {
		return nil
	}
	return r.Data[0]
}

// DecodeAll binds the result set to a slice of T.
func DecodeAll[T any](r Result) ([]T, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return record.DecodeAll[T](r.Data)
}

// DecodeFirst binds the first record to T. ok is false when the result is
// empty.
func DecodeFirst[T any](r Result) (out T, ok bool, err error) {
	if r.Err != nil {
		return out, false, r.Err
	}
	first := r.First()
	if first == nil {
		return out, false, nil
	}
	out, err = record.Decode[T](first)
	if err != nil {
		return out, false, err
	}
	return out, true, nil
}
