package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Well-known fields synthesized by the data layer.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Record is an open-ended row: string keys, arbitrary values. There is no
// declared schema; typing happens at the client boundary via Decode.
type Record map[string]any

// Clock supplies the current time. Injectable so tests get deterministic
// timestamps.
type Clock func() time.Time

// UTCNow is the default clock.
func UTCNow() time.Time {
	return time.Now().UTC()
}

// ID returns the record's id, or "" if it has none (not yet persisted).
func (r Record) ID() string {
	id, _ := r[FieldID].(string)
	return id
}

// CheckID verifies that a caller-supplied id, when present, is a string.
// Normalize treats any other type as absent and would silently mint a fresh
// UUID in its place; entry points reject the record instead.
func (r Record) CheckID() error {
	v, ok := r[FieldID]
	if !ok || v == nil {
		return nil
	}
	if _, isString := v.(string); !isString {
		return fmt.Errorf("record id must be a string, got %T (%v)", v, v)
	}
	return nil
}

// Clone returns a shallow copy of the record. Values are shared; top-level
// keys are not.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a new record with all fields of r, overwritten by all fields
// of changes. A shallow merge: nested maps in changes replace, not combine.
func (r Record) Merge(changes Record) Record {
	out := r.Clone()
	if out == nil {
		out = make(Record, len(changes))
	}
	for k, v := range changes {
		out[k] = v
	}
	return out
}

// Normalize returns a copy of rec with identity and timestamps synthesized:
// a fresh UUID id and created_at/updated_at set to now, each only when the
// caller did not supply one. Caller-supplied fields always win.
func Normalize(rec Record, now Clock) Record {
	if now == nil {
		now = UTCNow
	}
	out := rec.Clone()
	if out == nil {
		out = make(Record, 3)
	}
	if out.ID() == "" {
		out[FieldID] = uuid.NewString()
	}
	ts := now().Format(time.RFC3339)
	if _, ok := out[FieldCreatedAt]; !ok {
		out[FieldCreatedAt] = ts
	}
	if _, ok := out[FieldUpdatedAt]; !ok {
		out[FieldUpdatedAt] = ts
	}
	return out
}

// Touch returns a copy of rec with updated_at refreshed to now.
func Touch(rec Record, now Clock) Record {
	if now == nil {
		now = UTCNow
	}
	out := rec.Clone()
	out[FieldUpdatedAt] = now().Format(time.RFC3339)
	return out
}
