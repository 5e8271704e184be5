package record

import (
	"encoding/json"
	"fmt"
)

// Decode binds an untyped record to a caller-declared struct. The store is
// untyped internally; this is the one place a concrete row type enters the
// picture, parametrized per call site.
func Decode[T any](rec Record) (T, error) {
	var out T
	raw, err := json.Marshal(rec)
	if err != nil {
		return out, fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode record into %T: %w", out, err)
	}
	return out, nil
}

// DecodeAll binds a result set to a slice of T, preserving order.
func DecodeAll[T any](recs []Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for i, rec := range recs {
		v, err := Decode[T](rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// FromValue converts any JSON-encodable value (typically a caller's struct)
// into a Record. The inverse of Decode.
func FromValue(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode value into record: %w", err)
	}
	return rec, nil
}
