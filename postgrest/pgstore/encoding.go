package pgstore

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/supalite/supalite/postgrest/record"
)

// Key layout: [table][0x00][id]. The separator byte cannot appear unescaped
// in either component, so a table's records are exactly the keys under its
// prefix and iterate in id order.

const keySeparator byte = 0x00

func encodeKey(table, id string) []byte {
	var buf bytes.Buffer
	buf.Write(escapeBytes([]byte(table)))
	buf.WriteByte(keySeparator)
	buf.Write(escapeBytes([]byte(id)))
	return buf.Bytes()
}

func tablePrefix(table string) []byte {
	var buf bytes.Buffer
	buf.Write(escapeBytes([]byte(table)))
	buf.WriteByte(keySeparator)
	return buf.Bytes()
}

// escapeBytes escapes separator bytes (0x00) to preserve prefix integrity.
// 0x01 0x01 stands for a literal 0x00, 0x01 0x02 for a literal 0x01.
func escapeBytes(b []byte) []byte {
	var buf bytes.Buffer
	for _, c := range b {
		switch c {
		case 0x00:
			buf.WriteByte(0x01)
			buf.WriteByte(0x01)
		case 0x01:
			buf.WriteByte(0x01)
			buf.WriteByte(0x02)
		default:
			buf.WriteByte(c)
		}
	}
	return buf.Bytes()
}

// serializeRecord encodes a record for storage. JSON keeps values in the
// exact shape readers get back, so a stored record deserializes to a fresh
// copy every read and callers can never alias store internals.
func serializeRecord(rec record.Record) ([]byte, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("serialize record: %w", err)
	}
	return raw, nil
}

func deserializeRecord(raw []byte) (record.Record, error) {
	var rec record.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("deserialize record: %w", err)
	}
	return rec, nil
}
