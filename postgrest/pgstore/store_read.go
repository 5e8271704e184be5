package pgstore

import (
	"bytes"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/supalite/supalite/postgrest/record"
)

// Get retrieves a single record by id, or ErrNotFound.
func (s *Store) Get(table, id string) (record.Record, error) {
	s.touchTable(table)

	var rec record.Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(encodeKey(table, id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			rec, err = deserializeRecord(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetAll returns a snapshot of every record in the table, in storage (id
// key) order. The snapshot is decoupled from the store: concurrent writes
// after the call cannot alter the returned records.
func (s *Store) GetAll(table string) ([]record.Record, error) {
	s.touchTable(table)

	var recs []record.Record
	prefix := tablePrefix(table)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.Valid(); it.Next() {
			if !bytes.HasPrefix(it.Item().Key(), prefix) {
				break
			}
			if err := it.Item().Value(func(val []byte) error {
				rec, err := deserializeRecord(val)
				if err != nil {
					return err
				}
				recs = append(recs, rec)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan table %s: %w", table, err)
	}
	return recs, nil
}
