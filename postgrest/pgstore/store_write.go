package pgstore

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/supalite/supalite/postgrest/record"
)

// Insert stores a record under its id. Inserting an id that already exists
// overwrites silently (last write wins), matching the client being emulated.
func (s *Store) Insert(table string, rec record.Record) error {
	id := rec.ID()
	if id == "" {
		return fmt.Errorf("insert into %s: record has no id", table)
	}
	s.touchTable(table)

	raw, err := serializeRecord(rec)
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(encodeKey(table, id), raw)
	})
	if err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// Update replaces the record stored under id. A missing id is a no-op, not
// an error.
func (s *Store) Update(table, id string, rec record.Record) error {
	s.touchTable(table)

	raw, err := serializeRecord(rec)
	if err != nil {
		return err
	}
	key := encodeKey(table, id)
	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return nil
		} else if err != nil {
			return err
		}
		return txn.Set(key, raw)
	})
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", table, id, err)
	}
	return nil
}

// Delete removes the record stored under id. A missing id is a no-op.
func (s *Store) Delete(table, id string) error {
	s.touchTable(table)

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(encodeKey(table, id))
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", table, id, err)
	}
	return nil
}

// Clear drops every record in one table.
func (s *Store) Clear(table string) error {
	s.touchTable(table)
	if err := s.db.DropPrefix(tablePrefix(table)); err != nil {
		return fmt.Errorf("clear table %s: %w", table, err)
	}
	return nil
}

// ClearAll drops every record in every table. Table names stay registered;
// use Reset to forget those too.
func (s *Store) ClearAll() error {
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("clear all tables: %w", err)
	}
	return nil
}
