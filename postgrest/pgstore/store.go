// Package pgstore owns the mock backend's mutable state: named, lazily
// created tables of id-keyed records, backed by BadgerDB in in-memory mode.
// It exposes raw CRUD primitives only; query semantics live in pgsdk.
package pgstore

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned by Get when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// StoreOptions configures the BadgerDB backing.
type StoreOptions struct {
	// Path to a database directory. Kept for constructor parity with a
	// durable store; the mock always runs in-memory, so it is ignored.
	Path string
	// Logger receives BadgerDB's internal logging via slog. If nil,
	// Badger's logging is disabled.
	Logger *slog.Logger
}

// Store holds every table of the mock backend. One Store is the unit of
// isolation: tests that need independent data create separate Stores (or
// call Reset).
type Store struct {
	db *badger.DB

	mu     sync.Mutex
	tables map[string]struct{}
}

// New opens an in-memory store.
func New(opts StoreOptions) (*Store, error) {
	badgerOpts := badger.DefaultOptions("").WithInMemory(true)
	if opts.Logger != nil {
		badgerOpts = badgerOpts.WithLogger(badgerLogger{opts.Logger})
	} else {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &Store{
		db:     db,
		tables: make(map[string]struct{}),
	}, nil
}

// Close releases the backing database.
func (s *Store) Close() error {
	return s.db.Close()
}

// touchTable registers a table on first reference. Tables have no schema;
// existing is the same as having been named once.
func (s *Store) touchTable(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[name] = struct{}{}
}

// Tables returns the names of every table referenced so far, sorted.
func (s *Store) Tables() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset drops all tables and forgets their names. For test isolation.
func (s *Store) Reset() error {
	s.mu.Lock()
	s.tables = make(map[string]struct{})
	s.mu.Unlock()
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("drop all tables: %w", err)
	}
	return nil
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	log *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.log.Info(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}
