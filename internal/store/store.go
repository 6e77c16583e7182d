// Package store keeps named datasets for the lifetime of the process.
package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

// NotFoundError reports a dataset name with no stored table.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataset %q not found; upload data first", e.Name)
}

// Entry describes one stored dataset for listings.
type Entry struct {
	Name    string
	Rows    int
	Columns []string
}

// Store maps dataset names to immutable tables. Put replaces the table
// reference under the lock, so concurrent readers observe either the old or
// the new table, never a partial one. Last write wins on re-upload.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*table.Table
}

// New returns an empty store.
func New() *Store {
	return &Store{tables: make(map[string]*table.Table)}
}

// Put stores t under name, overwriting any previous table.
func (s *Store) Put(name string, t *table.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[name] = t
}

// Get returns the table stored under name.
func (s *Store) Get(name string) (*table.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return t, nil
}

// List returns all stored datasets sorted by name.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, 0, len(s.tables))
	for name, t := range s.tables {
		out = append(out, Entry{Name: name, Rows: t.RowCount(), Columns: t.ColumnNames()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
