// Package store holds the read-only record sequences each page works on.
package store

import (
	"github.com/altinukshini/fieldops/internal/model"
)

// Store is an immutable, ordered sequence of records of one kind. It is
// loaded once per page and never changes afterwards.
type Store[R model.Record] struct {
	records []R
	index   map[int64]int
}

// New copies records into a store, keeping their order. Later mutations of
// the caller's slice are not visible through the store.
func New[R model.Record](records []R) *Store[R] {
	s := &Store[R]{
		records: make([]R, len(records)),
		index:   make(map[int64]int, len(records)),
	}
	copy(s.records, records)
	for i, r := range s.records {
		s.index[r.RecordID()] = i
	}
	return s
}

func (s *Store[R]) Len() int { return len(s.records) }

// All returns a copy of the records in insertion order.
func (s *Store[R]) All() []R {
	out := make([]R, len(s.records))
	copy(out, s.records)
	return out
}

// Lookup finds a record by id.
func (s *Store[R]) Lookup(id int64) (R, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero R
		return zero, false
	}
	return s.records[i], true
}
