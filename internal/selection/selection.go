// Package selection tracks the one focused record of a page.
package selection

import (
	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/store"
)

// Selection holds an optional record id and resolves it against a store.
// The id is kept even when no record matches it; lookups then report
// not found.
type Selection[R model.Record] struct {
	store *store.Store[R]
	id    int64
	set   bool
}

func New[R model.Record](s *store.Store[R]) *Selection[R] {
	return &Selection[R]{store: s}
}

func (s *Selection[R]) Select(id int64) {
	s.id = id
	s.set = true
}

func (s *Selection[R]) Clear() {
	s.id = 0
	s.set = false
}

// ID returns the selected id, if any.
func (s *Selection[R]) ID() (int64, bool) {
	return s.id, s.set
}

// Current resolves the selected id against the store.
func (s *Selection[R]) Current() (R, bool) {
	var zero R
	if !s.set {
		return zero, false
	}
	return s.store.Lookup(s.id)
}

// CurrentIn resolves the selection only if the record is part of
// filtered. A selection hidden by the active filter reads as empty.
func (s *Selection[R]) CurrentIn(filtered []R) (R, bool) {
	var zero R
	if !s.set {
		return zero, false
	}
	for _, r := range filtered {
		if r.RecordID() == s.id {
			return r, true
		}
	}
	return zero, false
}
