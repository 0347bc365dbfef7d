package filter

import (
	"strings"

	"github.com/altinukshini/fieldops/internal/model"
)

// Predicate is a pure test over a single record.
type Predicate[R model.Record] func(R) bool

// Search matches records where any search field contains query,
// ignoring case. An empty query matches everything.
func Search[R model.Record](query string) Predicate[R] {
	match := buildMatcher(query)
	return func(r R) bool {
		for _, v := range r.SearchFields() {
			if match(v) {
				return true
			}
		}
		return false
	}
}

func buildMatcher(query string) func(string) bool {
	pattern := strings.ToLower(query)
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), pattern)
	}
}

// Equals matches records whose field equals value exactly.
func Equals[R model.Record](field, value string) Predicate[R] {
	return func(r R) bool {
		v, ok := r.Field(field)
		return ok && v == value
	}
}

// In matches records whose field value is in the set.
func In[R model.Record](field string, set map[string]bool) Predicate[R] {
	return func(r R) bool {
		v, ok := r.Field(field)
		return ok && set[v]
	}
}

// Never matches nothing. Filters with values outside their option list
// compile to it.
func Never[R model.Record]() Predicate[R] {
	return func(R) bool { return false }
}

// And combines predicates, evaluating them in order and stopping at the
// first one that fails.
func And[R model.Record](preds ...Predicate[R]) Predicate[R] {
	return func(r R) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}
