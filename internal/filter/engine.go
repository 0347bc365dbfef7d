// Package filter applies a page's predicate set to its records.
package filter

import (
	"github.com/altinukshini/fieldops/internal/model"
)

// Compile turns a State into one predicate. Categorical checks come first
// and the substring search last, so most records are rejected before any
// lower-casing happens.
func Compile[R model.Record](st State) Predicate[R] {
	var preds []Predicate[R]

	for _, c := range st.Choices {
		if !c.Active() {
			continue
		}
		if !c.Known() {
			return Never[R]()
		}
		preds = append(preds, Equals[R](c.Field, c.Value))
	}

	if st.Multi != nil {
		set := st.Multi.effective()
		if len(set) == 0 {
			return Never[R]()
		}
		preds = append(preds, In[R](st.Multi.Field, set))
	}

	if st.Search != "" {
		preds = append(preds, Search[R](st.Search))
	}

	return And(preds...)
}

// Apply returns the records matching st, in their original order.
func Apply[R model.Record](records []R, st State) []R {
	pred := Compile[R](st)
	out := make([]R, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
