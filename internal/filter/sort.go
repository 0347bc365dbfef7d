package filter

import (
	"slices"
	"strconv"

	"github.com/altinukshini/fieldops/internal/model"
)

// TopN returns the n records with the highest numeric value in field,
// highest first. Records whose field is missing or not numeric sort last.
// Ties keep their original order. The input is not modified.
func TopN[R model.Record](records []R, field string, n int) []R {
	type keyed struct {
		rec R
		val float64
		ok  bool
	}
	ks := make([]keyed, len(records))
	for i, r := range records {
		ks[i].rec = r
		if s, ok := r.Field(field); ok {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				ks[i].val, ks[i].ok = v, true
			}
		}
	}

	slices.SortStableFunc(ks, func(a, b keyed) int {
		switch {
		case a.ok != b.ok:
			if a.ok {
				return -1
			}
			return 1
		case a.val > b.val:
			return -1
		case a.val < b.val:
			return 1
		}
		return 0
	})

	if n < 0 {
		n = 0
	}
	if n > len(ks) {
		n = len(ks)
	}
	out := make([]R, n)
	for i := range out {
		out[i] = ks[i].rec
	}
	return out
}
