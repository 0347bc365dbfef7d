// Package aggregate derives summary statistics from a record sequence.
package aggregate

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/model"
)

type Op int

const (
	Count Op = iota
	CountWhere
	Sum
	Average
)

func (o Op) String() string {
	switch o {
	case Count:
		return "count"
	case CountWhere:
		return "count-where"
	case Sum:
		return "sum"
	case Average:
		return "average"
	}
	return "unknown"
}

// ErrMissingCondition is returned for a CountWhere metric without a Where.
var ErrMissingCondition = errors.New("count-where metric has no condition")

// Condition restricts a metric to records whose Field equals Value.
type Condition struct {
	Field string
	Value string
}

// MetricSpec names one derived value.
type MetricSpec struct {
	Name  string
	Label string
	Op    Op
	Field string
	Where *Condition
	Money bool
}

// Compute evaluates every spec over records. It stops at the first value
// that cannot be parsed and returns the metrics computed so far together
// with a *ParseError.
func Compute[R model.Record](records []R, specs []MetricSpec) (Snapshot, error) {
	snap := Snapshot{index: make(map[string]int, len(specs))}
	for _, spec := range specs {
		v, err := compute(records, spec)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Metric = spec.Name
			}
			return snap, err
		}
		snap.add(Metric{Name: spec.Name, Label: spec.Label, Value: v, Money: spec.Money})
	}
	return snap, nil
}

func compute[R model.Record](records []R, spec MetricSpec) (decimal.Decimal, error) {
	if spec.Op == CountWhere && spec.Where == nil {
		return decimal.Zero, ErrMissingCondition
	}
	if w := spec.Where; w != nil {
		records = where(records, filter.Equals[R](w.Field, w.Value))
	}

	switch spec.Op {
	case Count, CountWhere:
		return decimal.NewFromInt(int64(len(records))), nil
	case Sum, Average:
		sum := decimal.Zero
		for _, r := range records {
			raw, ok := r.Field(spec.Field)
			if !ok {
				return decimal.Zero, &ParseError{RecordID: r.RecordID(), Field: spec.Field, Err: ErrUnknownField}
			}
			d, err := ParseAmount(raw)
			if err != nil {
				pe := err.(*ParseError)
				pe.RecordID = r.RecordID()
				pe.Field = spec.Field
				return decimal.Zero, pe
			}
			sum = sum.Add(d)
		}
		if spec.Op == Sum {
			return sum, nil
		}
		if len(records) == 0 {
			return decimal.Zero, nil
		}
		return sum.Div(decimal.NewFromInt(int64(len(records)))), nil
	}
	return decimal.Zero, fmt.Errorf("aggregate: unknown op %s", spec.Op)
}

func where[R model.Record](records []R, pred filter.Predicate[R]) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// CountBy counts records per option of field. The result always has an
// entry for every option plus filter.All for the total.
func CountBy[R model.Record](records []R, field string, options []string) map[string]int {
	counts := make(map[string]int, len(options)+1)
	for _, o := range options {
		counts[o] = 0
	}
	counts[filter.All] = len(records)
	for _, r := range records {
		if v, ok := r.Field(field); ok {
			if _, known := counts[v]; known && v != filter.All {
				counts[v]++
			}
		}
	}
	return counts
}
