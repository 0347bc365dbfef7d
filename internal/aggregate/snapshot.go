package aggregate

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

type Metric struct {
	Name  string
	Label string
	Value decimal.Decimal
	Money bool
}

// Snapshot is an ordered set of computed metrics.
type Snapshot struct {
	metrics []Metric
	index   map[string]int
}

func (s *Snapshot) add(m Metric) {
	s.index[m.Name] = len(s.metrics)
	s.metrics = append(s.metrics, m)
}

func (s Snapshot) Len() int { return len(s.metrics) }

// Metrics returns the metrics in the order they were declared.
func (s Snapshot) Metrics() []Metric {
	out := make([]Metric, len(s.metrics))
	copy(out, s.metrics)
	return out
}

func (s Snapshot) Names() []string {
	out := make([]string, len(s.metrics))
	for i, m := range s.metrics {
		out[i] = m.Name
	}
	return out
}

func (s Snapshot) Get(name string) (decimal.Decimal, bool) {
	i, ok := s.index[name]
	if !ok {
		return decimal.Zero, false
	}
	return s.metrics[i].Value, true
}

// Format renders a metric for display, "-" when absent.
func (s Snapshot) Format(name string) string {
	i, ok := s.index[name]
	if !ok {
		return "-"
	}
	return s.metrics[i].String()
}

// String renders the value with thousands separators and a "$" prefix for
// money. Fractions are rounded to two places.
func (m Metric) String() string {
	var out string
	switch {
	case m.Value.IsInteger():
		out = humanize.Comma(m.Value.IntPart())
	case m.Money:
		out = humanize.FormatFloat("#,###.##", m.Value.Round(2).InexactFloat64())
	default:
		out = m.Value.Round(2).String()
	}
	if m.Money {
		return "$" + out
	}
	return out
}
