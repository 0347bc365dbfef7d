package page

import (
	"github.com/altinukshini/fieldops/internal/aggregate"
	"github.com/altinukshini/fieldops/internal/disclosure"
	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/viewmode"
)

// Summary is a View with its records widened to model.Record, for code
// that treats every page alike.
type Summary struct {
	Records  []model.Record
	Totals   aggregate.Snapshot
	Stats    aggregate.Snapshot
	Counts   map[string]int
	Top      []model.Record
	Mode     viewmode.Mode
	Selected model.Record
	Err      error
}

// Controller is the kind-independent surface of a Page.
type Controller interface {
	Definition() Definition
	State() filter.State
	Summary() Summary
	Watch(fn func(Summary))
	Lookup(id int64) (model.Record, bool)

	SetSearch(q string)
	SetChoice(field, value string)
	ToggleStatus(value string)
	SetFilter(st filter.State)
	ResetFilter()

	Select(id int64)
	ClearSelection()
	SelectedID() (int64, bool)

	Mode() viewmode.Mode
	SetMode(m viewmode.Mode) bool
	ToggleMode()

	Disclosure(name string) *disclosure.Disclosure
	OpenDetail(id int64)
	CloseDetail()
}

var _ Controller = (*Page[model.Client])(nil)

func (p *Page[R]) Summary() Summary {
	v := p.view
	s := Summary{
		Records: widen(v.Filtered),
		Totals:  v.Totals,
		Stats:   v.Stats,
		Counts:  v.Counts,
		Top:     widen(v.Top),
		Mode:    v.Mode,
		Err:     v.Err,
	}
	if v.HasSelected {
		s.Selected = v.Selected
	}
	return s
}

// Watch registers fn to receive the widened view after every recompute.
func (p *Page[R]) Watch(fn func(Summary)) {
	p.Subscribe(func(View[R]) { fn(p.Summary()) })
}

func (p *Page[R]) Lookup(id int64) (model.Record, bool) {
	r, ok := p.store.Lookup(id)
	if !ok {
		return nil, false
	}
	return r, true
}

func widen[R model.Record](rs []R) []model.Record {
	if rs == nil {
		return nil
	}
	out := make([]model.Record, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}
