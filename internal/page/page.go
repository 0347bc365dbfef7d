// Package page ties a record store to its filter, selection, view mode and
// disclosure state, and re-derives what a page shows whenever one of them
// changes.
package page

import (
	"errors"

	"go.uber.org/zap"

	"github.com/altinukshini/fieldops/internal/aggregate"
	"github.com/altinukshini/fieldops/internal/disclosure"
	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/selection"
	"github.com/altinukshini/fieldops/internal/store"
	"github.com/altinukshini/fieldops/internal/viewmode"
)

// Disclosure names shared by every page.
const (
	Detail = "detail"
	Panel  = "filter"
)

// Definition describes one page: which filters it offers and which
// statistics it derives.
type Definition struct {
	Name  string
	Title string
	Kind  model.Kind
	Modes [2]viewmode.Mode

	Filter filter.State

	// Totals are computed over every record in the store, Stats over the
	// filtered sequence.
	Totals []aggregate.MetricSpec
	Stats  []aggregate.MetricSpec

	// CountField, when set, produces per-option counts over the store for
	// status tabs.
	CountField   string
	CountOptions []string

	// TopField, when set, ranks the store by that numeric field.
	TopField string
	TopN     int

	Empty string
}

// Supports reports whether m is one of the page's two view modes.
func (d Definition) Supports(m viewmode.Mode) bool {
	return m == d.Modes[0] || m == d.Modes[1]
}

// View is everything derived from the current page state.
type View[R model.Record] struct {
	Filtered []R
	Totals   aggregate.Snapshot
	Stats    aggregate.Snapshot
	Counts   map[string]int
	Top      []R
	Mode     viewmode.Mode
	Selected R
	// HasSelected is false when nothing is selected or the selected
	// record is hidden by the filter.
	HasSelected bool
	Err         error
}

// Page is the state object behind one dashboard tab. Every mutation
// recomputes the view synchronously and notifies subscribers once.
type Page[R model.Record] struct {
	def         Definition
	store       *store.Store[R]
	state       filter.State
	sel         *selection.Selection[R]
	mode        *viewmode.Controller
	disclosures map[string]*disclosure.Disclosure
	subs        []func(View[R])
	view        View[R]
	logger      *zap.Logger
}

func New[R model.Record](def Definition, records []R, logger *zap.Logger) *Page[R] {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("page", def.Name))
	st := store.New(records)
	p := &Page[R]{
		def:   def,
		store: st,
		state: def.Filter,
		sel:   selection.New(st),
		mode:  viewmode.New(def.Modes[0], def.Modes[1]),
		disclosures: map[string]*disclosure.Disclosure{
			Detail: disclosure.New(def.Name+"/"+Detail, logger),
			Panel:  disclosure.New(def.Name+"/"+Panel, logger),
		},
		logger: logger,
	}
	p.Recompute()
	return p
}

func (p *Page[R]) Definition() Definition { return p.def }

func (p *Page[R]) Store() *store.Store[R] { return p.store }

func (p *Page[R]) State() filter.State { return p.state }

func (p *Page[R]) View() View[R] { return p.view }

// Subscribe registers fn to be called after every recompute.
func (p *Page[R]) Subscribe(fn func(View[R])) {
	p.subs = append(p.subs, fn)
}

// Recompute re-derives the view from the store and current state.
func (p *Page[R]) Recompute() {
	all := p.store.All()
	v := View[R]{
		Filtered: filter.Apply(all, p.state),
		Mode:     p.mode.Mode(),
	}

	var errs []error
	var err error
	if v.Totals, err = aggregate.Compute(all, p.def.Totals); err != nil {
		errs = append(errs, err)
	}
	if v.Stats, err = aggregate.Compute(v.Filtered, p.def.Stats); err != nil {
		errs = append(errs, err)
	}
	v.Err = errors.Join(errs...)
	if v.Err != nil {
		p.logger.Warn("aggregate failed", zap.Error(v.Err))
	}

	if p.def.CountField != "" {
		v.Counts = aggregate.CountBy(all, p.def.CountField, p.def.CountOptions)
	}
	if p.def.TopField != "" {
		v.Top = filter.TopN(all, p.def.TopField, p.def.TopN)
	}
	v.Selected, v.HasSelected = p.sel.CurrentIn(v.Filtered)

	p.view = v
	p.logger.Debug("recomputed",
		zap.Int("records", len(all)),
		zap.Int("filtered", len(v.Filtered)),
		zap.String("mode", v.Mode.String()))

	for _, fn := range p.subs {
		fn(v)
	}
}

func (p *Page[R]) SetSearch(q string) {
	p.state = p.state.WithSearch(q)
	p.Recompute()
}

func (p *Page[R]) SetChoice(field, value string) {
	p.state = p.state.WithChoice(field, value)
	p.Recompute()
}

// ToggleStatus flips one value of the multi-select filter.
func (p *Page[R]) ToggleStatus(value string) {
	p.state = p.state.ToggleMulti(value)
	p.Recompute()
}

// SetFilter replaces the whole filter state.
func (p *Page[R]) SetFilter(st filter.State) {
	p.state = st
	p.Recompute()
}

func (p *Page[R]) ResetFilter() {
	p.state = p.state.Reset()
	p.Recompute()
}

func (p *Page[R]) Select(id int64) {
	p.sel.Select(id)
	p.Recompute()
}

func (p *Page[R]) ClearSelection() {
	p.sel.Clear()
	p.Recompute()
}

func (p *Page[R]) SelectedID() (int64, bool) { return p.sel.ID() }

// Selected resolves the selection against the store, ignoring the filter.
func (p *Page[R]) Selected() (R, bool) { return p.sel.Current() }

func (p *Page[R]) Mode() viewmode.Mode { return p.mode.Mode() }

// SetMode switches the view mode. Modes the page does not support are
// ignored without recomputing.
func (p *Page[R]) SetMode(m viewmode.Mode) bool {
	if !p.mode.Set(m) {
		return false
	}
	p.Recompute()
	return true
}

func (p *Page[R]) ToggleMode() {
	p.mode.Toggle()
	p.Recompute()
}

// Disclosure returns the named disclosure, or nil.
func (p *Page[R]) Disclosure(name string) *disclosure.Disclosure {
	return p.disclosures[name]
}

// OpenDetail selects id and opens the detail disclosure.
func (p *Page[R]) OpenDetail(id int64) {
	p.disclosures[Detail].Open()
	p.Select(id)
}

// CloseDetail closes the detail disclosure and clears the selection.
func (p *Page[R]) CloseDetail() {
	p.disclosures[Detail].Close()
	p.ClearSelection()
}
