package filter

import (
	"slices"
	"strings"
)

// All is the sentinel choice value meaning "no restriction".
const All = "all"

// Choice is a single-select filter on one field, either categorical
// (service category, job priority) or a status tab.
type Choice struct {
	Field   string
	Label   string
	Value   string
	Options []string
}

// Active reports whether the choice restricts anything.
func (c Choice) Active() bool {
	return c.Value != "" && !strings.EqualFold(c.Value, All)
}

// Known reports whether the current value is one of the options. A choice
// without options accepts any value.
func (c Choice) Known() bool {
	if len(c.Options) == 0 {
		return true
	}
	return slices.Contains(c.Options, c.Value)
}

// MultiChoice is a multi-select status filter. Nothing selected matches
// nothing.
type MultiChoice struct {
	Field    string
	Label    string
	Options  []string
	Selected map[string]bool
}

// IsSelected reports whether value is checked.
func (m MultiChoice) IsSelected(value string) bool {
	return m.Selected[value]
}

// effective returns the checked values that are also valid options.
func (m MultiChoice) effective() map[string]bool {
	set := make(map[string]bool, len(m.Selected))
	for v, on := range m.Selected {
		if on && slices.Contains(m.Options, v) {
			set[v] = true
		}
	}
	return set
}

// Active reports whether some option is unchecked.
func (m MultiChoice) Active() bool {
	return len(m.effective()) != len(m.Options)
}

func (m MultiChoice) clone() *MultiChoice {
	sel := make(map[string]bool, len(m.Selected))
	for k, v := range m.Selected {
		if v {
			sel[k] = true
		}
	}
	m.Options = slices.Clone(m.Options)
	m.Selected = sel
	return &m
}

// State is the full set of predicate parameters for one page. Methods that
// change it return a modified copy and leave every other part untouched.
type State struct {
	Search  string
	Choices []Choice
	Multi   *MultiChoice
}

// IsEmpty reports whether no predicate is active.
func (s State) IsEmpty() bool {
	if s.Search != "" || (s.Multi != nil && s.Multi.Active()) {
		return false
	}
	for _, c := range s.Choices {
		if c.Active() {
			return false
		}
	}
	return true
}

func (s State) clone() State {
	out := State{Search: s.Search, Choices: slices.Clone(s.Choices)}
	if s.Multi != nil {
		out.Multi = s.Multi.clone()
	}
	return out
}

// WithSearch sets the free-text query.
func (s State) WithSearch(q string) State {
	out := s.clone()
	out.Search = q
	return out
}

// WithChoice sets the value of the choice on field. Unknown fields are
// ignored.
func (s State) WithChoice(field, value string) State {
	out := s.clone()
	for i := range out.Choices {
		if out.Choices[i].Field == field {
			out.Choices[i].Value = value
		}
	}
	return out
}

// Choice returns the choice on field.
func (s State) Choice(field string) (Choice, bool) {
	for _, c := range s.Choices {
		if c.Field == field {
			return c, true
		}
	}
	return Choice{}, false
}

// ToggleMulti flips one value of the multi-select filter.
func (s State) ToggleMulti(value string) State {
	if s.Multi == nil {
		return s
	}
	out := s.clone()
	if out.Multi.Selected[value] {
		delete(out.Multi.Selected, value)
	} else {
		out.Multi.Selected[value] = true
	}
	return out
}

// SetMulti replaces the checked values of the multi-select filter.
func (s State) SetMulti(values ...string) State {
	if s.Multi == nil {
		return s
	}
	out := s.clone()
	out.Multi.Selected = make(map[string]bool, len(values))
	for _, v := range values {
		out.Multi.Selected[v] = true
	}
	return out
}

// Reset clears the search, sets every choice back to All and checks every
// multi-select option.
func (s State) Reset() State {
	out := s.clone()
	out.Search = ""
	for i := range out.Choices {
		out.Choices[i].Value = All
	}
	if out.Multi != nil {
		out = out.SetMulti(out.Multi.Options...)
	}
	return out
}

// Summary returns a short label of the active predicates.
func (s State) Summary() string {
	var parts []string
	for _, c := range s.Choices {
		if c.Active() {
			parts = append(parts, c.Field+":"+c.Value)
		}
	}
	if s.Multi != nil && s.Multi.Active() {
		var on []string
		for _, o := range s.Multi.Options {
			if s.Multi.Selected[o] {
				on = append(on, o)
			}
		}
		parts = append(parts, s.Multi.Field+":"+strings.Join(on, ","))
	}
	if s.Search != "" {
		parts = append(parts, "\""+s.Search+"\"")
	}
	return strings.Join(parts, " ")
}
