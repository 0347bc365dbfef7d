// Package recordsview renders one dashboard page as a list, a grid of
// cards or a map plot, and routes keys to the page's state object.
package recordsview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/page"
	"github.com/altinukshini/fieldops/internal/ui"
	"github.com/altinukshini/fieldops/internal/viewmode"
)

// sink receives every recomputed summary of the page. Copies of Model
// share it.
type sink struct {
	summary page.Summary
	updates int
}

type Model struct {
	ctrl   page.Controller
	sink   *sink
	list   list.Model
	search textinput.Model
	cursor int
	width  int
	height int
}

func New(ctrl page.Controller) Model {
	s := &sink{summary: ctrl.Summary()}
	ctrl.Watch(func(sum page.Summary) {
		s.summary = sum
		s.updates++
	})

	l := list.New(nil, recordDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search " + strings.ToLower(ctrl.Definition().Title) + "..."
	ti.CharLimit = 64
	ti.Width = 30
	ti.SetValue(ctrl.State().Search)

	m := Model{ctrl: ctrl, sink: s, list: l, search: ti}
	m.sync()
	return m
}

func (m Model) Summary() page.Summary { return m.sink.summary }

// IsTyping reports whether the search box has focus.
func (m Model) IsTyping() bool { return m.search.Focused() }

// Current returns the record under the cursor.
func (m Model) Current() model.Record {
	recs := m.sink.summary.Records
	if m.cursor < 0 || m.cursor >= len(recs) {
		return nil
	}
	return recs[m.cursor]
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, m.bodyHeight())
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, ui.Keys.Search):
			m.search.Focus()
			return m, textinput.Blink
		case key.Matches(msg, ui.Keys.ToggleView):
			m.ctrl.ToggleMode()
			m.sync()
			return m, nil
		case key.Matches(msg, ui.Keys.Filter):
			return m, func() tea.Msg { return ui.OpenFilterMsg{} }
		case key.Matches(msg, ui.Keys.Reset):
			m.search.SetValue("")
			m.ctrl.ResetFilter()
			m.sync()
			return m, nil
		case key.Matches(msg, ui.Keys.NextStatus):
			m.cycleStatus(1)
			return m, nil
		case key.Matches(msg, ui.Keys.PrevStatus):
			m.cycleStatus(-1)
			return m, nil
		case key.Matches(msg, ui.Keys.Enter):
			if rec := m.Current(); rec != nil {
				id := rec.RecordID()
				return m, func() tea.Msg { return ui.OpenDetailMsg{ID: id} }
			}
			return m, nil
		}

		if m.ctrl.Mode() != viewmode.List {
			m.moveCursor(m.cursorDelta(msg))
			return m, nil
		}
	}

	before := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if idx := m.list.Index(); idx != before {
		m.moveCursor(idx - m.cursor)
	}
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
	case "enter":
		m.search.Blur()
		return m, nil
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if q := m.search.Value(); q != m.ctrl.State().Search {
			m.ctrl.SetSearch(q)
			m.sync()
		}
		return m, cmd
	}
	if m.ctrl.State().Search != "" {
		m.ctrl.SetSearch("")
		m.sync()
	}
	return m, nil
}

func (m Model) cursorDelta(msg tea.KeyMsg) int {
	step := 1
	if m.ctrl.Mode() == viewmode.Grid {
		step = m.gridColumns()
	}
	switch {
	case key.Matches(msg, ui.Keys.Left):
		return -1
	case key.Matches(msg, ui.Keys.Right):
		return 1
	case key.Matches(msg, ui.Keys.Up):
		return -step
	case key.Matches(msg, ui.Keys.Down):
		return step
	}
	return 0
}

// moveCursor moves by delta and selects the record under the cursor.
func (m *Model) moveCursor(delta int) {
	recs := m.sink.summary.Records
	if delta == 0 || len(recs) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(recs) {
		return
	}
	m.cursor = next
	m.ctrl.Select(recs[next].RecordID())
	m.sync()
}

// cycleStatus steps the first single-select filter through "all" and its
// options.
func (m *Model) cycleStatus(delta int) {
	st := m.ctrl.State()
	if len(st.Choices) == 0 {
		return
	}
	c := st.Choices[0]
	idx := -1
	if c.Active() {
		idx = slices.Index(c.Options, c.Value)
	}
	if delta > 0 {
		idx = cycleForward(idx, len(c.Options))
	} else {
		idx = cycleBackward(idx, len(c.Options))
	}
	value := filter.All
	if idx >= 0 {
		value = c.Options[idx]
	}
	m.ctrl.SetChoice(c.Field, value)
	m.sync()
}

// Refresh reloads from the page after a change made elsewhere.
func (m *Model) Refresh() {
	m.search.SetValue(m.ctrl.State().Search)
	m.sync()
}

// sync rebuilds the list from the latest summary and puts the cursor on
// the selected record when it is visible.
func (m *Model) sync() {
	sum := m.sink.summary
	items := make([]list.Item, len(sum.Records))
	for i, r := range sum.Records {
		items[i] = recordItem{rec: r}
		if sum.Selected != nil && r.RecordID() == sum.Selected.RecordID() {
			m.cursor = i
		}
	}
	m.list.SetItems(items)
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.list.Select(m.cursor)
	if m.width > 0 {
		m.list.SetSize(m.width, m.bodyHeight())
	}
}

func (m Model) chromeHeight() int {
	h := 2 // stats row + toolbar
	sum := m.sink.summary
	st := m.ctrl.State()
	if st.Multi != nil || len(st.Choices) > 0 {
		h++
	}
	if len(sum.Top) > 0 {
		h++
	}
	return h + 1
}

func (m Model) bodyHeight() int {
	h := m.height - m.chromeHeight()
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) View() string {
	sum := m.sink.summary
	def := m.ctrl.Definition()

	lines := []string{m.renderStats()}
	if tabs := m.renderStatusTabs(); tabs != "" {
		lines = append(lines, tabs)
	}
	if len(sum.Top) > 0 {
		lines = append(lines, m.renderTop())
	}
	lines = append(lines, m.renderToolbar(), "")

	var body string
	switch {
	case len(sum.Records) == 0:
		body = "  " + ui.StyleMuted.Render(def.Empty)
	case sum.Mode == viewmode.Grid:
		body = m.renderGrid(m.bodyHeight())
	case sum.Mode == viewmode.Map:
		body = m.renderMap(m.bodyHeight())
	default:
		body = m.list.View()
	}
	return strings.Join(lines, "\n") + "\n" + body
}

func (m Model) renderStats() string {
	sum := m.sink.summary
	var parts []string
	for _, mt := range sum.Totals.Metrics() {
		parts = append(parts, ui.StyleMuted.Render(mt.Label)+" "+ui.StyleBold.Render(mt.String()))
	}
	for _, mt := range sum.Stats.Metrics() {
		parts = append(parts, ui.StyleMuted.Render(mt.Label)+" "+ui.StyleInfo.Render(mt.String()))
	}
	line := "  " + strings.Join(parts, "   ")
	if sum.Err != nil {
		line += "   " + ui.StyleFailure.Render("! "+sum.Err.Error())
	}
	return line
}

func (m Model) renderStatusTabs() string {
	sum := m.sink.summary
	def := m.ctrl.Definition()
	st := m.ctrl.State()
	active := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)

	count := func(field, option string) string {
		if field != def.CountField || sum.Counts == nil {
			return ""
		}
		return fmt.Sprintf(" (%d)", sum.Counts[option])
	}

	var parts []string
	if st.Multi != nil {
		for _, o := range st.Multi.Options {
			box := "[ ]"
			if st.Multi.IsSelected(o) {
				box = "[x]"
			}
			parts = append(parts, ui.StatusStyle(o).Render(box+" "+o)+ui.StyleMuted.Render(count(st.Multi.Field, o)))
		}
		return "  " + strings.Join(parts, "  ")
	}
	if len(st.Choices) == 0 {
		return ""
	}

	first := st.Choices[0]
	options := append([]string{filter.All}, first.Options...)
	for _, o := range options {
		label := o + count(first.Field, o)
		selected := o == first.Value || (o == filter.All && !first.Active())
		if selected {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, ui.StyleMuted.Render(label))
		}
	}
	for _, c := range st.Choices[1:] {
		parts = append(parts, ui.StyleMuted.Render("| "+strings.ToLower(c.Label)+": ")+c.Value)
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderTop() string {
	def := m.ctrl.Definition()
	var names []string
	for i, r := range m.sink.summary.Top {
		v, _ := r.Field(def.TopField)
		names = append(names, fmt.Sprintf("%d. %s (%s)", i+1, ui.Describe(r).Title, v))
	}
	return "  " + ui.StyleWarning.Render("Most popular: ") + strings.Join(names, "  ")
}

func (m Model) renderToolbar() string {
	modes := m.ctrl.Definition().Modes
	var ms []string
	for _, mode := range modes {
		if mode == m.ctrl.Mode() {
			ms = append(ms, ui.StyleBold.Foreground(ui.ColorPrimary).Render("["+mode.String()+"]"))
		} else {
			ms = append(ms, ui.StyleMuted.Render(mode.String()))
		}
	}
	return "  " + m.search.View() + "   " + ui.StyleMuted.Render("view: ") + strings.Join(ms, " ")
}

func cycleForward(idx, count int) int {
	if count == 0 {
		return -1
	}
	idx++
	if idx >= count {
		idx = -1
	}
	return idx
}

func cycleBackward(idx, count int) int {
	if count == 0 {
		return -1
	}
	idx--
	if idx < -1 {
		idx = count - 1
	}
	return idx
}
