package filteroverlay

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/ui"
)

// ---------------------------------------------------------------------------
// Result message
// ---------------------------------------------------------------------------

// ResultMsg is emitted when the user applies or cancels the filter.
type ResultMsg struct {
	Applied bool
	State   filter.State
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type rowKind int

const (
	rowChoice rowKind = iota
	rowMulti
	rowSearch
)

type row struct {
	kind   rowKind
	choice int    // index into State.Choices
	option string // multi-select value
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the filter panel for one page. It edits a copy of the page's
// filter state and hands it back on apply.
type Model struct {
	active  bool
	title   string
	focused int
	rows    []row
	state   filter.State
	search  textinput.Model
	width   int
	height  int
}

// New creates a filter panel pre-populated with current. The panel starts
// in the active state.
func New(title string, current filter.State) Model {
	search := textinput.New()
	search.Placeholder = "name, email, address..."
	search.CharLimit = 64
	search.Width = 30
	search.SetValue(current.Search)

	m := Model{
		active: true,
		title:  title,
		state:  current,
		search: search,
	}
	for i := range current.Choices {
		m.rows = append(m.rows, row{kind: rowChoice, choice: i})
	}
	if current.Multi != nil {
		for _, o := range current.Multi.Options {
			m.rows = append(m.rows, row{kind: rowMulti, option: o})
		}
	}
	m.rows = append(m.rows, row{kind: rowSearch})
	return m
}

// IsActive reports whether the overlay is currently visible.
func (m Model) IsActive() bool { return m.active }

// State returns the edited filter state.
func (m Model) State() filter.State {
	return m.state.WithSearch(strings.TrimSpace(m.search.Value()))
}

// SetSize stores terminal dimensions so the overlay can centre itself.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Init() tea.Cmd { return nil }

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

// Update handles key events while the overlay is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// The search field takes most keys while it has focus.
	if m.search.Focused() {
		switch keyMsg.String() {
		case "esc":
			m.active = false
			return m, emitResult(false, filter.State{})
		case "up", "down", "tab", "shift+tab", "enter":
			m.search.Blur()
			if keyMsg.String() == "up" || keyMsg.String() == "shift+tab" {
				m.moveFocus(-1)
			} else if keyMsg.String() != "enter" {
				m.moveFocus(1)
			}
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}

	switch keyMsg.String() {
	case "j", "down", "tab":
		m.moveFocus(1)
		return m, nil
	case "k", "up", "shift+tab":
		m.moveFocus(-1)
		return m, nil

	// Cycle forward, toggle, or enter text input.
	case "enter", "right", "l", " ":
		r := m.rows[m.focused]
		switch r.kind {
		case rowChoice:
			m.cycle(r.choice, 1)
		case rowMulti:
			m.state = m.state.ToggleMulti(r.option)
		case rowSearch:
			m.search.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case "left", "h":
		r := m.rows[m.focused]
		switch r.kind {
		case rowChoice:
			m.cycle(r.choice, -1)
		case rowMulti:
			m.state = m.state.ToggleMulti(r.option)
		}
		return m, nil

	// Apply.
	case "a":
		m.active = false
		return m, emitResult(true, m.State())

	// Clear.
	case "c":
		m.state = m.state.Reset()
		m.search.SetValue("")
		return m, nil

	// Cancel.
	case "esc", "f":
		m.active = false
		return m, emitResult(false, filter.State{})
	}

	return m, nil
}

func (m *Model) cycle(choice, delta int) {
	c := m.state.Choices[choice]
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
	m.state = m.state.WithChoice(c.Field, value)
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View renders the overlay.
func (m Model) View() string {
	if !m.active {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Width(12).Foreground(ui.ColorMuted)
	focusedLabelStyle := lipgloss.NewStyle().Width(12).Bold(true).Foreground(ui.ColorPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(ui.ColorText)
	allStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted).Italic(true)

	lines := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		ls := labelStyle
		if i == m.focused {
			ls = focusedLabelStyle
		}

		var label, value string
		switch r.kind {
		case rowChoice:
			c := m.state.Choices[r.choice]
			label = c.Label + ":"
			if c.Active() {
				value = valueStyle.Render(c.Value)
			} else {
				value = allStyle.Render("All")
			}
		case rowMulti:
			if r.option == m.state.Multi.Options[0] {
				label = m.state.Multi.Label + ":"
			}
			box := "[ ]"
			if m.state.Multi.IsSelected(r.option) {
				box = "[x]"
			}
			value = ui.StatusStyle(r.option).Render(box + " " + r.option)
		case rowSearch:
			label = "Search:"
			value = m.search.View()
		}

		cursor := "  "
		if i == m.focused {
			cursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", cursor, ls.Render(label), value))
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		MarginBottom(1).
		Render("Filter " + m.title)

	help := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginTop(1).
		Render("a: apply  c: clear  esc: cancel")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(lines, "\n"),
		help,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 2).
		Width(56).
		Render(body)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			box)
	}
	return box
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (m *Model) moveFocus(delta int) {
	next := m.focused + delta
	if next < 0 {
		next = len(m.rows) - 1
	}
	if next >= len(m.rows) {
		next = 0
	}
	m.focused = next
}

// cycleForward advances the index by one. -1 means "all", 0..max-1 are the
// actual entries, and going past the last entry wraps back to -1 (all).
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

// cycleBackward is the reverse of cycleForward.
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

func emitResult(applied bool, st filter.State) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Applied: applied, State: st}
	}
}
