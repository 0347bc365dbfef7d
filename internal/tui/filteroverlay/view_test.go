package filteroverlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/page"
)

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func result(t *testing.T, cmd tea.Cmd) ResultMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a result command")
	}
	res, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg, got %T", cmd())
	}
	return res
}

func TestCycleChoicesAndApply(t *testing.T) {
	def := page.JobsDefinition()
	m := New(def.Title, def.Filter)

	// status: all -> scheduled -> in-progress
	m, _ = press(m, "l", "l")
	// priority: all -> low (backwards)
	m, cmd := press(m, "down", "h", "a")

	if m.IsActive() {
		t.Error("overlay should close on apply")
	}
	res := result(t, cmd)
	if !res.Applied {
		t.Fatal("expected Applied")
	}
	if c, _ := res.State.Choice("status"); c.Value != "in-progress" {
		t.Errorf("status = %q, want in-progress", c.Value)
	}
	if c, _ := res.State.Choice("priority"); c.Value != "low" {
		t.Errorf("priority = %q, want low", c.Value)
	}
}

func TestMultiToggleAndSearch(t *testing.T) {
	def := page.MapDefinition()
	m := New(def.Title, def.Filter)

	// uncheck "completed" (second option)
	m, _ = press(m, "down", " ")
	// move to the search row and type
	m, _ = press(m, "down", "down", "enter", "o", "a", "k", "enter", "a")

	st := m.State()
	if st.Multi.IsSelected("completed") {
		t.Error("completed should be unchecked")
	}
	if !st.Multi.IsSelected("active") || !st.Multi.IsSelected("scheduled") {
		t.Error("other statuses should stay checked")
	}
	if st.Search != "oak" {
		t.Errorf("search = %q, want oak", st.Search)
	}
	if def.Filter.Multi.IsSelected("completed") != true {
		t.Error("editing must not modify the page's state")
	}
}

func TestClearAndCancel(t *testing.T) {
	def := page.QuotesDefinition()
	current := def.Filter.WithChoice("status", "accepted").WithSearch("smith")
	m := New(def.Title, current)

	m, _ = press(m, "c")
	st := m.State()
	if c, _ := st.Choice("status"); c.Value != filter.All {
		t.Errorf("status after clear = %q", c.Value)
	}
	if st.Search != "" {
		t.Errorf("search after clear = %q", st.Search)
	}

	m, cmd := press(m, "esc")
	if m.IsActive() {
		t.Error("esc should close the overlay")
	}
	if result(t, cmd).Applied {
		t.Error("esc should not apply")
	}
}
