package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/fieldops/internal/config"
	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/page"
	"github.com/altinukshini/fieldops/internal/viewmode"
)

func update(app App, msg tea.Msg) (App, tea.Cmd) {
	m, cmd := app.Update(msg)
	return *m.(*App), cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(cfg config.Config) (App, []page.Controller) {
	pages := page.Build(model.SeedDataset(), nil)
	app := NewApp(cfg, pages, "built-in data", nil)
	app, _ = update(app, tea.WindowSizeMsg{Width: 140, Height: 40})
	return app, pages
}

func TestFilterPanelAppliesToPage(t *testing.T) {
	app, pages := newTestApp(config.Config{})
	jobs := pages[1]

	app, _ = update(app, key("2"))
	if app.current != 1 {
		t.Fatalf("expected jobs tab, got %d", app.current)
	}

	app, cmd := update(app, key("f"))
	if cmd == nil {
		t.Fatal("f should request the filter panel")
	}
	app, _ = update(app, cmd())
	if !app.filterOverlay.IsActive() {
		t.Fatal("filter panel should be open")
	}
	if !jobs.Disclosure(page.Panel).IsOpen() {
		t.Error("page filter disclosure should be open")
	}
	if !strings.Contains(app.View(), "Filter Jobs") {
		t.Error("app view should show the filter panel")
	}

	app, _ = update(app, key("l"))
	app, cmd = update(app, key("a"))
	app, _ = update(app, cmd())

	if app.filterOverlay.IsActive() {
		t.Error("filter panel should be closed after apply")
	}
	if jobs.Disclosure(page.Panel).IsOpen() {
		t.Error("page filter disclosure should be closed")
	}
	if c, _ := jobs.State().Choice("status"); c.Value != "scheduled" {
		t.Errorf("status = %q, want scheduled", c.Value)
	}
	if !strings.HasPrefix(app.status, "2 of 5 jobs") {
		t.Errorf("status = %q", app.status)
	}
}

func TestDetailModalLifecycle(t *testing.T) {
	app, pages := newTestApp(config.Config{})
	quotes := pages[2]

	app, _ = update(app, key("3"))
	app, cmd := update(app, key("enter"))
	if cmd == nil {
		t.Fatal("enter should request the detail modal")
	}
	app, _ = update(app, cmd())

	if !app.detailModal.IsActive() {
		t.Fatal("detail modal should be open")
	}
	if !quotes.Disclosure(page.Detail).IsOpen() {
		t.Error("detail disclosure should be open")
	}
	if !strings.Contains(app.View(), "Q-2024-001") {
		t.Error("modal should show the quote number")
	}

	// Global keys are swallowed while the modal is open.
	app, _ = update(app, key("4"))
	if app.current != 2 {
		t.Errorf("tab changed to %d while modal open", app.current)
	}

	app, cmd = update(app, key("esc"))
	app, _ = update(app, cmd())
	if app.detailModal.IsActive() || quotes.Disclosure(page.Detail).IsOpen() {
		t.Error("detail should be closed after esc")
	}
	if _, ok := quotes.SelectedID(); ok {
		t.Error("closing the detail clears the selection")
	}
}

func TestConfigViewsAndStartPage(t *testing.T) {
	cfg := config.Config{
		StartPage: OverviewName,
		Views:     map[string]string{page.Clients: "list", page.Map: "grid"},
	}
	app, pages := newTestApp(cfg)

	if !app.onOverview() {
		t.Error("app should start on the overview tab")
	}
	if pages[0].Mode() != viewmode.List {
		t.Errorf("clients mode = %s, want list", pages[0].Mode())
	}
	if pages[4].Mode() != viewmode.Map {
		t.Errorf("unsupported configured mode should be ignored, got %s", pages[4].Mode())
	}
	if !strings.Contains(app.View(), "Total Revenue") {
		t.Error("overview should render page metrics")
	}
}

func TestSearchSwallowsGlobalKeys(t *testing.T) {
	app, pages := newTestApp(config.Config{})

	app, _ = update(app, key("/"))
	for _, r := range "q2" {
		app, _ = update(app, key(string(r)))
	}
	if app.current != 0 {
		t.Errorf("typing 2 in search switched tabs to %d", app.current)
	}
	if got := pages[0].State().Search; got != "q2" {
		t.Errorf("search = %q, want q2", got)
	}

	app, _ = update(app, key("esc"))
	app, _ = update(app, key("x"))
	if !pages[0].State().IsEmpty() {
		t.Errorf("x should clear filters, got %q", pages[0].State().Summary())
	}
	if c, _ := pages[0].State().Choice("status"); c.Value != filter.All {
		t.Errorf("status = %q", c.Value)
	}
}
