package overview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/page"
)

func TestOverviewShowsEveryPage(t *testing.T) {
	pages := page.Build(model.SeedDataset(), nil)
	m := New(pages)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 200})

	content := m.render()
	for _, want := range []string{"Clients", "Jobs", "Quotes", "Services", "Map", "$12,685", "$780", "4.7", "Plumbing Repair"} {
		if !strings.Contains(content, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestSortCounts(t *testing.T) {
	counts := map[string]int{"all": 5, "active": 2, "completed": 1, "scheduled": 2}
	got := sortCounts(counts, []string{"active", "completed", "scheduled"})

	want := []string{"active", "scheduled", "completed"}
	for i, e := range got {
		if e.Key != want[i] {
			t.Errorf("entry %d = %s, want %s", i, e.Key, want[i])
		}
	}
}
