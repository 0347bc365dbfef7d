package selection

import (
	"testing"

	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/store"
)

func TestSelection(t *testing.T) {
	st := store.New(model.SeedDataset().Clients)
	sel := New(st)

	if _, ok := sel.Current(); ok {
		t.Fatal("new selection should be empty")
	}

	sel.Select(3)
	c, ok := sel.Current()
	if !ok || c.Name != "Mike Davis" {
		t.Errorf("Current() = %v, %v; want Mike Davis", c.Name, ok)
	}
	if id, ok := sel.ID(); !ok || id != 3 {
		t.Errorf("ID() = %d, %v; want 3, true", id, ok)
	}

	sel.Select(42)
	if _, ok := sel.Current(); ok {
		t.Error("unknown id should resolve to not found")
	}
	if id, ok := sel.ID(); !ok || id != 42 {
		t.Errorf("ID() = %d, %v; want 42, true", id, ok)
	}

	sel.Clear()
	if _, ok := sel.ID(); ok {
		t.Error("Clear() left an id selected")
	}
}

func TestSelectionCurrentIn(t *testing.T) {
	clients := model.SeedDataset().Clients
	sel := New(store.New(clients))
	sel.Select(3)

	if _, ok := sel.CurrentIn(clients[:2]); ok {
		t.Error("selection hidden by filter should read as empty")
	}
	if c, ok := sel.CurrentIn(clients); !ok || c.ID != 3 {
		t.Errorf("CurrentIn(all) = %d, %v; want 3, true", c.ID, ok)
	}
	if _, ok := sel.Current(); !ok {
		t.Error("Current() should ignore the filter")
	}
}
