package page

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/fieldops/internal/aggregate"
	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/viewmode"
)

func clientIDs(v View[model.Client]) []int64 {
	out := []int64{}
	for _, c := range v.Filtered {
		out = append(out, c.ID)
	}
	return out
}

func TestClientsStatusFilter(t *testing.T) {
	p := NewClients(model.SeedDataset().Clients, nil)

	p.SetChoice("status", "active")
	v := p.View()
	assert.Equal(t, []int64{1, 2, 4, 5}, clientIDs(v))

	total, ok := v.Totals.Get("total")
	require.True(t, ok)
	assert.EqualValues(t, 5, total.IntPart(), "totals are computed over the whole store")
	shown, _ := v.Stats.Get("shown")
	assert.EqualValues(t, 4, shown.IntPart())
	assert.Equal(t, "$12,685", v.Totals.Format("totalRevenue"))
	assert.NoError(t, v.Err)
}

func TestClientsSearch(t *testing.T) {
	p := NewClients(model.SeedDataset().Clients, nil)
	p.SetSearch("john")
	assert.Equal(t, []int64{1, 2}, clientIDs(p.View()))

	p.SetSearch("")
	assert.Len(t, p.View().Filtered, 5)
}

func TestModeSwitchKeepsSelectionAndFilter(t *testing.T) {
	p := NewClients(model.SeedDataset().Clients, nil)
	p.SetSearch("mike")
	p.Select(3)

	require.Equal(t, viewmode.Grid, p.Mode())
	require.True(t, p.SetMode(viewmode.List))

	v := p.View()
	assert.Equal(t, viewmode.List, v.Mode)
	assert.True(t, v.HasSelected)
	assert.EqualValues(t, 3, v.Selected.ID)
	assert.Equal(t, "mike", p.State().Search)

	assert.False(t, p.SetMode(viewmode.Map), "clients page has no map mode")
	assert.Equal(t, viewmode.List, p.Mode())
}

func TestSelectionHiddenByFilter(t *testing.T) {
	p := NewClients(model.SeedDataset().Clients, nil)
	p.Select(3)
	p.SetChoice("status", "active")

	v := p.View()
	assert.False(t, v.HasSelected)
	id, ok := p.SelectedID()
	assert.True(t, ok)
	assert.EqualValues(t, 3, id)

	p.SetChoice("status", filter.All)
	assert.True(t, p.View().HasSelected)
}

func TestSubscribersNotifiedOncePerMutation(t *testing.T) {
	p := NewJobs(model.SeedDataset().Jobs, nil)

	var calls int
	var last View[model.Job]
	p.Subscribe(func(v View[model.Job]) {
		calls++
		last = v
	})

	p.SetChoice("status", "scheduled")
	assert.Equal(t, 1, calls)
	assert.Len(t, last.Filtered, 2)

	p.SetChoice("priority", "medium")
	p.Select(2)
	p.ToggleMode()
	p.ClearSelection()
	assert.Equal(t, 5, calls)

	p.SetMode(viewmode.Map)
	assert.Equal(t, 5, calls, "rejected mode change does not recompute")
}

func TestJobsCounts(t *testing.T) {
	p := NewJobs(model.SeedDataset().Jobs, nil)
	p.SetChoice("status", "completed")

	counts := p.View().Counts
	assert.Equal(t, 5, counts[filter.All], "counts ignore the active filter")
	assert.Equal(t, 2, counts["scheduled"])
	assert.Equal(t, 0, counts["cancelled"])
}

func TestQuotesAcceptedValue(t *testing.T) {
	p := NewQuotes(model.SeedDataset().Quotes, nil)
	v := p.View()
	assert.Equal(t, "$780", v.Totals.Format("acceptedValue"))
	assert.Equal(t, "$2,675", v.Stats.Format("value"))

	p.SetChoice("status", "pending")
	assert.Equal(t, "$450", p.View().Stats.Format("value"))
}

func TestServicesTopAndRating(t *testing.T) {
	p := NewServices(model.SeedDataset().Services, nil)
	v := p.View()

	require.Len(t, v.Top, 3)
	assert.Equal(t, "Plumbing Repair", v.Top[0].Name)
	assert.Equal(t, "General Repair", v.Top[1].Name)
	assert.Equal(t, "Electrical Installation", v.Top[2].Name)
	assert.Equal(t, "4.7", v.Totals.Format("avgRating"))
	assert.Equal(t, "644", v.Totals.Format("totalJobs"))

	p.SetChoice("category", "HVAC")
	assert.Len(t, p.View().Filtered, 1)
	p.SetChoice("category", "Roofing")
	assert.Empty(t, p.View().Filtered)
}

func TestMapMultiSelect(t *testing.T) {
	p := NewMap(model.SeedDataset().Locations, nil)
	require.Equal(t, viewmode.Map, p.Mode())
	assert.Len(t, p.View().Filtered, 5)

	p.ToggleStatus("scheduled")
	assert.Len(t, p.View().Filtered, 3)

	p.ToggleStatus("active")
	p.ToggleStatus("completed")
	assert.Empty(t, p.View().Filtered, "nothing checked shows nothing")

	p.ResetFilter()
	assert.Len(t, p.View().Filtered, 5)
}

func TestDetailDisclosure(t *testing.T) {
	p := NewClients(model.SeedDataset().Clients, nil)
	detail := p.Disclosure(Detail)
	panel := p.Disclosure(Panel)
	require.NotNil(t, detail)
	require.NotNil(t, panel)

	p.OpenDetail(2)
	assert.True(t, detail.IsOpen())
	assert.False(t, panel.IsOpen())
	c, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, "Sarah Johnson", c.Name)

	p.CloseDetail()
	assert.False(t, detail.IsOpen())
	_, ok = p.SelectedID()
	assert.False(t, ok)
}

func TestParseErrorSurfacesInView(t *testing.T) {
	def := ServicesDefinition()
	def.Totals = append(def.Totals, aggregate.MetricSpec{Name: "basePrice", Op: aggregate.Sum, Field: "basePrice", Money: true})
	p := New(def, model.SeedDataset().Services, nil)

	v := p.View()
	var pe *aggregate.ParseError
	require.True(t, errors.As(v.Err, &pe))
	assert.Equal(t, "$75/hour", pe.Value)
	_, ok := v.Totals.Get("basePrice")
	assert.False(t, ok, "failed metric is not replaced by zero")
}

func TestBuildAndSummary(t *testing.T) {
	pages := Build(model.SeedDataset(), nil)
	require.Len(t, pages, len(Names))
	for i, p := range pages {
		assert.Equal(t, Names[i], p.Definition().Name)
	}

	m, ok := Find(pages, Map)
	require.True(t, ok)
	m.Select(4)
	s := m.Summary()
	require.NotNil(t, s.Selected)
	loc, ok := s.Selected.(model.Located)
	require.True(t, ok)
	lat, lng := loc.Coordinates()
	assert.Equal(t, 40.7484, lat)
	assert.Equal(t, -73.9857, lng)

	_, ok = Find(pages, "calendar")
	assert.False(t, ok)
}
