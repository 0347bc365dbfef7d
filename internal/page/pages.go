package page

import (
	"go.uber.org/zap"

	"github.com/altinukshini/fieldops/internal/aggregate"
	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/viewmode"
)

// Page names, in tab order.
const (
	Clients  = "clients"
	Jobs     = "jobs"
	Quotes   = "quotes"
	Services = "services"
	Map      = "map"
)

var Names = []string{Clients, Jobs, Quotes, Services, Map}

func statusChoice(options []string) filter.Choice {
	return filter.Choice{Field: "status", Label: "Status", Value: filter.All, Options: options}
}

func ClientsDefinition() Definition {
	return Definition{
		Name:   Clients,
		Title:  "Clients",
		Kind:   model.KindClient,
		Modes:  [2]viewmode.Mode{viewmode.Grid, viewmode.List},
		Filter: filter.State{Choices: []filter.Choice{statusChoice(model.ClientStatuses)}},
		Totals: []aggregate.MetricSpec{
			{Name: "total", Label: "Total Clients", Op: aggregate.Count},
			{Name: "active", Label: "Active Clients", Op: aggregate.CountWhere, Where: &aggregate.Condition{Field: "status", Value: string(model.ClientActive)}},
			{Name: "totalRevenue", Label: "Total Revenue", Op: aggregate.Sum, Field: "totalSpent", Money: true},
			{Name: "avgSpent", Label: "Avg. Spent", Op: aggregate.Average, Field: "totalSpent", Money: true},
		},
		Stats: []aggregate.MetricSpec{
			{Name: "shown", Label: "Shown", Op: aggregate.Count},
		},
		CountField:   "status",
		CountOptions: model.ClientStatuses,
		Empty:        "No clients found",
	}
}

func JobsDefinition() Definition {
	return Definition{
		Name:  Jobs,
		Title: "Jobs",
		Kind:  model.KindJob,
		Modes: [2]viewmode.Mode{viewmode.List, viewmode.Grid},
		Filter: filter.State{Choices: []filter.Choice{
			statusChoice(model.JobStatuses),
			{Field: "priority", Label: "Priority", Value: filter.All, Options: model.JobPriorities},
		}},
		Totals: []aggregate.MetricSpec{
			{Name: "total", Label: "Total Jobs", Op: aggregate.Count},
			{Name: "pipeline", Label: "Estimated Value", Op: aggregate.Sum, Field: "estimate", Money: true},
		},
		Stats: []aggregate.MetricSpec{
			{Name: "shown", Label: "Shown", Op: aggregate.Count},
			{Name: "estimate", Label: "Shown Estimate", Op: aggregate.Sum, Field: "estimate", Money: true},
		},
		CountField:   "status",
		CountOptions: model.JobStatuses,
		Empty:        "No jobs found",
	}
}

func QuotesDefinition() Definition {
	accepted := &aggregate.Condition{Field: "status", Value: string(model.QuoteAccepted)}
	return Definition{
		Name:   Quotes,
		Title:  "Quotes",
		Kind:   model.KindQuote,
		Modes:  [2]viewmode.Mode{viewmode.List, viewmode.Grid},
		Filter: filter.State{Choices: []filter.Choice{statusChoice(model.QuoteStatuses)}},
		Totals: []aggregate.MetricSpec{
			{Name: "total", Label: "Total Quotes", Op: aggregate.Count},
			{Name: "accepted", Label: "Accepted", Op: aggregate.CountWhere, Where: accepted},
			{Name: "acceptedValue", Label: "Accepted Value", Op: aggregate.Sum, Field: "amount", Where: accepted, Money: true},
		},
		Stats: []aggregate.MetricSpec{
			{Name: "shown", Label: "Shown", Op: aggregate.Count},
			{Name: "value", Label: "Shown Value", Op: aggregate.Sum, Field: "amount", Money: true},
		},
		CountField:   "status",
		CountOptions: model.QuoteStatuses,
		Empty:        "No quotes found",
	}
}

func ServicesDefinition() Definition {
	return Definition{
		Name:  Services,
		Title: "Services",
		Kind:  model.KindService,
		Modes: [2]viewmode.Mode{viewmode.Grid, viewmode.List},
		Filter: filter.State{Choices: []filter.Choice{
			{Field: "category", Label: "Category", Value: filter.All, Options: model.ServiceCategories},
		}},
		Totals: []aggregate.MetricSpec{
			{Name: "total", Label: "Total Services", Op: aggregate.Count},
			{Name: "totalRevenue", Label: "Total Revenue", Op: aggregate.Sum, Field: "revenue", Money: true},
			{Name: "totalJobs", Label: "Total Jobs", Op: aggregate.Sum, Field: "totalJobs"},
			{Name: "avgRating", Label: "Avg. Rating", Op: aggregate.Average, Field: "rating"},
		},
		Stats: []aggregate.MetricSpec{
			{Name: "shown", Label: "Shown", Op: aggregate.Count},
		},
		CountField:   "category",
		CountOptions: model.ServiceCategories,
		TopField:     "popularity",
		TopN:         3,
		Empty:        "No services found",
	}
}

func MapDefinition() Definition {
	return Definition{
		Name:  Map,
		Title: "Map",
		Kind:  model.KindLocation,
		Modes: [2]viewmode.Mode{viewmode.Map, viewmode.List},
		Filter: filter.State{Multi: &filter.MultiChoice{
			Field:    "status",
			Label:    "Status",
			Options:  model.LocationStatuses,
			Selected: allSelected(model.LocationStatuses),
		}},
		Totals: []aggregate.MetricSpec{
			{Name: "total", Label: "Locations", Op: aggregate.Count},
		},
		Stats: []aggregate.MetricSpec{
			{Name: "shown", Label: "Shown", Op: aggregate.Count},
		},
		CountField:   "status",
		CountOptions: model.LocationStatuses,
		Empty:        "No locations match the selected statuses",
	}
}

func allSelected(options []string) map[string]bool {
	m := make(map[string]bool, len(options))
	for _, o := range options {
		m[o] = true
	}
	return m
}

func NewClients(records []model.Client, logger *zap.Logger) *Page[model.Client] {
	return New(ClientsDefinition(), records, logger)
}

func NewJobs(records []model.Job, logger *zap.Logger) *Page[model.Job] {
	return New(JobsDefinition(), records, logger)
}

func NewQuotes(records []model.Quote, logger *zap.Logger) *Page[model.Quote] {
	return New(QuotesDefinition(), records, logger)
}

func NewServices(records []model.Service, logger *zap.Logger) *Page[model.Service] {
	return New(ServicesDefinition(), records, logger)
}

func NewMap(records []model.Location, logger *zap.Logger) *Page[model.Location] {
	return New(MapDefinition(), records, logger)
}

// Definitions returns every page definition in tab order.
func Definitions() []Definition {
	return []Definition{
		ClientsDefinition(),
		JobsDefinition(),
		QuotesDefinition(),
		ServicesDefinition(),
		MapDefinition(),
	}
}

// DefinitionOf returns the definition of the page named name.
func DefinitionOf(name string) (Definition, bool) {
	for _, d := range Definitions() {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Build creates every page over ds in tab order.
func Build(ds model.Dataset, logger *zap.Logger) []Controller {
	return []Controller{
		NewClients(ds.Clients, logger),
		NewJobs(ds.Jobs, logger),
		NewQuotes(ds.Quotes, logger),
		NewServices(ds.Services, logger),
		NewMap(ds.Locations, logger),
	}
}

// Find returns the page named name from pages.
func Find(pages []Controller, name string) (Controller, bool) {
	for _, p := range pages {
		if p.Definition().Name == name {
			return p, true
		}
	}
	return nil, false
}
