// Package overview renders the summary tab: every page's global metrics
// and status breakdown on one scrollable screen.
package overview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/page"
	"github.com/altinukshini/fieldops/internal/ui"
)

const barMaxLen = 20

type countEntry struct {
	Key   string
	Value int
}

// sortCounts orders counts by value, highest first. Ties keep option
// order. The "all" entry is left out.
func sortCounts(counts map[string]int, options []string) []countEntry {
	entries := make([]countEntry, 0, len(options))
	for _, o := range options {
		entries = append(entries, countEntry{o, counts[o]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	return entries
}

type Model struct {
	pages    []page.Controller
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func New(pages []page.Controller) Model {
	return Model{pages: pages}
}

func (m Model) Init() tea.Cmd { return nil }

// Refresh re-renders after any page changed.
func (m *Model) Refresh() {
	if m.ready {
		m.viewport.SetContent(m.render())
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
		m.viewport.SetContent(m.render())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) render() string {
	bold := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	var b strings.Builder
	for _, p := range m.pages {
		def := p.Definition()
		sum := p.Summary()

		b.WriteString(bold.Render("  "+def.Title) + "\n\n")

		for _, mt := range sum.Totals.Metrics() {
			b.WriteString(fmt.Sprintf("  %-18s %s\n", mt.Label+":", bold.Render(mt.String())))
		}
		if sum.Err != nil {
			b.WriteString("  " + ui.StyleFailure.Render("! "+sum.Err.Error()) + "\n")
		}

		if def.CountField != "" && sum.Counts != nil {
			total := sum.Counts[filter.All]
			b.WriteString("\n")
			for _, e := range sortCounts(sum.Counts, def.CountOptions) {
				barLen := 0
				if total > 0 {
					barLen = e.Value * barMaxLen / total
				}
				bar := strings.Repeat("█", barLen) + strings.Repeat("░", barMaxLen-barLen)
				b.WriteString(fmt.Sprintf("  %-14s %s %s\n",
					e.Key,
					ui.StatusStyle(e.Key).Render(bar),
					muted.Render(fmt.Sprintf("%d", e.Value))))
			}
		}

		if len(sum.Top) > 0 {
			b.WriteString("\n" + muted.Render("  Most popular") + "\n")
			for i, r := range sum.Top {
				v, _ := r.Field(def.TopField)
				b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, ui.Describe(r).Title, muted.Render("("+v+")")))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	return m.viewport.View()
}
