package recordsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/ui"
)

type bounds struct {
	minLat, maxLat float64
	minLng, maxLng float64
}

func boundsOf(locs []model.Located) bounds {
	var b bounds
	for i, l := range locs {
		lat, lng := l.Coordinates()
		if i == 0 {
			b = bounds{lat, lat, lng, lng}
			continue
		}
		b.minLat = min(b.minLat, lat)
		b.maxLat = max(b.maxLat, lat)
		b.minLng = min(b.minLng, lng)
		b.maxLng = max(b.maxLng, lng)
	}
	return b
}

// project maps a coordinate to a cell of a w×h character grid, north up.
// A zero span on either axis puts points on the centre line.
func project(lat, lng float64, b bounds, w, h int) (col, row int) {
	col, row = w/2, h/2
	if span := b.maxLng - b.minLng; span > 0 {
		col = int((lng - b.minLng) / span * float64(w-1))
	}
	if span := b.maxLat - b.minLat; span > 0 {
		row = int((b.maxLat - lat) / span * float64(h-1))
	}
	return col, row
}

// scatter draws located records onto a w×h plot. The record with id
// focus is drawn last and highlighted.
func scatter(recs []model.Record, focus int64, w, h int) string {
	if w < 1 || h < 1 {
		return ""
	}
	var locs []model.Located
	for _, r := range recs {
		if l, ok := r.(model.Located); ok {
			locs = append(locs, l)
		}
	}

	grid := make([][]string, h)
	for i := range grid {
		grid[i] = make([]string, w)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	b := boundsOf(locs)
	var focused model.Located
	for _, l := range locs {
		if l.RecordID() == focus {
			focused = l
			continue
		}
		lat, lng := l.Coordinates()
		col, row := project(lat, lng, b, w, h)
		status := ""
		if s, ok := l.(model.Statused); ok {
			status = s.StatusValue()
		}
		grid[row][col] = ui.StatusStyle(status).Render("●")
	}
	if focused != nil {
		lat, lng := focused.Coordinates()
		col, row := project(lat, lng, b, w, h)
		grid[row][col] = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).Render("◉")
	}

	lines := make([]string, h)
	for i, row := range grid {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderMap(height int) string {
	sum := m.sink.summary
	plotW := m.width * 3 / 5
	panelW := m.width - plotW - 4
	if panelW < 10 {
		panelW = 10
	}
	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}

	var focus int64 = -1
	if rec := m.Current(); rec != nil {
		focus = rec.RecordID()
	}

	plot := ui.StylePaneFocused.Width(plotW).Height(innerH).
		Render(scatter(sum.Records, focus, plotW-2, innerH))
	panel := ui.StylePane.Width(panelW).Height(innerH).
		Render(m.renderLocationPanel(panelW - 2))
	return lipgloss.JoinHorizontal(lipgloss.Top, plot, panel)
}

func (m Model) renderLocationPanel(width int) string {
	sum := m.sink.summary
	var b strings.Builder

	if sum.Selected != nil {
		card := ui.Describe(sum.Selected)
		b.WriteString(ui.StyleBold.Render(truncate(card.Title, width)) + "\n")
		b.WriteString(ui.StyleMuted.Render(truncate(card.Subtitle, width)) + "\n\n")
		for _, f := range card.Fields {
			b.WriteString(fmt.Sprintf("%s %s\n", ui.StyleMuted.Render(f.Label+":"), truncate(f.Value, width-len(f.Label)-2)))
		}
		return b.String()
	}

	b.WriteString(ui.StyleMuted.Render("Select a location with arrows") + "\n\n")
	for i, r := range sum.Records {
		card := ui.Describe(r)
		line := ui.StatusIcon(card.Status) + " " + truncate(card.Title, width-2)
		if i == m.cursor {
			line = ui.StyleBold.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
