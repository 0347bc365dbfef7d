package recordsview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops/internal/ui"
)

const (
	cardWidth  = 30
	cardHeight = 8 // six content lines plus border
)

func (m Model) gridColumns() int {
	cols := m.width / (cardWidth + 4)
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (m Model) renderGrid(height int) string {
	recs := m.sink.summary.Records
	cols := m.gridColumns()

	visible := height / cardHeight
	if visible < 1 {
		visible = 1
	}
	start := 0
	if row := m.cursor / cols; row >= visible {
		start = row - visible + 1
	}

	var rows []string
	for r := start; r < start+visible; r++ {
		var cards []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(recs) {
				break
			}
			cards = append(cards, renderCard(ui.Describe(recs[i]), i == m.cursor))
		}
		if len(cards) == 0 {
			break
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func renderCard(card ui.Card, focused bool) string {
	inner := cardWidth - 2
	lines := []string{
		ui.StyleBold.Render(truncate(card.Title, inner)),
		ui.StyleMuted.Render(truncate(card.Subtitle, inner)),
	}
	if card.Status != "" {
		lines = append(lines, ui.StatusIcon(card.Status)+" "+ui.StatusStyle(card.Status).Render(card.Status))
	} else {
		lines = append(lines, "")
	}
	for i := 0; i < 3; i++ {
		if i < len(card.Lines) {
			lines = append(lines, truncate(card.Lines[i], inner))
		} else {
			lines = append(lines, "")
		}
	}

	style := ui.StyleCard
	if focused {
		style = ui.StyleCardFocused
	}
	return style.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
