package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops/internal/ui"
)

func RenderHeader(source string, records int, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(ui.ColorText).
		Render(fmt.Sprintf(" fieldops | %s", source))

	right := lipgloss.NewStyle().Foreground(ui.ColorSuccess).
		Render(fmt.Sprintf("%d records ", records))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(ui.ColorHighlight).
		Width(width).
		Render(left + padding + right)
}
