package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops/internal/ui"
)

// RenderStatusBar draws the bottom line. A non-nil err replaces the status
// text with the error in the failure colour.
func RenderStatusBar(status, hints string, err error, width int) string {
	left := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  " + status)
	if err != nil {
		left = ui.StyleFailure.Render("  ! " + err.Error())
	}

	help := lipgloss.NewStyle().Foreground(ui.ColorMuted).
		Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#111827")).
		Width(width).
		Render(left + lipgloss.NewStyle().Width(gap).Render("") + help)
}
