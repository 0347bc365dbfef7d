package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorFailure   = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorInfo      = lipgloss.Color("#3B82F6")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")
	ColorText      = lipgloss.Color("#F9FAFB")

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleCardFocused = StyleCard.BorderForeground(ColorPrimary)

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleFailure = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold    = lipgloss.NewStyle().Bold(true)

	StyleMatch = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FCD34D")).
			Background(lipgloss.Color("#78350F"))
)

// StatusStyle colours a record status or priority.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "active", "completed", "accepted":
		return StyleSuccess
	case "in-progress", "sent":
		return StyleInfo
	case "scheduled", "pending", "medium":
		return StyleWarning
	case "inactive", "cancelled", "rejected", "high":
		return StyleFailure
	default:
		return StyleMuted
	}
}

func StatusIcon(status string) string {
	switch status {
	case "active", "completed", "accepted":
		return StyleSuccess.Render("●")
	case "in-progress", "sent":
		return StyleInfo.Render("◐")
	case "scheduled", "pending":
		return StyleWarning.Render("○")
	case "inactive", "cancelled", "rejected":
		return StyleFailure.Render("✕")
	case "draft":
		return StyleMuted.Render("·")
	default:
		return StyleMuted.Render("?")
	}
}
