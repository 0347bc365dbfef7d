package recordsview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/ui"
)

type recordDelegate struct{}

func (d recordDelegate) Height() int                              { return 2 }
func (d recordDelegate) Spacing() int                             { return 0 }
func (d recordDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d recordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(recordItem)
	if !ok {
		return
	}
	card := ui.Describe(ri.rec)

	icon := " "
	status := ""
	if card.Status != "" {
		icon = ui.StatusIcon(card.Status)
		status = ui.StatusStyle(card.Status).Render(card.Status)
	}

	line1 := fmt.Sprintf(" %s %s  %s", icon, ui.StyleBold.Render(card.Title), status)
	line2 := "   " + ui.StyleMuted.Render(card.Subtitle)
	if len(card.Lines) > 0 {
		line2 += ui.StyleMuted.Render("  ·  " + card.Lines[0])
	}

	if index == m.Index() {
		hl := lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.Width())
		line1 = hl.Render(line1)
		line2 = hl.Render(line2)
	}

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

type recordItem struct {
	rec model.Record
}

func (r recordItem) FilterValue() string {
	return strings.Join(r.rec.SearchFields(), " ")
}
