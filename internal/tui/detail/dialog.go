package detail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/ui"
)

const boxWidth = 60

// ClosedMsg is emitted when the modal is dismissed.
type ClosedMsg struct {
	ID int64
}

type Model struct {
	id     int64
	card   ui.Card
	active bool
	width  int
	height int
}

func New(rec model.Record) Model {
	return Model{
		id:     rec.RecordID(),
		card:   ui.Describe(rec),
		active: true,
	}
}

func (m Model) IsActive() bool { return m.active }

func (m Model) ID() int64 { return m.id }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q", "backspace":
			m.active = false
			id := m.id
			return m, func() tea.Msg { return ClosedMsg{ID: id} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).
		Foreground(ui.ColorPrimary).
		Render(m.card.Title)
	if m.card.Status != "" {
		title += "  " + ui.StatusStyle(m.card.Status).Render(m.card.Status)
	}

	label := lipgloss.NewStyle().Width(14).Foreground(ui.ColorMuted)
	var rows []string
	for _, f := range m.card.Fields {
		if f.Value == "" {
			continue
		}
		rows = append(rows, label.Render(f.Label)+f.Value)
	}

	content := fmt.Sprintf("%s\n%s\n\n%s",
		title, ui.StyleMuted.Render(m.card.Subtitle), strings.Join(rows, "\n"))
	if m.card.Description != "" {
		content += "\n\n" + wordwrap.String(m.card.Description, boxWidth-6)
	}
	content += "\n\n" + ui.StyleMuted.Render("esc to close")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 2).
		Width(boxWidth).
		Render(content)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
