package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/altinukshini/fieldops/internal/config"
	"github.com/altinukshini/fieldops/internal/page"
	"github.com/altinukshini/fieldops/internal/tui/detail"
	"github.com/altinukshini/fieldops/internal/tui/filteroverlay"
	"github.com/altinukshini/fieldops/internal/tui/overview"
	"github.com/altinukshini/fieldops/internal/tui/recordsview"
	"github.com/altinukshini/fieldops/internal/ui"
)

// OverviewName is the tab name of the summary screen that follows the
// record pages.
const OverviewName = "overview"

type App struct {
	cfg    config.Config
	logger *zap.Logger
	source string

	pages    []page.Controller
	views    []recordsview.Model
	overview overview.Model

	filterOverlay filteroverlay.Model
	detailModal   detail.Model

	current  int
	width    int
	height   int
	status   string
	showHelp bool
}

// NewApp builds the UI over pages. source names where the records came
// from and is shown in the header.
func NewApp(cfg config.Config, pages []page.Controller, source string, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := App{
		cfg:      cfg,
		logger:   logger,
		source:   source,
		pages:    pages,
		overview: overview.New(pages),
		status:   "Ready",
	}
	for _, p := range pages {
		name := p.Definition().Name
		if m, ok := cfg.ViewMode(name); ok && !p.SetMode(m) {
			logger.Warn("view mode not supported", zap.String("page", name), zap.String("mode", m.String()))
		}
		p.Watch(func(s page.Summary) {
			logger.Debug("page changed", zap.String("page", name), zap.Int("shown", len(s.Records)))
		})
		a.views = append(a.views, recordsview.New(p))
	}
	if cfg.StartPage == OverviewName {
		a.current = len(pages)
	} else {
		for i, p := range pages {
			if p.Definition().Name == cfg.StartPage {
				a.current = i
			}
		}
	}
	return a
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) onOverview() bool { return a.current == len(a.pages) }

func (a App) currentPage() page.Controller {
	if a.onOverview() {
		return nil
	}
	return a.pages[a.current]
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle detail close (arrives after the modal deactivates itself)
	if closed, ok := msg.(detail.ClosedMsg); ok {
		if p := a.currentPage(); p != nil {
			p.CloseDetail()
			a.views[a.current].Refresh()
		}
		a.logger.Debug("detail closed", zap.Int64("id", closed.ID))
		return &a, nil
	}

	if a.detailModal.IsActive() {
		var cmd tea.Cmd
		a.detailModal, cmd = a.detailModal.Update(msg)
		return &a, cmd
	}

	// Handle filter panel result
	if result, ok := msg.(filteroverlay.ResultMsg); ok {
		if p := a.currentPage(); p != nil {
			p.Disclosure(page.Panel).Close()
			if result.Applied {
				p.SetFilter(result.State)
				a.views[a.current].Refresh()
				a.status = a.filterStatus(p)
			}
		}
		return &a, nil
	}

	if a.filterOverlay.IsActive() {
		var cmd tea.Cmd
		a.filterOverlay, cmd = a.filterOverlay.Update(msg)
		return &a, cmd
	}

	switch msg := msg.(type) {
	case ui.OpenDetailMsg:
		p := a.currentPage()
		if p == nil {
			return &a, nil
		}
		rec, ok := p.Lookup(msg.ID)
		if !ok {
			a.status = fmt.Sprintf("Record %d not found", msg.ID)
			return &a, nil
		}
		p.OpenDetail(msg.ID)
		a.detailModal = detail.New(rec)
		a.detailModal.SetSize(a.width, a.height-3)
		return &a, nil

	case ui.OpenFilterMsg:
		p := a.currentPage()
		if p == nil {
			return &a, nil
		}
		p.Disclosure(page.Panel).Open()
		a.filterOverlay = filteroverlay.New(p.Definition().Title, p.State())
		a.filterOverlay.SetSize(a.width, a.height-3)
		return &a, nil

	case ui.StatusMsg:
		a.status = msg.Text
		return &a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	case tea.KeyMsg:
		if a.showHelp {
			a.showHelp = false
			return &a, nil
		}

		typing := !a.onOverview() && a.views[a.current].IsTyping()
		if !typing {
			switch msg.String() {
			case "q", "ctrl+c":
				return &a, tea.Quit
			case "?":
				a.showHelp = true
				return &a, nil
			case "tab":
				a.switchTo((a.current + 1) % (len(a.pages) + 1))
				return &a, nil
			case "shift+tab":
				a.switchTo((a.current + len(a.pages)) % (len(a.pages) + 1))
				return &a, nil
			case "1", "2", "3", "4", "5", "6":
				idx := int(msg.String()[0] - '1')
				if idx <= len(a.pages) {
					a.switchTo(idx)
				}
				return &a, nil
			}
		} else if msg.String() == "ctrl+c" {
			return &a, tea.Quit
		}
	}

	if a.onOverview() {
		var cmd tea.Cmd
		a.overview, cmd = a.overview.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		var cmd tea.Cmd
		a.views[a.current], cmd = a.views[a.current].Update(msg)
		cmds = append(cmds, cmd)
		a.status = a.filterStatus(a.pages[a.current])
	}
	return &a, tea.Batch(cmds...)
}

func (a *App) switchTo(idx int) {
	a.current = idx
	if a.onOverview() {
		a.overview.Refresh()
		a.status = "Overview"
		return
	}
	a.status = a.filterStatus(a.pages[idx])
}

func (a App) filterStatus(p page.Controller) string {
	sum := p.Summary()
	total := 0
	if t, ok := sum.Totals.Get("total"); ok {
		total = int(t.IntPart())
	}
	s := fmt.Sprintf("%d of %d %s", len(sum.Records), total, strings.ToLower(p.Definition().Title))
	if st := p.State(); !st.IsEmpty() {
		s += "  (" + st.Summary() + ")"
	}
	return s
}

func (a *App) propagateSize() {
	// header(1) + tabs(1) + status(1) + pane border(2)
	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}
	size := tea.WindowSizeMsg{Width: a.width - 4, Height: contentH}
	for i := range a.views {
		a.views[i], _ = a.views[i].Update(size)
	}
	a.overview, _ = a.overview.Update(size)
	a.filterOverlay.SetSize(a.width, a.height-3)
	a.detailModal.SetSize(a.width, a.height-3)
}

// --- View ---

func (a App) View() string {
	records := 0
	for _, p := range a.pages {
		if t, ok := p.Summary().Totals.Get("total"); ok {
			records += int(t.IntPart())
		}
	}
	header := RenderHeader(a.source, records, a.width)
	tabs := a.renderTabs()

	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}
	style := ui.StylePaneFocused.Width(a.width - 2).Height(contentH)

	var content string
	if a.onOverview() {
		content = style.Render(a.overview.View())
	} else {
		content = style.Render(a.views[a.current].View())
	}

	if a.showHelp {
		content = a.renderHelp()
	} else if a.detailModal.IsActive() {
		content = a.detailModal.View()
	} else if a.filterOverlay.IsActive() {
		content = a.filterOverlay.View()
	}

	var pageErr error
	if p := a.currentPage(); p != nil {
		pageErr = p.Summary().Err
	}
	statusBar := RenderStatusBar(a.status, a.contextHints(), pageErr, a.width)

	// Hard clamp: header(1) + tabs(1) + statusbar(1) = 3 lines of chrome.
	maxContentLines := a.height - 3
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			content = strings.Join(lines[:maxContentLines], "\n")
		}
	}

	return header + "\n" + tabs + "\n" + content + "\n" + statusBar
}

func (a App) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Padding(0, 2)
	activeTab := tabStyle.Bold(true).Foreground(ui.ColorPrimary)
	inactiveTab := tabStyle.Foreground(ui.ColorMuted)

	var tabs []string
	for i, p := range a.pages {
		label := fmt.Sprintf("[%d] %s", i+1, p.Definition().Title)
		if st := p.State(); !st.IsEmpty() {
			label = fmt.Sprintf("[%d] %s (%s)", i+1, p.Definition().Title, st.Summary())
		}
		if i == a.current {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, inactiveTab.Render(label))
		}
	}
	label := fmt.Sprintf("[%d] Overview", len(a.pages)+1)
	if a.onOverview() {
		tabs = append(tabs, activeTab.Render(label))
	} else {
		tabs = append(tabs, inactiveTab.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a App) contextHints() string {
	switch {
	case a.detailModal.IsActive():
		return "esc:close"
	case a.filterOverlay.IsActive():
		return "j/k:field  enter/l:change  a:apply  c:clear  esc:cancel"
	case a.onOverview():
		return "j/k:scroll  tab:next page  ?:help  q:quit"
	case a.views[a.current].IsTyping():
		return "enter:done  esc:clear"
	}
	hints := "/:search  f:filter  v:view  enter:details  x:clear  ?:help"
	if st := a.pages[a.current].State(); len(st.Choices) > 0 {
		hints = "[/]:status  " + hints
	}
	return hints
}

func (a App) renderHelp() string {
	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}

	bold := lipgloss.NewStyle().Bold(true)
	key := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	row := func(k, d string) string {
		return "  " + key.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Navigation") + "\n\n")
	b.WriteString(row("1-6", "Switch tab: Clients, Jobs, Quotes, Services, Map, Overview"))
	b.WriteString(row("tab", "Next tab"))
	b.WriteString(row("shift+tab", "Previous tab"))
	b.WriteString(row("j / k", "Move down / up"))
	b.WriteString(row("h / l", "Move left / right (grid, map)"))
	b.WriteString(row("enter", "Open details"))
	b.WriteString(row("q", "Quit"))

	b.WriteString("\n" + bold.Render("  Search & Filter") + "\n\n")
	b.WriteString(row("/", "Search the current page"))
	b.WriteString(row("[ / ]", "Previous / next status"))
	b.WriteString(row("f", "Filter panel"))
	b.WriteString(row("x", "Clear search and filters"))

	b.WriteString("\n" + bold.Render("  View") + "\n\n")
	b.WriteString(row("v", "Toggle grid / list / map"))

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  Press any key to close") + "\n")

	style := ui.StylePaneFocused.Width(a.width - 2).Height(contentH)
	return style.Render(b.String())
}
