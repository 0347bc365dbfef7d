package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Enter      key.Binding
	Back       key.Binding
	Search     key.Binding
	Filter     key.Binding
	Reset      key.Binding
	ToggleView key.Binding
	NextStatus key.Binding
	PrevStatus key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
}

var Keys = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
	ShiftTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev page")),
	Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	Reset:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
	ToggleView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "toggle view")),
	NextStatus: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next status")),
	PrevStatus: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev status")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/left", "left")),
	Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/right", "right")),
	PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
}
