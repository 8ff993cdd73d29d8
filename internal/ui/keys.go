package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the workspace.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Navigation targets
	NextTarget key.Binding
	PrevTarget key.Binding
	Target     key.Binding // digits 1-7

	// Chrome
	ToggleMenu     key.Binding
	ToggleSidebar  key.Binding
	NextCategory   key.Binding
	PrevCategory   key.Binding
	NextRole       key.Binding
	PrevRole       key.Binding
	TogglePanel    key.Binding // t/o/p
	ToggleTerminal key.Binding
	ToggleOutput   key.Binding
	ToggleProblems key.Binding

	// Lists
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Select   key.Binding
	Deselect key.Binding
	Search   key.Binding

	// Entity actions
	Delete key.Binding
	New    key.Binding
	Edit   key.Binding
	Reveal key.Binding

	// Prompts
	Confirm key.Binding
	Yes     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search / selection"),
		),

		NextTarget: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next view"),
		),
		PrevTarget: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous view"),
		),
		Target: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "Jump to view"),
		),

		ToggleMenu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Expand/collapse menu"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Toggle sidebar"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Previous category"),
		),
		NextRole: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Next role filter"),
		),
		PrevRole: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Previous role filter"),
		),
		TogglePanel: key.NewBinding(
			key.WithKeys("t", "o", "p"),
			key.WithHelp("t/o/p", "Terminal/Output/Problems"),
		),
		ToggleTerminal: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Toggle terminal"),
		),
		ToggleOutput: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Toggle output"),
		),
		ToggleProblems: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Toggle problems"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Select"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Deselect"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),

		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New entry"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit file source"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reveal value"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "Yes"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Target, k.NextTarget, k.PrevTarget},
		{k.Up, k.Down, k.Top, k.Bottom, k.Select, k.Deselect, k.Search, k.Escape},
		{k.ToggleMenu, k.NextCategory, k.PrevCategory, k.NextRole, k.PrevRole, k.ToggleSidebar, k.TogglePanel},
		{k.New, k.Edit, k.Delete, k.Reveal},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
