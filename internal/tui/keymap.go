package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	GrowPage   key.Binding
	ShrinkPage key.Binding

	// Row actions
	ToggleSelect key.Binding
	SelectPage   key.Binding
	ClearSelect  key.Binding
	Expand       key.Binding

	// Bulk actions
	MarkPaid    key.Binding
	MarkIgnored key.Binding

	// Sorting
	NextSortKey key.Binding
	FlipSort    key.Binding

	// Filtering
	Search        key.Binding
	Filters       key.Binding
	QuickOverdue  key.Binding
	QuickUpcoming key.Binding
	QuickPaid     key.Binding
	QuickIgnored  key.Binding
	CycleChart    key.Binding

	// Application
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "pgup"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "pgdown"),
			key.WithHelp("→/l", "next page"),
		),
		GrowPage: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more rows per page"),
		),
		ShrinkPage: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer rows per page"),
		),
		ToggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "select row"),
		),
		SelectPage: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select page"),
		),
		ClearSelect: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear selection"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "expand installments"),
		),
		MarkPaid: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "mark paid"),
		),
		MarkIgnored: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "mark ignored"),
		),
		NextSortKey: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next sort column"),
		),
		FlipSort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "flip sort direction"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filters: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filters"),
		),
		QuickOverdue: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "vencidos"),
		),
		QuickUpcoming: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "a vencer"),
		),
		QuickPaid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "pagos"),
		),
		QuickIgnored: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "ignorados"),
		),
		CycleChart: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "chart type filter"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}
