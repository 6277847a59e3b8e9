package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Muted        lipgloss.Style
	Selected     lipgloss.Style
	Cursor       lipgloss.Style
	Header       lipgloss.Style
	KPIBox       lipgloss.Style
	KPILabel     lipgloss.Style
	KPIValue     lipgloss.Style
	Overdue      lipgloss.Style
	Upcoming     lipgloss.Style
	Paid         lipgloss.Style
	Ignored      lipgloss.Style
	Origin       lipgloss.Style
	Error        lipgloss.Style
	FilterBadge  lipgloss.Style
	DrawerBox    lipgloss.Style
	DrawerFocus  lipgloss.Style
	DrawerOption lipgloss.Style
	Help         lipgloss.Style
	Primary      lipgloss.Color
	Border       lipgloss.Color
}

// DefaultTheme is the default theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#7c3aed"),
	Border:  lipgloss.Color("#404040"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a78bfa")).
		Bold(true),
	Cursor: lipgloss.NewStyle().
		Background(lipgloss.Color("#2d2d44")).
		Foreground(lipgloss.Color("#fafafa")),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#a78bfa")).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")),
	KPIBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 2),
	KPILabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	KPIValue: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Overdue: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")),
	Upcoming: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")),
	Paid: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")),
	Ignored: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Strikethrough(true),
	Origin: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Italic(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	FilterBadge: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Padding(0, 1),
	DrawerBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7c3aed")).
		Padding(1, 2),
	DrawerFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a78bfa")).
		Bold(true),
	DrawerOption: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
}

// statusStyle picks the row style for a debt status.
func (t Theme) statusStyle(status string) lipgloss.Style {
	switch status {
	case "Vencido":
		return t.Overdue
	case "A Vencer":
		return t.Upcoming
	case "Pago":
		return t.Paid
	case "Ignorado":
		return t.Ignored
	case "Origem do Parcelamento":
		return t.Origin
	default:
		return t.Normal
	}
}
