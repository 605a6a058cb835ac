package viewer

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary     = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	colorMuted       = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorBorder      = lipgloss.AdaptiveColor{Light: "#DCE0E5", Dark: "#2A3850"}
	colorDestructive = lipgloss.Color("#E53935")
	colorSuccess     = lipgloss.Color("#8BC34A")
)

type Styles struct {
	Title   lipgloss.Style
	Card    lipgloss.Style
	Name    lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Stock   lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Spinner lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Name:  lipgloss.NewStyle().Bold(true),
		Label: lipgloss.NewStyle().Foreground(colorMuted),
		Value: lipgloss.NewStyle(),
		Stock: lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
		Error: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDestructive).
			Foreground(colorDestructive).
			Padding(0, 1),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Spinner: lipgloss.NewStyle().Foreground(colorSuccess),
	}
}
