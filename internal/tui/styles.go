package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	barFillStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	barTrackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#AAAAAA"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#5B8DEF"))
	stepTitleStyle = lipgloss.NewStyle().Bold(true)
	headerBox      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
)

func colored(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
