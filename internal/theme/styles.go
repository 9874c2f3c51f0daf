package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ConditionStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// KPI and table styles
var (
	KPILabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(14)

	KPIValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)

// Metric styles
var (
	AssistStyle = lipgloss.NewStyle().
			Foreground(ColorAssists)

	GoalStyle = lipgloss.NewStyle().
			Foreground(ColorGoals)

	NutmegStyle = lipgloss.NewStyle().
			Foreground(ColorNutmegs)

	ChartLegendStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)
)

// Empty state style
var EmptyStateStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Italic(true).
	Padding(1, 0)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// MetricStyle returns the style for a metric color
func MetricStyle(color Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color)
}
