package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "42" // Green - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Metric colors, matched to the PNG chart palette
const (
	ColorAssists Color = "75"  // Blue
	ColorGoals   Color = "41"  // Green
	ColorNutmegs Color = "214" // Amber
	ColorPurple  Color = "141"
	ColorRed     Color = "203"
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Dark gray - selected row background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)
