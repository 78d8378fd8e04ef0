package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, phase titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Phase accent colors
const (
	ColorConsent  Color = "141" // Purple - consent screen
	ColorExposure Color = "214" // Orange - stimulus countdown
	ColorRate     Color = "33"  // Blue - rating forms
	ColorDone     Color = "46"  // Green - completion
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorWarning   Color = "226" // Yellow - degraded-mode notices
)
