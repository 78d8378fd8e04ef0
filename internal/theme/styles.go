package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	CaptionStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DoneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDone).
			Padding(1, 0)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Stimulus presentation styles
var (
	StimulusFrameStyle = lipgloss.NewStyle().
				Align(lipgloss.Center).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorExposure).
				Padding(1, 4)

	StimulusNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight)
)
