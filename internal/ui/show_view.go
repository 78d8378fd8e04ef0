package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"glimpse/internal/domain"
	"glimpse/internal/theme"
)

// renderStimulus draws the exposure frame for the current trial: the
// stimulus card plus a countdown bar. Showing the same item repeatedly is a
// visual no-op, so the poll loop can re-render freely.
func renderStimulus(item domain.MediaItem, position, total int, remaining, exposure time.Duration, bar progress.Model) string {
	icon := "🖼"
	if item.Kind == domain.KindVideo {
		icon = "🎬"
	}

	card := theme.StimulusFrameStyle.Render(
		fmt.Sprintf("%s  %s", icon, theme.StimulusNameStyle.Render(item.Name)),
	)

	elapsed := exposure - remaining
	percent := 1.0
	if exposure > 0 && elapsed < exposure {
		percent = float64(elapsed) / float64(exposure)
	}

	caption := theme.CaptionStyle.Render(
		fmt.Sprintf("Next screen in %.1fs…", remaining.Seconds()),
	)
	if remaining <= 0 {
		caption = theme.CaptionStyle.Render("…")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.SubtitleStyle.Render(fmt.Sprintf("Stimulus %d of %d", position, total)),
		"",
		card,
		"",
		bar.ViewAs(percent),
		caption,
	)
}
