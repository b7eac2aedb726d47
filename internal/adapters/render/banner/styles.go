package banner

import (
	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	successBackground = lipgloss.Color("#198754")
	errorBackground   = lipgloss.Color("#DC3545")
	bannerForeground  = lipgloss.Color("#FFFFFF")
)

func backgroundFor(tone domain.Tone) lipgloss.Color {
	if tone == domain.ToneError {
		return errorBackground
	}
	return successBackground
}

// Render draws the banner, or nothing while it is hidden.
func Render(state domain.FeedbackState, width int) string {
	if !state.Visible {
		return ""
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(bannerForeground).
		Background(backgroundFor(state.Tone)).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}

	return style.Render(state.Message)
}
