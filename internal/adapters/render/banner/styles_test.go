package banner

import (
	"testing"

	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBackgroundFor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#198754"), backgroundFor(domain.ToneSuccess))
	assert.Equal(t, lipgloss.Color("#DC3545"), backgroundFor(domain.ToneError))
}

func TestRender(t *testing.T) {
	t.Run("hidden banner renders nothing", func(t *testing.T) {
		out := Render(domain.FeedbackState{Tone: domain.ToneSuccess, Message: "done"}, 40)
		assert.Empty(t, out)
	})

	t.Run("visible banner shows message", func(t *testing.T) {
		out := Render(domain.FeedbackState{
			Visible: true,
			Tone:    domain.ToneError,
			Message: domain.MessageFailure,
		}, 0)
		assert.Contains(t, out, domain.MessageFailure)
	})

	t.Run("width pads the banner", func(t *testing.T) {
		out := Render(domain.FeedbackState{Visible: true, Tone: domain.ToneSuccess, Message: "ok"}, 30)
		assert.Equal(t, 30, lipgloss.Width(out))
	})
}
