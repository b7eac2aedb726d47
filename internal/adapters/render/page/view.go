package page

import (
	"fmt"

	"github.com/bnema/multicart-cli/internal/adapters/render/banner"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	s := m.styles

	buttons := []string{s.button.Render("[a] Add all to cart")}
	if m.feedback.RemoveAllVisible() {
		buttons = append(buttons, s.button.Render("[r] Remove all from cart"))
	}

	lines := []string{
		s.title.Render("Bulk Cart"),
		s.header.Render(fmt.Sprintf("catalog: %d products", len(m.products))),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	}

	if m.cart.InFlight() {
		lines = append(lines, s.busy.Render("working..."))
	}
	if rendered := banner.Render(m.feedback.State(), m.width); rendered != "" {
		lines = append(lines, "", rendered)
	}

	lines = append(lines, "", s.help.Render("g refresh  q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
