package cartview

import (
	"fmt"
	"strings"

	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderView(snapshot domain.CartSnapshot, s styles) string {
	lines := []string{s.title.Render("Storefront Cart")}

	if snapshot.Empty() {
		lines = append(lines, s.empty.Render("No cart for this session."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	cart := snapshot.Cart
	lines = append(lines, s.header.Render(cartHeader(cart)))

	if cart.LineItems.Count() == 0 {
		lines = append(lines, s.empty.Render("The cart is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if section := renderItems("Physical items", cart.LineItems.Physical, s); section != "" {
		lines = append(lines, s.section.Render(section))
	}
	if section := renderItems("Digital items", cart.LineItems.Digital, s); section != "" {
		lines = append(lines, s.section.Render(section))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func cartHeader(cart *domain.Cart) string {
	parts := []string{
		fmt.Sprintf("cart: %s", cart.ID),
		fmt.Sprintf("items: %d", cart.LineItems.Count()),
	}
	if cart.Currency != "" {
		parts = append(parts, fmt.Sprintf("total: %.2f %s", cart.CartAmount, cart.Currency))
	}

	return strings.Join(parts, "  ")
}

func renderItems(label string, items []domain.LineItem, s styles) string {
	if len(items) == 0 {
		return ""
	}

	parts := []string{s.label.Render(fmt.Sprintf("%s (%d)", label, len(items)))}
	for _, item := range items {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.item.Render(fmt.Sprintf("%dx %s", item.Quantity, itemName(item))),
			" ",
			s.meta.Render(itemMeta(item)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func itemName(item domain.LineItem) string {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Sprintf("product %d", item.ProductID)
	}
	return item.Name
}

func itemMeta(item domain.LineItem) string {
	meta := []string{fmt.Sprintf("product %d", item.ProductID)}
	if item.SKU != "" {
		meta = append(meta, "sku "+item.SKU)
	}
	meta = append(meta, "item "+item.ID)

	return "(" + strings.Join(meta, ", ") + ")"
}
