package cartview

import (
	"testing"

	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWithoutCart(t *testing.T) {
	output, err := Render(domain.CartSnapshot{})

	require.NoError(t, err)
	assert.Contains(t, output, "Storefront Cart")
	assert.Contains(t, output, "No cart for this session.")
}

func TestRenderEmptyCart(t *testing.T) {
	output, err := Render(domain.CartSnapshot{Cart: &domain.Cart{ID: "cart-1", Currency: "USD"}})

	require.NoError(t, err)
	assert.Contains(t, output, "cart: cart-1")
	assert.Contains(t, output, "items: 0")
	assert.Contains(t, output, "The cart is empty.")
}

func TestRenderPhysicalAndDigitalItems(t *testing.T) {
	output, err := Render(domain.CartSnapshot{Cart: &domain.Cart{
		ID:         "cart-9",
		Currency:   "EUR",
		CartAmount: 42.5,
		LineItems: domain.LineItems{
			Physical: []domain.LineItem{
				{ID: "99", ProductID: 111, Name: "Sample tote", SKU: "TOTE-1", Quantity: 2, Physical: true},
			},
			Digital: []domain.LineItem{
				{ID: "d-1", ProductID: 300, Quantity: 1},
			},
		},
	}})

	require.NoError(t, err)
	assert.Contains(t, output, "cart: cart-9")
	assert.Contains(t, output, "items: 2")
	assert.Contains(t, output, "total: 42.50 EUR")
	assert.Contains(t, output, "Physical items (1)")
	assert.Contains(t, output, "2x Sample tote")
	assert.Contains(t, output, "(product 111, sku TOTE-1, item 99)")
	assert.Contains(t, output, "Digital items (1)")
	assert.Contains(t, output, "1x product 300")
	assert.Contains(t, output, "(product 300, item d-1)")
}

func TestRenderSkipsEmptySections(t *testing.T) {
	output, err := Render(domain.CartSnapshot{Cart: &domain.Cart{
		ID: "cart-2",
		LineItems: domain.LineItems{
			Physical: []domain.LineItem{{ID: "1", ProductID: 5, Name: "Cap", Quantity: 1, Physical: true}},
		},
	}})

	require.NoError(t, err)
	assert.Contains(t, output, "Physical items (1)")
	assert.NotContains(t, output, "Digital items")
	assert.NotContains(t, output, "total:")
}
