package storefront

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bnema/multicart-cli/internal/domain"
)

// itemID accepts both the string ids the storefront API documents and the
// numeric ids some themes and proxies emit.
type itemID string

func (id *itemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*id = itemID(raw)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("decode line item id: %w", err)
	}
	if _, err := strconv.ParseInt(number.String(), 10, 64); err != nil {
		return fmt.Errorf("decode line item id %q: %w", number.String(), err)
	}
	*id = itemID(number.String())
	return nil
}

type lineItemsRequest struct {
	LineItems []domain.LineItemRequest `json:"lineItems"`
}

type currencyPayload struct {
	Code string `json:"code"`
}

type lineItemPayload struct {
	ID        itemID `json:"id"`
	ProductID int64  `json:"productId"`
	VariantID int64  `json:"variantId"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
}

type lineItemsPayload struct {
	PhysicalItems []lineItemPayload `json:"physicalItems"`
	DigitalItems  []lineItemPayload `json:"digitalItems"`
}

type cartPayload struct {
	ID         string           `json:"id"`
	CustomerID int64            `json:"customerId"`
	Currency   currencyPayload  `json:"currency"`
	BaseAmount float64          `json:"baseAmount"`
	CartAmount float64          `json:"cartAmount"`
	LineItems  lineItemsPayload `json:"lineItems"`
}

func (p cartPayload) toDomain() domain.Cart {
	return domain.Cart{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Currency:   p.Currency.Code,
		BaseAmount: p.BaseAmount,
		CartAmount: p.CartAmount,
		LineItems: domain.LineItems{
			Physical: toLineItems(p.LineItems.PhysicalItems, true),
			Digital:  toLineItems(p.LineItems.DigitalItems, false),
		},
	}
}

func toLineItems(items []lineItemPayload, physical bool) []domain.LineItem {
	if len(items) == 0 {
		return nil
	}

	result := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		result = append(result, domain.LineItem{
			ID:        string(item.ID),
			ProductID: domain.ProductID(item.ProductID),
			VariantID: item.VariantID,
			Name:      item.Name,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			Physical:  physical,
		})
	}

	return result
}
