package domain

import (
	"fmt"
	"strings"
)

type ProductID int64

type Product struct {
	ID   ProductID
	Name string
}

func (p Product) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("product id must be positive, got %d", p.ID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product %d: name is required", p.ID)
	}

	return nil
}

// BulkAddRequests builds one quantity-1 request per product, in catalog order.
// Duplicate products produce duplicate requests; the remote cart decides how
// they combine.
func BulkAddRequests(products []Product) []LineItemRequest {
	requests := make([]LineItemRequest, 0, len(products))
	for _, product := range products {
		requests = append(requests, LineItemRequest{ProductID: product.ID, Quantity: 1})
	}

	return requests
}
