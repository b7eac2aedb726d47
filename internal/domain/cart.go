package domain

type LineItemRequest struct {
	ProductID ProductID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type LineItem struct {
	ID        string    `json:"id"`
	ProductID ProductID `json:"productId"`
	VariantID int64     `json:"variantId,omitempty"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku,omitempty"`
	Quantity  int       `json:"quantity"`
	Physical  bool      `json:"physical"`
}

type LineItems struct {
	Physical []LineItem `json:"physicalItems"`
	Digital  []LineItem `json:"digitalItems"`
}

func (l LineItems) Count() int {
	return len(l.Physical) + len(l.Digital)
}

type Cart struct {
	ID         string    `json:"cartId"`
	CustomerID int64     `json:"customerId,omitempty"`
	Currency   string    `json:"currency"`
	BaseAmount float64   `json:"baseAmount"`
	CartAmount float64   `json:"cartAmount"`
	LineItems  LineItems `json:"lineItems"`
}

// CartSnapshot is the result of reading the remote cart. A nil Cart means no
// cart exists for the session.
type CartSnapshot struct {
	Cart *Cart `json:"cart"`
}

func (s CartSnapshot) Empty() bool {
	return s.Cart == nil
}

func (s CartSnapshot) CartID() string {
	if s.Cart == nil {
		return ""
	}
	return s.Cart.ID
}

func (s CartSnapshot) ItemCount() int {
	if s.Cart == nil {
		return 0
	}
	return s.Cart.LineItems.Count()
}

func (s CartSnapshot) HasLineItems() bool {
	return s.ItemCount() > 0
}

type RemovalTarget struct {
	ItemID string
}

// RemovalTargets lists the physical line items of the snapshot in cart order.
// Digital items are left in place.
func (s CartSnapshot) RemovalTargets() []RemovalTarget {
	if s.Cart == nil {
		return nil
	}

	targets := make([]RemovalTarget, 0, len(s.Cart.LineItems.Physical))
	for _, item := range s.Cart.LineItems.Physical {
		targets = append(targets, RemovalTarget{ItemID: item.ID})
	}

	return targets
}
