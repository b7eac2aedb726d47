package application

// Occupancy is the outcome of a lightweight cart probe.
type Occupancy struct {
	CartID    string `json:"cartId,omitempty"`
	LineItems int    `json:"lineItems"`
	Occupied  bool   `json:"occupied"`
}
