package finance

// LineItem is a single billable line on an invoice or estimate. Amount is
// stored at creation time and must equal Round2(Quantity * UnitPrice).
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// NewLineItem builds a line with its amount computed from quantity and price.
func NewLineItem(id, description string, quantity, unitPrice float64) LineItem {
	return LineItem{
		ID:          id,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      LineItemAmount(quantity, unitPrice),
	}
}
