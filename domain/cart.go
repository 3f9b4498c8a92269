package domain

// Shipping and tax policy applied to every cart read.
const (
	FreeShippingThreshold = 100.0
	FlatShippingRate      = 9.99
	TaxRate               = 0.08
)

// CartItem is one cart line: a product reference plus a purchase quantity.
// ID identifies the line itself, distinct from the product id; Price is a
// snapshot taken when the line was created.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// CartTotals holds the derived money amounts for a cart snapshot
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// TotalsFor derives totals from cart lines. Pure; recomputed on every read
// and never stored. Shipping is free strictly above the threshold.
func TotalsFor(items []CartItem) CartTotals {
	var t CartTotals
	for _, it := range items {
		t.Subtotal += it.Price * float64(it.Quantity)
	}
	if t.Subtotal <= FreeShippingThreshold {
		t.Shipping = FlatShippingRate
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Shipping + t.Tax
	return t
}
