package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalsFor(t *testing.T) {
	tests := []struct {
		name         string
		items        []CartItem
		wantSubtotal float64
		wantShipping float64
	}{
		{
			name:         "empty cart",
			items:        nil,
			wantSubtotal: 0,
			wantShipping: FlatShippingRate,
		},
		{
			name: "below free shipping threshold",
			items: []CartItem{
				{ID: "l1", ProductID: "p1", Price: 24.99, Quantity: 2},
			},
			wantSubtotal: 49.98,
			wantShipping: FlatShippingRate,
		},
		{
			name: "exactly at threshold still ships flat",
			items: []CartItem{
				{ID: "l1", ProductID: "p1", Price: 50, Quantity: 2},
			},
			wantSubtotal: 100,
			wantShipping: FlatShippingRate,
		},
		{
			name: "above threshold ships free",
			items: []CartItem{
				{ID: "l1", ProductID: "p1", Price: 60, Quantity: 2},
			},
			wantSubtotal: 120,
			wantShipping: 0,
		},
		{
			name: "multiple lines sum per quantity",
			items: []CartItem{
				{ID: "l1", ProductID: "p1", Price: 10, Quantity: 3},
				{ID: "l2", ProductID: "p2", Price: 5.50, Quantity: 1},
			},
			wantSubtotal: 35.50,
			wantShipping: FlatShippingRate,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := TotalsFor(tt.items)
			assert.InDelta(t, tt.wantSubtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.wantShipping, got.Shipping, 1e-9)
			assert.InDelta(t, tt.wantSubtotal*TaxRate, got.Tax, 1e-9)
			assert.InDelta(t, got.Subtotal+got.Shipping+got.Tax, got.Total, 1e-9)
		})
	}
}
