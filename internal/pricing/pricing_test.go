package pricing

import (
	"math"
	"testing"

	"pizza-api/internal/models"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.OrderLineItem
		wantSubtotal float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name: "two line items",
			items: []models.OrderLineItem{
				{UnitPrice: 10.00, Quantity: 2},
				{UnitPrice: 5.50, Quantity: 1},
			},
			wantSubtotal: 25.50,
			wantTax:      2.04,
			wantTotal:    27.54,
		},
		{
			name:         "empty order prices to zero",
			items:        nil,
			wantSubtotal: 0,
			wantTax:      0,
			wantTotal:    0,
		},
		{
			name: "single item",
			items: []models.OrderLineItem{
				{UnitPrice: 12.99, Quantity: 1},
			},
			wantSubtotal: 12.99,
			wantTax:      1.04,
			wantTotal:    14.03,
		},
		{
			name: "fractional sum is rounded for storage",
			items: []models.OrderLineItem{
				{UnitPrice: 3.333, Quantity: 1},
			},
			wantSubtotal: 3.33,
			wantTax:      0.27,
			wantTotal:    3.60,
		},
		{
			name: "zero priced item",
			items: []models.OrderLineItem{
				{UnitPrice: 0, Quantity: 3},
			},
			wantSubtotal: 0,
			wantTax:      0,
			wantTotal:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(tt.items)
			if !approx(got.Subtotal, tt.wantSubtotal) {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.wantSubtotal)
			}
			if !approx(got.Tax, tt.wantTax) {
				t.Errorf("Tax = %v, want %v", got.Tax, tt.wantTax)
			}
			if !approx(got.Total, tt.wantTotal) {
				t.Errorf("Total = %v, want %v", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestPriceTaxUsesUnroundedSum(t *testing.T) {
	// 1.111 * 3 = 3.333; tax must come from 3.333, not from the stored
	// subtotal 3.33.
	got := Price([]models.OrderLineItem{{UnitPrice: 1.111, Quantity: 3}})
	wantTax := math.Round(3.333*TaxRate*100) / 100
	if !approx(got.Tax, wantTax) {
		t.Errorf("Tax = %v, want %v", got.Tax, wantTax)
	}
	if !approx(got.Subtotal, 3.33) {
		t.Errorf("Subtotal = %v, want 3.33", got.Subtotal)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.044, 2.04},
		{2.046, 2.05},
		{0.125, 0.13},
		{-0.125, -0.13},
		{0, 0},
	}
	for _, tt := range tests {
		if got := round2(tt.in); !approx(got, tt.want) {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
