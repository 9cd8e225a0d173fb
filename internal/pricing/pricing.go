// Package pricing computes order totals under the fixed 8% tax policy.
package pricing

import (
	"math"

	"pizza-api/internal/models"
)

// TaxRate is the flat tax applied to every order.
const TaxRate = 0.08

// Totals holds the derived money fields of an order, each rounded to two
// decimals.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Price computes an order's totals. The tax is computed from the raw
// (unrounded) sum of the line items, not from the rounded subtotal; the
// stored subtotal is the rounded sum. An empty item list prices to zero.
func Price(items []models.OrderLineItem) Totals {
	var raw float64
	for _, it := range items {
		raw += it.UnitPrice * float64(it.Quantity)
	}

	tax := round2(raw * TaxRate)
	subtotal := round2(raw)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
	}
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
