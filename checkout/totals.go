// Package checkout derives order totals from in-memory cart state. It is
// pure: recomputed on every request, nothing persisted.
package checkout

import (
	"math"

	"github.com/amirasheikh-dev/storefront-api/models"
)

// TaxRate is the flat sales tax applied to the cart subtotal.
const TaxRate = 0.10

// Summary is the checkout breakdown for one cart.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// UnitPrice is the effective per-unit price of a product: the discount price
// when one is set, the regular price otherwise.
func UnitPrice(p *models.Product) float64 {
	if p == nil {
		return 0
	}
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// Summarize computes subtotal, tax, and total for the given cart lines.
// Amounts are rounded to two decimals for presentation.
func Summarize(items []models.CartItem) Summary {
	var subtotal float64
	for _, item := range items {
		subtotal += UnitPrice(item.Product) * float64(item.Quantity)
	}
	subtotal = round2(subtotal)
	tax := round2(subtotal * TaxRate)
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
