package domain

import (
	"github.com/shopspring/decimal"
)

// PricingStrategy names one of the two totals formulas. The checkout flow
// and the legacy home flow price carts differently; the two formulas are
// kept separate because unifying them would change charged totals.
type PricingStrategy string

const (
	// PricingCheckout charges subtotal + shipping - discount.
	PricingCheckout PricingStrategy = "checkout"
	// PricingFlatGST charges subtotal + 18% GST, no shipping or discount.
	PricingFlatGST PricingStrategy = "flat_gst"
)

// flatGSTRate is the flat GST percentage of the legacy home flow.
var flatGSTRate = decimal.NewFromFloat(0.18)

// ShippingRates configures the checkout formula's flat shipping fee.
type ShippingRates struct {
	// FreeAbove is the subtotal above which (strictly) shipping is free.
	FreeAbove decimal.Decimal
	// FlatRate is the fee charged at or below the threshold.
	FlatRate decimal.Decimal
}

// Totals is the price breakdown of a cart. Values are unrounded except
// where a formula itself rounds (GST, coupon discounts); presentation
// rounds to the whole unit.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	GST      decimal.Decimal `json:"gst"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeCheckoutTotals prices a cart with the checkout formula:
// subtotal + shipping - discount. Shipping is free strictly above the
// configured threshold. The discount is applied as given; a fixed coupon
// larger than the subtotal is not clamped.
func ComputeCheckoutTotals(cart *Cart, discount decimal.Decimal, rates ShippingRates) Totals {
	subtotal := cart.Subtotal()

	shipping := rates.FlatRate
	if subtotal.GreaterThan(rates.FreeAbove) {
		shipping = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal.Add(shipping).Sub(discount),
	}
}

// ComputeFlatGSTTotals prices a cart with the legacy home flow formula:
// subtotal + GST at a flat 18%, rounded to the whole unit.
func ComputeFlatGSTTotals(cart *Cart) Totals {
	subtotal := cart.Subtotal()
	gst := subtotal.Mul(flatGSTRate).Round(0)

	return Totals{
		Subtotal: subtotal,
		GST:      gst,
		Total:    subtotal.Add(gst),
	}
}
