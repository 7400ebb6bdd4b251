package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func defaultRates() ShippingRates {
	return ShippingRates{
		FreeAbove: decimal.NewFromInt(1000),
		FlatRate:  decimal.NewFromInt(50),
	}
}

func TestComputeCheckoutTotals_ShippingBoundary(t *testing.T) {
	// The free-shipping boundary is strict: exactly 1000 still pays shipping.
	at := &Cart{}
	at.Add(product(1, 1000), 1)
	totals := ComputeCheckoutTotals(at, decimal.Zero, defaultRates())
	assert.True(t, decimal.NewFromInt(50).Equal(totals.Shipping))
	assert.True(t, decimal.NewFromInt(1050).Equal(totals.Total))

	above := &Cart{}
	above.Add(product(1, 1001), 1)
	totals = ComputeCheckoutTotals(above, decimal.Zero, defaultRates())
	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, decimal.NewFromInt(1001).Equal(totals.Total))
}

func TestComputeCheckoutTotals_Scenario(t *testing.T) {
	// cart = [{id:1,price:500,qty:2},{id:2,price:300,qty:1}]
	cart := &Cart{}
	cart.Add(product(1, 500), 2)
	cart.Add(product(2, 300), 1)

	totals := ComputeCheckoutTotals(cart, decimal.Zero, defaultRates())
	assert.True(t, decimal.NewFromInt(1300).Equal(totals.Subtotal))
	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, decimal.NewFromInt(1300).Equal(totals.Total))

	// Applying a fixed 50 discount drops the total to 1250.
	totals = ComputeCheckoutTotals(cart, decimal.NewFromInt(50), defaultRates())
	assert.True(t, decimal.NewFromInt(50).Equal(totals.Discount))
	assert.True(t, decimal.NewFromInt(1250).Equal(totals.Total))
}

func TestComputeCheckoutTotals_FixedDiscountNotClamped(t *testing.T) {
	cart := &Cart{}
	cart.Add(product(1, 30), 1)

	totals := ComputeCheckoutTotals(cart, decimal.NewFromInt(50), defaultRates())
	// 30 + 50 shipping - 50 discount = 30; a bigger discount may go negative.
	assert.True(t, decimal.NewFromInt(30).Equal(totals.Total))

	totals = ComputeCheckoutTotals(cart, decimal.NewFromInt(100), defaultRates())
	assert.True(t, totals.Total.IsNegative())
}

func TestComputeFlatGSTTotals(t *testing.T) {
	cart := &Cart{}
	cart.Add(product(1, 1000), 1)

	totals := ComputeFlatGSTTotals(cart)
	assert.True(t, decimal.NewFromInt(1000).Equal(totals.Subtotal))
	assert.True(t, decimal.NewFromInt(180).Equal(totals.GST))
	assert.True(t, decimal.NewFromInt(1180).Equal(totals.Total))
	assert.True(t, totals.Shipping.IsZero())
}

func TestComputeFlatGSTTotals_RoundsGST(t *testing.T) {
	cart := &Cart{}
	cart.Add(product(1, 333), 1)

	totals := ComputeFlatGSTTotals(cart)
	// 333 * 0.18 = 59.94, rounded to 60.
	assert.True(t, decimal.NewFromInt(60).Equal(totals.GST))
	assert.True(t, decimal.NewFromInt(393).Equal(totals.Total))
}
