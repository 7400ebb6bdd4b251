package domain

import (
	"github.com/shopspring/decimal"
)

// Kind distinguishes how a coupon's amount is interpreted.
type Kind string

const (
	// KindPercentage discounts a percentage of the subtotal.
	KindPercentage Kind = "percentage"
	// KindFixed discounts a fixed amount, regardless of subtotal.
	KindFixed Kind = "fixed"
)

// Rule is a coupon definition. At most one coupon is active per order;
// applying a new code overwrites the previous one, there is no stacking.
type Rule struct {
	Code string `json:"code"`
	Kind Kind   `json:"kind"`
	// Amount is a percentage for KindPercentage rules and a currency
	// amount for KindFixed rules.
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Discount computes the discount this rule grants on the subtotal.
// Percentage discounts round to the whole unit. Fixed discounts are taken
// as-is and may exceed the subtotal; totals are not clamped.
func (r Rule) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if r.Kind == KindPercentage {
		return subtotal.Mul(r.Amount).Div(decimal.NewFromInt(100)).Round(0)
	}
	return r.Amount
}

// DefaultRules is the configured coupon table of the storefront.
func DefaultRules() []Rule {
	return []Rule{
		{Code: "WELCOME10", Kind: KindPercentage, Amount: decimal.NewFromInt(10),
			Description: "10% off on your order"},
		{Code: "SAVE50", Kind: KindFixed, Amount: decimal.NewFromInt(50),
			Description: "₹50 off on your order"},
		{Code: "NEWUSER", Kind: KindPercentage, Amount: decimal.NewFromInt(15),
			Description: "15% off for new users"},
	}
}
