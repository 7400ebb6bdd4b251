package service

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"storefront-core/internal/features/coupons/domain"
)

// ErrEmptyCode is returned when no coupon code was supplied.
var ErrEmptyCode = errors.New("coupon code is empty")

// ErrInvalidCoupon is returned when the code is not in the rule table.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// Applied is the outcome of a successful coupon application.
type Applied struct {
	// Code is the normalized (upper-cased) coupon code.
	Code string `json:"code"`
	// Discount is the computed discount amount for the given subtotal.
	Discount decimal.Decimal `json:"discount"`
	// Description explains the coupon to the customer.
	Description string `json:"description"`
}

// CouponService resolves coupon codes against the configured rule table.
type CouponService struct {
	rules map[string]domain.Rule
}

// NewCouponService creates a CouponService. Passing nil rules uses the
// default storefront table.
func NewCouponService(rules []domain.Rule) *CouponService {
	if rules == nil {
		rules = domain.DefaultRules()
	}

	byCode := make(map[string]domain.Rule, len(rules))
	for _, r := range rules {
		byCode[strings.ToUpper(r.Code)] = r
	}
	return &CouponService{rules: byCode}
}

// Apply resolves the code (trimmed, case-insensitive) and computes the
// discount for the subtotal. Re-applying a different code overwrites any
// previously held discount; the caller keeps only the latest Applied.
func (s *CouponService) Apply(code string, subtotal decimal.Decimal) (*Applied, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrEmptyCode
	}

	rule, ok := s.rules[normalized]
	if !ok {
		return nil, ErrInvalidCoupon
	}

	return &Applied{
		Code:        normalized,
		Discount:    rule.Discount(subtotal),
		Description: rule.Description,
	}, nil
}
