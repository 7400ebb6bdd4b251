package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront-core/internal/core/config"
	"storefront-core/internal/core/logger"
	cart "storefront-core/internal/features/cart/domain"
	cartservice "storefront-core/internal/features/cart/service"
	couponservice "storefront-core/internal/features/coupons/service"
	handoffdomain "storefront-core/internal/features/handoff/domain"
	"storefront-core/internal/features/orders/domain"
	"storefront-core/internal/features/orders/ports"
)

// ErrEmptyCart is returned when an order is placed against an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// ErrPaymentNotConfirmed is returned when a prepaid order is placed without
// the payment confirmation flag.
var ErrPaymentNotConfirmed = errors.New("payment not confirmed")

// ErrOrderNotFound is returned when no order in the history matches the id.
var ErrOrderNotFound = errors.New("order not found")

// Dispatcher routes assembled order text to the merchant.
type Dispatcher interface {
	Dispatch(text, subject string) handoffdomain.Result
}

// PlaceOrderInput carries everything the checkout form submits.
type PlaceOrderInput struct {
	Customer domain.Customer      `json:"customer"`
	Payment  domain.PaymentMethod `json:"payment"`
	// PaymentConfirmed must be set for prepaid orders; the customer attests
	// the UPI transfer was completed.
	PaymentConfirmed bool `json:"paymentConfirmed"`
	// CouponCode is optional; empty means no coupon.
	CouponCode string `json:"couponCode"`
}

// PlaceOrderResult is the outcome of a placed order. OrderText is always
// present so a failed hand-off can fall back to manual copy; InvoiceHTML is
// the printable invoice.
type PlaceOrderResult struct {
	Order       domain.Order         `json:"order"`
	Result      handoffdomain.Result `json:"result"`
	OrderText   string               `json:"orderText"`
	InvoiceHTML string               `json:"invoiceHtml"`
}

// OrderService assembles orders from the cart and orchestrates placement:
// validate, assemble, persist, hand off, and clear the cart on success.
type OrderService struct {
	repo     ports.OrderRepository
	carts    *cartservice.CartService
	coupons  *couponservice.CouponService
	dispatch Dispatcher
	merchant config.MerchantConfig
	now      func() time.Time
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	repo ports.OrderRepository,
	carts *cartservice.CartService,
	coupons *couponservice.CouponService,
	dispatch Dispatcher,
	merchant config.MerchantConfig,
) *OrderService {
	return &OrderService{
		repo:     repo,
		carts:    carts,
		coupons:  coupons,
		dispatch: dispatch,
		merchant: merchant,
		now:      time.Now,
	}
}

// Assemble freezes the current cart into an order without persisting it. The
// coupon, when given, is re-resolved against the live subtotal so a stale
// discount can never be carried into the order.
func (s *OrderService) Assemble(ctx context.Context, input PlaceOrderInput) (*domain.Order, error) {
	if errs := input.Customer.Validate(); errs != nil {
		return nil, errs
	}

	current, err := s.carts.Items(ctx)
	if err != nil {
		return nil, err
	}
	if current.Empty() {
		return nil, ErrEmptyCart
	}

	discount := decimal.Zero
	coupon := ""
	if input.CouponCode != "" {
		applied, err := s.coupons.Apply(input.CouponCode, current.Subtotal())
		if err != nil {
			return nil, err
		}
		discount = applied.Discount
		coupon = applied.Code
	}

	frozen := current.Clone()
	now := s.now()

	return &domain.Order{
		OrderID:   domain.NewOrderID(s.merchant.OrderPrefix, now),
		Customer:  input.Customer,
		Items:     frozen.Items,
		Payment:   domain.PaymentFor(input.Payment),
		Totals:    cart.ComputeCheckoutTotals(frozen, discount, s.carts.Rates()),
		Coupon:    coupon,
		Timestamp: now,
	}, nil
}

// PlaceOrder runs the full checkout: validate, assemble, persist to the
// history, hand off to the merchant, and clear the cart. The cart survives a
// failed hand-off so the customer can retry; the order stays in the history
// either way.
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error) {
	if input.Payment == domain.PaymentMethodGPay && !input.PaymentConfirmed {
		return nil, ErrPaymentNotConfirmed
	}

	order, err := s.Assemble(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, *order); err != nil {
		return nil, err
	}

	text := order.HumanText(s.merchant.StoreName)
	subject := fmt.Sprintf("New Order %s", order.OrderID)
	result := s.dispatch.Dispatch(text, subject)

	if result == handoffdomain.ResultDelivered {
		if err := s.carts.Clear(ctx); err != nil {
			// The order is already placed and handed off; log and move on.
			logger.Get().Error("Failed to clear cart after order",
				zap.String("order_id", order.OrderID),
				zap.Error(err),
			)
		}
	}

	invoice, err := order.InvoiceHTML(s.merchant.StoreName)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Order placed",
		zap.String("order_id", order.OrderID),
		zap.String("result", string(result)),
		zap.String("payment", order.Payment.Method),
	)

	return &PlaceOrderResult{
		Order:       *order,
		Result:      result,
		OrderText:   text,
		InvoiceHTML: invoice,
	}, nil
}

// History returns the order history, newest first.
func (s *OrderService) History(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// FindByID looks an order up in the history.
func (s *OrderService) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID == orderID {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
}
