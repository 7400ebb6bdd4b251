package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	"storefront-core/internal/features/cart/domain"
	"storefront-core/internal/features/cart/ports"
	catalog "storefront-core/internal/features/catalog/domain"
)

// CartService owns one persisted cart namespace and applies every mutation
// write-through: the store is updated before the call returns the refreshed
// cart for the caller to re-render. A mutex serializes the load-mutate-save
// sequence, which the single-threaded origin got for free.
type CartService struct {
	mu    sync.Mutex
	repo  ports.CartRepository
	ns    domain.Namespace
	rates domain.ShippingRates
}

// NewCartService creates a CartService bound to a namespace.
func NewCartService(repo ports.CartRepository, ns domain.Namespace, rates domain.ShippingRates) *CartService {
	return &CartService{
		repo:  repo,
		ns:    ns,
		rates: rates,
	}
}

// Namespace returns the namespace this service is bound to.
func (s *CartService) Namespace() domain.Namespace {
	return s.ns
}

// Items returns the current cart.
func (s *CartService) Items(ctx context.Context) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load(ctx, s.ns)
}

// AddItem merges the product into the cart. Invalid products are a silent
// no-op; the unchanged cart is returned.
func (s *CartService) AddItem(ctx context.Context, p catalog.Product, quantity int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.repo.Load(ctx, s.ns)
	if err != nil {
		return nil, err
	}

	if !p.Valid() {
		return cart, nil
	}

	cart.Add(p, quantity)
	if err := s.repo.Save(ctx, s.ns, cart); err != nil {
		return nil, err
	}

	logger.Get().Debug("Cart item added",
		zap.String("namespace", string(s.ns)),
		zap.Int("product_id", p.ID),
		zap.Int("quantity", quantity),
	)
	return cart, nil
}

// RemoveItem deletes the line item for the product id; absent ids are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, productID int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.repo.Load(ctx, s.ns)
	if err != nil {
		return nil, err
	}

	cart.Remove(productID)
	if err := s.repo.Save(ctx, s.ns, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity sets the line item's quantity absolutely; quantity <= 0
// removes the line item. Absent ids are a no-op.
func (s *CartService) SetQuantity(ctx context.Context, productID, quantity int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.repo.Load(ctx, s.ns)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(productID, quantity)
	if err := s.repo.Save(ctx, s.ns, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the persisted cart. Called after a successful order hand-off.
func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx, s.ns); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	logger.Get().Info("Cart cleared", zap.String("namespace", string(s.ns)))
	return nil
}

// Totals prices the current cart with the named strategy. The discount only
// participates in the checkout formula.
func (s *CartService) Totals(ctx context.Context, strategy domain.PricingStrategy, discount decimal.Decimal) (domain.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.repo.Load(ctx, s.ns)
	if err != nil {
		return domain.Totals{}, err
	}

	switch strategy {
	case domain.PricingFlatGST:
		return domain.ComputeFlatGSTTotals(cart), nil
	default:
		return domain.ComputeCheckoutTotals(cart, discount, s.rates), nil
	}
}

// Rates exposes the configured shipping rates (the order assembler reuses
// them so both compute identical checkout totals).
func (s *CartService) Rates() domain.ShippingRates {
	return s.rates
}
