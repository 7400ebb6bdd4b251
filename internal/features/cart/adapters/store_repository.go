package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	"storefront-core/internal/core/store"
	"storefront-core/internal/features/cart/domain"
)

// StoreCartRepository persists carts as JSON arrays of line items, keyed by
// namespace. The array layout keeps the persisted shape of the original
// storefront carts.
type StoreCartRepository struct {
	store store.Store
}

// NewStoreCartRepository creates a new StoreCartRepository.
func NewStoreCartRepository(s store.Store) *StoreCartRepository {
	return &StoreCartRepository{store: s}
}

// Load reads the cart for the namespace. An absent key or an undecodable
// value yields an empty cart, never an error.
func (r *StoreCartRepository) Load(ctx context.Context, ns domain.Namespace) (*domain.Cart, error) {
	data, err := r.store.Get(ctx, string(ns))
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return &domain.Cart{}, nil
		}
		return nil, fmt.Errorf("failed to load cart %q: %w", ns, err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Get().Warn("Discarding undecodable cart value",
			zap.String("namespace", string(ns)),
			zap.Error(err),
		)
		return &domain.Cart{}, nil
	}

	return &domain.Cart{Items: items}, nil
}

// Save writes the cart under the namespace.
func (r *StoreCartRepository) Save(ctx context.Context, ns domain.Namespace, cart *domain.Cart) error {
	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %q: %w", ns, err)
	}

	if err := r.store.Set(ctx, string(ns), data); err != nil {
		return fmt.Errorf("failed to save cart %q: %w", ns, err)
	}
	return nil
}

// Clear removes the persisted cart for the namespace.
func (r *StoreCartRepository) Clear(ctx context.Context, ns domain.Namespace) error {
	if err := r.store.Delete(ctx, string(ns)); err != nil {
		return fmt.Errorf("failed to clear cart %q: %w", ns, err)
	}
	return nil
}
