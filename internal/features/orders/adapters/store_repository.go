package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	"storefront-core/internal/core/store"
	"storefront-core/internal/features/orders/domain"
)

// historyKey is the store key holding the order history.
const historyKey = "orders"

// StoreOrderRepository persists the order history as a single JSON array,
// newest order first.
type StoreOrderRepository struct {
	store store.Store
}

// NewStoreOrderRepository creates a new StoreOrderRepository.
func NewStoreOrderRepository(s store.Store) *StoreOrderRepository {
	return &StoreOrderRepository{store: s}
}

// List returns the order history, newest first. An absent key or an
// undecodable value yields an empty history, never an error.
func (r *StoreOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	data, err := r.store.Get(ctx, historyKey)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []domain.Order{}, nil
		}
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		logger.Get().Warn("Discarding undecodable order history", zap.Error(err))
		return []domain.Order{}, nil
	}

	return orders, nil
}

// Save prepends the order to the persisted history.
func (r *StoreOrderRepository) Save(ctx context.Context, order domain.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}

	orders = append([]domain.Order{order}, orders...)

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal order history: %w", err)
	}

	if err := r.store.Set(ctx, historyKey, data); err != nil {
		return fmt.Errorf("failed to save order history: %w", err)
	}
	return nil
}
