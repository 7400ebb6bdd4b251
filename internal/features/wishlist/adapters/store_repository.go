package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	"storefront-core/internal/core/store"
	catalog "storefront-core/internal/features/catalog/domain"
	"storefront-core/internal/features/wishlist/domain"
)

// StoreWishlistRepository persists the wishlist as a JSON array of product
// snapshots under the fixed wishlist key.
type StoreWishlistRepository struct {
	store store.Store
}

// NewStoreWishlistRepository creates a new StoreWishlistRepository.
func NewStoreWishlistRepository(s store.Store) *StoreWishlistRepository {
	return &StoreWishlistRepository{store: s}
}

// Load reads the wishlist; absence or corruption yields an empty wishlist.
func (r *StoreWishlistRepository) Load(ctx context.Context) (*domain.Wishlist, error) {
	data, err := r.store.Get(ctx, domain.StorageKey)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return &domain.Wishlist{}, nil
		}
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	var items []catalog.Product
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Get().Warn("Discarding undecodable wishlist value", zap.Error(err))
		return &domain.Wishlist{}, nil
	}

	return &domain.Wishlist{Items: items}, nil
}

// Save writes the wishlist.
func (r *StoreWishlistRepository) Save(ctx context.Context, w *domain.Wishlist) error {
	items := w.Items
	if items == nil {
		items = []catalog.Product{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal wishlist: %w", err)
	}

	if err := r.store.Set(ctx, domain.StorageKey, data); err != nil {
		return fmt.Errorf("failed to save wishlist: %w", err)
	}
	return nil
}
