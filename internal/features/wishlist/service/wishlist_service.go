package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	catalog "storefront-core/internal/features/catalog/domain"
	"storefront-core/internal/features/wishlist/domain"
	"storefront-core/internal/features/wishlist/ports"
)

// WishlistService owns the persisted wishlist with write-through semantics.
type WishlistService struct {
	mu   sync.Mutex
	repo ports.WishlistRepository
}

// NewWishlistService creates a new instance of WishlistService.
func NewWishlistService(repo ports.WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

// Items returns the current wishlist.
func (s *WishlistService) Items(ctx context.Context) (*domain.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load(ctx)
}

// Toggle flips the product's membership and persists the result, reporting
// whether the product was added or removed.
func (s *WishlistService) Toggle(ctx context.Context, p catalog.Product) (*domain.Wishlist, domain.ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.repo.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	result := w.Toggle(p)
	if err := s.repo.Save(ctx, w); err != nil {
		return nil, "", err
	}

	logger.Get().Debug("Wishlist toggled",
		zap.Int("product_id", p.ID),
		zap.String("result", string(result)),
	)
	return w, result, nil
}
