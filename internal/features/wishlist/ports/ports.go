package ports

import (
	"context"

	"storefront-core/internal/features/wishlist/domain"
)

// WishlistRepository defines the secondary port for durable wishlist storage.
// An absent or undecodable value loads as an empty wishlist.
type WishlistRepository interface {
	// Load reads the persisted wishlist.
	Load(ctx context.Context) (*domain.Wishlist, error)

	// Save writes the wishlist (write-through, every mutation).
	Save(ctx context.Context, w *domain.Wishlist) error
}
