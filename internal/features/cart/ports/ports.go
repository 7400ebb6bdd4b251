package ports

import (
	"context"

	"storefront-core/internal/features/cart/domain"
)

// CartRepository defines the secondary port for durable cart storage.
// Implementations translate an absent or undecodable value into an empty
// cart; callers never branch on "store corrupted".
type CartRepository interface {
	// Load reads the cart persisted under the namespace.
	Load(ctx context.Context, ns domain.Namespace) (*domain.Cart, error)

	// Save writes the cart under the namespace (write-through, every mutation).
	Save(ctx context.Context, ns domain.Namespace, cart *domain.Cart) error

	// Clear removes the persisted cart for the namespace.
	Clear(ctx context.Context, ns domain.Namespace) error
}
