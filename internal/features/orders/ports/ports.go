package ports

import (
	"context"

	"storefront-core/internal/features/orders/domain"
)

// OrderRepository defines the interface for order history persistence.
// This is a Secondary Port (Driven Port).
type OrderRepository interface {
	// Save prepends the order to the history so the newest order comes first.
	Save(ctx context.Context, order domain.Order) error
	// List returns the full history, newest first.
	List(ctx context.Context) ([]domain.Order, error)
}
