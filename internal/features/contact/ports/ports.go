package ports

import (
	"context"

	"storefront-core/internal/features/contact/domain"
)

// MessageRepository defines the interface for the contact message backup.
// This is a Secondary Port (Driven Port).
type MessageRepository interface {
	// Save prepends the message so the newest one comes first.
	Save(ctx context.Context, msg domain.Message) error
	// List returns every backed-up message, newest first.
	List(ctx context.Context) ([]domain.Message, error)
}
