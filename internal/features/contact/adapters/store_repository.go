package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	"storefront-core/internal/core/store"
	"storefront-core/internal/features/contact/domain"
)

// StoreMessageRepository persists contact messages as a single JSON array,
// newest message first.
type StoreMessageRepository struct {
	store store.Store
}

// NewStoreMessageRepository creates a new StoreMessageRepository.
func NewStoreMessageRepository(s store.Store) *StoreMessageRepository {
	return &StoreMessageRepository{store: s}
}

// List returns the backed-up messages, newest first. An absent key or an
// undecodable value yields an empty list, never an error.
func (r *StoreMessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	data, err := r.store.Get(ctx, domain.StorageKey)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []domain.Message{}, nil
		}
		return nil, fmt.Errorf("failed to load contact messages: %w", err)
	}

	var msgs []domain.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		logger.Get().Warn("Discarding undecodable contact messages", zap.Error(err))
		return []domain.Message{}, nil
	}

	return msgs, nil
}

// Save prepends the message to the backup.
func (r *StoreMessageRepository) Save(ctx context.Context, msg domain.Message) error {
	msgs, err := r.List(ctx)
	if err != nil {
		return err
	}

	msgs = append([]domain.Message{msg}, msgs...)

	data, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("failed to marshal contact messages: %w", err)
	}

	if err := r.store.Set(ctx, domain.StorageKey, data); err != nil {
		return fmt.Errorf("failed to save contact messages: %w", err)
	}
	return nil
}
