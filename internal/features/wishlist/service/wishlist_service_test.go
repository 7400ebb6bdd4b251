package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "storefront-core/internal/features/catalog/domain"
	"storefront-core/internal/features/wishlist/domain"
)

// mockWishlistRepository is an in-memory WishlistRepository for testing.
type mockWishlistRepository struct {
	items []catalog.Product
}

// Load implements WishlistRepository.
func (m *mockWishlistRepository) Load(ctx context.Context) (*domain.Wishlist, error) {
	items := make([]catalog.Product, len(m.items))
	copy(items, m.items)
	return &domain.Wishlist{Items: items}, nil
}

// Save implements WishlistRepository.
func (m *mockWishlistRepository) Save(ctx context.Context, w *domain.Wishlist) error {
	items := make([]catalog.Product, len(w.Items))
	copy(items, w.Items)
	m.items = items
	return nil
}

func TestWishlistService_Toggle_PersistsEachFlip(t *testing.T) {
	repo := &mockWishlistRepository{}
	svc := NewWishlistService(repo)
	ctx := context.Background()

	p := catalog.Product{ID: 4, Name: "Vase", Price: decimal.NewFromInt(799)}

	w, result, err := svc.Toggle(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, domain.ToggleAdded, result)
	assert.Equal(t, 1, w.Size())
	assert.Len(t, repo.items, 1)

	w, result, err = svc.Toggle(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, domain.ToggleRemoved, result)
	assert.Zero(t, w.Size())
	assert.Empty(t, repo.items)
}
