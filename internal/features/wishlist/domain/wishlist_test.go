package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "storefront-core/internal/features/catalog/domain"
)

func product(id int) catalog.Product {
	return catalog.Product{ID: id, Name: "Product", Price: decimal.NewFromInt(100)}
}

func TestWishlist_Toggle_AddsThenRemoves(t *testing.T) {
	w := &Wishlist{}

	result := w.Toggle(product(1))
	assert.Equal(t, ToggleAdded, result)
	require.Len(t, w.Items, 1)
	assert.True(t, w.Contains(1))

	result = w.Toggle(product(1))
	assert.Equal(t, ToggleRemoved, result)
	assert.False(t, w.Contains(1))
}

func TestWishlist_Toggle_IsItsOwnInverse(t *testing.T) {
	w := &Wishlist{}
	w.Toggle(product(1))
	w.Toggle(product(2))
	before := make([]catalog.Product, len(w.Items))
	copy(before, w.Items)

	w.Toggle(product(3))
	w.Toggle(product(3))

	assert.Equal(t, before, w.Items)
}

func TestWishlist_Toggle_UniqueById(t *testing.T) {
	w := &Wishlist{}
	w.Toggle(product(1))
	w.Toggle(product(2))
	w.Toggle(product(1))

	require.Len(t, w.Items, 1)
	assert.Equal(t, 2, w.Items[0].ID)
}

func TestWishlist_Toggle_InvalidProductIgnored(t *testing.T) {
	w := &Wishlist{}

	w.Toggle(catalog.Product{})

	assert.Zero(t, w.Size())
}
