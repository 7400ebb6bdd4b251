package adapter

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-core/internal/core/store"
	"storefront-core/internal/features/cart/domain"
	catalog "storefront-core/internal/features/catalog/domain"
)

func newTestRepository(t *testing.T) *StoreCartRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := store.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewStoreCartRepository(adapter)
}

func TestStoreCartRepository_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cart := &domain.Cart{}
	cart.Add(catalog.Product{ID: 1, Name: "Kettle", Price: decimal.NewFromInt(1099)}, 2)

	require.NoError(t, repo.Save(ctx, domain.NamespaceDefault, cart))

	loaded, err := repo.Load(ctx, domain.NamespaceDefault)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(1099).Equal(loaded.Items[0].Price))
}

func TestStoreCartRepository_LoadAbsentYieldsEmptyCart(t *testing.T) {
	repo := newTestRepository(t)

	cart, err := repo.Load(context.Background(), domain.NamespaceDefault)
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestStoreCartRepository_LoadCorruptYieldsEmptyCart(t *testing.T) {
	mr := miniredis.RunT(t)
	adapter, err := store.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	ctx := context.Background()
	require.NoError(t, adapter.Set(ctx, string(domain.NamespaceDefault), []byte("{{not json")))

	repo := NewStoreCartRepository(adapter)
	cart, err := repo.Load(ctx, domain.NamespaceDefault)
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestStoreCartRepository_NamespacesAreIsolated(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	storefront := &domain.Cart{}
	storefront.Add(catalog.Product{ID: 1, Price: decimal.NewFromInt(100)}, 1)
	require.NoError(t, repo.Save(ctx, domain.NamespaceDefault, storefront))

	legacy := &domain.Cart{}
	legacy.Add(catalog.Product{ID: 2, Price: decimal.NewFromInt(200)}, 3)
	require.NoError(t, repo.Save(ctx, domain.NamespaceLegacy, legacy))

	// Clearing one namespace must not touch the other.
	require.NoError(t, repo.Clear(ctx, domain.NamespaceDefault))

	gone, err := repo.Load(ctx, domain.NamespaceDefault)
	require.NoError(t, err)
	assert.True(t, gone.Empty())

	kept, err := repo.Load(ctx, domain.NamespaceLegacy)
	require.NoError(t, err)
	require.Len(t, kept.Items, 1)
	assert.Equal(t, 2, kept.Items[0].ID)
}
