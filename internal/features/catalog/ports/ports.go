package ports

import "storefront-core/internal/features/catalog/domain"

// CatalogProvider defines the interface for retrieving the product list.
// This is a Secondary Port (Driven Port); the catalog itself is read-only
// reference data supplied by the merchant.
type CatalogProvider interface {
	// Products returns all catalog records.
	Products() ([]domain.Product, error)
}
