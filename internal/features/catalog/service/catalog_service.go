package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"storefront-core/internal/features/catalog/domain"
	"storefront-core/internal/features/catalog/ports"
)

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")

// Sort orders supported by List.
const (
	SortRecommended = "recommended"
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
	SortRating      = "rating"
)

// Filter narrows and orders the product list.
type Filter struct {
	// Category keeps only products of this category ("all" or empty keeps everything).
	Category string
	// Subcategory keeps only products of this subcategory when set.
	Subcategory string
	// MaxPrice keeps only products at or below this base price when set.
	MaxPrice decimal.Decimal
	// Query is a case-insensitive match against name, brand and description.
	Query string
	// Sort is one of the Sort* constants; unknown values keep catalog order.
	Sort string
}

// CatalogService handles product browsing: filtering, search and sorting.
type CatalogService struct {
	provider ports.CatalogProvider
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(provider ports.CatalogProvider) *CatalogService {
	return &CatalogService{provider: provider}
}

// List returns the catalog narrowed by the filter and ordered by its sort key.
func (s *CatalogService) List(f Filter) ([]domain.Product, error) {
	products, err := s.provider.Products()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matches(p, f) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, f.Sort)
	return out, nil
}

// Find returns the product with the given id.
func (s *CatalogService) Find(id int) (*domain.Product, error) {
	products, err := s.provider.Products()
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %d: %w", id, err)
	}

	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func matches(p domain.Product, f Filter) bool {
	if f.Category != "" && f.Category != "all" && string(p.Category) != f.Category {
		return false
	}
	if f.Subcategory != "" && f.Subcategory != "all" && p.Subcategory != f.Subcategory {
		return false
	}
	if f.MaxPrice.IsPositive() && p.Price.GreaterThan(f.MaxPrice) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(strings.TrimSpace(f.Query))
		haystack := strings.ToLower(p.Name + " " + p.Brand + " " + p.Description)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}

func sortProducts(products []domain.Product, order string) {
	switch order {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
	// SortRecommended and unknown keys keep the catalog's own order.
}
