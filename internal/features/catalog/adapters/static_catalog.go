package adapter

import (
	"github.com/shopspring/decimal"

	"storefront-core/internal/features/catalog/domain"
)

// StaticCatalogAdapter serves a fixed in-memory product list. It backs the
// storefront when no remote product feed is configured.
type StaticCatalogAdapter struct {
	products []domain.Product
}

// NewStaticCatalogAdapter creates an adapter over the given records.
// Passing nil serves the built-in merchant catalog.
func NewStaticCatalogAdapter(products []domain.Product) *StaticCatalogAdapter {
	if products == nil {
		products = defaultProducts()
	}
	return &StaticCatalogAdapter{products: products}
}

// Products returns a copy of the catalog so callers cannot mutate it.
func (a *StaticCatalogAdapter) Products() ([]domain.Product, error) {
	out := make([]domain.Product, len(a.products))
	copy(out, a.products)
	return out, nil
}

func price(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// defaultProducts is the built-in merchant catalog.
func defaultProducts() []domain.Product {
	gst18 := price(18)
	gst12 := price(12)

	return []domain.Product{
		{
			ID: 1, Name: "Classic Cotton Bedsheet Set", Price: price(1299),
			Image: "https://images.example.com/products/bedsheet.jpg",
			Description: "King-size cotton bedsheet with two pillow covers",
			Category: domain.CategoryHome, Rating: 4.3, ReviewCount: 210,
			GST: gst18, Brand: "HomeNest", OriginalPrice: price(1999),
			Discount: 35, Badge: "Bestseller",
		},
		{
			ID: 2, Name: "Non-Stick Cookware Set", Price: price(2499),
			Image: "https://images.example.com/products/cookware.jpg",
			Description: "5-piece induction-friendly non-stick set",
			Category: domain.CategoryKitchen, Subcategory: "cookware",
			Rating: 4.5, ReviewCount: 182, GST: gst18, Brand: "ChefLine",
		},
		{
			ID: 3, Name: "Stainless Steel Storage Jars", Price: price(499),
			Image: "https://images.example.com/products/jars.jpg",
			Description: "Set of 3 airtight kitchen storage jars",
			Category: domain.CategoryKitchen, Subcategory: "storage",
			Rating: 4.1, ReviewCount: 96, GST: gst12, Brand: "ChefLine",
		},
		{
			ID: 4, Name: "Ceramic Table Vase", Price: price(799),
			Image: "https://images.example.com/products/vase.jpg",
			Description: "Hand-glazed ceramic vase for living room decor",
			Category: domain.CategoryDecor, Rating: 4.6, ReviewCount: 64,
			GST: gst12, Brand: "Artisa", Badge: "New",
		},
		{
			ID: 5, Name: "Copper Bottom Kadhai", Price: price(899),
			Image: "https://images.example.com/products/kadhai.jpg",
			Description: "Heavy-gauge kadhai with copper bottom, 2.5L",
			Category: domain.CategoryKitchen, Subcategory: "cookware",
			Rating: 4.2, ReviewCount: 143, GST: gst18, Brand: "ChefLine",
			OriginalPrice: price(1199), Discount: 25,
		},
		{
			ID: 6, Name: "Wall Hanging Photo Frames", Price: price(649),
			Image: "https://images.example.com/products/frames.jpg",
			Description: "Set of 6 wooden collage photo frames",
			Category: domain.CategoryDecor, Rating: 4.0, ReviewCount: 58,
			GST: gst12, Brand: "Artisa",
		},
		{
			ID: 7, Name: "Microfiber Bath Towel Set", Price: price(549),
			Image: "https://images.example.com/products/towels.jpg",
			Description: "Quick-dry towel set of 4, assorted colours",
			Category: domain.CategoryHome, Rating: 4.4, ReviewCount: 315,
			GST: gst18, Brand: "HomeNest", Badge: "Bestseller",
		},
		{
			ID: 8, Name: "Electric Kettle 1.5L", Price: price(1099),
			Image: "https://images.example.com/products/kettle.jpg",
			Description: "Auto cut-off kettle with concealed element",
			Category: domain.CategoryKitchen, Subcategory: "appliances",
			Rating: 4.3, ReviewCount: 201, GST: gst18, Brand: "VoltEdge",
			OriginalPrice: price(1599), Discount: 31,
		},
	}
}
