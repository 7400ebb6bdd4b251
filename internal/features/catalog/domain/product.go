package domain

import (
	"github.com/shopspring/decimal"
)

// Category groups products into the storefront's top-level sections.
type Category string

const (
	CategoryHome    Category = "home"
	CategoryKitchen Category = "kitchen"
	CategoryDecor   Category = "decor"
)

// Product is an immutable catalog record. Identity is the numeric ID;
// carts and wishlists store full snapshots of it taken at add-time.
type Product struct {
	// ID is the unique product identifier.
	ID int `json:"id"`
	// Name is the display name of the product.
	Name string `json:"name"`
	// Price is the base unit price, excluding GST.
	Price decimal.Decimal `json:"price"`
	// Image is the URL of the product picture.
	Image string `json:"image"`
	// Description is the short marketing description.
	Description string `json:"description"`
	// Category is the top-level section the product belongs to.
	Category Category `json:"category"`
	// Subcategory optionally refines the category (e.g., cookware).
	Subcategory string `json:"subcategory,omitempty"`
	// Rating is the average customer rating, 0-5.
	Rating float64 `json:"rating,omitempty"`
	// ReviewCount is the number of customer reviews.
	ReviewCount int `json:"reviewCount"`
	// GST is the per-item GST percentage folded into the displayed price.
	GST decimal.Decimal `json:"gst"`
	// Brand is the optional brand name.
	Brand string `json:"brand,omitempty"`
	// OriginalPrice is the optional pre-discount display price.
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	// Discount is the optional display discount percentage.
	Discount int `json:"discount,omitempty"`
	// Badge is the optional display badge (e.g., "Bestseller").
	Badge string `json:"badge,omitempty"`
}

// Valid reports whether the record identifies a real product.
// Operations receiving an invalid product degrade to no-ops.
func (p Product) Valid() bool {
	return p.ID > 0
}

// PriceWithGST returns the displayed unit price with the per-item GST
// percentage folded in. This is the kitchen/home card price and is distinct
// from the checkout totals formula, which charges the base price.
func (p Product) PriceWithGST() decimal.Decimal {
	return p.Price.Add(p.Price.Mul(p.GST).Div(decimal.NewFromInt(100)))
}
