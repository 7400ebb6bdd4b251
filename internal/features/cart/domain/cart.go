package domain

import (
	"github.com/shopspring/decimal"

	catalog "storefront-core/internal/features/catalog/domain"
)

// Namespace selects which persisted cart a flow operates on. The storefront
// and the legacy home flow keep separate carts that are never merged.
type Namespace string

const (
	// NamespaceDefault is the storefront cart.
	NamespaceDefault Namespace = "cart"
	// NamespaceLegacy is the vendor-prefixed cart used by the legacy home flow.
	NamespaceLegacy Namespace = "anEnterprises_cart"
)

// LineItem pairs a product snapshot taken at add-time with a quantity.
// The snapshot is deliberately a full copy: later catalog changes must not
// reprice items already in the cart.
type LineItem struct {
	catalog.Product
	// Quantity is the number of units, always >= 1 while the item exists.
	Quantity int `json:"quantity"`
}

// Amount returns price x quantity for this line.
func (li LineItem) Amount() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart owns an ordered list of line items with at most one item per product id.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add merges the product into the cart. An existing line with the same id
// has its quantity incremented; otherwise a new line is appended. Quantities
// below 1 are treated as 1. Invalid products are ignored.
func (c *Cart) Add(p catalog.Product, quantity int) {
	if !p.Valid() {
		return
	}
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity += quantity
			return
		}
	}

	c.Items = append(c.Items, LineItem{Product: p, Quantity: quantity})
}

// Remove deletes the line item with the given product id, if present.
func (c *Cart) Remove(productID int) {
	out := c.Items[:0]
	for _, li := range c.Items {
		if li.ID != productID {
			out = append(out, li)
		}
	}
	c.Items = out
}

// SetQuantity sets the line item's quantity to exactly quantity (absolute,
// not a delta). A quantity <= 0 removes the line item. Unknown ids are a
// no-op.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Find returns the line item for the product id, or nil.
func (c *Cart) Find(productID int) *LineItem {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// TotalQuantity returns the summed quantity over all line items (the badge
// count shown next to the cart icon).
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, li := range c.Items {
		total += li.Quantity
	}
	return total
}

// Subtotal returns the unrounded sum of price x quantity over all items.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, li := range c.Items {
		subtotal = subtotal.Add(li.Amount())
	}
	return subtotal
}

// Clone returns a deep copy of the cart. Order assembly freezes the clone so
// later cart mutations cannot reach into placed orders.
func (c *Cart) Clone() *Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return &Cart{Items: items}
}

// Empty reports whether the cart holds no items.
func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}
