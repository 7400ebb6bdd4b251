package domain

import (
	catalog "storefront-core/internal/features/catalog/domain"
)

// StorageKey is the persisted-store key for the wishlist.
const StorageKey = "wishlist"

// ToggleResult reports what a toggle did.
type ToggleResult string

const (
	ToggleAdded   ToggleResult = "added"
	ToggleRemoved ToggleResult = "removed"
)

// Wishlist is a set of product snapshots, unique by product id. There is no
// quantity concept; membership either exists or it does not.
type Wishlist struct {
	Items []catalog.Product `json:"items"`
}

// Contains reports whether a product id is in the wishlist.
func (w *Wishlist) Contains(productID int) bool {
	for _, p := range w.Items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Toggle flips membership: a present id is removed, an absent one is added
// as a full snapshot. Two toggles restore the original state. Invalid
// products are ignored and reported as removed-nothing.
func (w *Wishlist) Toggle(p catalog.Product) ToggleResult {
	if !p.Valid() {
		return ToggleRemoved
	}

	for i, existing := range w.Items {
		if existing.ID == p.ID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return ToggleRemoved
		}
	}

	w.Items = append(w.Items, p)
	return ToggleAdded
}

// Size returns the number of wishlist entries (the badge count).
func (w *Wishlist) Size() int {
	return len(w.Items)
}
