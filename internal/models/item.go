package models

import "time"

// Item represents a stock item. Supplier and Category carry the joined
// reference names when the item is read back from the store.
type Item struct {
	ID         int        `json:"id"`
	SKU        *string    `json:"sku"`
	Name       string     `json:"item"`
	Quantity   int        `json:"quantity"`
	Price      float64    `json:"price"`
	SupplierID int        `json:"supplier_id"`
	CategoryID int        `json:"category_id"`
	Supplier   string     `json:"supplier"`
	Category   string     `json:"category"`
	DeletedAt  *time.Time `json:"deleted_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Deleted reports whether the item is soft-deleted.
func (i Item) Deleted() bool {
	return i.DeletedAt != nil
}
