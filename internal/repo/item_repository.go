package repo

import models "github.com/rmoran/stocktrack/internal/models"

// ItemFilter narrows a listing. Zero values mean "no constraint".
type ItemFilter struct {
	Supplier       string // exact supplier name
	Category       string // exact category name
	Query          string // case-insensitive substring of the item name
	SKU            string // exact sku
	IncludeDeleted bool
}

// ItemPatch is a partial update. Nil fields are left untouched.
// Foreign keys arrive already resolved; name-to-id resolution happens
// before the repository is called.
type ItemPatch struct {
	SKU        *string // empty string clears the sku
	Name       *string
	Quantity   *int
	Price      *float64
	SupplierID *int
	CategoryID *int
	Undelete   bool
}

// ItemRepository defines the interface for item data operations.
type ItemRepository interface {
	Create(item models.Item) (models.Item, error)
	GetByID(id int) (models.Item, error)
	List(filter ItemFilter) ([]models.Item, error)
	Update(id int, patch ItemPatch) (models.Item, error)
	SoftDelete(id int) error
	Undelete(id int) (models.Item, error)
}
