package repo

import (
	"sort"
	"strings"
	"time"

	models "github.com/rmoran/stocktrack/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of
// ItemRepository. It resolves joined supplier/category names through
// the reference repositories it is constructed with.
type InMemoryItemRepository struct {
	items      []models.Item
	nextID     int
	suppliers  *InMemoryReferenceRepository
	categories *InMemoryReferenceRepository
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository(suppliers, categories *InMemoryReferenceRepository) *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items:      []models.Item{},
		nextID:     1,
		suppliers:  suppliers,
		categories: categories,
	}
}

func (r *InMemoryItemRepository) Create(item models.Item) (models.Item, error) {
	item.ID = r.nextID
	r.nextID++
	if item.SKU != nil && *item.SKU == "" {
		item.SKU = nil
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	item.DeletedAt = nil
	r.items = append(r.items, item)
	return r.withNames(item), nil
}

func (r *InMemoryItemRepository) GetByID(id int) (models.Item, error) {
	for _, item := range r.items {
		if item.ID == id {
			return r.withNames(item), nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) List(filter ItemFilter) ([]models.Item, error) {
	items := []models.Item{}
	for _, item := range r.items {
		joined := r.withNames(item)
		if !matches(joined, filter) {
			continue
		}
		items = append(items, joined)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func matches(item models.Item, filter ItemFilter) bool {
	if filter.Supplier != "" && item.Supplier != filter.Supplier {
		return false
	}
	if filter.Category != "" && item.Category != filter.Category {
		return false
	}
	if filter.Query != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Query)) {
		return false
	}
	if filter.SKU != "" && (item.SKU == nil || *item.SKU != filter.SKU) {
		return false
	}
	if !filter.IncludeDeleted && item.Deleted() {
		return false
	}
	return true
}

func (r *InMemoryItemRepository) Update(id int, patch ItemPatch) (models.Item, error) {
	for i, item := range r.items {
		if item.ID != id {
			continue
		}
		if patch.SKU != nil {
			if *patch.SKU == "" {
				item.SKU = nil
			} else {
				sku := *patch.SKU
				item.SKU = &sku
			}
		}
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.Price != nil {
			item.Price = *patch.Price
		}
		if patch.SupplierID != nil {
			item.SupplierID = *patch.SupplierID
		}
		if patch.CategoryID != nil {
			item.CategoryID = *patch.CategoryID
		}
		if patch.Undelete {
			item.DeletedAt = nil
		}
		item.UpdatedAt = time.Now().UTC()
		r.items[i] = item
		return r.withNames(item), nil
	}
	return models.Item{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) SoftDelete(id int) error {
	for i, item := range r.items {
		if item.ID == id {
			now := time.Now().UTC()
			item.DeletedAt = &now
			item.UpdatedAt = now
			r.items[i] = item
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryItemRepository) Undelete(id int) (models.Item, error) {
	return r.Update(id, ItemPatch{Undelete: true})
}

// Clear removes all items.
func (r *InMemoryItemRepository) Clear() {
	r.items = []models.Item{}
	r.nextID = 1
}

func (r *InMemoryItemRepository) withNames(item models.Item) models.Item {
	item.Supplier = r.suppliers.NameByID(item.SupplierID)
	item.Category = r.categories.NameByID(item.CategoryID)
	return item
}
