package handlers

import (
	"fmt"
	"log"
	"net/http"

	models "github.com/rmoran/stocktrack/internal/models"
)

// defaultCategory is applied to bulk rows with no category. Single
// create requires an explicit one.
const defaultCategory = "Other"

// BulkImportItemsHandler godoc
// @Summary Bulk-create items
// @Description Accepts a JSON array of rows (client-parsed CSV) and creates them in order. Rows that fail validation or persistence are reported and skipped; the rest still import.
// @Tags import
// @Accept json
// @Produce json
// @Param rows body []ItemRequest true "Rows to import"
// @Success 201 {object} BulkImportResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/bulk/items [post]
// @Security AdminKey
func BulkImportItemsHandler(w http.ResponseWriter, r *http.Request) {
	var rows []ItemRequest
	if err := readJSON(w, r, &rows); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid input")
		return
	}

	result := BulkImportResult{Items: []ItemResponse{}}
	for i, row := range rows {
		created, err := importRow(row)
		if err != nil {
			result.Errors = append(result.Errors, BulkRowError{Row: i + 1, Error: err.Error()})
			continue
		}
		result.Items = append(result.Items, newItemResponse(created))
	}
	result.Count = len(result.Items)

	_ = writeJSON(w, http.StatusCreated, result)
}

func importRow(row ItemRequest) (models.Item, error) {
	if msg := validateBulkRow(row); msg != "" {
		return models.Item{}, fmt.Errorf("%s", msg)
	}
	if row.Category == "" {
		row.Category = defaultCategory
	}

	supplier, err := supplierRepo.FindOrCreate(row.Supplier)
	if err != nil {
		log.Printf("bulk import: failed to resolve supplier %q: %v", row.Supplier, err)
		return models.Item{}, fmt.Errorf("failed to resolve supplier %q", row.Supplier)
	}
	category, err := categoryRepo.FindOrCreate(row.Category)
	if err != nil {
		log.Printf("bulk import: failed to resolve category %q: %v", row.Category, err)
		return models.Item{}, fmt.Errorf("failed to resolve category %q", row.Category)
	}

	item := models.Item{
		Name:       row.Item,
		Quantity:   int(row.Quantity),
		Price:      float64(row.Price),
		SupplierID: supplier.ID,
		CategoryID: category.ID,
	}
	if row.SKU != "" {
		item.SKU = &row.SKU
	}

	created, err := itemRepo.Create(item)
	if err != nil {
		log.Printf("bulk import: failed to create %q: %v", row.Item, err)
		return models.Item{}, fmt.Errorf("failed to create %q", row.Item)
	}
	return created, nil
}
