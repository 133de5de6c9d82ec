package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	models "github.com/rmoran/stocktrack/internal/models"
	repo "github.com/rmoran/stocktrack/internal/repo"
)

// GetItemsHandler godoc
// @Summary List items
// @Description Lists items joined with supplier/category names, newest first. Soft-deleted items are excluded unless includeDeleted=true.
// @Tags items
// @Produce json
// @Param supplier query string false "Exact supplier name"
// @Param category query string false "Exact category name"
// @Param q query string false "Case-insensitive substring of the item name"
// @Param sku query string false "Exact sku"
// @Param includeDeleted query bool false "Include soft-deleted items"
// @Success 200 {array} ItemResponse
// @Failure 500 {object} map[string]string
// @Router /api/items [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.List(filterFromQuery(r))
	if err != nil {
		log.Printf("failed to fetch items: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	response := make([]ItemResponse, len(items))
	for i, item := range items {
		response[i] = newItemResponse(item)
	}
	_ = writeJSON(w, http.StatusOK, response)
}

func filterFromQuery(r *http.Request) repo.ItemFilter {
	q := r.URL.Query()
	includeDeleted := q.Get("includeDeleted")
	return repo.ItemFilter{
		Supplier:       q.Get("supplier"),
		Category:       q.Get("category"),
		Query:          q.Get("q"),
		SKU:            q.Get("sku"),
		IncludeDeleted: includeDeleted != "" && includeDeleted != "false",
	}
}

// CreateItemHandler godoc
// @Summary Create an item
// @Description Creates an item, resolving supplier and category by name (creating them on first use).
// @Tags items
// @Accept json
// @Produce json
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/items [post]
// @Security AdminKey
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if msg := validateItem(req); msg != "" {
		writeJSONError(w, http.StatusBadRequest, msg)
		return
	}

	supplier, err := supplierRepo.FindOrCreate(req.Supplier)
	if err != nil {
		log.Printf("failed to resolve supplier %q: %v", req.Supplier, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}
	category, err := categoryRepo.FindOrCreate(req.Category)
	if err != nil {
		log.Printf("failed to resolve category %q: %v", req.Category, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	item := models.Item{
		Name:       req.Item,
		Quantity:   int(req.Quantity),
		Price:      float64(req.Price),
		SupplierID: supplier.ID,
		CategoryID: category.ID,
	}
	if req.SKU != "" {
		item.SKU = &req.SKU
	}

	created, err := itemRepo.Create(item)
	if err != nil {
		log.Printf("failed to create item: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}
	_ = writeJSON(w, http.StatusCreated, newItemResponse(created))
}

// UpdateItemHandler godoc
// @Summary Partially update an item
// @Description Applies only the supplied fields. Supplier/category names rebind the foreign key via find-or-create; undelete clears the deletion mark.
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param patch body ItemPatchRequest true "Fields to change"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/items/{id} [patch]
// @Security AdminKey
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	var req ItemPatchRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if msg := validatePatch(req); msg != "" {
		writeJSONError(w, http.StatusBadRequest, msg)
		return
	}

	patch := repo.ItemPatch{
		SKU:      req.SKU,
		Name:     req.Item,
		Undelete: req.Undelete,
	}
	if req.Quantity != nil {
		qty := int(*req.Quantity)
		patch.Quantity = &qty
	}
	if req.Price != nil {
		price := float64(*req.Price)
		patch.Price = &price
	}
	if req.Supplier != nil && *req.Supplier != "" {
		supplier, err := supplierRepo.FindOrCreate(*req.Supplier)
		if err != nil {
			log.Printf("failed to resolve supplier %q: %v", *req.Supplier, err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to update item")
			return
		}
		patch.SupplierID = &supplier.ID
	}
	if req.Category != nil && *req.Category != "" {
		category, err := categoryRepo.FindOrCreate(*req.Category)
		if err != nil {
			log.Printf("failed to resolve category %q: %v", *req.Category, err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to update item")
			return
		}
		patch.CategoryID = &category.ID
	}

	updated, err := itemRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			writeJSONError(w, http.StatusNotFound, "item not found")
			return
		}
		log.Printf("failed to update item %d: %v", id, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}
	_ = writeJSON(w, http.StatusOK, newItemResponse(updated))
}

// DeleteItemHandler godoc
// @Summary Soft-delete an item
// @Description Marks the item deleted; it disappears from default listings, export and summary until undeleted.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/items/{id} [delete]
// @Security AdminKey
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	if err := itemRepo.SoftDelete(id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			writeJSONError(w, http.StatusNotFound, "item not found")
			return
		}
		log.Printf("failed to delete item %d: %v", id, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	_ = writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// UndeleteItemHandler godoc
// @Summary Restore a soft-deleted item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/items/{id}/undelete [post]
// @Security AdminKey
func UndeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	item, err := itemRepo.Undelete(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			writeJSONError(w, http.StatusNotFound, "item not found")
			return
		}
		log.Printf("failed to undelete item %d: %v", id, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to undelete item")
		return
	}
	_ = writeJSON(w, http.StatusOK, newItemResponse(item))
}
