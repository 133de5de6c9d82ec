package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	models "github.com/rmoran/stocktrack/internal/models"
)

// jsonNumber accepts a JSON number, a numeric string, or null. The web
// client sends quantities and prices straight out of form inputs, so
// writes coerce rather than reject; absent values decode to zero.
type jsonNumber float64

func (n *jsonNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*n = jsonNumber(v)
	return nil
}

// ItemRequest is the body for single create and for each bulk-import
// row. Category is required on single create and defaults to "Other"
// on bulk rows.
type ItemRequest struct {
	SKU      string     `json:"sku"`
	Item     string     `json:"item"`
	Supplier string     `json:"supplier"`
	Category string     `json:"category"`
	Quantity jsonNumber `json:"quantity"`
	Price    jsonNumber `json:"price"`
}

// ItemPatchRequest is an explicit partial update: nil means "leave
// unchanged". An empty supplier or category string is also ignored; an
// empty sku clears the sku.
type ItemPatchRequest struct {
	SKU      *string     `json:"sku"`
	Item     *string     `json:"item"`
	Quantity *jsonNumber `json:"quantity"`
	Price    *jsonNumber `json:"price"`
	Supplier *string     `json:"supplier"`
	Category *string     `json:"category"`
	Undelete bool        `json:"undelete"`
}

type ItemResponse struct {
	ID        int        `json:"id"`
	SKU       string     `json:"sku"`
	Item      string     `json:"item"`
	Quantity  int        `json:"quantity"`
	Price     float64    `json:"price"`
	Supplier  string     `json:"supplier"`
	Category  string     `json:"category"`
	DeletedAt *time.Time `json:"deletedAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func newItemResponse(i models.Item) ItemResponse {
	sku := ""
	if i.SKU != nil {
		sku = *i.SKU
	}
	return ItemResponse{
		ID:        i.ID,
		SKU:       sku,
		Item:      i.Name,
		Quantity:  i.Quantity,
		Price:     i.Price,
		Supplier:  i.Supplier,
		Category:  i.Category,
		DeletedAt: i.DeletedAt,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

type ReferenceRequest struct {
	Name string `json:"name"`
}

type BulkRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type BulkImportResult struct {
	Count  int            `json:"count"`
	Items  []ItemResponse `json:"items"`
	Errors []BulkRowError `json:"errors,omitempty"`
}

type SummaryResponse struct {
	BySupplier map[string]float64 `json:"bySupplier"`
	ByCategory map[string]float64 `json:"byCategory"`
	Grand      float64            `json:"grand"`
}
