package handlers

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	repo "github.com/rmoran/stocktrack/internal/repo"
)

var exportColumns = []string{"supplier", "item", "category", "quantity", "price", "sku", "deletedAt", "createdAt"}

// ExportItemsHandler godoc
// @Summary Export items as CSV
// @Description Streams the filtered item set as stock-export.csv. Same default soft-delete exclusion and ordering as the listing.
// @Tags export
// @Produce text/csv
// @Param supplier query string false "Exact supplier name"
// @Param includeDeleted query bool false "Include soft-deleted items"
// @Success 200 {string} string "CSV"
// @Failure 500 {object} map[string]string
// @Router /api/export [get]
func ExportItemsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	includeDeleted := q.Get("includeDeleted")
	filter := repo.ItemFilter{
		Supplier:       q.Get("supplier"),
		IncludeDeleted: includeDeleted != "" && includeDeleted != "false",
	}

	items, err := itemRepo.List(filter)
	if err != nil {
		log.Printf("failed to export items: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed export")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="stock-export.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write(exportColumns)
	for _, item := range items {
		sku := ""
		if item.SKU != nil {
			sku = *item.SKU
		}
		deletedAt := ""
		if item.DeletedAt != nil {
			deletedAt = item.DeletedAt.UTC().Format(time.RFC3339)
		}
		_ = cw.Write([]string{
			item.Supplier,
			item.Name,
			item.Category,
			strconv.Itoa(item.Quantity),
			fmt.Sprintf("%.2f", item.Price),
			sku,
			deletedAt,
			item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("failed to write export: %v", err)
	}
}
