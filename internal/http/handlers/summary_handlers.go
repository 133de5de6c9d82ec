package handlers

import (
	"log"
	"net/http"

	repo "github.com/rmoran/stocktrack/internal/repo"
)

// GetSummaryHandler godoc
// @Summary Stock value totals
// @Description Sums quantity*price over non-deleted items, grouped by supplier name and by category name.
// @Tags summary
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 500 {object} map[string]string
// @Router /api/summary [get]
func GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.List(repo.ItemFilter{})
	if err != nil {
		log.Printf("failed to compute summary: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed summary")
		return
	}

	summary := SummaryResponse{
		BySupplier: map[string]float64{},
		ByCategory: map[string]float64{},
	}
	for _, item := range items {
		total := item.Price * float64(item.Quantity)
		summary.Grand += total
		summary.BySupplier[item.Supplier] += total
		summary.ByCategory[item.Category] += total
	}

	_ = writeJSON(w, http.StatusOK, summary)
}
