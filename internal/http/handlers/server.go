package handlers

import (
	"net/http"

	repo "github.com/rmoran/stocktrack/internal/repo"
)

var (
	itemRepo     repo.ItemRepository
	supplierRepo repo.ReferenceRepository
	categoryRepo repo.ReferenceRepository
)

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

func SetSupplierRepo(r repo.ReferenceRepository) {
	supplierRepo = r
}

func SetCategoryRepo(r repo.ReferenceRepository) {
	categoryRepo = r
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
