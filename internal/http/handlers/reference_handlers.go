package handlers

import (
	"log"
	"net/http"

	repo "github.com/rmoran/stocktrack/internal/repo"
)

// GetSuppliersHandler godoc
// @Summary List suppliers
// @Tags references
// @Produce json
// @Success 200 {array} models.Reference
// @Failure 500 {object} map[string]string
// @Router /api/suppliers [get]
func GetSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	listReferences(w, supplierRepo, "Failed to fetch suppliers")
}

// GetCategoriesHandler godoc
// @Summary List categories
// @Tags references
// @Produce json
// @Success 200 {array} models.Reference
// @Failure 500 {object} map[string]string
// @Router /api/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	listReferences(w, categoryRepo, "Failed to fetch categories")
}

func listReferences(w http.ResponseWriter, refs repo.ReferenceRepository, failMsg string) {
	all, err := refs.All()
	if err != nil {
		log.Printf("%s: %v", failMsg, err)
		writeJSONError(w, http.StatusInternalServerError, failMsg)
		return
	}
	_ = writeJSON(w, http.StatusOK, all)
}

// CreateSupplierHandler godoc
// @Summary Find or create a supplier by name
// @Tags references
// @Accept json
// @Produce json
// @Param supplier body ReferenceRequest true "Supplier name"
// @Success 201 {object} models.Reference
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/suppliers [post]
// @Security AdminKey
func CreateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	createReference(w, r, supplierRepo, "Failed to create supplier")
}

// CreateCategoryHandler godoc
// @Summary Find or create a category by name
// @Tags references
// @Accept json
// @Produce json
// @Param category body ReferenceRequest true "Category name"
// @Success 201 {object} models.Reference
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/categories [post]
// @Security AdminKey
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	createReference(w, r, categoryRepo, "Failed to create category")
}

func createReference(w http.ResponseWriter, r *http.Request, refs repo.ReferenceRepository, failMsg string) {
	var req ReferenceRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if req.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "name required")
		return
	}

	ref, err := refs.FindOrCreate(req.Name)
	if err != nil {
		log.Printf("%s %q: %v", failMsg, req.Name, err)
		writeJSONError(w, http.StatusInternalServerError, failMsg)
		return
	}
	_ = writeJSON(w, http.StatusCreated, ref)
}
