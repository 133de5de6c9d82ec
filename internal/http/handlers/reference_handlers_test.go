package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rmoran/stocktrack/internal/http/handlers"
	"github.com/rmoran/stocktrack/internal/models"
)

func listReferences(t *testing.T, r http.Handler, path string) []models.Reference {
	t.Helper()
	w := doJSON(r, http.MethodGet, path, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 listing %s, got %d", path, w.Code)
	}
	var refs []models.Reference
	if err := json.NewDecoder(w.Body).Decode(&refs); err != nil {
		t.Fatalf("error decoding references: %v", err)
	}
	return refs
}

func TestCreateSupplier_FindOrCreate(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/api/suppliers", handler.ReferenceRequest{Name: "Bidfood"}, adminKey)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var first models.Reference
	if err := json.NewDecoder(w.Body).Decode(&first); err != nil {
		t.Fatalf("error decoding supplier: %v", err)
	}

	// Same name again must return the same row, not a duplicate.
	w = doJSON(r, http.MethodPost, "/api/suppliers", handler.ReferenceRequest{Name: "Bidfood"}, adminKey)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var second models.Reference
	if err := json.NewDecoder(w.Body).Decode(&second); err != nil {
		t.Fatalf("error decoding supplier: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected same id both times, got %d and %d", first.ID, second.ID)
	}
	if suppliers := listReferences(t, r, "/api/suppliers"); len(suppliers) != 1 {
		t.Errorf("expected a single supplier row, got %d", len(suppliers))
	}
}

func TestCreateReference_NameRequired(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	for _, path := range []string{"/api/suppliers", "/api/categories"} {
		w := doJSON(r, http.MethodPost, path, handler.ReferenceRequest{}, adminKey)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
			continue
		}
		if got := errorBody(t, w); got != "name required" {
			t.Errorf("%s: expected 'name required', got %q", path, got)
		}
	}
}

func TestListReferences_NameAscending(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	for _, name := range []string{"Veg", "Meats", "Drinks"} {
		doJSON(r, http.MethodPost, "/api/categories", handler.ReferenceRequest{Name: name}, adminKey)
	}

	categories := listReferences(t, r, "/api/categories")
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	for i, want := range []string{"Drinks", "Meats", "Veg"} {
		if categories[i].Name != want {
			t.Errorf("expected %q at position %d, got %q", want, i, categories[i].Name)
		}
	}
}

func TestCreateViaItem_AppearsInReferenceList(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustCreateItem(t, r, handler.ItemRequest{Item: "Chicken", Supplier: "Bidfood", Category: "Meats"})

	if suppliers := listReferences(t, r, "/api/suppliers"); len(suppliers) != 1 || suppliers[0].Name != "Bidfood" {
		t.Errorf("expected supplier created lazily by item write, got %+v", suppliers)
	}
	if categories := listReferences(t, r, "/api/categories"); len(categories) != 1 || categories[0].Name != "Meats" {
		t.Errorf("expected category created lazily by item write, got %+v", categories)
	}
}
