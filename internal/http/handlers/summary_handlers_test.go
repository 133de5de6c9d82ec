package handlers_test

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	handler "github.com/rmoran/stocktrack/internal/http/handlers"
)

func getSummary(t *testing.T, r http.Handler) handler.SummaryResponse {
	t.Helper()
	w := doJSON(r, http.MethodGet, "/api/summary", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching summary, got %d", w.Code)
	}
	var resp handler.SummaryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding summary: %v", err)
	}
	return resp
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummary_SingleItem(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustCreateItem(t, r, handler.ItemRequest{Item: "Chicken Breast", Supplier: "Bidfood", Category: "Meats", Quantity: 10, Price: 2.5})

	summary := getSummary(t, r)
	if !almostEqual(summary.BySupplier["Bidfood"], 25.0) {
		t.Errorf("expected bySupplier.Bidfood == 25.0, got %v", summary.BySupplier["Bidfood"])
	}
	if !almostEqual(summary.ByCategory["Meats"], 25.0) {
		t.Errorf("expected byCategory.Meats == 25.0, got %v", summary.ByCategory["Meats"])
	}
	if !almostEqual(summary.Grand, 25.0) {
		t.Errorf("expected grand == 25.0, got %v", summary.Grand)
	}
}

func TestSummary_GroupsAndGrandAgree(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustCreateItem(t, r, handler.ItemRequest{Item: "Chicken", Supplier: "Bidfood", Category: "Meats", Quantity: 10, Price: 2.5})
	mustCreateItem(t, r, handler.ItemRequest{Item: "Cola", Supplier: "Booker", Category: "Drinks", Quantity: 24, Price: 0.5})
	mustCreateItem(t, r, handler.ItemRequest{Item: "Beef", Supplier: "Bidfood", Category: "Meats", Quantity: 2, Price: 8})

	summary := getSummary(t, r)

	want := 10*2.5 + 24*0.5 + 2*8.0
	if !almostEqual(summary.Grand, want) {
		t.Errorf("expected grand %v, got %v", want, summary.Grand)
	}

	var bySupplier, byCategory float64
	for _, v := range summary.BySupplier {
		bySupplier += v
	}
	for _, v := range summary.ByCategory {
		byCategory += v
	}
	if !almostEqual(bySupplier, summary.Grand) {
		t.Errorf("expected supplier totals to sum to grand: %v vs %v", bySupplier, summary.Grand)
	}
	if !almostEqual(byCategory, summary.Grand) {
		t.Errorf("expected category totals to sum to grand: %v vs %v", byCategory, summary.Grand)
	}
}

func TestSummary_ExcludesDeleted(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustCreateItem(t, r, handler.ItemRequest{Item: "Chicken", Supplier: "Bidfood", Category: "Meats", Quantity: 10, Price: 2.5})
	doomed := mustCreateItem(t, r, handler.ItemRequest{Item: "Beef", Supplier: "Bidfood", Category: "Meats", Quantity: 100, Price: 10})

	doJSON(r, http.MethodDelete, itemPath(doomed.ID), nil, adminKey)

	summary := getSummary(t, r)
	if !almostEqual(summary.Grand, 25.0) {
		t.Errorf("expected deleted item excluded from totals, grand %v", summary.Grand)
	}
}

func TestSummary_EmptyStore(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	summary := getSummary(t, r)
	if summary.Grand != 0 {
		t.Errorf("expected zero grand on empty store, got %v", summary.Grand)
	}
	if summary.BySupplier == nil || summary.ByCategory == nil {
		t.Error("expected empty (not null) grouping maps")
	}
}
