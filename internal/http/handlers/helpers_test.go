package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rmoran/stocktrack/internal/http"
	handler "github.com/rmoran/stocktrack/internal/http/handlers"
	"github.com/rmoran/stocktrack/internal/repo"
)

const adminKey = "secret"

var (
	itemRepo     *repo.InMemoryItemRepository
	supplierRepo *repo.InMemoryReferenceRepository
	categoryRepo *repo.InMemoryReferenceRepository
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	supplierRepo = repo.NewInMemoryReferenceRepository()
	categoryRepo = repo.NewInMemoryReferenceRepository()
	itemRepo = repo.NewInMemoryItemRepository(supplierRepo, categoryRepo)
	handler.SetSupplierRepo(supplierRepo)
	handler.SetCategoryRepo(categoryRepo)
	handler.SetItemRepo(itemRepo)
}

func newRouter() http.Handler {
	return api.NewRouter(api.Options{AdminKey: adminKey})
}

func clearAll() {
	itemRepo.Clear()
	supplierRepo.Clear()
	categoryRepo.Clear()
}

// doJSON issues a request with an optional JSON payload and admin key.
func doJSON(r http.Handler, method, path string, payload any, key string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	if key != "" {
		req.Header.Set("x-key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createItem(r http.Handler, item handler.ItemRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/items", item, adminKey)
}

func mustCreateItem(t *testing.T, r http.Handler, item handler.ItemRequest) handler.ItemResponse {
	t.Helper()
	w := createItem(r, item)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	return decodeItem(t, w)
}

func decodeItem(t *testing.T, w *httptest.ResponseRecorder) handler.ItemResponse {
	t.Helper()
	var resp handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding item response: %v", err)
	}
	return resp
}

func listItems(t *testing.T, r http.Handler, query string) []handler.ItemResponse {
	t.Helper()
	w := doJSON(r, http.MethodGet, "/api/items"+query, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK listing items, got %d", w.Code)
	}
	var items []handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("error decoding items: %v", err)
	}
	return items
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding error body %q: %v", w.Body.String(), err)
	}
	return resp["error"]
}

func itemPath(id int) string {
	return fmt.Sprintf("/api/items/%d", id)
}
