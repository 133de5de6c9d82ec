package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	api "github.com/rmoran/stocktrack/internal/http"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("error writing %s: %v", name, err)
	}
}

func TestSPAFallback(t *testing.T) {
	dist := t.TempDir()
	writeFile(t, dist, "index.html", "<html>app</html>")
	writeFile(t, dist, "app.js", "console.log('hi')")

	r := api.NewRouter(api.Options{AdminKey: "secret", WebDist: dist})

	tests := []struct {
		path string
		want string
	}{
		{"/app.js", "console.log"},
		{"/", "<html>app</html>"},
		{"/some/client/route", "<html>app</html>"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("expected body containing %q, got %q", tt.want, w.Body.String())
			}
		})
	}
}

func TestSPAMissingDist(t *testing.T) {
	r := api.NewRouter(api.Options{AdminKey: "secret", WebDist: filepath.Join(t.TempDir(), "nope")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anything", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 when dist is absent, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := api.NewRouter(api.Options{AdminKey: "secret"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Errorf("expected ok body, got %q", w.Body.String())
	}
}
