package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rmoran/stocktrack/internal/http/ban"
	"github.com/rmoran/stocktrack/internal/http/handlers"
	rl "github.com/rmoran/stocktrack/internal/http/rate_limiter"
)

// Options carries the per-process wiring the router needs. The admin
// key is injected here rather than read from ambient state.
type Options struct {
	AdminKey  string
	WebDist   string
	RateLimit bool
	Bans      *ban.Tracker // nil disables abuse tracking
}

func NewRouter(o Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", handlers.HealthHandler)
	r.Get("/api/suppliers", handlers.GetSuppliersHandler)
	r.Get("/api/categories", handlers.GetCategoriesHandler)
	r.Get("/api/items", handlers.GetItemsHandler)
	r.Get("/api/export", handlers.ExportItemsHandler)
	r.Get("/api/summary", handlers.GetSummaryHandler)

	r.Group(func(pr chi.Router) {
		pr.Use(RequireKey(o.AdminKey, o.Bans))
		if o.RateLimit {
			pr.Use(rl.Middleware)
		}
		pr.Post("/api/suppliers", handlers.CreateSupplierHandler)
		pr.Post("/api/categories", handlers.CreateCategoryHandler)
		pr.Post("/api/items", handlers.CreateItemHandler)
		pr.Patch("/api/items/{id}", handlers.UpdateItemHandler)
		pr.Delete("/api/items/{id}", handlers.DeleteItemHandler)
		pr.Post("/api/items/{id}/undelete", handlers.UndeleteItemHandler)
		pr.Post("/api/bulk/items", handlers.BulkImportItemsHandler)
	})

	// Everything else falls through to the built frontend.
	r.NotFound(SPAHandler(o.WebDist))

	return r
}
