package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rmoran/stocktrack/internal/config"
	"github.com/rmoran/stocktrack/internal/db"
	api "github.com/rmoran/stocktrack/internal/http"
	"github.com/rmoran/stocktrack/internal/http/ban"
	"github.com/rmoran/stocktrack/internal/http/handlers"
	rl "github.com/rmoran/stocktrack/internal/http/rate_limiter"
	"github.com/rmoran/stocktrack/internal/repo"
)

// @title Stocktrack API
// @version 1.0
// @description REST API for stock items with supplier/category reference data, CSV export and value summaries.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey AdminKey
// @in header
// @name x-key
func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("❌ Could not migrate database:", err)
	}
	if err := db.Seed(database); err != nil {
		log.Printf("seed skipped: %v", err)
	}

	handlers.SetItemRepo(repo.NewPostgresItemRepository(database))
	handlers.SetSupplierRepo(repo.NewPostgresSupplierRepository(database))
	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))

	var bans *ban.Tracker
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		bans = ban.NewTracker(rdb)
		go bans.StartSummaryLoop(context.Background(), 24*time.Hour)
	}

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter(api.Options{
		AdminKey:  cfg.AdminKey,
		WebDist:   cfg.WebDist,
		RateLimit: true,
		Bans:      bans,
	})
	log.Printf("✅ Server running on :%d", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
