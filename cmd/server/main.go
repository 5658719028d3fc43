package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"osow-feasibility-service/internal/adapters/cache"
	"osow-feasibility-service/internal/adapters/portal"
	"osow-feasibility-service/internal/adapters/repositories"
	"osow-feasibility-service/internal/api"
	"osow-feasibility-service/internal/config"
	"osow-feasibility-service/internal/ports"
	"osow-feasibility-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, portal mock) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfgPath := config.Get("CONFIG_PATH", "config.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	dbPath := config.Get("DB_PATH", "data/app.db")

	rules, err := config.LoadJurisdictionRules(cfg.Seeds.Jurisdictions)
	if err != nil {
		log.Fatal(err)
	}
	segments, err := config.LoadSegments(cfg.Seeds.Segments)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Regulatory tables loaded regions=%d", len(rules.Regions()))

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo fleet data on startup for local runs.
	if err := initAndSeed(db, cfg.Seeds.Vehicles); err != nil {
		log.Fatal(err)
	}

	vehicleRepo := repositories.NewSqliteVehicleRepository(db)
	decisionStore := repositories.NewSqliteDecisionStore(db)

	// Cache is optional; without a Redis address every assessment is computed fresh.
	var assessmentCache ports.AssessmentCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		ttl := time.Duration(cfg.Redis.TTLMinutes) * time.Minute
		assessmentCache = cache.NewRedisAssessmentCache(client, ttl)
		log.Printf("Assessment cache enabled redis=%s ttl=%s", cfg.Redis.Addr, ttl)
	}

	regulatory := services.NewRegulatoryEngine(rules)
	routing := services.NewRoutingCore(segments)

	router := api.NewRouter(api.RouterDeps{
		Feasibility: services.NewFeasibilityEngine(regulatory, routing),
		Quoting:     services.NewQuotingEngine(regulatory, routing, vehicleRepo),
		Regulatory:  regulatory,
		Vehicles:    vehicleRepo,
		Submitter:   portal.NewMockPermitSubmitter(),
		Cache:       assessmentCache,
		Store:       decisionStore,
	})

	log.Printf("Server listening addr=%s", cfg.Server.Addr)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
