package api

import (
	"net/http"
	"time"

	"osow-feasibility-service/internal/api/handlers"
	"osow-feasibility-service/internal/ports"
	"osow-feasibility-service/internal/services"
)

// RouterDeps carries everything the HTTP surface needs. Cache and Store are
// optional; nil disables caching and decision archiving respectively.
type RouterDeps struct {
	Feasibility *services.FeasibilityEngine
	Quoting     *services.QuotingEngine
	Regulatory  *services.RegulatoryEngine
	Vehicles    ports.VehicleProfileRepository
	Submitter   ports.PermitSubmitter
	Cache       ports.AssessmentCache
	Store       ports.DecisionStore
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	assessmentHandler := &handlers.AssessmentHandler{
		Engine: deps.Feasibility,
		Cache:  deps.Cache,
		Store:  deps.Store,
	}
	quoteHandler := &handlers.QuoteHandler{
		Engine: deps.Quoting,
		Store:  deps.Store,
	}
	vehicleHandler := &handlers.VehicleHandler{Repo: deps.Vehicles}
	renewalHandler := &handlers.RenewalHandler{
		Engine: deps.Regulatory,
		Now:    time.Now,
	}
	permitHandler := &handlers.PermitHandler{
		Engine:    deps.Regulatory,
		Submitter: deps.Submitter,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/assessments", assessmentHandler.Assess)
	mux.HandleFunc("/quotes", quoteHandler.Quote)
	mux.HandleFunc("/vehicles", vehicleHandler.ListFleet)
	mux.HandleFunc("/renewals", renewalHandler.CheckRenewals)
	mux.HandleFunc("/permits/submissions", permitHandler.Submit)

	return loggingMiddleware(mux)
}
