package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"osow-feasibility-service/internal/api/dto"
	"osow-feasibility-service/internal/ports"
	"osow-feasibility-service/internal/services"
)

type QuoteHandler struct {
	Engine *services.QuotingEngine
	Store  ports.DecisionStore // optional
}

// Quote prices a move for a registered vehicle. The stored profile supplies
// the physical envelope; the carrier only provides cargo weight and lane.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.QuoteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	carrierID := strings.TrimSpace(req.CarrierID)
	unitNumber := strings.TrimSpace(req.UnitNumber)
	if carrierID == "" || unitNumber == "" {
		writeError(w, r, http.StatusBadRequest, "carrier_id and unit_number are required")
		return
	}
	if req.LoadWeightLbs <= 0 {
		writeError(w, r, http.StatusBadRequest, "load_weight_lbs must be positive")
		return
	}
	if len(req.RegionsCrossed) == 0 {
		writeError(w, r, http.StatusBadRequest, "regions_crossed is required")
		return
	}

	quote, err := h.Engine.GenerateQuote(r.Context(), services.QuoteRequest{
		CarrierID:       carrierID,
		UnitNumber:      unitNumber,
		LoadWeightLbs:   req.LoadWeightLbs,
		Origin:          strings.TrimSpace(req.Origin),
		Destination:     strings.TrimSpace(req.Destination),
		RegionsCrossed:  req.RegionsCrossed,
		CandidateRoutes: toCandidateRoutes(req.CandidateRoutes),
		Rush:            req.Rush,
	})
	if errors.Is(err, ports.ErrProfileNotFound) {
		writeError(w, r, http.StatusNotFound, "no vehicle profile for carrier/unit")
		return
	}
	if err != nil {
		log.Printf("generate quote failed: carrier=%s unit=%s err=%v", carrierID, unitNumber, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Store != nil {
		if err := h.Store.SaveQuote(r.Context(), quote); err != nil {
			log.Printf("archive quote failed: quote_id=%s err=%v", quote.QuoteID, err)
		}
	}

	writeJSON(w, r, http.StatusOK, fromQuote(quote))
}
